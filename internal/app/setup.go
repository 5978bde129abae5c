// Package app wires the catalog, the directory and their transports together.
package app

import (
	"log/slog"
	"net/http"

	customerservice "github.com/abgdnv/storefront/internal/customer/service"
	customerstore "github.com/abgdnv/storefront/internal/customer/store"
	customerrest "github.com/abgdnv/storefront/internal/customer/transport/rest"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/platform/web"
	productservice "github.com/abgdnv/storefront/internal/product/service"
	productstore "github.com/abgdnv/storefront/internal/product/store"
	productrest "github.com/abgdnv/storefront/internal/product/transport/rest"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	ProductService  productservice.ProductService
	CustomerService customerservice.CustomerService
	Logger          *slog.Logger
}

// SetupDependencies creates a fresh, empty catalog and directory.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	return &Dependencies{
		ProductService:  productservice.NewService(productstore.NewInMemoryStore()),
		CustomerService: customerservice.NewService(customerstore.NewInMemoryStore()),
		Logger:          logger,
	}
}

// SetupHttpHandler initializes the router with the product and customer routes.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := web.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productrest.NewHandler(deps.ProductService, deps.Logger).RegisterRoutes(mux)
	customerrest.NewHandler(deps.CustomerService, deps.Logger).RegisterRoutes(mux)
	mux.Get("/healthz", web.HealthCheck)
}

// SetupHttpServer creates and configures the HTTP server.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := web.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return web.NewHTTPServer(httpCfg, mux)
}

// SetupPprofServer returns a server for the default mux, where net/http/pprof registers itself.
func SetupPprofServer(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              cfg.PProf.Addr,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader,
	}
}

