package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productURL  = "/api/v1/products"
	customerURL = "/api/v1/customers"
)

// StorefrontE2ESuite runs the real router in an httptest.Server with a fresh catalog and directory per test.
type StorefrontE2ESuite struct {
	suite.Suite
	server     *httptest.Server
	httpClient *http.Client
	deps       *Dependencies
}

func (s *StorefrontE2ESuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.deps = SetupDependencies(logger)
	s.server = httptest.NewServer(SetupHttpHandler(s.deps))
	s.httpClient = s.server.Client()
}

func (s *StorefrontE2ESuite) TearDownTest() {
	s.server.Close()
}

func TestStorefrontE2E(t *testing.T) {
	suite.Run(t, new(StorefrontE2ESuite))
}

func (s *StorefrontE2ESuite) do(method, path string, body any) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, data
}

func (s *StorefrontE2ESuite) listProductIDs() []int {
	resp, data := s.do(http.MethodGet, productURL, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var list []struct {
		ID int `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(data, &list))
	ids := make([]int, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *StorefrontE2ESuite) TestProducts_CreateListDelete() {
	resp, _ := s.do(http.MethodPost, productURL, map[string]any{"id": 1, "name": "Laptop HP", "price": 599.99, "stock": 10})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp, _ = s.do(http.MethodPost, productURL, map[string]any{"id": 2, "name": "Mouse", "price": "25.50", "stock": 50})
	s.Equal(http.StatusCreated, resp.StatusCode)

	s.Equal([]int{1, 2}, s.listProductIDs())

	resp, _ = s.do(http.MethodDelete, productURL+"/1", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	s.Equal([]int{2}, s.listProductIDs())

	resp, _ = s.do(http.MethodGet, productURL+"/1", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp, _ = s.do(http.MethodDelete, productURL+"/1", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *StorefrontE2ESuite) TestProducts_Rejections() {
	resp, _ := s.do(http.MethodPost, productURL, map[string]any{"id": 1, "name": "Laptop HP", "price": 599.99, "stock": 10})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	testCases := []struct {
		name         string
		method       string
		path         string
		body         map[string]any
		expectedCode int
		expectedBody string
	}{
		{
			name:         "duplicate id",
			method:       http.MethodPost,
			path:         productURL,
			body:         map[string]any{"id": 1, "name": "Other", "price": 1, "stock": 1},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Product with ID 1 already exists"}`,
		},
		{
			name:         "zero price",
			method:       http.MethodPost,
			path:         productURL,
			body:         map[string]any{"id": 2, "name": "Other", "price": 0, "stock": 1},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"price":"must be greater than 0"}}`,
		},
		{
			name:         "blank name",
			method:       http.MethodPost,
			path:         productURL,
			body:         map[string]any{"id": 2, "name": "  ", "price": 1, "stock": 1},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"name":"must not be blank"}}`,
		},
		{
			name:         "negative price on update",
			method:       http.MethodPut,
			path:         productURL + "/1",
			body:         map[string]any{"name": "Changed", "price": -1, "stock": 1},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"price":"must be greater than 0"}}`,
		},
		{
			name:         "update unknown id",
			method:       http.MethodPut,
			path:         productURL + "/5",
			body:         map[string]any{"name": "Changed", "price": 1, "stock": 1},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product with ID 5 not found"}`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, data := s.do(tc.method, tc.path, tc.body)
			s.Equal(tc.expectedCode, resp.StatusCode)
			s.JSONEq(tc.expectedBody, string(data))
		})
	}

	s.Equal([]int{1}, s.listProductIDs())
	_, data := s.do(http.MethodGet, productURL+"/1", nil)
	s.JSONEq(`{"id":1,"name":"Laptop HP","description":"","price":"599.99","stock":10}`, string(data))
}

func (s *StorefrontE2ESuite) TestCustomers_CreateUpdate() {
	resp, _ := s.do(http.MethodPost, customerURL, map[string]any{"id": 1, "name": "Juan", "email": "a@b", "address": "Calle 1"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, data := s.do(http.MethodPut, customerURL+"/1", map[string]any{"name": "", "email": "juan@email.com", "address": ""})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"id":1,"name":"","email":"juan@email.com","address":""}`, string(data))

	resp, _ = s.do(http.MethodPost, customerURL, map[string]any{"id": 2, "name": "Maria", "email": "no-at-symbol", "address": "Av. 4"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *StorefrontE2ESuite) TestSeed() {
	require.NoError(s.T(), Seed(s.deps))

	s.Equal([]int{1, 2, 3}, s.listProductIDs())
	s.Equal(2, s.deps.CustomerService.Count())
	s.ErrorContains(Seed(s.deps), "seed product 1")
}

func (s *StorefrontE2ESuite) TestHealthz() {
	resp, _ := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}
