package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/internal/product/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	error    error
}

func (m *mockProductService) Create(_ service.ProductCreateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) List() ([]service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) Count() int {
	return len(m.products)
}

func (m *mockProductService) FindByID(_ int) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ int, _ service.ProductUpdateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Delete(_ int) error {
	return m.error
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v any) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newTestHandler(m *mockProductService) *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(m, logger)
}

var mouse = &service.ProductDto{ID: 2, Name: "Mouse", Description: "Wireless", Price: decimal.RequireFromString("25.50"), Stock: 50}

func Test_ProductAPI_FindByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  mockProductService{product: mouse},
			productID:    "2",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, mouse),
		},
		{
			name:         "Error - invalid id",
			mockService:  mockProductService{},
			productID:    "two",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid ID: two"}`,
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: &apperrors.NotFoundError{Entity: "product", ID: 3}},
			productID:    "3",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product with ID 3 not found"}`,
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("service unavailable")},
			productID:    "3",
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to retrieve product with ID 3"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.FindByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_List(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - products found",
			mockService:  mockProductService{products: []service.ProductDto{*mouse}},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.ProductDto{*mouse}),
		},
		{
			name:         "Success - no products",
			mockService:  mockProductService{products: []service.ProductDto{}},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("boom")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to fetch products"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			rr := httptest.NewRecorder()

			api.List(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductAPI_Create(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product created",
			mockService:  mockProductService{product: mouse},
			body:         `{"id":2,"name":"Mouse","description":"Wireless","price":"25.50","stock":50}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, mouse),
		},
		{
			name:         "Error - malformed body",
			mockService:  mockProductService{},
			body:         `{"id":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:         "Error - validation",
			mockService:  mockProductService{error: &apperrors.ValidationError{Field: "price", Reason: "must be greater than 0"}},
			body:         `{"id":2,"name":"Mouse","price":0,"stock":50}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"price":"must be greater than 0"}}`,
		},
		{
			name:         "Error - duplicate",
			mockService:  mockProductService{error: &apperrors.DuplicateKeyError{Entity: "product", ID: 2}},
			body:         `{"id":2,"name":"Mouse","price":1,"stock":50}`,
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Product with ID 2 already exists"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			api.Create(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductAPI_Update(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product updated",
			mockService:  mockProductService{product: mouse},
			productID:    "2",
			body:         `{"name":"Mouse","description":"Wireless","price":25.5,"stock":50}`,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, mouse),
		},
		{
			name:         "Error - not found",
			mockService:  mockProductService{error: apperrors.ErrNotFound},
			productID:    "9",
			body:         `{"name":"Mouse","price":1,"stock":1}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product with ID 9 not found"}`,
		},
		{
			name:         "Error - validation",
			mockService:  mockProductService{error: &apperrors.ValidationError{Field: "stock", Reason: "must be greater than or equal to 0"}},
			productID:    "2",
			body:         `{"name":"Mouse","price":1,"stock":-1}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"stock":"must be greater than or equal to 0"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+tc.productID, strings.NewReader(tc.body))
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			api.Update(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductAPI_DeleteByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
	}{
		{name: "Success - product deleted", mockService: mockProductService{}, productID: "1", expectedCode: http.StatusNoContent},
		{name: "Error - not found", mockService: mockProductService{error: apperrors.ErrNotFound}, productID: "1", expectedCode: http.StatusNotFound},
		{name: "Error - invalid id", mockService: mockProductService{}, productID: "x", expectedCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			api.DeleteByID(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}
