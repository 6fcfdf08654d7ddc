package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	mockUsecase "affiliate/internal/mocks/usecase"
	"affiliate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})

	e := newTestEcho()
	e.GET("/api/products", h.ListProducts)
	e.POST("/api/products", h.CreateProduct)
	e.GET("/api/products/:id", h.GetProduct)
	e.PUT("/api/products/:id", h.UpdateProduct)
	e.DELETE("/api/products/:id", h.DeleteProduct)
	e.GET("/api/products/:id/qr", h.ProductQRCode)

	return e, productUC
}

func TestProductHandler_ListProducts(t *testing.T) {
	e, productUC := newProductTestServer(t)

	productUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(in *usecase.ListProductsInput) bool {
			return in.Category != nil && *in.Category == "gadgets" &&
				in.SortBy != nil && *in.SortBy == "price" &&
				in.Limit != nil && *in.Limit == "5" &&
				in.Search == nil && in.Order == nil
		})).
		Return([]*entity.Product{{Title: "Phone", Category: entity.CategoryGadgets}}, nil)

	rec := serve(e, http.MethodGet, "/api/products?category=gadgets&sortBy=price&limit=5&limit=9&search=", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Phone", got[0]["title"])
}

func TestProductHandler_ListProducts_ValidationFailed(t *testing.T) {
	e, productUC := newProductTestServer(t)

	verr := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)
	verr.Add("limit must be a positive integer")
	verr.Add("sortBy must be one of: createdAt, price, commissionPercent, clicks, title")
	productUC.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, verr)

	rec := serve(e, http.MethodGet, "/api/products?limit=0&sortBy=rating", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Len(t, info.Details, 2)
}

func TestProductHandler_ListProducts_EmptyLimitIsSupplied(t *testing.T) {
	e, productUC := newProductTestServer(t)

	productUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(in *usecase.ListProductsInput) bool {
			return in.Limit != nil && *in.Limit == "" && in.Category == nil
		})).
		Return(nil, verrWith("limit must be a positive integer"))

	rec := serve(e, http.MethodGet, "/api/products?limit=&category=", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"limit must be a positive integer"}, decodeError(t, rec).Details)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	e, productUC := newProductTestServer(t)

	created := &entity.Product{ID: uuid.New(), Title: "Bottle", ReferralCode: "Ab3dE6gH"}
	productUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
			return in.Title != nil && *in.Title == "Bottle" && in.Price != nil && *in.Price == 0 && in.Description == nil
		})).
		Return(created, nil)

	rec := serve(e, http.MethodPost, "/api/products", `{"title":"Bottle","price":0}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"referralCode":"Ab3dE6gH"`)
	assert.Contains(t, rec.Body.String(), `"clicks":0`)
}

func TestProductHandler_CreateProduct_BadBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		problem string
	}{
		{name: "malformed json", body: `{"title":`, problem: "request body must be a valid JSON object"},
		{name: "wrong type", body: `{"price":"cheap"}`, problem: "price has an invalid type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newProductTestServer(t)

			rec := serve(e, http.MethodPost, "/api/products", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", info.Code)
			assert.Equal(t, []any{tt.problem}, info.Details)
		})
	}
}

func TestProductHandler_CreateProduct_MissingFields(t *testing.T) {
	e, productUC := newProductTestServer(t)

	verr := domainerrors.NewValidationError(domainerrors.ErrMissingFields)
	verr.Add("title is required")
	productUC.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil, verr)

	rec := serve(e, http.MethodPost, "/api/products", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "Please fill in all required fields", info.Message)
	assert.Equal(t, []any{"title is required"}, info.Details)
}

func TestProductHandler_GetUpdateDelete(t *testing.T) {
	e, productUC := newProductTestServer(t)
	id := uuid.New()

	productUC.EXPECT().GetProduct(mock.Anything, id.String()).Return(&entity.Product{ID: id, Title: "Mat"}, nil)
	productUC.EXPECT().
		UpdateProduct(mock.Anything, id.String(), mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.Title != nil && *in.Title == "" && in.CommissionPercent != nil && *in.CommissionPercent == 12
		})).
		Return(&entity.Product{ID: id, Title: "Mat", CommissionPercent: 12}, nil)
	productUC.EXPECT().DeleteProduct(mock.Anything, id.String()).Return(nil)

	rec := serve(e, http.MethodGet, "/api/products/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodPut, "/api/products/"+id.String(), `{"title":"","commissionPercent":12}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Mat"`)

	rec = serve(e, http.MethodDelete, "/api/products/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Product removed"}`, rec.Body.String())
}

func TestProductHandler_NotFound(t *testing.T) {
	e, productUC := newProductTestServer(t)

	productUC.EXPECT().DeleteProduct(mock.Anything, "missing").Return(domainerrors.ErrProductNotFound)

	rec := serve(e, http.MethodDelete, "/api/products/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "PRODUCT_NOT_FOUND", info.Code)
	assert.Equal(t, "Product not found", info.Message)
}

func TestProductHandler_StoreFailureIsOpaque(t *testing.T) {
	e, productUC := newProductTestServer(t)

	productUC.EXPECT().
		ListProducts(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("socket closed"), "failed to list products"))

	rec := serve(e, http.MethodGet, "/api/products", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server Error", decodeError(t, rec).Message)
	assert.NotContains(t, rec.Body.String(), "socket")
}

func TestProductHandler_ProductQRCode(t *testing.T) {
	e, productUC := newProductTestServer(t)
	id := uuid.New()

	png := []byte{0x89, 'P', 'N', 'G'}
	productUC.EXPECT().ProductQRCode(mock.Anything, id.String()).Return(png, nil)

	rec := serve(e, http.MethodGet, "/api/products/"+id.String()+"/qr", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func verrWith(problems ...string) error {
	verr := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)
	for _, p := range problems {
		verr.Add(p)
	}

	return verr
}
