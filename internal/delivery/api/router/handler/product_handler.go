package handler

import (
	"net/http"

	"affiliate/internal/delivery/api/response"
	"affiliate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the catalog endpoints
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Category: optionalQuery(c, "category"),
		Search:   optionalQuery(c, "search"),
		SortBy:   optionalQuery(c, "sortBy"),
		Order:    optionalQuery(c, "order"),
		Limit:    presentQuery(c, "limit"),
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := bindBody(c, &input); err != nil {
		return response.AppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var input usecase.UpdateProductInput
	if err := bindBody(c, &input); err != nil {
		return response.AppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.AppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product removed")
}

// ProductQRCode handles GET /api/products/:id/qr and returns a PNG of the referral link.
func (h *ProductHandler) ProductQRCode(c echo.Context) error {
	png, err := h.productUC.ProductQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.AppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
