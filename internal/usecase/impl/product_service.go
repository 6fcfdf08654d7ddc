// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "affiliate/internal/delivery/context"
	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/domain/repository"
	"affiliate/internal/domain/service"
	"affiliate/internal/usecase"
	"affiliate/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	codeGen     service.ReferralCodeGenerator
	qrService   service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	CodeGen     service.ReferralCodeGenerator
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		codeGen:     params.CodeGen,
		qrService:   params.QRService,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts validates the query and returns the matching products.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	filter, err := buildProductFilter(input)
	if err != nil {
		srv.log(ctx).Debug("Rejected product listing query", slog.Any("error", err))

		return nil, err
	}

	if filter.Limit > repository.MaxListLimit {
		filter.Limit = repository.MaxListLimit
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	if products == nil {
		products = []*entity.Product{}
	}

	return products, nil
}

// GetProduct returns a single product.
func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	return srv.findProduct(ctx, productID)
}

// CreateProduct validates the input, assigns a referral code and stores the product.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateCreateProduct(input); err != nil {
		srv.log(ctx).Debug("Rejected product creation", slog.Any("error", err))

		return nil, err
	}

	code, err := srv.codeGen.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate referral code", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate referral code")
	}

	category, _ := entity.ParseCategory(*input.Category)
	now := srv.now().UTC()
	product := &entity.Product{
		ID:                uuid.New(),
		Title:             strings.TrimSpace(*input.Title),
		Description:       strings.TrimSpace(*input.Description),
		Category:          category,
		Price:             *input.Price,
		CommissionPercent: *input.CommissionPercent,
		ReferralCode:      code,
		OriginalURL:       strings.TrimSpace(*input.OriginalURL),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("referralCode", code), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("referralCode", code))

	return product, nil
}

// UpdateProduct applies the supplied fields. Blank strings leave required text fields unchanged,
// numeric fields are applied whenever present.
func (srv *productService) UpdateProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	if err := validateUpdateProduct(input); err != nil {
		srv.log(ctx).Debug("Rejected product update", slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	applyProductUpdate(product, input)
	product.UpdatedAt = srv.now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product deleted during update")
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return product, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input == nil {
		return
	}

	if title := util.TrimmedOrEmpty(input.Title); title != "" {
		product.Title = title
	}
	if description := util.TrimmedOrEmpty(input.Description); description != "" {
		product.Description = description
	}
	if raw := util.TrimmedOrEmpty(input.Category); raw != "" {
		if category, ok := entity.ParseCategory(raw); ok {
			product.Category = category
		}
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CommissionPercent != nil {
		product.CommissionPercent = *input.CommissionPercent
	}
	if originalURL := util.TrimmedOrEmpty(input.OriginalURL); originalURL != "" {
		product.OriginalURL = originalURL
	}
}

// DeleteProduct removes a product. Its click records stay in the click log.
func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := parseProductID(id)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product removed", slog.Any("productID", productID))

	return nil
}

// ProductQRCode renders the referral link of a product as a PNG image.
func (srv *productService) ProductQRCode(ctx context.Context, id string) ([]byte, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateReferralQR(product.ReferralCode)
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (srv *productService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}
		srv.log(ctx).Error("Failed to find product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return product, nil
}

// parseProductID treats a malformed identifier as an unknown product.
func parseProductID(id string) (uuid.UUID, error) {
	productID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrProductNotFound, "malformed product id %q", id)
	}

	return productID, nil
}
