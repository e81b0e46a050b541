package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

const skuPrefix = "PGTC"

// Service exposes the merch catalog operations.
type Service interface {
	Catalog(ctx context.Context, filters CatalogFilters) ([]ProductDTO, error)
	AdminList(ctx context.Context) ([]ProductDTO, error)
	Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error)
}

type productRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	Catalog(ctx context.Context, category *string) ([]models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
}

type service struct {
	repo productRepository
}

// ServiceParams bundles the dependencies for the catalog service.
type ServiceParams struct {
	Repo productRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Catalog(ctx context.Context, filters CatalogFilters) ([]ProductDTO, error) {
	var category *string
	if trimmed := strings.TrimSpace(filters.Category); trimmed != "" {
		parsed, err := enums.ParseProductCategory(trimmed)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product category")
		}
		value := parsed.String()
		category = &value
	}

	items, err := s.repo.Catalog(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	return fromModels(items), nil
}

func (s *service) AdminList(ctx context.Context) ([]ProductDTO, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return fromModels(items), nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	category, err := validateProduct(req)
	if err != nil {
		return nil, err
	}

	sku := strings.ToUpper(strings.TrimSpace(req.SKU))
	if sku == "" {
		sku = generateSKU()
	} else if _, err := s.repo.FindBySKU(ctx, sku); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "sku already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check sku")
	}

	memberPrice := req.Price
	if req.MemberPrice != nil {
		memberPrice = *req.MemberPrice
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		SKU:         sku,
		Price:       req.Price,
		MemberPrice: memberPrice,
		Images:      req.Images,
		Stock:       req.Stock,
		IsActive:    isActive,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return fromModel(created), nil
}

func validateProduct(req CreateProductRequest) (enums.ProductCategory, error) {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		fields["name"] = "must be at least 2 characters"
	}
	if len(strings.TrimSpace(req.Description)) < 10 {
		fields["description"] = "must be at least 10 characters"
	}
	category, err := enums.ParseProductCategory(strings.TrimSpace(req.Category))
	if err != nil {
		fields["category"] = "must be a valid product category"
	}
	if req.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if req.MemberPrice != nil && (*req.MemberPrice < 0 || *req.MemberPrice > req.Price) {
		fields["member_price"] = "must be between 0 and the regular price"
	}
	if req.Stock < 0 {
		fields["stock"] = "must not be negative"
	}

	if len(fields) > 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return category, nil
}

func generateSKU() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", skuPrefix, suffix[:8])
}
