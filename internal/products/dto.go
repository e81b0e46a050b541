package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// CreateProductRequest is the admin payload for adding a catalog entry.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	SKU         string   `json:"sku,omitempty"`
	Price       int64    `json:"price"`
	MemberPrice *int64   `json:"member_price,omitempty"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// CatalogFilters narrows the public catalog view.
type CatalogFilters struct {
	Category string
}

// ProductDTO is the transport shape of a catalog entry.
type ProductDTO struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    enums.ProductCategory `json:"category"`
	SKU         string                `json:"sku"`
	Price       int64                 `json:"price"`
	MemberPrice int64                 `json:"member_price"`
	Images      []string              `json:"images"`
	Stock       int                   `json:"stock"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func fromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		SKU:         p.SKU,
		Price:       p.Price,
		MemberPrice: p.MemberPrice,
		Images:      p.Images,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromModels(items []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(items))
	for i := range items {
		out = append(out, *fromModel(&items[i]))
	}
	return out
}
