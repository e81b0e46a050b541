package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// OrderItemDTO is a purchased line with its frozen unit price.
type OrderItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// OrderDTO is the transport shape of a completed checkout.
type OrderDTO struct {
	ID         uuid.UUID         `json:"id"`
	Status     enums.OrderStatus `json:"status"`
	Subtotal   int64             `json:"subtotal"`
	Total      int64             `json:"total"`
	PaymentRef string            `json:"payment_ref"`
	Items      []OrderItemDTO    `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}

// FromModel converts a persisted order for transport.
func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			SKU:       item.SKU,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return &OrderDTO{
		ID:         o.ID,
		Status:     o.Status,
		Subtotal:   o.Subtotal,
		Total:      o.Total,
		PaymentRef: o.PaymentRef,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}

// FromModels converts a page of orders.
func FromModels(items []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
