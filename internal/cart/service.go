package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

// Actor identifies the cart owner for pricing decisions.
type Actor struct {
	ID   uuid.UUID
	Role enums.UserRole
}

// ItemDTO is a priced cart line.
type ItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"line_total"`
	Image     *string   `json:"image,omitempty"`
}

// CartDTO is the quoted cart returned to the client.
type CartDTO struct {
	Items         []ItemDTO `json:"items"`
	Subtotal      int64     `json:"subtotal"`
	MemberPricing bool      `json:"member_pricing"`
}

// Service exposes the cart operations.
type Service interface {
	View(ctx context.Context, actor Actor) (*CartDTO, error)
	Add(ctx context.Context, actor Actor, productID uuid.UUID, qty int) (*CartDTO, error)
	SetQuantity(ctx context.Context, actor Actor, productID uuid.UUID, qty int) (*CartDTO, error)
	Remove(ctx context.Context, actor Actor, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, actor Actor) error
}

type cartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, userID uuid.UUID, cart *Cart) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type catalogLoader interface {
	ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error)
}

type activeMembershipChecker interface {
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

type service struct {
	store   cartStore
	catalog catalogLoader
	members activeMembershipChecker
}

// ServiceParams bundles the dependencies for the cart service.
type ServiceParams struct {
	Store       cartStore
	Catalog     catalogLoader
	Memberships activeMembershipChecker
}

func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog loader is required")
	}
	if params.Memberships == nil {
		return nil, fmt.Errorf("membership checker is required")
	}
	return &service{
		store:   params.Store,
		catalog: params.Catalog,
		members: params.Memberships,
	}, nil
}

func (s *service) View(ctx context.Context, actor Actor) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.quote(ctx, actor, cart)
}

func (s *service) Add(ctx context.Context, actor Actor, productID uuid.UUID, qty int) (*CartDTO, error) {
	if qty < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if err := s.checkAvailable(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	cart.Add(productID, qty)
	if err := s.store.Save(ctx, actor.ID, cart); err != nil {
		return nil, err
	}
	return s.quote(ctx, actor, cart)
}

func (s *service) SetQuantity(ctx context.Context, actor Actor, productID uuid.UUID, qty int) (*CartDTO, error) {
	if qty < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}

	cart, err := s.store.Load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if !cart.SetQuantity(productID, qty) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
	}
	if err := s.store.Save(ctx, actor.ID, cart); err != nil {
		return nil, err
	}
	return s.quote(ctx, actor, cart)
}

func (s *service) Remove(ctx context.Context, actor Actor, productID uuid.UUID) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(productID) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
	}
	if err := s.store.Save(ctx, actor.ID, cart); err != nil {
		return nil, err
	}
	return s.quote(ctx, actor, cart)
}

func (s *service) Clear(ctx context.Context, actor Actor) error {
	return s.store.Clear(ctx, actor.ID)
}

func (s *service) checkAvailable(ctx context.Context, productID uuid.UUID) error {
	found, err := s.catalog.ByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	product, ok := found[productID]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if !product.IsActive {
		return pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}
	return nil
}

// quote prices the cart against the catalog. Lines whose product has left
// the catalog are omitted from the quote but kept in the stored cart.
func (s *service) quote(ctx context.Context, actor Actor, cart *Cart) (*CartDTO, error) {
	memberPricing, err := s.memberEligible(ctx, actor)
	if err != nil {
		return nil, err
	}

	dto := &CartDTO{Items: []ItemDTO{}, MemberPricing: memberPricing}
	if cart.IsEmpty() {
		return dto, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ProductID)
	}
	found, err := s.catalog.ByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}

	for _, line := range cart.Lines {
		product, ok := found[line.ProductID]
		if !ok || !product.IsActive {
			continue
		}
		unit := product.Price
		if memberPricing {
			unit = product.MemberPrice
		}
		item := ItemDTO{
			ProductID: product.ID,
			Name:      product.Name,
			SKU:       product.SKU,
			UnitPrice: unit,
			Quantity:  line.Quantity,
			LineTotal: unit * int64(line.Quantity),
		}
		if len(product.Images) > 0 {
			item.Image = &product.Images[0]
		}
		dto.Items = append(dto.Items, item)
		dto.Subtotal += item.LineTotal
	}
	return dto, nil
}

func (s *service) memberEligible(ctx context.Context, actor Actor) (bool, error) {
	if actor.Role != "" && actor.Role != enums.UserRoleUser {
		return true, nil
	}
	active, err := s.members.HasActive(ctx, actor.ID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check membership")
	}
	return active, nil
}
