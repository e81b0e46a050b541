package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/internal/cart"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/orders"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/products"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

// Service turns a cart into a paid order. Payment is simulated; the order
// records a SIM reference instead of a gateway charge.
type Service interface {
	Checkout(ctx context.Context, actor cart.Actor) (*orders.OrderDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type checkoutProductRepository interface {
	ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) (int64, error)
}

type checkoutOrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
}

type activeMembershipChecker interface {
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ServiceParams bundles the dependencies for the checkout flow. The repo
// factories default to the gorm-backed implementations.
type ServiceParams struct {
	TxRunner           txRunner
	CartStore          cartStore
	Memberships        activeMembershipChecker
	ProductRepoFactory func(tx *gorm.DB) checkoutProductRepository
	OrderRepoFactory   func(tx *gorm.DB) checkoutOrderRepository
}

type service struct {
	tx          txRunner
	carts       cartStore
	members     activeMembershipChecker
	productRepo func(tx *gorm.DB) checkoutProductRepository
	orderRepo   func(tx *gorm.DB) checkoutOrderRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.TxRunner == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.CartStore == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if params.Memberships == nil {
		return nil, fmt.Errorf("membership checker is required")
	}
	productRepo := params.ProductRepoFactory
	if productRepo == nil {
		productRepo = func(tx *gorm.DB) checkoutProductRepository {
			return products.NewRepository(tx)
		}
	}
	orderRepo := params.OrderRepoFactory
	if orderRepo == nil {
		orderRepo = func(tx *gorm.DB) checkoutOrderRepository {
			return orders.NewRepository(tx)
		}
	}
	return &service{
		tx:          params.TxRunner,
		carts:       params.CartStore,
		members:     params.Memberships,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}, nil
}

func (s *service) Checkout(ctx context.Context, actor cart.Actor) (*orders.OrderDTO, error) {
	if actor.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user identity")
	}

	userCart, err := s.carts.Load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if userCart.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	memberPricing, err := s.memberEligible(ctx, actor)
	if err != nil {
		return nil, err
	}

	var created *models.Order
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		productRepo := s.productRepo(tx)

		ids := make([]uuid.UUID, 0, len(userCart.Lines))
		for _, line := range userCart.Lines {
			ids = append(ids, line.ProductID)
		}
		catalog, err := productRepo.ByIDs(ctx, ids)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
		}

		order := &models.Order{
			UserID:     actor.ID,
			Status:     enums.OrderStatusPaid,
			PaymentRef: fmt.Sprintf("SIM-%s", uuid.NewString()),
		}
		for _, line := range userCart.Lines {
			product, ok := catalog[line.ProductID]
			if !ok || !product.IsActive {
				return pkgerrors.New(pkgerrors.CodeValidation, "cart contains unavailable products").
					WithDetails(map[string]string{line.ProductID.String(): "no longer available"})
			}

			rows, err := productRepo.DecrementStock(ctx, product.ID, line.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reserve stock")
			}
			if rows == 0 {
				return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("insufficient stock for %s", product.Name))
			}

			unit := product.Price
			if memberPricing {
				unit = product.MemberPrice
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				SKU:       product.SKU,
				UnitPrice: unit,
				Quantity:  line.Quantity,
			})
			order.Subtotal += unit * int64(line.Quantity)
		}
		order.Total = order.Subtotal

		created, err = s.orderRepo(tx).Create(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, actor.ID); err != nil {
		return nil, err
	}
	return orders.FromModel(created), nil
}

func (s *service) memberEligible(ctx context.Context, actor cart.Actor) (bool, error) {
	if actor.Role != "" && actor.Role != enums.UserRoleUser {
		return true, nil
	}
	active, err := s.members.HasActive(ctx, actor.ID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check membership")
	}
	return active, nil
}
