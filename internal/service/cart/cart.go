package cart

import (
	"context"
	"fmt"
	"math"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Config struct {
	DeliveryFee float64
}

type Service struct {
	log          serviceLogger
	cfg          Config
	cart         CartStore
	orders       OrderStore
	orderGateway OrderGateway
	snapshots    Snapshots
}

func New(log serviceLogger, cfg Config, cart CartStore, orders OrderStore, orderGateway OrderGateway, snapshots Snapshots) *Service {
	return &Service{
		log:          log,
		cfg:          cfg,
		cart:         cart,
		orders:       orders,
		orderGateway: orderGateway,
		snapshots:    snapshots,
	}
}

// Totals prices the cart: line totals, tip as a percentage of the subtotal
// and the flat delivery fee, each rounded to cents.
func (s *Service) Totals(tipPercent int) (entities.CartTotals, error) {
	if tipPercent < 0 || tipPercent > 100 {
		return entities.CartTotals{}, fmt.Errorf("%w: %d", ErrInvalidTipPercent, tipPercent)
	}
	return s.totalsFor(s.cart.Items(), tipPercent), nil
}

// Checkout turns the cart into a backend order: the order is created, the
// courier instructions are attached, the created order becomes the tracked
// one and the cart is emptied.
func (s *Service) Checkout(ctx context.Context, req entities.CheckoutRequest) (*entities.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.ShopID == "" {
		return nil, ErrMissingShopID
	}
	if req.DeliveryAddress == "" {
		return nil, ErrMissingAddress
	}
	if req.TipPercent < 0 || req.TipPercent > 100 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTipPercent, req.TipPercent)
	}

	totals := s.totalsFor(items, req.TipPercent)

	draft := entities.Order{
		ShopID:          req.ShopID,
		DeliveryAddress: req.DeliveryAddress,
		Price:           totals.Subtotal,
		DeliveryFee:     totals.DeliveryFee,
		Tip:             totals.Tip,
		FinalPrice:      totals.Total,
		Items:           toOrderItems(items),
		Status:          entities.OrderPending,
	}

	created, err := s.orderGateway.CreateOrder(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	if len(req.DeliveryPayload) > 0 {
		if err := s.orderGateway.AttachDeliveryPayload(ctx, created.ID, req.DeliveryPayload); err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
	}

	s.orders.AddCurrentOrderToActiveOrders(*created)
	s.cart.Clear()

	if err := s.snapshots.Save(ctx); err != nil {
		s.log.Warn("failed to persist snapshot after checkout", logger.NewField("error", err))
	}

	return created, nil
}

func (s *Service) totalsFor(items []entities.CartItem, tipPercent int) entities.CartTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}
	subtotal = roundCents(subtotal)

	tip := roundCents(subtotal * float64(tipPercent) / 100)

	return entities.CartTotals{
		Subtotal:    subtotal,
		DeliveryFee: s.cfg.DeliveryFee,
		TipPercent:  tipPercent,
		Tip:         tip,
		Total:       roundCents(subtotal + tip + s.cfg.DeliveryFee),
	}
}

func toOrderItems(items []entities.CartItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, entities.OrderItem{
			ProductID:    item.ID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			TotalPrice:   item.TotalPrice,
		})
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
