package order

import (
	"context"
	"fmt"

	"github.com/Ralet11/pandaApp/internal/entities"
)

// Result describes how a status event was applied.
type Result struct {
	// Known is false when the event referenced an order the store has never
	// seen; the caller is expected to fetch the full record separately.
	Known bool
	// Navigated reports whether the tracking screen was opened.
	Navigated bool
}

type Service struct {
	store        Store
	orderGateway OrderGateway
	navigator    Navigator
}

func New(store Store, orderGateway OrderGateway, navigator Navigator) *Service {
	return &Service{
		store:        store,
		orderGateway: orderGateway,
		navigator:    navigator,
	}
}

// ProcessOrderStatusChange applies an inbound status event to every view
// holding the order, then opens the tracking screen for it. Navigation is
// attempted on every applied event and is guarded only by navigator
// readiness.
func (s *Service) ProcessOrderStatusChange(_ context.Context, event entities.StatusEvent) (*Result, error) {
	if event.OrderID == "" {
		return nil, ErrMissingOrderID
	}
	if !event.Status.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, event.Status)
	}

	known := s.store.Knows(event.OrderID)

	if !s.store.UpdateOrderState(event.OrderID, event.Status, event.Seq) {
		return nil, fmt.Errorf("%w: order %s seq %d", ErrStaleEvent, event.OrderID, event.Seq)
	}

	return &Result{
		Known:     known,
		Navigated: s.navigator.NavigateToOrderTracking(event.OrderID),
	}, nil
}

// FetchAndStoreOrder pulls the full order record from the backend and
// upserts it into the historic view. Used when an event references an order
// the store does not hold yet.
func (s *Service) FetchAndStoreOrder(ctx context.Context, orderID string) error {
	order, err := s.orderGateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("fetch order %s: %w", orderID, err)
	}

	s.store.AddHistoricOrder(*order)
	return nil
}

// ProcessDriverLocation merges a courier position into the tracked order.
// Events for any other order are discarded.
func (s *Service) ProcessDriverLocation(_ context.Context, event entities.LocationEvent) error {
	if event.OrderID == "" {
		return ErrMissingOrderID
	}

	if s.store.CurrentOrder().ID != event.OrderID {
		return fmt.Errorf("%w: got %s", ErrOrderMismatch, event.OrderID)
	}

	s.store.UpdateOrderLocation(event.Position)
	return nil
}

// RefreshCurrentOrder re-fetches the tracked order. The store epoch is read
// before the round trip; if the tracked order changed underneath, the stale
// result is dropped.
func (s *Service) RefreshCurrentOrder(ctx context.Context) error {
	current := s.store.CurrentOrder()
	if current.ID == "" {
		return ErrNoCurrentOrder
	}

	epoch := s.store.Epoch()

	order, err := s.orderGateway.GetOrderTracking(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("refresh order %s: %w", current.ID, err)
	}

	if s.store.Epoch() != epoch {
		return fmt.Errorf("%w: order %s", ErrStaleRefresh, current.ID)
	}

	s.store.AddHistoricOrder(*order)
	s.store.SetCurrentOrderByID(order.ID)
	return nil
}

// LoadOrders bootstraps the historic and active views from the backend.
func (s *Service) LoadOrders(ctx context.Context) error {
	orders, err := s.orderGateway.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	s.store.SetHistoricOrders(orders)
	return nil
}
