package order_refresh

import (
	"context"
	"errors"
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
	orderservice "github.com/Ralet11/pandaApp/internal/service/order"
)

type Service interface {
	RefreshCurrentOrder(ctx context.Context) error
}

type Store interface {
	CurrentOrder() entities.Order
}

// OrderRefresh periodically re-fetches the tracked order while it is out
// for delivery, covering gaps when the push channel is down. Outside of
// shipping the tick is a no-op.
type OrderRefresh struct {
	service  Service
	store    Store
	interval time.Duration
}

func NewOrderRefresh(service Service, store Store, interval time.Duration) *OrderRefresh {
	return &OrderRefresh{
		service:  service,
		store:    store,
		interval: interval,
	}
}

// TTL returns the interval between task runs.
func (o *OrderRefresh) TTL() time.Duration {
	return o.interval
}

// Do executes one refresh round.
func (o *OrderRefresh) Do(ctx context.Context) error {
	if o.store.CurrentOrder().Status != entities.OrderShipping {
		return nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	err := o.service.RefreshCurrentOrder(ctxWithTimeout)
	switch {
	case errors.Is(err, orderservice.ErrNoCurrentOrder),
		errors.Is(err, orderservice.ErrStaleRefresh):
		// nothing to refresh right now
		return nil
	default:
		return err
	}
}

// Info returns a readable task description for logging and debugging.
func (o *OrderRefresh) Info() string {
	return "current order refresh"
}
