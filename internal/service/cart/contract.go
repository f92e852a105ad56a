//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import (
	"context"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}

type CartStore interface {
	Items() []entities.CartItem
	Clear()
}

type OrderStore interface {
	AddCurrentOrderToActiveOrders(order entities.Order)
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, draft entities.Order) (*entities.Order, error)
	AttachDeliveryPayload(ctx context.Context, orderID string, payload map[string]interface{}) error
}

type Snapshots interface {
	Save(ctx context.Context) error
}
