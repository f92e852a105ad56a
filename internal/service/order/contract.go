//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/Ralet11/pandaApp/internal/entities"
)

type Store interface {
	Knows(orderID string) bool
	UpdateOrderState(orderID string, status entities.OrderStatusType, seq int64) bool
	UpdateOrderLocation(pos entities.CourierPosition)
	CurrentOrder() entities.Order
	AddHistoricOrder(order entities.Order)
	SetHistoricOrders(orders []entities.Order)
	SetCurrentOrderByID(orderID string) bool
	Epoch() uint64
}

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetOrderTracking(ctx context.Context, orderID string) (*entities.Order, error)
	GetOrders(ctx context.Context) ([]entities.Order, error)
}

type Navigator interface {
	NavigateToOrderTracking(orderID string) bool
}
