//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_state_changed_test
package order_state_changed

import (
	"context"

	"github.com/Ralet11/pandaApp/internal/entities"
	orderservice "github.com/Ralet11/pandaApp/internal/service/order"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessOrderStatusChange(ctx context.Context, event entities.StatusEvent) (*orderservice.Result, error)
	FetchAndStoreOrder(ctx context.Context, orderID string) error
}
