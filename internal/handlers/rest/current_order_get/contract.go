//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=current_order_get_test
package current_order_get

import (
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type OrderStore interface {
	CurrentOrder() entities.Order
}

type ETAFactory interface {
	CalculateETA(courier entities.CourierPosition, destLat, destLng float64) time.Duration
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
