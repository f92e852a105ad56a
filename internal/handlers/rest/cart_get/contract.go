//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_get_test
package cart_get

import (
	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type CartStore interface {
	Items() []entities.CartItem
}

type Service interface {
	Totals(tipPercent int) (entities.CartTotals, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
