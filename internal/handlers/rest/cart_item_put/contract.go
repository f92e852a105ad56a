//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_item_put_test
package cart_item_put

import (
	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type CartStore interface {
	UpdateItemQuantity(itemID string, quantity int) bool
	Items() []entities.CartItem
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
