//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_item_delete_test
package cart_item_delete

import (
	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type CartStore interface {
	RemoveItem(itemID string)
	Items() []entities.CartItem
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
