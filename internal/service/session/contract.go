//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type SessionStore interface {
	Set(session entities.Session)
	Clear()
	Session() entities.Session
}

type Connection interface {
	Open(ctx context.Context, userID, token string) error
	Close()
}

type Orders interface {
	LoadOrders(ctx context.Context) error
}

type OrderStore interface {
	ClearCurrentOrder()
	SetHistoricOrders(orders []entities.Order)
}

type CartStore interface {
	Clear()
}

type Snapshots interface {
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	Clear(ctx context.Context) error
}
