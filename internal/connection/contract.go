//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connection_test
package connection

import (
	"context"

	"github.com/Ralet11/pandaApp/internal/pkg/socket"
)

// SocketClient is the transport the manager drives. One client per open
// channel; a closed client is never reused.
type SocketClient interface {
	Connect(ctx context.Context) error
	Emit(event string, data interface{}) error
	Subscribe(event string, h socket.Handler) *socket.Subscription
	Close() error
}

// ClientFactory builds a transport bound to the given token, reporting
// lifecycle transitions to events.
type ClientFactory func(token string, events socket.Events) SocketClient
