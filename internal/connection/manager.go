package connection

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ralet11/pandaApp/internal/pkg/socket"
	connstore "github.com/Ralet11/pandaApp/internal/store/connection"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

const joinRoomEvent = "joinRoom"

type managerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type registration struct {
	event   string
	handler socket.Handler
}

// Manager owns the single push channel of the process. It opens a transport
// for the authenticated user, joins the user room on every (re)connect,
// mirrors lifecycle transitions into the connection store and re-binds the
// registered event handlers whenever the channel is reopened.
type Manager struct {
	log       managerLogger
	store     *connstore.Store
	newClient ClientFactory

	mu       sync.Mutex
	client   SocketClient
	userID   string
	nextID   uint64
	handlers map[uint64]registration
	live     map[uint64]*socket.Subscription
}

func New(log managerLogger, store *connstore.Store, newClient ClientFactory) *Manager {
	return &Manager{
		log:       log.With(logger.NewField("component", "connection_manager")),
		store:     store,
		newClient: newClient,
		handlers:  make(map[uint64]registration),
		live:      make(map[uint64]*socket.Subscription),
	}
}

// Open establishes the push channel for the given user. Opening an already
// open channel is a no-op.
func (m *Manager) Open(ctx context.Context, userID, token string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	m.mu.Lock()
	if m.client != nil {
		m.mu.Unlock()
		m.log.Debug("push channel already open")
		return nil
	}

	m.store.Connecting(userID)

	client := m.newClient(token, m)
	m.client = client
	m.userID = userID
	for id, reg := range m.handlers {
		m.live[id] = client.Subscribe(reg.event, reg.handler)
	}
	m.mu.Unlock()

	if err := client.Connect(ctx); err != nil {
		m.dropClient(client)
		return fmt.Errorf("failed to open push channel: %w", err)
	}
	return nil
}

// Close tears the push channel down. Idempotent; registered handlers stay
// and are re-bound on the next Open.
func (m *Manager) Close() {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.userID = ""
	m.live = make(map[uint64]*socket.Subscription)
	m.mu.Unlock()

	if client != nil {
		if err := client.Close(); err != nil {
			m.log.Warn("failed to close push channel", logger.NewField("error", err))
		}
	}
	m.store.Closed()
}

// Subscribe registers a push event handler. The registration survives
// channel reopens until its handle is cancelled.
func (m *Manager) Subscribe(event string, h socket.Handler) *socket.Subscription {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.handlers[id] = registration{event: event, handler: h}
	if m.client != nil {
		m.live[id] = m.client.Subscribe(event, h)
	}
	m.mu.Unlock()

	return socket.NewSubscription(func() {
		m.mu.Lock()
		delete(m.handlers, id)
		sub := m.live[id]
		delete(m.live, id)
		m.mu.Unlock()

		if sub != nil {
			sub.Cancel()
		}
	})
}

// Connected implements socket.Events.
func (m *Manager) Connected() {
	m.mu.Lock()
	client := m.client
	userID := m.userID
	m.mu.Unlock()

	m.store.Established()

	if client == nil {
		return
	}
	if err := client.Emit(joinRoomEvent, userID); err != nil {
		m.log.Error("failed to join user room", logger.NewField("error", err))
		return
	}
	m.log.Info("joined user room", logger.NewField("user_id", userID))
}

// Disconnected implements socket.Events. The transport keeps redialing on
// its own; the store only mirrors the break.
func (m *Manager) Disconnected(reason string) {
	m.store.Failed(reason)
	m.log.Warn("push channel lost", logger.NewField("reason", reason))
}

// ConnectError implements socket.Events. The signal is terminal for the
// current transport: the client is dropped so a later Open starts fresh.
func (m *Manager) ConnectError(message string) {
	m.mu.Lock()
	m.client = nil
	m.live = make(map[uint64]*socket.Subscription)
	m.mu.Unlock()

	m.store.Failed(message)
	m.log.Error("push channel gave up", logger.NewField("error", message))
}

func (m *Manager) dropClient(client SocketClient) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == client {
		m.client = nil
		m.live = make(map[uint64]*socket.Subscription)
	}
}
