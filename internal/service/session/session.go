package session

import (
	"context"
	"fmt"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Service struct {
	log        serviceLogger
	sessions   SessionStore
	connection Connection
	orders     Orders
	orderStore OrderStore
	cartStore  CartStore
	snapshots  Snapshots
}

func New(
	log serviceLogger,
	sessions SessionStore,
	connection Connection,
	orders Orders,
	orderStore OrderStore,
	cartStore CartStore,
	snapshots Snapshots,
) *Service {
	return &Service{
		log:        log,
		sessions:   sessions,
		connection: connection,
		orders:     orders,
		orderStore: orderStore,
		cartStore:  cartStore,
		snapshots:  snapshots,
	}
}

// Login stores the session, opens the push channel and bootstraps the order
// views. A broken push channel or a failed bootstrap does not fail the
// login; the session is usable without them.
func (s *Service) Login(ctx context.Context, userID, token string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if token == "" {
		return ErrEmptyToken
	}

	s.sessions.Set(entities.Session{UserID: userID, Token: token})

	if err := s.connection.Open(ctx, userID, token); err != nil {
		s.log.Warn("push channel unavailable after login", logger.NewField("error", err))
	}
	if err := s.orders.LoadOrders(ctx); err != nil {
		s.log.Warn("order bootstrap failed after login", logger.NewField("error", err))
	}
	if err := s.snapshots.Save(ctx); err != nil {
		s.log.Warn("failed to persist snapshot after login", logger.NewField("error", err))
	}

	s.log.Info("user logged in", logger.NewField("user_id", userID))
	return nil
}

// Logout closes the push channel and wipes every user-scoped view.
func (s *Service) Logout(ctx context.Context) {
	s.connection.Close()

	s.sessions.Clear()
	s.cartStore.Clear()
	s.orderStore.ClearCurrentOrder()
	s.orderStore.SetHistoricOrders(nil)

	if err := s.snapshots.Clear(ctx); err != nil {
		s.log.Warn("failed to drop persisted snapshot on logout", logger.NewField("error", err))
	}

	s.log.Info("user logged out")
}

// Resume restores the persisted snapshot at startup and, when a session
// survives, reopens the push channel and refreshes the order views.
func (s *Service) Resume(ctx context.Context) error {
	if err := s.snapshots.Load(ctx); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}

	sess := s.sessions.Session()
	if !sess.Authenticated() {
		return nil
	}

	if err := s.connection.Open(ctx, sess.UserID, sess.Token); err != nil {
		s.log.Warn("push channel unavailable after resume", logger.NewField("error", err))
	}
	if err := s.orders.LoadOrders(ctx); err != nil {
		s.log.Warn("order refresh failed after resume", logger.NewField("error", err))
	}

	s.log.Info("session resumed", logger.NewField("user_id", sess.UserID))
	return nil
}
