package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	cartstore "github.com/Ralet11/pandaApp/internal/store/cart"
	orderstore "github.com/Ralet11/pandaApp/internal/store/order"
	sessionstore "github.com/Ralet11/pandaApp/internal/store/session"
)

const (
	keySession = "panda:session"
	keyCart    = "panda:cart"
	keyOrders  = "panda:orders"
)

// Repository persists the user-scoped store state in the local kv store so
// a restarted process starts from where the user left off. Snapshots carry
// no TTL; logout drops them explicitly.
type Repository struct {
	client   *redis.Client
	sessions *sessionstore.Store
	cart     *cartstore.Store
	orders   *orderstore.Store
}

func New(client *redis.Client, sessions *sessionstore.Store, cart *cartstore.Store, orders *orderstore.Store) *Repository {
	return &Repository{
		client:   client,
		sessions: sessions,
		cart:     cart,
		orders:   orders,
	}
}

// Save writes all three snapshots in one round trip.
func (r *Repository) Save(ctx context.Context) error {
	sessionData, err := json.Marshal(toSessionDB(r.sessions.Session()))
	if err != nil {
		return fmt.Errorf("snapshot save, marshal session: %w", err)
	}
	cartData, err := json.Marshal(toCartDB(r.cart.Items()))
	if err != nil {
		return fmt.Errorf("snapshot save, marshal cart: %w", err)
	}
	ordersData, err := json.Marshal(toOrderSnapshotDB(r.orders.Snapshot()))
	if err != nil {
		return fmt.Errorf("snapshot save, marshal orders: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, keySession, sessionData, 0)
	pipe.Set(ctx, keyCart, cartData, 0)
	pipe.Set(ctx, keyOrders, ordersData, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

// Load restores whatever snapshots exist; missing keys are not an error.
func (r *Repository) Load(ctx context.Context) error {
	raw, err := r.client.Get(ctx, keySession).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return fmt.Errorf("snapshot load, session: %w", err)
	default:
		var db sessionDB
		if err := json.Unmarshal(raw, &db); err != nil {
			return fmt.Errorf("snapshot load, decode session: %w", err)
		}
		r.sessions.Set(toSessionDomain(db))
	}

	raw, err = r.client.Get(ctx, keyCart).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return fmt.Errorf("snapshot load, cart: %w", err)
	default:
		var db []cartItemDB
		if err := json.Unmarshal(raw, &db); err != nil {
			return fmt.Errorf("snapshot load, decode cart: %w", err)
		}
		r.cart.Restore(toCartDomain(db))
	}

	raw, err = r.client.Get(ctx, keyOrders).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return fmt.Errorf("snapshot load, orders: %w", err)
	default:
		var db orderSnapshotDB
		if err := json.Unmarshal(raw, &db); err != nil {
			return fmt.Errorf("snapshot load, decode orders: %w", err)
		}
		r.orders.Restore(toOrderSnapshotDomain(db))
	}

	return nil
}

// Clear drops every persisted snapshot.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, keySession, keyCart, keyOrders).Err(); err != nil {
		return fmt.Errorf("snapshot clear: %w", err)
	}
	return nil
}
