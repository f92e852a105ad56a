//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/wire"

	"github.com/Ralet11/pandaApp/internal/connection"
	orderGateway "github.com/Ralet11/pandaApp/internal/gateway/rest/order"
	"github.com/Ralet11/pandaApp/internal/handlers/push/driver_location"
	"github.com/Ralet11/pandaApp/internal/handlers/push/order_state_changed"
	cart_get "github.com/Ralet11/pandaApp/internal/handlers/rest/cart_get"
	checkout_post "github.com/Ralet11/pandaApp/internal/handlers/rest/checkout_post"
	session_login_post "github.com/Ralet11/pandaApp/internal/handlers/rest/session_login_post"
	session_logout_post "github.com/Ralet11/pandaApp/internal/handlers/rest/session_logout_post"
	"github.com/Ralet11/pandaApp/internal/handlers/tasks/order_refresh"
	"github.com/Ralet11/pandaApp/internal/navigation"
	"github.com/Ralet11/pandaApp/internal/pkg/config"
	"github.com/Ralet11/pandaApp/internal/pkg/factory/delivery_eta"
	"github.com/Ralet11/pandaApp/internal/pkg/socket"
	"github.com/Ralet11/pandaApp/internal/repository/snapshot"
	cartService "github.com/Ralet11/pandaApp/internal/service/cart"
	orderService "github.com/Ralet11/pandaApp/internal/service/order"
	sessionService "github.com/Ralet11/pandaApp/internal/service/session"
	cartstore "github.com/Ralet11/pandaApp/internal/store/cart"
	connstore "github.com/Ralet11/pandaApp/internal/store/connection"
	orderstore "github.com/Ralet11/pandaApp/internal/store/order"
	sessionstore "github.com/Ralet11/pandaApp/internal/store/session"

	"github.com/Ralet11/pandaApp/pkg/background"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type (
	RefreshInterval time.Duration
)

type Application struct {
	ServiceCart        ServiceCart
	ServiceSession     ServiceSession
	CartStore          *cartstore.Store
	OrderStore         *orderstore.Store
	Navigator          *navigation.Navigator
	ETAFactory         *delivery_eta.ETAFactory
	Connection         *connection.Manager
	PushOrderStatus    *order_state_changed.Handler
	PushDriverLocation *driver_location.Handler
	BackgroundWorkers  *background.Worker
}

type ServiceCart interface {
	cart_get.Service
	checkout_post.Service
}

type ServiceSession interface {
	session_login_post.Service
	session_logout_post.Service
	Resume(ctx context.Context) error
}

// InitializeApplication для локального HTTP сервиса (cmd/client)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideSessionStore,
		provideCartStore,
		provideOrderStore,
		provideConnectionStore,
		navigation.New,
		delivery_eta.New,

		provideHTTPClient,
		provideOrderGateway,
		provideSnapshotRepository,

		provideOrderService,
		provideCartService,

		provideClientFactory,
		provideConnectionManager,
		provideSessionService,

		providePushOrderStatusHandler,
		providePushDriverLocationHandler,

		provideRefreshInterval,
		provideOrderRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCart), new(*cartService.Service)),
		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
	)
	return &Application{}, nil
}

func provideSessionStore() *sessionstore.Store {
	return sessionstore.New()
}

func provideCartStore() *cartstore.Store {
	return cartstore.New()
}

func provideOrderStore() *orderstore.Store {
	return orderstore.New()
}

func provideConnectionStore() *connstore.Store {
	return connstore.New()
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

func provideOrderGateway(cfg *config.Config, httpClient *http.Client, sessions *sessionstore.Store) *orderGateway.OrderGateway {
	return orderGateway.New(
		orderGateway.Config{BaseURL: cfg.Backend.APIURL},
		httpClient,
		sessions,
	)
}

func provideSnapshotRepository(
	redisClient *redis.Client,
	sessions *sessionstore.Store,
	cart *cartstore.Store,
	orders *orderstore.Store,
) *snapshot.Repository {
	return snapshot.New(redisClient, sessions, cart, orders)
}

func provideOrderService(
	store *orderstore.Store,
	gateway *orderGateway.OrderGateway,
	navigator *navigation.Navigator,
) *orderService.Service {
	return orderService.New(store, gateway, navigator)
}

func provideCartService(
	log logger.Logger,
	cfg *config.Config,
	cart *cartstore.Store,
	orders *orderstore.Store,
	gateway *orderGateway.OrderGateway,
	snapshots *snapshot.Repository,
) *cartService.Service {
	return cartService.New(
		log,
		cartService.Config{DeliveryFee: cfg.Cart.DeliveryFee},
		cart,
		orders,
		gateway,
		snapshots,
	)
}

// provideClientFactory строит новый транспорт на каждое открытие канала:
// после терминального сбоя переподключений старое соединение не реанимируется
func provideClientFactory(log logger.Logger, cfg *config.Config) connection.ClientFactory {
	return func(token string, events socket.Events) connection.SocketClient {
		return socket.New(log, socket.Config{
			URL:   cfg.Backend.SocketURL,
			Token: token,
		}, events)
	}
}

func provideConnectionManager(
	log logger.Logger,
	store *connstore.Store,
	factory connection.ClientFactory,
) *connection.Manager {
	return connection.New(log, store, factory)
}

func provideSessionService(
	log logger.Logger,
	sessions *sessionstore.Store,
	manager *connection.Manager,
	orders *orderService.Service,
	orderStore *orderstore.Store,
	cartStore *cartstore.Store,
	snapshots *snapshot.Repository,
) *sessionService.Service {
	return sessionService.New(log, sessions, manager, orders, orderStore, cartStore, snapshots)
}

func providePushOrderStatusHandler(
	log logger.Logger,
	service *orderService.Service,
	cfg *config.Config,
) *order_state_changed.Handler {
	return order_state_changed.New(log, service, cfg.Push.ProcessTimeout, cfg.Push.FetchTimeout)
}

func providePushDriverLocationHandler(
	log logger.Logger,
	service *orderService.Service,
	cfg *config.Config,
) *driver_location.Handler {
	return driver_location.New(log, service, cfg.Push.ProcessTimeout)
}

func provideRefreshInterval(cfg *config.Config) RefreshInterval {
	return RefreshInterval(cfg.Tasks.OrderRefreshInterval)
}

func provideOrderRefreshTask(
	service *orderService.Service,
	store *orderstore.Store,
	interval RefreshInterval,
) *order_refresh.OrderRefresh {
	return order_refresh.NewOrderRefresh(service, store, time.Duration(interval))
}

func provideTaskList(
	orderRefreshTask *order_refresh.OrderRefresh,
) []background.Task {
	return []background.Task{
		orderRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
