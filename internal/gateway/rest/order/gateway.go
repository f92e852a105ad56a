package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
	retrierconfig "github.com/Ralet11/pandaApp/pkg/retrier"
	"github.com/Ralet11/pandaApp/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-api"

	maxErrorBodyBytes = 4 << 10
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL string
}

// OrderGateway talks to the backend order API over JSON/HTTP. Throttled and
// failed-upstream responses are retried with exponential backoff; client
// errors are permanent.
type OrderGateway struct {
	cfg      Config
	client   doer
	sessions sessionSource
	retrier  retrier
}

func New(cfg Config, client doer, sessions sessionSource) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &OrderGateway{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (o *OrderGateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp orderDTO

	err := o.executeWithMetrics(ctx, "GetOrderById", func(ctx context.Context) error {
		return o.doJSON(ctx, http.MethodGet, "/order/"+orderID, nil, &resp)
	})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, err)
	}

	return toDomain(&resp), nil
}

// GetOrderTracking returns the live tracking record of an order: the same
// shape as GetOrderByID but served from the tracking endpoint, which also
// carries the courier position while the order is out for delivery.
func (o *OrderGateway) GetOrderTracking(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp orderDTO

	err := o.executeWithMetrics(ctx, "GetOrderTracking", func(ctx context.Context) error {
		return o.doJSON(ctx, http.MethodGet, "/orders/"+orderID, nil, &resp)
	})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("gateway order, get order tracking: %s: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("gateway order, get order tracking: %s: %w", orderID, err)
	}

	return toDomain(&resp), nil
}

// GetOrders returns every order of the authenticated user, newest first.
func (o *OrderGateway) GetOrders(ctx context.Context) ([]entities.Order, error) {
	var resp ordersResponseDTO

	err := o.executeWithMetrics(ctx, "GetOrders", func(ctx context.Context) error {
		return o.doJSON(ctx, http.MethodGet, "/orders", nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, get orders: %w", err)
	}

	return toDomainList(resp), nil
}

func (o *OrderGateway) CreateOrder(ctx context.Context, draft entities.Order) (*entities.Order, error) {
	req := toCreateRequest(draft)

	var resp orderDTO

	err := o.executeWithMetrics(ctx, "CreateOrder", func(ctx context.Context) error {
		return o.doJSON(ctx, http.MethodPost, "/orders", req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, create order: %w", err)
	}

	return toDomain(&resp), nil
}

// AttachDeliveryPayload hands the courier instructions of a freshly created
// order to the backend.
func (o *OrderGateway) AttachDeliveryPayload(ctx context.Context, orderID string, payload map[string]interface{}) error {
	req := deliveryPayloadRequestDTO{Payload: payload}

	err := o.executeWithMetrics(ctx, "AttachDeliveryPayload", func(ctx context.Context) error {
		return o.doJSON(ctx, http.MethodPut, "/orders/"+orderID+"/delivery-payload", req, nil)
	})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return fmt.Errorf("gateway order, attach delivery payload: %s: %w", orderID, ErrOrderNotFound)
		}
		return fmt.Errorf("gateway order, attach delivery payload: %s: %w", orderID, err)
	}
	return nil
}

func (o *OrderGateway) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, o.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := o.sessions.Session().Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &apiError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnauthorized) {
		return false
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode >= http.StatusInternalServerError
	}

	// transport-level failure, worth another attempt
	return true
}

func isStatus(err error, statusCode int) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	if errors.Is(err, ErrUnauthorized) {
		return "401"
	}
	return "transport_error"
}
