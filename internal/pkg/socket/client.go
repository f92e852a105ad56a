package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Ralet11/pandaApp/pkg/logger"
	retrierconfig "github.com/Ralet11/pandaApp/pkg/retrier"
	"github.com/Ralet11/pandaApp/pkg/retrier/backoff_adapter"
)

const (
	// Observed client policy: five attempts, 1.5s apart, then give up.
	reconnectAttempts = 5
	reconnectDelay    = 1500 * time.Millisecond

	handshakeTimeout = 10 * time.Second
	writeTimeout     = 5 * time.Second
)

type clientLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Config struct {
	URL   string // http(s) base, converted to ws(s)
	Token string
}

// Client maintains one websocket connection to the push endpoint. A broken
// connection is redialed a bounded number of times with a fixed delay;
// after that the client surfaces a terminal ConnectError and stays closed.
type Client struct {
	log     clientLogger
	cfg     Config
	events  Events
	retrier retrierconfig.Retrier

	mu        sync.Mutex
	conn      *websocket.Conn
	subs      map[string]map[uint64]Handler
	nextSubID uint64
	closed    bool
}

func New(log clientLogger, cfg Config, events Events) *Client {
	return &Client{
		log:     log.With(logger.NewField("component", "socket")),
		cfg:     cfg,
		events:  events,
		// the first dial counts as attempt one, so the policy allows
		// reconnectAttempts-1 retries after it
		retrier: backoff_adapter.New(retrierconfig.Constant(reconnectDelay, reconnectAttempts-1)),
		subs:    make(map[string]map[uint64]Handler),
	}
}

// Connect dials the push endpoint, applying the bounded retry policy, and
// starts the read loop. On success the Connected signal fires.
func (c *Client) Connect(ctx context.Context) error {
	err := c.dialWithRetry(ctx)
	if err != nil {
		c.events.ConnectError(err.Error())
		return err
	}

	c.events.Connected()
	go c.readLoop()
	return nil
}

// Emit sends an outbound event frame.
func (c *Client) Emit(event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("emit %s: channel is closed", event)
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	if err := c.conn.WriteJSON(Frame{Event: event, Data: payload}); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	return nil
}

// Subscription is a cancellable handle to a registered event handler.
// Cancelling is always safe, including after the client has closed.
type Subscription struct {
	cancel func()
	once   sync.Once
}

func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// NewSubscription wraps a cancel function in a Subscription. Exists so
// consumers of the client interface can be faked in tests.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Subscribe registers a handler for the named event and returns the handle
// that removes it.
func (c *Client) Subscribe(event string, h Handler) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSubID++
	id := c.nextSubID

	if c.subs[event] == nil {
		c.subs[event] = make(map[uint64]Handler)
	}
	c.subs[event][id] = h

	return &Subscription{
		cancel: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs[event], id)
		},
	}
}

// Close tears the connection down unconditionally. Idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

func (c *Client) dialWithRetry(ctx context.Context) error {
	dialer := &websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	header := http.Header{}
	if c.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	endpoint := toWebsocketURL(c.cfg.URL)

	var attempt uint64
	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		c.log.With(
			logger.NewField("attempt", attempt),
			logger.NewField("url", endpoint),
		).Info("attempting push channel connection")

		conn, _, err := dialer.DialContext(ctx, endpoint, header) //nolint:bodyclose // non-nil resp only carries the failed handshake
		if err != nil {
			return err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			_ = conn.Close()
			return nil
		}
		c.conn = conn
		return nil
	})
	if err != nil {
		c.log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("push channel connection failed after retries")
		return fmt.Errorf("failed to connect push channel: %w", err)
	}

	c.log.With(
		logger.NewField("attempts", attempt),
	).Info("push channel connection established")
	return nil
}

func (c *Client) readLoop() {
	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			c.handleReadError(err)
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			PushBadFramesTotal.Inc()
			c.log.With(
				logger.NewField("error", err),
			).Warn("push channel received undecodable frame")
			continue
		}

		c.dispatch(frame)
	}
}

func (c *Client) handleReadError(err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	c.log.With(
		logger.NewField("reason", err.Error()),
	).Warn("push channel disconnected")
	c.events.Disconnected(err.Error())

	go c.reconnect()
}

func (c *Client) reconnect() {
	PushReconnectsTotal.Inc()

	err := c.dialWithRetry(context.Background())
	if err != nil {
		// Retries exhausted: terminal signal, channel stays closed.
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		c.events.ConnectError(err.Error())
		return
	}

	c.mu.Lock()
	if c.closed {
		if c.conn != nil {
			_ = c.conn.Close()
			c.conn = nil
		}
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.events.Connected()
	go c.readLoop()
}

func (c *Client) dispatch(frame Frame) {
	PushEventsTotal.WithLabelValues(frame.Event).Inc()

	c.mu.Lock()
	handlers := make([]Handler, 0, len(c.subs[frame.Event]))
	for _, h := range c.subs[frame.Event] {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	if len(handlers) == 0 {
		c.log.With(
			logger.NewField("event", frame.Event),
		).Debug("push event without subscriber")
		return
	}

	for _, h := range handlers {
		h(frame.Data, frame.Seq)
	}
}

func toWebsocketURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}
