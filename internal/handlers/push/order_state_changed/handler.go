package order_state_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
	orderservice "github.com/Ralet11/pandaApp/internal/service/order"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

// Event is the push channel event name this handler consumes.
const Event = "order_state_changed"

type Handler struct {
	log            handlerLogger
	orderService   Service
	processTimeout time.Duration
	fetchTimeout   time.Duration
}

func New(log handlerLogger, orderService Service, processTimeout, fetchTimeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		orderService:   orderService,
		processTimeout: processTimeout,
		fetchTimeout:   fetchTimeout,
	}
}

// Handle consumes one order_state_changed event. Status mutation happens
// inline so events keep their delivery order; fetching an unknown order is
// pushed to a goroutine so a slow backend cannot delay later events.
func (h *Handler) Handle(data json.RawMessage, seq int64) {
	var dto statusEventDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order_state_changed handler received bad payload")
		return
	}
	if err := dto.validate(); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order", dto.OrderID),
		).Error("order_state_changed handler discarding malformed event")
		return
	}

	eventLog := h.log.With(
		logger.NewField("order", dto.OrderID),
		logger.NewField("status", dto.Status),
		logger.NewField("seq", seq),
	)

	ctx, cancel := context.WithTimeout(context.Background(), h.processTimeout)
	defer cancel()

	event := entities.StatusEvent{
		OrderID: dto.OrderID,
		Status:  entities.OrderStatusType(dto.Status),
		Seq:     seq,
	}

	result, err := h.orderService.ProcessOrderStatusChange(ctx, event)
	if err != nil {
		if errors.Is(err, orderservice.ErrStaleEvent) {
			eventLog.Debug("order_state_changed handler dropped stale event")
			return
		}
		eventLog.With(
			logger.NewField("error", err),
		).Error("order_state_changed handler failed to process event")
		return
	}

	eventLog.Info("order_state_changed processed")

	if !result.Known {
		go h.fetchOrder(dto.OrderID)
	}
}

func (h *Handler) fetchOrder(orderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), h.fetchTimeout)
	defer cancel()

	if err := h.orderService.FetchAndStoreOrder(ctx, orderID); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order", orderID),
		).Warn("order_state_changed handler failed to fetch unknown order")
	}
}
