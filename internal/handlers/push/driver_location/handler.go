package driver_location

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
const Event = "driver_location"

type Handler struct {
	log            handlerLogger
	orderService   Service
	processTimeout time.Duration
}

func New(log handlerLogger, orderService Service, processTimeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		orderService:   orderService,
		processTimeout: processTimeout,
	}
}

// Handle consumes one driver_location event. Only courier-position fields
// reach the store; positions for orders other than the tracked one are
// discarded without logging noise.
func (h *Handler) Handle(data json.RawMessage, _ int64) {
	var dto locationEventDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("driver_location handler received bad payload")
		return
	}
	if err := dto.validate(); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order", dto.OrderID),
		).Error("driver_location handler discarding malformed event")
		return
	}

	transport := entities.CourierTransportType(dto.Transport)
	if transport == "" {
		transport = entities.DefaultTransportType
	}

	event := entities.LocationEvent{
		OrderID: dto.OrderID,
		Position: entities.CourierPosition{
			Lat:       *dto.Lat,
			Lng:       *dto.Lng,
			Name:      dto.Name,
			Transport: transport,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.processTimeout)
	defer cancel()

	if err := h.orderService.ProcessDriverLocation(ctx, event); err != nil {
		if errors.Is(err, orderservice.ErrOrderMismatch) {
			h.log.Debug("driver_location handler dropped event for another order",
				logger.NewField("order", dto.OrderID))
			return
		}
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order", dto.OrderID),
		).Error("driver_location handler failed to process event")
	}
}
