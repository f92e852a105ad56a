package orders_get

import (
	"encoding/json"
	"net/http"

	"github.com/Ralet11/pandaApp/internal/handlers/rest/dto"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Handler struct {
	log    handlerLogger
	orders OrderStore
}

func New(log handlerLogger, orders OrderStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		orders: orders,
	}
}

// ServeHTTP lists orders from the historic view; "?scope=active" narrows
// the list to orders still in flight.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orders []dto.Order
	switch r.URL.Query().Get("scope") {
	case "active":
		orders = dto.FromOrders(h.orders.ActiveOrders())
	case "", "historic":
		orders = dto.FromOrders(h.orders.HistoricOrders())
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response := dto.OrdersResponse{
		Orders: orders,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
