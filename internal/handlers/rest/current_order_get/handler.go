package current_order_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Ralet11/pandaApp/internal/handlers/rest/dto"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	orders     OrderStore
	etaFactory ETAFactory
}

func New(log handlerLogger, orders OrderStore, etaFactory ETAFactory) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		orders:     orders,
		etaFactory: etaFactory,
	}
}

// ServeHTTP returns the tracked order. When the courier position is known
// and the caller supplies destination coordinates ("lat"/"lng" query
// parameters), the response includes an arrival estimate in minutes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	order := h.orders.CurrentOrder()
	if order.ID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	response := dto.CurrentOrderResponse{
		Order: dto.FromOrder(order),
	}

	if order.Courier != nil {
		if destLat, destLng, ok := destinationFromQuery(r); ok {
			eta := h.etaFactory.CalculateETA(*order.Courier, destLat, destLng)
			minutes := int(eta / time.Minute)
			response.EtaMinutes = &minutes
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func destinationFromQuery(r *http.Request) (float64, float64, bool) {
	rawLat := r.URL.Query().Get("lat")
	rawLng := r.URL.Query().Get("lng")
	if rawLat == "" || rawLng == "" {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
