package cart_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ralet11/pandaApp/internal/handlers/rest/dto"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	cart    CartStore
	service Service
}

func New(log handlerLogger, cart CartStore, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		cart:    cart,
		service: service,
	}
}

// ServeHTTP returns the cart items together with the priced totals. The tip
// percentage comes from the "tip" query parameter, defaulting to zero.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tipPercent := 0
	if raw := r.URL.Query().Get("tip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		tipPercent = parsed
	}

	totals, err := h.service.Totals(tipPercent)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response := dto.CartResponse{
		Items:  dto.FromCartItems(h.cart.Items()),
		Totals: dto.FromCartTotals(totals),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
