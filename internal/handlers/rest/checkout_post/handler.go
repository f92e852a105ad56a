package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ralet11/pandaApp/internal/entities"
	restorder "github.com/Ralet11/pandaApp/internal/gateway/rest/order"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/dto"
	"github.com/Ralet11/pandaApp/internal/service/cart"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var checkoutDTO dto.CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Checkout(r.Context(), entities.CheckoutRequest{
		ShopID:          checkoutDTO.ShopID,
		TipPercent:      checkoutDTO.TipPercent,
		DeliveryAddress: checkoutDTO.DeliveryAddress,
		DeliveryPayload: checkoutDTO.DeliveryPayload,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart),
			errors.Is(err, cart.ErrMissingShopID),
			errors.Is(err, cart.ErrMissingAddress),
			errors.Is(err, cart.ErrInvalidTipPercent):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, restorder.ErrUnauthorized):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("checkout failed")
			w.WriteHeader(http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
