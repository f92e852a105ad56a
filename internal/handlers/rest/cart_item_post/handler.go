package cart_item_post

import (
	"encoding/json"
	"net/http"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/dto"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Handler struct {
	log  handlerLogger
	cart CartStore
}

func New(log handlerLogger, cart CartStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:  handlerLog,
		cart: cart,
	}
}

// ServeHTTP adds a line item to the cart. The item ID already encodes the
// ingredient configuration, so posting the same ID again raises the quantity.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var itemDTO dto.CartItemCreate
	err := json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if itemDTO.ID == "" || itemDTO.Quantity <= 0 || itemDTO.PricePerUnit < 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.cart.AddItem(entities.CartItem{
		ID:           itemDTO.ID,
		Name:         itemDTO.Name,
		Quantity:     itemDTO.Quantity,
		PricePerUnit: itemDTO.PricePerUnit,
	})

	response := dto.CartResponse{
		Items: dto.FromCartItems(h.cart.Items()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
