package cart_item_put

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

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

// ServeHTTP sets the quantity of an existing cart line. Removal goes through
// DELETE; a zero or negative quantity here is a bad request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]
	if itemID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var update quantityUpdateDTO
	err := json.NewDecoder(r.Body).Decode(&update)
	if err != nil || update.Quantity <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !h.cart.UpdateItemQuantity(itemID, update.Quantity) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	response := dto.CartResponse{
		Items: dto.FromCartItems(h.cart.Items()),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
