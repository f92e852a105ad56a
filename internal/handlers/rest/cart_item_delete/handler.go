package cart_item_delete

import (
	"net/http"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]
	if itemID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.cart.RemoveItem(itemID)
	w.WriteHeader(http.StatusNoContent)
}
