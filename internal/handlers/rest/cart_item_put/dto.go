package cart_item_put

type quantityUpdateDTO struct {
	Quantity int `json:"quantity"`
}
