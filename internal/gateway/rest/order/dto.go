package order

// Wire shapes of the backend order API. Field names follow the backend's
// camelCase JSON.

type orderDTO struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	ShopID          string         `json:"shopId"`
	Price           float64        `json:"price"`
	DeliveryFee     float64        `json:"deliveryFee"`
	Tip             float64        `json:"tip"`
	FinalPrice      float64        `json:"finalPrice"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Status          string         `json:"status"`
	Items           []orderItemDTO `json:"items"`
	Driver          *driverDTO     `json:"driver,omitempty"`
	CreatedAt       string         `json:"createdAt"`
}

type orderItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"totalPrice"`
}

type driverDTO struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Name      string  `json:"name,omitempty"`
	Transport string  `json:"transport,omitempty"`
}

type ordersResponseDTO struct {
	Orders []orderDTO `json:"orders"`
}

type createOrderRequestDTO struct {
	ShopID          string         `json:"shopId"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Price           float64        `json:"price"`
	DeliveryFee     float64        `json:"deliveryFee"`
	Tip             float64        `json:"tip"`
	FinalPrice      float64        `json:"finalPrice"`
	Items           []orderItemDTO `json:"items"`
}

type deliveryPayloadRequestDTO struct {
	Payload map[string]interface{} `json:"payload"`
}
