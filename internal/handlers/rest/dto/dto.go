// Package dto holds the wire types of the local HTTP surface the UI layer
// talks to.
package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CartItemCreate struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

type CartItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	TotalPrice   float64 `json:"totalPrice"`
}

type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	TipPercent  int     `json:"tipPercent"`
	Tip         float64 `json:"tip"`
	Total       float64 `json:"total"`
}

type CartResponse struct {
	Items  []CartItem `json:"items"`
	Totals CartTotals `json:"totals"`
}

type CheckoutRequest struct {
	ShopID          string                 `json:"shopId"`
	TipPercent      int                    `json:"tipPercent"`
	DeliveryAddress string                 `json:"deliveryAddress"`
	DeliveryPayload map[string]interface{} `json:"deliveryPayload,omitempty"`
}

type OrderItem struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price"`
	TotalPrice   float64 `json:"totalPrice"`
}

type Courier struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Name      string  `json:"name,omitempty"`
	Transport string  `json:"transport,omitempty"`
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId,omitempty"`
	ShopID          string      `json:"shopId"`
	Price           float64     `json:"price"`
	DeliveryFee     float64     `json:"deliveryFee"`
	Tip             float64     `json:"tip"`
	FinalPrice      float64     `json:"finalPrice"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	Driver          *Courier    `json:"driver,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
}

type CurrentOrderResponse struct {
	Order
	EtaMinutes *int `json:"etaMinutes,omitempty"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type LoginRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}
