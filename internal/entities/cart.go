package entities

type CartItem struct {
	ID           string // product id plus ingredient configuration
	Name         string
	Quantity     int
	PricePerUnit float64
	TotalPrice   float64
}

type CartTotals struct {
	Subtotal    float64
	DeliveryFee float64
	TipPercent  int
	Tip         float64
	Total       float64
}

// CheckoutRequest carries what the cart screen submits at checkout.
type CheckoutRequest struct {
	ShopID          string
	TipPercent      int
	DeliveryAddress string
	DeliveryPayload map[string]interface{}
}
