package snapshot

import "time"

type sessionDB struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type cartItemDB struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
}

type orderItemDB struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
}

type courierDB struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Name      string  `json:"name,omitempty"`
	Transport string  `json:"transport,omitempty"`
}

type orderDB struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	ShopID          string        `json:"shop_id"`
	Price           float64       `json:"price"`
	DeliveryFee     float64       `json:"delivery_fee"`
	Tip             float64       `json:"tip"`
	FinalPrice      float64       `json:"final_price"`
	DeliveryAddress string        `json:"delivery_address"`
	Status          string        `json:"status"`
	Items           []orderItemDB `json:"items"`
	Courier         *courierDB    `json:"courier,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type orderSnapshotDB struct {
	Current  orderDB   `json:"current"`
	Active   []orderDB `json:"active"`
	Historic []orderDB `json:"historic"`
}
