package entities

import "time"

type Order struct {
	ID              string
	UserID          string
	ShopID          string
	Price           float64 // subtotal
	DeliveryFee     float64
	Tip             float64
	FinalPrice      float64
	DeliveryAddress string
	Items           []OrderItem
	Status          OrderStatusType
	Courier         *CourierPosition
	CreatedAt       time.Time
}

type OrderItem struct {
	ProductID    string
	Name         string
	Quantity     int
	PricePerUnit float64
	TotalPrice   float64
}

// CourierPosition is present only once an order is in shipping.
type CourierPosition struct {
	Lat       float64
	Lng       float64
	Name      string
	Transport CourierTransportType
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pendiente"
	OrderAccepted  OrderStatusType = "aceptada"
	OrderShipping  OrderStatusType = "envio"
	OrderDelivered OrderStatusType = "finalizada"
	OrderRejected  OrderStatusType = "rechazada"
	OrderCancelled OrderStatusType = "cancelada"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether an order in this status leaves the active bucket.
func (s OrderStatusType) Terminal() bool {
	switch s {
	case OrderDelivered, OrderRejected, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) Known() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderShipping, OrderDelivered, OrderRejected, OrderCancelled:
		return true
	default:
		return false
	}
}

type OrderModify struct {
	ID              *string
	UserID          *string
	ShopID          *string
	Price           *float64
	DeliveryFee     *float64
	Tip             *float64
	FinalPrice      *float64
	DeliveryAddress *string
	Items           *[]OrderItem
	Status          *OrderStatusType
	Courier         *CourierPosition
	CreatedAt       *time.Time
}

// StatusEvent is an inbound order_state_changed push event after the
// ingestion boundary has validated it. Seq is optional; zero means the
// server attached no ordering token and last-write-wins applies.
type StatusEvent struct {
	OrderID string
	Status  OrderStatusType
	Seq     int64
}

// LocationEvent is an inbound driver_location push event.
type LocationEvent struct {
	OrderID  string
	Position CourierPosition
}

type CourierTransportType string

const (
	OnFoot  CourierTransportType = "on_foot"
	Scooter CourierTransportType = "scooter"
	Car     CourierTransportType = "car"
)

const DefaultTransportType = Scooter

func (t CourierTransportType) String() string {
	return string(t)
}
