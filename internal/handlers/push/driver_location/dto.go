package driver_location

import "errors"

var (
	errMissingOrderID  = errors.New("orderId is required")
	errMissingPosition = errors.New("deliveryLat and deliveryLng are required")
)

// Поля позиции приходят с бэкенда с префиксом delivery.
type locationEventDTO struct {
	OrderID   string   `json:"orderId"`
	Lat       *float64 `json:"deliveryLat"`
	Lng       *float64 `json:"deliveryLng"`
	Name      string   `json:"deliveryName"`
	Transport string   `json:"transport"`
}

func (d locationEventDTO) validate() error {
	if d.OrderID == "" {
		return errMissingOrderID
	}
	if d.Lat == nil || d.Lng == nil {
		return errMissingPosition
	}
	return nil
}
