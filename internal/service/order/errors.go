package order

import "errors"

var (
	ErrMissingOrderID = errors.New("order id is required")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrStaleEvent     = errors.New("event is older than the applied order state")
	ErrOrderMismatch  = errors.New("location event targets another order")
	ErrNoCurrentOrder = errors.New("no current order to refresh")
	ErrStaleRefresh   = errors.New("refresh superseded by a newer current order")
)
