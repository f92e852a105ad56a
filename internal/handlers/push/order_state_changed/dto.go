package order_state_changed

import (
	"errors"
	"fmt"

	"github.com/Ralet11/pandaApp/internal/entities"
)

var (
	errMissingOrderID = errors.New("orderId is required")
	errUnknownStatus  = errors.New("unknown status")
)

type statusEventDTO struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// validate rejects malformed events at the ingestion boundary so the rest
// of the pipeline only sees well-formed ones.
func (d statusEventDTO) validate() error {
	if d.OrderID == "" {
		return errMissingOrderID
	}
	if !entities.OrderStatusType(d.Status).Known() {
		return fmt.Errorf("%w: %q", errUnknownStatus, d.Status)
	}
	return nil
}
