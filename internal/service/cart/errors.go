package cart

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingShopID     = errors.New("shop id is required")
	ErrMissingAddress    = errors.New("delivery address is required")
	ErrInvalidTipPercent = errors.New("tip percent must be between 0 and 100")
)
