package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the order subsystem. Handlers classify with errors.Is
// and map each kind to an HTTP status; anything unrecognized is treated as
// a server fault and kept opaque to the caller.
var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStockConflict means a concurrent order consumed the stock between
	// validation and reservation. Retryable: re-validate and resubmit.
	ErrStockConflict = errors.New("stock conflict")

	ErrIllegalTransition = errors.New("illegal status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("forbidden")
)

// TransitionErr builds an ErrIllegalTransition carrying the rejected edge.
func TransitionErr(from, to OrderStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}
