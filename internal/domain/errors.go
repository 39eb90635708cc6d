package domain

import "errors"

// Engine errors are sentinel values so callers can branch with errors.Is.
// Every failed operation leaves the book untouched.
var (
	ErrInvalidOrderType        = errors.New("invalid order type")
	ErrInvalidQuantity         = errors.New("invalid order quantity")
	ErrInvalidPrice            = errors.New("invalid order price")
	ErrInvalidPriceLevel       = errors.New("invalid order price level")
	ErrInvalidSide             = errors.New("invalid side")
	ErrInvalidTimeInForce      = errors.New("invalid time in force")
	ErrInvalidConditionalOrder = errors.New("invalid conditional order")
	ErrOrderExists             = errors.New("order already exists")
	ErrOrderNotFound           = errors.New("order not found")
	ErrLimitFOKNotFillable     = errors.New("limit FOK order not fillable")
	ErrLimitOrderPostOnly      = errors.New("post-only limit order would cross")
	ErrInsufficientQuantity    = errors.New("insufficient quantity to calculate price")
	ErrJournalOutOfOrder       = errors.New("journal operation out of order")
)
