package domain

import "errors"

var (
	// ErrInsufficientStock means a checkout asked for more units than are
	// currently available
	ErrInsufficientStock = errors.New("insufficient stock available")

	// ErrAlreadyCheckedIn means a check-in was attempted on a closed checkout
	ErrAlreadyCheckedIn = errors.New("checkout already checked in")

	// ErrNotFound means the referenced equipment, checkout, or related row
	// does not exist
	ErrNotFound = errors.New("record not found")
)
