package entitlement

import "errors"

// Protocol-violation errors. These indicate a bug in the caller's
// check→debit sequencing and must surface as internal errors, never be
// silently absorbed.
var (
	ErrNoAllowance   = errors.New("entitlement: debit would underflow balance")
	ErrInvalidSource = errors.New("entitlement: debit with invalid source")
	ErrInvalidCredit = errors.New("entitlement: credit count must be positive")
	ErrEmptyUserID   = errors.New("entitlement: user id must not be empty")
)
