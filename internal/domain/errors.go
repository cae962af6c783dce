package domain

import "errors"

var (
	// ErrInvalidDateRange rejects bookings whose check-out is not
	// strictly after check-in. No row is committed.
	ErrInvalidDateRange = errors.New("check-out must be after check-in")

	// ErrUnknownReference rejects operations that point at a user,
	// property or booking that does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")

	// ErrInvalidRole rejects roles outside owner/operator/guest, and
	// earnings summaries for roles that earn no share.
	ErrInvalidRole = errors.New("invalid role")

	// ErrNegativeAmount rejects negative monetary inputs.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingField rejects creates with a blank required field.
	ErrMissingField = errors.New("required field is missing")
)
