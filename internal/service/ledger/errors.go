package ledger

import "errors"

var (
	ErrInvalidParcelID   = errors.New("invalid parcel id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrInvalidTrackingID = errors.New("invalid tracking id")

	ErrParcelNotFound    = errors.New("parcel not found")
	ErrIllegalTransition = errors.New("illegal status transition")
)
