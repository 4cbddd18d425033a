package query

import "errors"

var (
	ErrInvalidSenderID   = errors.New("invalid sender id")
	ErrInvalidTrackingID = errors.New("invalid tracking id")
	ErrInvalidStatus     = errors.New("invalid status filter")

	ErrParcelNotFound = errors.New("parcel not found")
)
