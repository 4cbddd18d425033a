package registry

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidSenderID       = errors.New("invalid sender id")
	ErrInvalidReceiverName   = errors.New("invalid receiver name")
	ErrInvalidReceiverPhone  = errors.New("invalid receiver phone")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidWeight         = errors.New("invalid weight")

	ErrSenderNotFound = errors.New("sender not found")
)
