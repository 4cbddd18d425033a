package scan

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined scan status")
	ErrEmptyTrackingID = errors.New("empty tracking id in scan")
)
