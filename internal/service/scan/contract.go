//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scan_test
package scan

import (
	"context"

	"swiftship/internal/entities"
)

type LedgerService interface {
	AppendEventByTrackingID(ctx context.Context, trackingID string, status entities.ParcelStatusType, location, description string) (*entities.TrackingEvent, error)
}

type (
	ExecuteFn      func(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error)
	HandlerFactory interface {
		GetHandler(status entities.ParcelStatusType) (ExecuteFn, error)
	}
)
