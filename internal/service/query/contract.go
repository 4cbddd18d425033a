//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=query_test
package query

import (
	"context"

	"swiftship/internal/entities"
)

type Repository interface {
	GetByTrackingID(ctx context.Context, trackingID string) (*entities.ParcelDetail, error)
	ListBySender(ctx context.Context, senderID int64) ([]entities.ParcelSummary, error)
	ListAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.ParcelSummary, error)
	CountByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error)
}

type TrackingRepository interface {
	ListByParcel(ctx context.Context, parcelID int64) ([]entities.TrackingEvent, error)
}
