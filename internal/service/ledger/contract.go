//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"swiftship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, eventModifyEntity entities.TrackingEventModify) (*entities.TrackingEvent, error)
	GetCurrentStatus(ctx context.Context, parcelID int64) (entities.ParcelStatusType, error)
	ListByParcel(ctx context.Context, parcelID int64) ([]entities.TrackingEvent, error)
}

type ParcelRepository interface {
	GetIDByTrackingID(ctx context.Context, trackingID string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
