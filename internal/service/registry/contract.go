//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=registry_test
package registry

import (
	"context"

	"swiftship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, eventModifyEntity entities.TrackingEventModify) (*entities.TrackingEvent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
