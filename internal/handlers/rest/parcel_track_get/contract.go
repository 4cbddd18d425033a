//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_track_get_test
package parcel_track_get

import (
	"context"

	"swiftship/internal/entities"
	"swiftship/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetByTrackingID(ctx context.Context, trackingID string) (*entities.ParcelDetail, error)
}
