//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_update_post_test
package status_update_post

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
	AppendEventByTrackingID(ctx context.Context, trackingID string, status entities.ParcelStatusType, location, description string) (*entities.TrackingEvent, error)
}
