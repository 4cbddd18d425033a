package parcel_scan

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
	ProcessScan(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error)
}
