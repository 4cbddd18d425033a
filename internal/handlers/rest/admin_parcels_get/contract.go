//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_parcels_get_test
package admin_parcels_get

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
	ListAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.ParcelSummary, error)
}
