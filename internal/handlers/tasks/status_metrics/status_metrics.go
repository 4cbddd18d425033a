package status_metrics

import (
	"context"
	"time"

	"swiftship/internal/entities"
	"swiftship/internal/pkg/metrics"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error)
}

type StatusMetrics struct {
	service  Service
	interval time.Duration
}

func NewStatusMetrics(service Service, interval time.Duration) *StatusMetrics {
	return &StatusMetrics{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (s *StatusMetrics) TTL() time.Duration {
	return s.interval
}

// Do пересчитывает gauge parcels_by_status.
// Статусы без посылок обнуляем явно, иначе в метрике зависнет старое значение.
func (s *StatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	allStatuses := []entities.ParcelStatusType{
		entities.StatusPending,
		entities.StatusPickedUp,
		entities.StatusInTransit,
		entities.StatusOutForDelivery,
		entities.StatusDelivered,
		entities.StatusFailed,
	}

	for _, status := range allStatuses {
		metrics.ParcelsByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (s *StatusMetrics) Info() string {
	return "parcel status metrics"
}
