package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"swiftship/internal/entities"
)

// Query - read-пути ядра. Каждый вызов ходит в хранилище заново,
// состояние посылок между запросами не кэшируется.
type Query struct {
	repository   Repository
	trackingRepo TrackingRepository
}

func New(repository Repository, trackingRepo TrackingRepository) *Query {
	return &Query{
		repository:   repository,
		trackingRepo: trackingRepo,
	}
}

func (s *Query) ListBySender(ctx context.Context, senderID int64) ([]entities.ParcelSummary, error) {
	if senderID <= 0 {
		return nil, ErrInvalidSenderID
	}

	summaries, err := s.repository.ListBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("list parcels by sender: %w", err)
	}

	return summaries, nil
}

func (s *Query) GetByTrackingID(ctx context.Context, trackingID string) (*entities.ParcelDetail, error) {
	if strings.TrimSpace(trackingID) == "" {
		return nil, ErrInvalidTrackingID
	}

	detail, err := s.repository.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get parcel by tracking id: %w", err)
	}

	events, err := s.trackingRepo.ListByParcel(ctx, detail.Parcel.ID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}

	detail.Events = events
	return detail, nil
}

// ListAvailable - посылки без курьера (текущий статус pending).
func (s *Query) ListAvailable(ctx context.Context) ([]entities.ParcelSummary, error) {
	filter := entities.ParcelFilter{
		Status: pointer.To(entities.StatusPending),
	}

	summaries, err := s.repository.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list available parcels: %w", err)
	}

	return summaries, nil
}

func (s *Query) ListAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.ParcelSummary, error) {
	if filter.Status != nil && !isValidStatusFilter(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.SenderID != nil && *filter.SenderID <= 0 {
		return nil, ErrInvalidSenderID
	}

	summaries, err := s.repository.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}

	return summaries, nil
}

func (s *Query) CountByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count parcels by status: %w", err)
	}

	return counts, nil
}

func isValidStatusFilter(status entities.ParcelStatusType) bool {
	switch status {
	case entities.StatusPending,
		entities.StatusPickedUp,
		entities.StatusInTransit,
		entities.StatusOutForDelivery,
		entities.StatusDelivered,
		entities.StatusFailed:
		return true
	default:
		return false
	}
}
