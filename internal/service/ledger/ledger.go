package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"swiftship/internal/entities"
)

type Ledger struct {
	repository Repository
	parcelRepo ParcelRepository
	txManager  TxManager
}

func New(repository Repository, parcelRepo ParcelRepository, txManager TxManager) *Ledger {
	return &Ledger{
		repository: repository,
		parcelRepo: parcelRepo,
		txManager:  txManager,
	}
}

// AppendEvent дописывает событие в журнал посылки. Проверка перехода и
// вставка идут в одной serializable-транзакции: два конкурентных
// append не могут оба пройти валидацию по устаревшему статусу.
func (s *Ledger) AppendEvent(ctx context.Context, parcelID int64, status entities.ParcelStatusType, location, description string) (*entities.TrackingEvent, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrInvalidLocation
	}

	var createdEvent *entities.TrackingEvent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		currentStatus, err := s.repository.GetCurrentStatus(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get current status: %w", err)
		}

		if !canTransition(currentStatus, status) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, currentStatus, status)
		}

		eventTime := time.Now().UTC()
		eventModify := entities.TrackingEventModify{
			ParcelID:    &parcelID,
			Status:      &status,
			Location:    &location,
			Description: &description,
			Timestamp:   &eventTime,
		}

		event, err := s.repository.Create(ctx, eventModify)
		if err != nil {
			return fmt.Errorf("append tracking event: %w", err)
		}

		createdEvent = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	return createdEvent, nil
}

// AppendEventByTrackingID - то же самое, но посылка задана внешним
// tracking id (так присылают события сканирования с узлов).
func (s *Ledger) AppendEventByTrackingID(ctx context.Context, trackingID string, status entities.ParcelStatusType, location, description string) (*entities.TrackingEvent, error) {
	if strings.TrimSpace(trackingID) == "" {
		return nil, ErrInvalidTrackingID
	}

	parcelID, err := s.parcelRepo.GetIDByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("resolve tracking id: %w", err)
	}

	return s.AppendEvent(ctx, parcelID, status, location, description)
}

func (s *Ledger) CurrentStatus(ctx context.Context, parcelID int64) (entities.ParcelStatusType, error) {
	if parcelID <= 0 {
		return "", ErrInvalidParcelID
	}

	status, err := s.repository.GetCurrentStatus(ctx, parcelID)
	if err != nil {
		return "", fmt.Errorf("get current status: %w", err)
	}

	return status, nil
}

func (s *Ledger) History(ctx context.Context, parcelID int64) ([]entities.TrackingEvent, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}

	// существование посылки проверяем тем же запросом, что и статус
	_, err := s.repository.GetCurrentStatus(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get current status: %w", err)
	}

	events, err := s.repository.ListByParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}

	return events, nil
}
