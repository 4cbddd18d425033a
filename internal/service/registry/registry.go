package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"swiftship/internal/entities"
)

// initialEventDescription - описание первого события трекинга,
// создаваемого вместе с посылкой.
const initialEventDescription = "Parcel Created"

type Registry struct {
	repository   Repository
	trackingRepo TrackingRepository
	txManager    TxManager
}

func New(repository Repository, trackingRepo TrackingRepository, txManager TxManager) *Registry {
	return &Registry{
		repository:   repository,
		trackingRepo: trackingRepo,
		txManager:    txManager,
	}
}

// CreateParcel валидирует заявку и в одной транзакции создаёт посылку
// и её первое событие трекинга (pending, локация = адрес забора).
// Частичное состояние наружу не утекает: откат убирает обе записи.
func (s *Registry) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.SenderID == nil ||
		parcelModify.ReceiverName == nil ||
		parcelModify.ReceiverPhone == nil ||
		parcelModify.PickupAddress == nil ||
		parcelModify.DeliveryAddress == nil ||
		parcelModify.Weight == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidSenderID(*parcelModify.SenderID) {
		return nil, ErrInvalidSenderID
	}
	if !isValidText(*parcelModify.ReceiverName) {
		return nil, ErrInvalidReceiverName
	}
	if !isValidText(*parcelModify.ReceiverPhone) {
		return nil, ErrInvalidReceiverPhone
	}
	if !isValidText(*parcelModify.PickupAddress) || !isValidText(*parcelModify.DeliveryAddress) {
		return nil, ErrInvalidAddress
	}
	if !isValidWeight(*parcelModify.Weight) {
		return nil, ErrInvalidWeight
	}

	if parcelModify.Dimensions == nil {
		parcelModify.Dimensions = pointer.To("")
	}
	if parcelModify.Description == nil {
		parcelModify.Description = pointer.To("")
	}

	var createdParcel *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.Create(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		eventTime := time.Now().UTC()
		eventModify := entities.TrackingEventModify{
			ParcelID:    &parcel.ID,
			Status:      pointer.To(entities.DefaultParcelStatus),
			Location:    &parcel.PickupAddress,
			Description: pointer.To(initialEventDescription),
			Timestamp:   &eventTime,
		}

		_, err = s.trackingRepo.Create(ctx, eventModify)
		if err != nil {
			return fmt.Errorf("create initial tracking event: %w", err)
		}

		createdParcel = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}

	return createdParcel, nil
}
