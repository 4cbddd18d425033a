package scan_handle

import (
	"context"
	"fmt"

	"swiftship/internal/entities"
	"swiftship/internal/service/scan"
)

type StatusHandlerFactory struct {
	ledgerService scan.LedgerService
}

func NewStatusHandlerFactory(ledgerService scan.LedgerService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		ledgerService: ledgerService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.ParcelStatusType) (scan.ExecuteFn, error) {
	switch status {
	case entities.StatusPickedUp:
		return f.pickedUpHandler, nil
	case entities.StatusInTransit:
		return f.inTransitHandler, nil
	case entities.StatusOutForDelivery:
		return f.outForDeliveryHandler, nil
	case entities.StatusDelivered:
		return f.deliveredHandler, nil
	case entities.StatusFailed:
		return f.failedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", scan.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) pickedUpHandler(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error) {
	return f.appendEvent(ctx, scanEvent, entities.StatusPickedUp, "Parcel picked up")
}

func (f *StatusHandlerFactory) inTransitHandler(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error) {
	return f.appendEvent(ctx, scanEvent, entities.StatusInTransit, "Parcel in transit")
}

func (f *StatusHandlerFactory) outForDeliveryHandler(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error) {
	return f.appendEvent(ctx, scanEvent, entities.StatusOutForDelivery, "Parcel out for delivery")
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error) {
	return f.appendEvent(ctx, scanEvent, entities.StatusDelivered, "Parcel delivered")
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error) {
	return f.appendEvent(ctx, scanEvent, entities.StatusFailed, "Delivery failed")
}

func (f *StatusHandlerFactory) appendEvent(
	ctx context.Context,
	scanEvent entities.ParcelScan,
	status entities.ParcelStatusType,
	defaultDescription string,
) (*entities.TrackingEvent, error) {
	description := scanEvent.Description
	if description == "" {
		description = defaultDescription
	}

	event, err := f.ledgerService.AppendEventByTrackingID(ctx, scanEvent.TrackingID, status, scanEvent.Location, description)
	if err != nil {
		return nil, fmt.Errorf("append %s event for parcel %s: %w", status, scanEvent.TrackingID, err)
	}

	return event, nil
}
