package parcel

import "time"

type ParcelDB struct {
	ID              int64
	TrackingID      string
	SenderID        int64
	ReceiverName    string
	ReceiverPhone   string
	PickupAddress   string
	DeliveryAddress string
	Weight          float64
	Dimensions      string
	Description     string
	CreatedAt       time.Time
}

type ParcelModifyDB struct {
	ID              *int64
	SenderID        *int64
	ReceiverName    *string
	ReceiverPhone   *string
	PickupAddress   *string
	DeliveryAddress *string
	Weight          *float64
	Dimensions      *string
	Description     *string
}

type ParcelSummaryDB struct {
	ID              int64
	TrackingID      string
	SenderID        int64
	PickupAddress   string
	DeliveryAddress string
	Description     string
	Status          string
	CreatedAt       time.Time
	LastUpdated     time.Time
}

type ParcelWithStatusDB struct {
	ParcelDB
	Status      string
	LastUpdated time.Time
}
