package entities

import "time"

type Parcel struct {
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

type ParcelModify struct {
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

// ParcelSummary - строка списка посылок: посылка плюс выведенный
// текущий статус и время последнего события.
type ParcelSummary struct {
	ID              int64
	TrackingID      string
	SenderID        int64
	PickupAddress   string
	DeliveryAddress string
	Description     string
	Status          ParcelStatusType
	CreatedAt       time.Time
	LastUpdated     time.Time
}

type ParcelDetail struct {
	Parcel      Parcel
	Status      ParcelStatusType
	LastUpdated time.Time
	Events      []TrackingEvent
}

type ParcelFilter struct {
	Status   *ParcelStatusType
	SenderID *int64
}
