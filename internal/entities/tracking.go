package entities

import "time"

type TrackingEvent struct {
	ID          int64
	ParcelID    int64
	Status      ParcelStatusType
	Location    string
	Description string
	Timestamp   time.Time
}

type TrackingEventModify struct {
	ID          *int64
	ParcelID    *int64
	Status      *ParcelStatusType
	Location    *string
	Description *string
	Timestamp   *time.Time
}

type ParcelStatusType string

const (
	StatusPending        ParcelStatusType = "pending"
	StatusPickedUp       ParcelStatusType = "picked_up"
	StatusInTransit      ParcelStatusType = "in_transit"
	StatusOutForDelivery ParcelStatusType = "out_for_delivery"
	StatusDelivered      ParcelStatusType = "delivered"
	StatusFailed         ParcelStatusType = "failed"
)

// DefaultParcelStatus - статус посылки без единого события трекинга.
const DefaultParcelStatus = StatusPending

func (s ParcelStatusType) String() string {
	return string(s)
}

func (s ParcelStatusType) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// ParcelScan - событие сканирования посылки на сортировочном узле,
// приходит из Kafka.
type ParcelScan struct {
	TrackingID  string
	Status      ParcelStatusType
	Location    string
	Description string
}
