package tracking

import "time"

type TrackingEventDB struct {
	ID          int64
	ParcelID    int64
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
}

type TrackingEventModifyDB struct {
	ID          *int64
	ParcelID    *int64
	Status      *string
	Location    *string
	Description *string
	Timestamp   *time.Time
}
