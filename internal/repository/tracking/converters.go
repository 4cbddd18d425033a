package tracking

import "swiftship/internal/entities"

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}
	return &entities.TrackingEvent{
		ID:          e.ID,
		ParcelID:    e.ParcelID,
		Status:      entities.ParcelStatusType(e.Status),
		Location:    e.Location,
		Description: e.Description,
		Timestamp:   e.Timestamp,
	}
}

func FromDomainModify(e *entities.TrackingEventModify) *TrackingEventModifyDB {
	if e == nil {
		return nil
	}
	eventModifyDB := &TrackingEventModifyDB{}

	if e.ID != nil {
		eventModifyDB.ID = e.ID
	}
	if e.ParcelID != nil {
		eventModifyDB.ParcelID = e.ParcelID
	}
	if e.Status != nil {
		status := e.Status.String()
		eventModifyDB.Status = &status
	}
	if e.Location != nil {
		eventModifyDB.Location = e.Location
	}
	if e.Description != nil {
		eventModifyDB.Description = e.Description
	}
	if e.Timestamp != nil {
		eventModifyDB.Timestamp = e.Timestamp
	}

	return eventModifyDB
}

func ToDomainList(eventsDB []TrackingEventDB) []entities.TrackingEvent {
	if len(eventsDB) == 0 {
		return []entities.TrackingEvent{}
	}

	result := make([]entities.TrackingEvent, len(eventsDB))
	for i, eventDB := range eventsDB {
		result[i] = *ToDomain(&eventDB)
	}
	return result
}
