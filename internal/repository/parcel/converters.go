package parcel

import "swiftship/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:              p.ID,
		TrackingID:      p.TrackingID,
		SenderID:        p.SenderID,
		ReceiverName:    p.ReceiverName,
		ReceiverPhone:   p.ReceiverPhone,
		PickupAddress:   p.PickupAddress,
		DeliveryAddress: p.DeliveryAddress,
		Weight:          p.Weight,
		Dimensions:      p.Dimensions,
		Description:     p.Description,
		CreatedAt:       p.CreatedAt,
	}
}

func FromDomainModify(p *entities.ParcelModify) *ParcelModifyDB {
	if p == nil {
		return nil
	}
	parcelModifyDB := &ParcelModifyDB{}

	if p.ID != nil {
		parcelModifyDB.ID = p.ID
	}
	if p.SenderID != nil {
		parcelModifyDB.SenderID = p.SenderID
	}
	if p.ReceiverName != nil {
		parcelModifyDB.ReceiverName = p.ReceiverName
	}
	if p.ReceiverPhone != nil {
		parcelModifyDB.ReceiverPhone = p.ReceiverPhone
	}
	if p.PickupAddress != nil {
		parcelModifyDB.PickupAddress = p.PickupAddress
	}
	if p.DeliveryAddress != nil {
		parcelModifyDB.DeliveryAddress = p.DeliveryAddress
	}
	if p.Weight != nil {
		parcelModifyDB.Weight = p.Weight
	}
	if p.Dimensions != nil {
		parcelModifyDB.Dimensions = p.Dimensions
	}
	if p.Description != nil {
		parcelModifyDB.Description = p.Description
	}

	return parcelModifyDB
}

func ToSummaryDomain(p *ParcelSummaryDB) *entities.ParcelSummary {
	if p == nil {
		return nil
	}
	return &entities.ParcelSummary{
		ID:              p.ID,
		TrackingID:      p.TrackingID,
		SenderID:        p.SenderID,
		PickupAddress:   p.PickupAddress,
		DeliveryAddress: p.DeliveryAddress,
		Description:     p.Description,
		Status:          entities.ParcelStatusType(p.Status),
		CreatedAt:       p.CreatedAt,
		LastUpdated:     p.LastUpdated,
	}
}

func ToSummaryDomainList(parcelsDB []ParcelSummaryDB) []entities.ParcelSummary {
	if len(parcelsDB) == 0 {
		return []entities.ParcelSummary{}
	}

	result := make([]entities.ParcelSummary, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToSummaryDomain(&parcelDB)
	}
	return result
}

func ToDetailDomain(p *ParcelWithStatusDB) *entities.ParcelDetail {
	if p == nil {
		return nil
	}
	return &entities.ParcelDetail{
		Parcel:      *ToDomain(&p.ParcelDB),
		Status:      entities.ParcelStatusType(p.Status),
		LastUpdated: p.LastUpdated,
	}
}
