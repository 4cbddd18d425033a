// Package dto описывает JSON-контракты REST API.
// Имена полей повторяют контракт, на который завязан фронтенд.
package dto

import "time"

// Envelope - общий формат любого ответа API.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ParcelCreateRequest struct {
	SenderID        int64   `json:"sender_id"`
	RecipientName   string  `json:"recipientName"`
	RecipientPhone  string  `json:"recipientPhone"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Weight          float64 `json:"weight"`
	Dimensions      *string `json:"dimensions,omitempty"`
	Description     *string `json:"description,omitempty"`
}

type ParcelCreateResponse struct {
	ID         int64  `json:"id"`
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// ParcelSummary - строка в списках посылок (get_parcels, available, admin).
type ParcelSummary struct {
	ID              int64     `json:"id"`
	TrackingID      string    `json:"trackingId"`
	CreatedAt       time.Time `json:"createdAt"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

type ParcelDetail struct {
	TrackingID      string          `json:"trackingId"`
	Status          string          `json:"status"`
	PickupAddress   string          `json:"pickupAddress"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Description     string          `json:"description"`
	LastUpdated     time.Time       `json:"lastUpdated"`
	Events          []TrackingEvent `json:"events"`
}

type TrackingEvent struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type StatusUpdateRequest struct {
	TrackingID  string  `json:"trackingId"`
	Status      string  `json:"status"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

type StatusUpdateResponse struct {
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	Timestamp  time.Time `json:"timestamp"`
}
