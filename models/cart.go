package models

import (
	"gorm.io/gorm"
)

// CartItem is one line of the per-service cart a user builds while configuring
// a single service. At most one row exists per (user, service type, room size);
// quantity is always >= 1, a decrement to zero deletes the row.
type CartItem struct {
	gorm.Model
	UserID          uint    `gorm:"index;not null" json:"user_id"`
	ServiceID       uint    `gorm:"index;not null" json:"service_id"`
	ServiceTypeID   uint    `gorm:"not null" json:"service_type_id"`
	ServiceTypeName string  `json:"service_type_name"`
	RoomSize        string  `gorm:"not null" json:"room_size"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int     `gorm:"not null" json:"quantity"`
}

// GlobalCartItem is one line of the cross-service shopping cart that survives
// navigation. Same identity key as CartItem, annotated with the parent service
// for display when the user reviews a multi-service cart.
type GlobalCartItem struct {
	gorm.Model
	UserID          uint    `gorm:"index;not null" json:"user_id"`
	ServiceID       uint    `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServiceImage    string  `json:"service_image"`
	ServiceTypeID   uint    `gorm:"not null" json:"service_type_id"`
	ServiceTypeName string  `json:"service_type_name"`
	RoomSize        string  `gorm:"not null" json:"room_size"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int     `gorm:"not null" json:"quantity"`
}
