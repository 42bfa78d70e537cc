package models

import (
	"gorm.io/gorm"
)

// Service represents a pest-control service offered to customers
type Service struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	ServiceTypes []ServiceType `json:"service_types" gorm:"foreignKey:ServiceID"`
}

// ServiceType is a treatment variant under a service, e.g. "Cockroach Control"
type ServiceType struct {
	gorm.Model
	ServiceID   uint    `gorm:"index;not null" json:"service_id"`
	Service     Service `json:"-" gorm:"foreignKey:ServiceID"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`

	PricingTiers []PricingTier `json:"pricing_tiers" gorm:"foreignKey:ServiceTypeID"`
}

// PricingTier is the price of a service type for a room-size label, e.g. "1 BHK"
type PricingTier struct {
	gorm.Model
	ServiceTypeID uint    `gorm:"index;not null;uniqueIndex:idx_tier_type_room" json:"service_type_id"`
	RoomSize      string  `gorm:"not null;uniqueIndex:idx_tier_type_room" json:"room_size"`
	Price         float64 `gorm:"not null" json:"price"`
}
