package models

import (
	"gorm.io/gorm"
)

// Employee is a field technician or office staff member managed by the admin.
type Employee struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"` // Technician, Supervisor, Office
	ServiceArea string `json:"service_area"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
