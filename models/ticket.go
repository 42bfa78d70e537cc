package models

import (
	"time"

	"gorm.io/gorm"
)

// Support ticket status constants
const (
	TicketStatusOpen     = "open"
	TicketStatusAnswered = "answered"
	TicketStatusClosed   = "closed"
)

// SupportTicket is a customer query handled from the admin dashboard.
type SupportTicket struct {
	gorm.Model
	Reference string        `gorm:"uniqueIndex" json:"reference"`
	UserID    uint          `gorm:"index;not null" json:"user_id"`
	User      User          `json:"user" gorm:"foreignKey:UserID"`
	Subject   string        `gorm:"not null" json:"subject"`
	Message   string        `gorm:"not null" json:"message"`
	Status    string        `gorm:"default:open" json:"status"`
	Replies   []TicketReply `json:"replies" gorm:"foreignKey:TicketID"`
}

type TicketReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"index;not null" json:"ticket_id"`
	AdminID   uint      `json:"admin_id"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
