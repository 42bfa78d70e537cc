package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// Payment method constants
const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
)

// bookingTransitions lists the allowed booking status transitions.
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// IsValidBookingStatus reports whether s is a known booking status.
func IsValidBookingStatus(s string) bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionBooking reports whether a booking may move from one status to another.
func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	UserID           uint          `gorm:"index" json:"user_id"`
	User             User          `json:"user" gorm:"foreignKey:UserID"`
	ServiceID        uint          `json:"service_id"`
	ServiceName      string        `json:"service_name"`
	ServiceDate      time.Time     `json:"service_date"`
	TimeSlot         string        `json:"time_slot"`
	AddressID        uint          `json:"address_id"`
	Address          Address       `json:"address" gorm:"foreignKey:AddressID"`
	Notes            string        `json:"notes,omitempty"`
	Subtotal         float64       `json:"subtotal"`
	StandardDiscount float64       `json:"standard_discount"`
	CouponCode       string        `json:"coupon_code,omitempty"`
	CouponDiscount   float64       `json:"coupon_discount"`
	TotalAmount      float64       `json:"total_amount"`
	PaymentMethod    string        `json:"payment_method"` // cash, online
	PaymentStatus    string        `json:"payment_status"` // pending, completed, failed, cancelled
	RazorpayOrderID  string        `json:"razorpay_order_id,omitempty"`
	Status           string        `json:"status"`
	EmployeeID       *uint         `json:"employee_id,omitempty"`
	CancelReason     string        `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	Items            []BookingItem `json:"items" gorm:"foreignKey:BookingID"`
}

// BookingItem is the frozen snapshot of one cart line at submission time.
type BookingItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	BookingID       uint    `gorm:"index" json:"booking_id"`
	ServiceTypeID   uint    `json:"service_type_id"`
	ServiceTypeName string  `json:"service_type_name"`
	RoomSize        string  `json:"room_size"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int     `json:"quantity"`
	Total           float64 `json:"total"`
}
