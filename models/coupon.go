package models

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"uniqueIndex" json:"code"`
	Type          string         `json:"type"` // "flat" or "percent"
	Value         float64        `json:"value"`
	MinOrderValue float64        `json:"min_order_value"`
	MaxDiscount   float64        `json:"max_discount"`
	Expiry        time.Time      `json:"expiry"`
	UsageLimit    int            `json:"usage_limit"`
	UsedCount     int            `json:"used_count"`
	Active        bool           `json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type UserCoupon struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `json:"user_id"`
	CouponID uint      `json:"coupon_id"`
	UsedAt   time.Time `json:"used_at"`
}

// UserActiveCoupon tracks the currently applied coupon for each user.
// The unique index on UserID enforces at most one active coupon; applying a
// new code requires removing the current one first.
type UserActiveCoupon struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	CouponID  uint      `json:"coupon_id"`
	Code      string    `json:"code"`
	AppliedAt time.Time `json:"applied_at"`
}
