package utils

import (
	"time"

	"github.com/hariprabhu571/npc-backend/models"
)

// CouponDiscountFor computes the discount a coupon yields against an order
// amount. Percent coupons are capped at the coupon's MaxDiscount; flat coupons
// never exceed the order amount itself.
func CouponDiscountFor(coupon *models.Coupon, orderAmount float64) float64 {
	var discount float64
	if coupon.Type == "percent" {
		discount = (orderAmount * coupon.Value) / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	} else {
		discount = coupon.Value
	}
	if discount > orderAmount {
		discount = orderAmount
	}
	return Round2(discount)
}

// CheckCouponEligibility validates a coupon against the current time and order
// amount. Returns a human-readable rejection reason, or "" when usable.
func CheckCouponEligibility(coupon *models.Coupon, orderAmount float64, now time.Time) string {
	if !coupon.Active {
		return "Invalid or inactive coupon"
	}
	if now.After(coupon.Expiry) {
		return "Coupon has expired"
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return "Coupon usage limit reached"
	}
	if orderAmount < coupon.MinOrderValue {
		return "Order amount is less than minimum order value for this coupon"
	}
	return ""
}
