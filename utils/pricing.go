package utils

import (
	"math"

	"github.com/hariprabhu571/npc-backend/models"
)

// StandardDiscountRate is the flat promotional discount applied to every
// booking's subtotal, independent of any coupon. Business policy; change here
// only.
const StandardDiscountRate = 0.15

// Round2 rounds an amount to two decimal places. Intermediate pricing math
// stays unrounded; rounding happens only where a value leaves the system.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// CartSubtotal returns the sum of unit price times quantity over the cart.
func CartSubtotal(items []models.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}

// StandardDiscount returns the flat promotional discount for a subtotal,
// rounded to the currency's minor unit.
func StandardDiscount(subtotal float64) float64 {
	return Round2(subtotal * StandardDiscountRate)
}

// BookingTotal returns the amount payable after the standard and coupon
// discounts. The result is clamped at zero; combined discounts can never push
// a booking total negative.
func BookingTotal(subtotal, standardDiscount, couponDiscount float64) float64 {
	total := Round2(subtotal - standardDiscount - couponDiscount)
	if total < 0 {
		return 0
	}
	return total
}

// PricingSummary carries the full price breakdown for a cart snapshot.
type PricingSummary struct {
	Subtotal         float64
	StandardDiscount float64
	CouponCode       string
	CouponDiscount   float64
	Total            float64
}

// PriceCart computes the complete breakdown for a cart with an optional coupon
// discount already resolved by the coupon validator.
func PriceCart(items []models.CartItem, couponCode string, couponDiscount float64) PricingSummary {
	subtotal := CartSubtotal(items)
	standard := StandardDiscount(subtotal)
	return PricingSummary{
		Subtotal:         Round2(subtotal),
		StandardDiscount: standard,
		CouponCode:       couponCode,
		CouponDiscount:   Round2(couponDiscount),
		Total:            BookingTotal(subtotal, standard, couponDiscount),
	}
}
