package utils

import (
	"testing"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestCartSubtotal(t *testing.T) {
	items := []models.CartItem{
		{ServiceTypeID: 5, RoomSize: "2BHK", UnitPrice: 1000, Quantity: 2},
		{ServiceTypeID: 7, RoomSize: "1BHK", UnitPrice: 750.50, Quantity: 1},
	}
	assert.Equal(t, 2750.50, CartSubtotal(items))
	assert.Equal(t, 0.0, CartSubtotal(nil))
}

func TestStandardDiscount(t *testing.T) {
	assert.Equal(t, 300.0, StandardDiscount(2000))
	assert.Equal(t, 0.0, StandardDiscount(0))
	// 15% of 999.99 is 149.9985, rounded to the minor unit
	assert.Equal(t, 150.0, StandardDiscount(999.99))
}

func TestBookingTotal(t *testing.T) {
	tests := []struct {
		name             string
		subtotal         float64
		standardDiscount float64
		couponDiscount   float64
		want             float64
	}{
		{"no coupon", 2000, 300, 0, 1700},
		{"with coupon", 2000, 300, 500, 1200},
		{"coupon equals remainder", 2000, 300, 1700, 0},
		{"discounts exceed subtotal", 2000, 300, 2000, 0},
		{"zero cart", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BookingTotal(tt.subtotal, tt.standardDiscount, tt.couponDiscount)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestPriceCart(t *testing.T) {
	items := []models.CartItem{
		{ServiceTypeID: 5, RoomSize: "2BHK", UnitPrice: 1000, Quantity: 2},
	}

	summary := PriceCart(items, "", 0)
	assert.Equal(t, 2000.0, summary.Subtotal)
	assert.Equal(t, 300.0, summary.StandardDiscount)
	assert.Equal(t, 1700.0, summary.Total)
	assert.Empty(t, summary.CouponCode)

	withCoupon := PriceCart(items, "WELCOME500", 500)
	assert.Equal(t, "WELCOME500", withCoupon.CouponCode)
	assert.Equal(t, 500.0, withCoupon.CouponDiscount)
	assert.Equal(t, 1200.0, withCoupon.Total)

	// Oversized coupons clamp the total at zero instead of going negative
	clamped := PriceCart(items, "MEGA", 5000)
	assert.Equal(t, 0.0, clamped.Total)
}

func TestPriceCartDoesNotMutateItems(t *testing.T) {
	items := []models.CartItem{
		{ServiceTypeID: 5, RoomSize: "2BHK", UnitPrice: 1000, Quantity: 2},
	}

	first := PriceCart(items, "", 0)
	second := PriceCart(items, "", 0)

	assert.Equal(t, first, second)
	assert.Equal(t, 1000.0, items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.0, Round2(0))
}
