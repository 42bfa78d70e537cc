package utils

import (
	"testing"
	"time"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestCouponDiscountFor(t *testing.T) {
	tests := []struct {
		name        string
		coupon      models.Coupon
		orderAmount float64
		want        float64
	}{
		{
			name:        "flat coupon",
			coupon:      models.Coupon{Type: "flat", Value: 500},
			orderAmount: 2000,
			want:        500,
		},
		{
			name:        "flat coupon capped at order amount",
			coupon:      models.Coupon{Type: "flat", Value: 500},
			orderAmount: 300,
			want:        300,
		},
		{
			name:        "percent coupon",
			coupon:      models.Coupon{Type: "percent", Value: 10},
			orderAmount: 2000,
			want:        200,
		},
		{
			name:        "percent coupon capped at max discount",
			coupon:      models.Coupon{Type: "percent", Value: 50, MaxDiscount: 400},
			orderAmount: 2000,
			want:        400,
		},
		{
			name:        "percent coupon without max discount",
			coupon:      models.Coupon{Type: "percent", Value: 50},
			orderAmount: 2000,
			want:        1000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CouponDiscountFor(&tt.coupon, tt.orderAmount))
		})
	}
}

func TestCheckCouponEligibility(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	valid := models.Coupon{
		Code:          "WELCOME",
		Type:          "flat",
		Value:         500,
		MinOrderValue: 1000,
		Expiry:        now.AddDate(0, 1, 0),
		UsageLimit:    100,
		UsedCount:     10,
		Active:        true,
	}

	assert.Empty(t, CheckCouponEligibility(&valid, 2000, now))

	inactive := valid
	inactive.Active = false
	assert.Equal(t, "Invalid or inactive coupon", CheckCouponEligibility(&inactive, 2000, now))

	expired := valid
	expired.Expiry = now.AddDate(0, 0, -1)
	assert.Equal(t, "Coupon has expired", CheckCouponEligibility(&expired, 2000, now))

	exhausted := valid
	exhausted.UsedCount = 100
	assert.Equal(t, "Coupon usage limit reached", CheckCouponEligibility(&exhausted, 2000, now))

	assert.Equal(t,
		"Order amount is less than minimum order value for this coupon",
		CheckCouponEligibility(&valid, 500, now))

	// Zero usage limit means unlimited
	unlimited := valid
	unlimited.UsageLimit = 0
	unlimited.UsedCount = 9999
	assert.Empty(t, CheckCouponEligibility(&unlimited, 2000, now))
}
