package utils

import (
	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
)

// CartDetails carries a user's per-service cart with the full price breakdown.
type CartDetails struct {
	Items            []models.CartItem
	Subtotal         float64
	StandardDiscount float64
	CouponCode       string
	CouponDiscount   float64
	FinalTotal       float64
}

// GetCartDetails retrieves the cart for one service with all calculations,
// including the user's active coupon if any.
func GetCartDetails(userID, serviceID uint) (*CartDetails, error) {
	db := config.DB
	var cartItems []models.CartItem
	if err := db.Where("user_id = ? AND service_id = ?", userID, serviceID).Order("id asc").Find(&cartItems).Error; err != nil {
		return nil, WrapError(err, "failed to fetch cart items")
	}

	subtotal := CartSubtotal(cartItems)

	// Get active coupon if any
	var couponCode string
	var couponDiscount float64
	var activeUserCoupon models.UserActiveCoupon
	if err := db.Where("user_id = ?", userID).First(&activeUserCoupon).Error; err == nil {
		var coupon models.Coupon
		if err := db.Where("id = ?", activeUserCoupon.CouponID).First(&coupon).Error; err == nil {
			couponCode = coupon.Code
			couponDiscount = CouponDiscountFor(&coupon, subtotal)
		}
	}

	summary := PriceCart(cartItems, couponCode, couponDiscount)
	return &CartDetails{
		Items:            cartItems,
		Subtotal:         summary.Subtotal,
		StandardDiscount: summary.StandardDiscount,
		CouponCode:       summary.CouponCode,
		CouponDiscount:   summary.CouponDiscount,
		FinalTotal:       summary.Total,
	}, nil
}

// MergeGlobalCart folds a per-service cart into the cross-service shopping
// cart. Items matching an existing (service_type_id, room_size) entry have
// quantities summed; everything else is appended annotated with the service
// name and image. The input slices are not mutated.
func MergeGlobalCart(global []models.GlobalCartItem, items []models.CartItem, serviceName, serviceImage string) []models.GlobalCartItem {
	merged := make([]models.GlobalCartItem, len(global))
	copy(merged, global)

	for _, item := range items {
		found := false
		for i := range merged {
			if merged[i].ServiceTypeID == item.ServiceTypeID && merged[i].RoomSize == item.RoomSize {
				merged[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, models.GlobalCartItem{
				UserID:          item.UserID,
				ServiceID:       item.ServiceID,
				ServiceName:     serviceName,
				ServiceImage:    serviceImage,
				ServiceTypeID:   item.ServiceTypeID,
				ServiceTypeName: item.ServiceTypeName,
				RoomSize:        item.RoomSize,
				UnitPrice:       item.UnitPrice,
				Quantity:        item.Quantity,
			})
		}
	}
	return merged
}

// SetGlobalCartQuantity sets an entry's quantity directly; zero or negative
// removes the entry. Unknown keys are a no-op.
func SetGlobalCartQuantity(global []models.GlobalCartItem, serviceTypeID uint, roomSize string, quantity int) []models.GlobalCartItem {
	result := make([]models.GlobalCartItem, 0, len(global))
	for _, entry := range global {
		if entry.ServiceTypeID == serviceTypeID && entry.RoomSize == roomSize {
			if quantity <= 0 {
				continue
			}
			entry.Quantity = quantity
		}
		result = append(result, entry)
	}
	return result
}

// RemoveGlobalCartItem removes an entry unconditionally.
func RemoveGlobalCartItem(global []models.GlobalCartItem, serviceTypeID uint, roomSize string) []models.GlobalCartItem {
	result := make([]models.GlobalCartItem, 0, len(global))
	for _, entry := range global {
		if entry.ServiceTypeID == serviceTypeID && entry.RoomSize == roomSize {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// GlobalCartSubtotal returns the sum of unit price times quantity over the
// shopping cart.
func GlobalCartSubtotal(items []models.GlobalCartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}
