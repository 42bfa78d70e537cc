package controllers

import (
	"fmt"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user set by the auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return models.User{}, false
	}
	return user, true
}

// cartSummary formats the per-service cart with its price breakdown the way
// every cart mutation responds.
func cartSummary(userID, serviceID uint) (gin.H, error) {
	details, err := utils.GetCartDetails(userID, serviceID)
	if err != nil {
		return nil, err
	}

	var items []gin.H
	for _, item := range details.Items {
		items = append(items, gin.H{
			"service_type_id":   item.ServiceTypeID,
			"service_type_name": item.ServiceTypeName,
			"room_size":         item.RoomSize,
			"unit_price":        fmt.Sprintf("%.2f", item.UnitPrice),
			"quantity":          item.Quantity,
			"item_total":        fmt.Sprintf("%.2f", utils.Round2(item.UnitPrice*float64(item.Quantity))),
		})
	}

	return gin.H{
		"cart":              items,
		"subtotal":          fmt.Sprintf("%.2f", details.Subtotal),
		"standard_discount": fmt.Sprintf("%.2f", details.StandardDiscount),
		"coupon_code":       details.CouponCode,
		"coupon_discount":   fmt.Sprintf("%.2f", details.CouponDiscount),
		"final_total":       fmt.Sprintf("%.2f", details.FinalTotal),
	}, nil
}
