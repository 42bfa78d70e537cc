package controllers

import (
	"fmt"
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetCheckoutSummary returns everything the checkout page needs in one call:
// the priced cart, the user's saved addresses and the active coupon if any.
func GetCheckoutSummary(c *gin.Context) {
	utils.LogInfo("GetCheckoutSummary called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil || serviceID < 1 {
		utils.BadRequest(c, "service_id query parameter is required", nil)
		return
	}

	details, err := utils.GetCartDetails(userID, uint(serviceID))
	if err != nil {
		utils.LogError("Failed to fetch cart details for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch cart details", nil)
		return
	}
	if len(details.Items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
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

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", userID).Order("is_default desc, id asc").Find(&addresses).Error; err != nil {
		utils.LogError("Failed to fetch addresses for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", nil)
		return
	}

	utils.LogInfo("Checkout summary built for user ID: %d, total: %.2f", userID, details.FinalTotal)
	utils.Success(c, "Checkout summary retrieved successfully", gin.H{
		"items":             items,
		"subtotal":          fmt.Sprintf("%.2f", details.Subtotal),
		"standard_discount": fmt.Sprintf("%.2f", details.StandardDiscount),
		"coupon_code":       details.CouponCode,
		"coupon_discount":   fmt.Sprintf("%.2f", details.CouponDiscount),
		"final_total":       fmt.Sprintf("%.2f", details.FinalTotal),
		"addresses":         addresses,
	})
}
