package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// RemoveOneFromCart decrements one unit of a line item; the line is deleted
// when its quantity reaches zero. Removing an absent key is a no-op, not an
// error.
func RemoveOneFromCart(c *gin.Context) {
	utils.LogInfo("RemoveOneFromCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	var req struct {
		ServiceTypeID uint   `json:"service_type_id" binding:"required"`
		RoomSize      string `json:"room_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var serviceID uint
	var item models.CartItem
	if err := config.DB.Where("user_id = ? AND service_type_id = ? AND room_size = ?",
		userID, req.ServiceTypeID, req.RoomSize).First(&item).Error; err != nil {
		// Absent key: nothing to do
		utils.LogInfo("Remove requested for absent cart line, user ID: %d", userID)
		utils.Success(c, "Item not in cart", gin.H{"cart": []gin.H{}})
		return
	}
	serviceID = item.ServiceID

	if item.Quantity > 1 {
		item.Quantity--
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Failed to decrement cart line for user ID: %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
		utils.LogInfo("Decremented quantity to %d for service type %d", item.Quantity, req.ServiceTypeID)
	} else {
		if err := config.DB.Delete(&item).Error; err != nil {
			utils.LogError("Failed to remove cart line for user ID: %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
		utils.LogInfo("Removed cart line for service type %d, room size %s", req.ServiceTypeID, req.RoomSize)
	}

	summary, err := cartSummary(userID, serviceID)
	if err != nil {
		utils.LogError("Failed to fetch updated cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch updated cart", nil)
		return
	}

	utils.Success(c, "Cart updated successfully", summary)
}

// ClearCart empties the user's cart for one service.
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil || serviceID < 1 {
		utils.BadRequest(c, "service_id query parameter is required", nil)
		return
	}

	if err := config.DB.Where("user_id = ? AND service_id = ?", user.ID, serviceID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.LogInfo("Cleared cart for user ID: %d, service ID: %d", user.ID, serviceID)
	utils.Success(c, "Cart cleared successfully", gin.H{
		"cart":        []gin.H{},
		"subtotal":    "0.00",
		"final_total": "0.00",
	})
}
