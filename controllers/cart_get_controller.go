package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetCart returns the per-service cart with its price breakdown.
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil || serviceID < 1 {
		utils.BadRequest(c, "service_id query parameter is required", nil)
		return
	}

	summary, err := cartSummary(user.ID, uint(serviceID))
	if err != nil {
		utils.LogError("Failed to fetch cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.Success(c, "Cart retrieved successfully", summary)
}

// GetCartQuantity returns the stored quantity for one line item key, zero when
// the key is absent.
func GetCartQuantity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	serviceTypeID, err := strconv.Atoi(c.Query("service_type_id"))
	if err != nil || serviceTypeID < 1 {
		utils.BadRequest(c, "service_type_id query parameter is required", nil)
		return
	}
	roomSize := c.Query("room_size")
	if roomSize == "" {
		utils.BadRequest(c, "room_size query parameter is required", nil)
		return
	}

	quantity := 0
	var item models.CartItem
	if err := config.DB.Where("user_id = ? AND service_type_id = ? AND room_size = ?",
		user.ID, serviceTypeID, roomSize).First(&item).Error; err == nil {
		quantity = item.Quantity
	}

	utils.Success(c, "Quantity retrieved successfully", gin.H{
		"service_type_id": serviceTypeID,
		"room_size":       roomSize,
		"quantity":        quantity,
	})
}
