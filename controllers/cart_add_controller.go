package controllers

import (
	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// AddToCart adds one unit of a service-type/room-size pairing to the user's
// per-service cart. An existing line gets its quantity incremented; the same
// pairing is never stored twice.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID
	utils.LogInfo("Processing add to cart for user ID: %d", userID)

	var req struct {
		ServiceTypeID uint   `json:"service_type_id" binding:"required"`
		RoomSize      string `json:"room_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	// Resolve the service type and its tier price
	var serviceType models.ServiceType
	if err := tx.Preload("Service").First(&serviceType, req.ServiceTypeID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Service type not found: %d for user ID: %d", req.ServiceTypeID, userID)
		utils.NotFound(c, "Service type not found")
		return
	}
	if !serviceType.IsActive || !serviceType.Service.IsActive {
		tx.Rollback()
		utils.LogError("Service type %d is inactive", req.ServiceTypeID)
		utils.BadRequest(c, "Service is currently unavailable", nil)
		return
	}

	var tier models.PricingTier
	if err := tx.Where("service_type_id = ? AND room_size = ?", req.ServiceTypeID, req.RoomSize).First(&tier).Error; err != nil {
		tx.Rollback()
		utils.LogError("No pricing tier for service type %d, room size %s", req.ServiceTypeID, req.RoomSize)
		utils.NotFound(c, "No pricing available for this room size")
		return
	}

	// Update or create the cart line
	var successMessage string
	var existing models.CartItem
	if err := tx.Where("user_id = ? AND service_type_id = ? AND room_size = ?", userID, req.ServiceTypeID, req.RoomSize).First(&existing).Error; err == nil {
		existing.Quantity++
		if err := tx.Save(&existing).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update cart line for user ID: %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
		successMessage = "Cart item quantity updated"
		utils.LogInfo("Incremented quantity to %d for service type %d, room size %s", existing.Quantity, req.ServiceTypeID, req.RoomSize)
	} else {
		newItem := models.CartItem{
			UserID:          userID,
			ServiceID:       serviceType.ServiceID,
			ServiceTypeID:   serviceType.ID,
			ServiceTypeName: serviceType.Name,
			RoomSize:        tier.RoomSize,
			UnitPrice:       tier.Price,
			Quantity:        1,
		}
		if err := tx.Create(&newItem).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to add to cart for user ID: %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to add to cart", nil)
			return
		}
		successMessage = "Item added to cart successfully"
		utils.LogInfo("Added new cart line for service type %d, room size %s", req.ServiceTypeID, req.RoomSize)
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to complete cart update", nil)
		return
	}

	summary, err := cartSummary(userID, serviceType.ServiceID)
	if err != nil {
		utils.LogError("Failed to fetch updated cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch updated cart", nil)
		return
	}

	utils.LogInfo("Cart updated for user ID: %d", userID)
	utils.Success(c, successMessage, summary)
}
