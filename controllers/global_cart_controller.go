package controllers

import (
	"fmt"
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// replaceGlobalCart rewrites the user's entire shopping cart collection in one
// transaction. Every mutation persists the full set, never a diff, so a reload
// always reflects the latest state.
func replaceGlobalCart(userID uint, items []models.GlobalCartItem) error {
	tx := config.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.GlobalCartItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].UserID = userID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func loadGlobalCart(userID uint) ([]models.GlobalCartItem, error) {
	var items []models.GlobalCartItem
	err := config.DB.Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

func globalCartResponse(items []models.GlobalCartItem) gin.H {
	var list []gin.H
	for _, item := range items {
		list = append(list, gin.H{
			"service_id":        item.ServiceID,
			"service_name":      item.ServiceName,
			"service_image":     item.ServiceImage,
			"service_type_id":   item.ServiceTypeID,
			"service_type_name": item.ServiceTypeName,
			"room_size":         item.RoomSize,
			"unit_price":        fmt.Sprintf("%.2f", item.UnitPrice),
			"quantity":          item.Quantity,
			"item_total":        fmt.Sprintf("%.2f", utils.Round2(item.UnitPrice*float64(item.Quantity))),
		})
	}
	subtotal := utils.GlobalCartSubtotal(items)
	return gin.H{
		"items":       list,
		"total_items": len(items),
		"subtotal":    fmt.Sprintf("%.2f", utils.Round2(subtotal)),
	}
}

// GetGlobalCart returns the cross-service shopping cart.
func GetGlobalCart(c *gin.Context) {
	utils.LogInfo("GetGlobalCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := loadGlobalCart(user.ID)
	if err != nil {
		utils.LogError("Failed to fetch shopping cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch shopping cart", nil)
		return
	}

	utils.Success(c, "Shopping cart retrieved successfully", globalCartResponse(items))
}

// MergeCartIntoGlobal folds the per-service cart into the persisted shopping
// cart: matching (service_type_id, room_size) entries get quantities summed,
// new pairings are appended with the service name and image. The per-service
// cart is cleared afterwards.
func MergeCartIntoGlobal(c *gin.Context) {
	utils.LogInfo("MergeCartIntoGlobal called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	var req struct {
		ServiceID uint `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ServiceID).Error; err != nil {
		utils.LogError("Service not found: %d", req.ServiceID)
		utils.NotFound(c, "Service not found")
		return
	}

	var cartItems []models.CartItem
	if err := config.DB.Where("user_id = ? AND service_id = ?", userID, req.ServiceID).Order("id asc").Find(&cartItems).Error; err != nil {
		utils.LogError("Failed to fetch cart items for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch cart items", nil)
		return
	}
	if len(cartItems) == 0 {
		utils.BadRequest(c, "Cart is empty, nothing to add", nil)
		return
	}

	global, err := loadGlobalCart(userID)
	if err != nil {
		utils.LogError("Failed to fetch shopping cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch shopping cart", nil)
		return
	}

	merged := utils.MergeGlobalCart(global, cartItems, service.Name, service.ImageURL)
	if err := replaceGlobalCart(userID, merged); err != nil {
		utils.LogError("Failed to persist shopping cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to update shopping cart", nil)
		return
	}

	// The per-service cart is discarded once merged
	if err := config.DB.Where("user_id = ? AND service_id = ?", userID, req.ServiceID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear merged cart for user ID: %d: %v", userID, err)
	}

	utils.LogInfo("Merged %d cart lines into shopping cart for user ID: %d", len(cartItems), userID)
	utils.Success(c, "Items added to shopping cart", globalCartResponse(merged))
}

// UpdateGlobalCartQuantity sets an entry's quantity directly; zero or a
// negative value removes the entry.
func UpdateGlobalCartQuantity(c *gin.Context) {
	utils.LogInfo("UpdateGlobalCartQuantity called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	var req struct {
		ServiceTypeID uint   `json:"service_type_id" binding:"required"`
		RoomSize      string `json:"room_size" binding:"required"`
		Quantity      int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	global, err := loadGlobalCart(userID)
	if err != nil {
		utils.LogError("Failed to fetch shopping cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch shopping cart", nil)
		return
	}

	updated := utils.SetGlobalCartQuantity(global, req.ServiceTypeID, req.RoomSize, req.Quantity)
	if err := replaceGlobalCart(userID, updated); err != nil {
		utils.LogError("Failed to persist shopping cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to update shopping cart", nil)
		return
	}

	utils.LogInfo("Updated shopping cart quantity for user ID: %d, service type %d", userID, req.ServiceTypeID)
	utils.Success(c, "Shopping cart updated successfully", globalCartResponse(updated))
}

// RemoveGlobalCartItem removes an entry from the shopping cart unconditionally.
func RemoveGlobalCartItem(c *gin.Context) {
	utils.LogInfo("RemoveGlobalCartItem called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

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

	global, err := loadGlobalCart(userID)
	if err != nil {
		utils.LogError("Failed to fetch shopping cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch shopping cart", nil)
		return
	}

	updated := utils.RemoveGlobalCartItem(global, uint(serviceTypeID), roomSize)
	if err := replaceGlobalCart(userID, updated); err != nil {
		utils.LogError("Failed to persist shopping cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to update shopping cart", nil)
		return
	}

	utils.LogInfo("Removed shopping cart entry for user ID: %d, service type %d", userID, serviceTypeID)
	utils.Success(c, "Item removed from shopping cart", globalCartResponse(updated))
}
