package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

type addressRequest struct {
	Label      string `json:"label"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

// GetAddresses lists the user's saved service addresses.
func GetAddresses(c *gin.Context) {
	utils.LogInfo("GetAddresses called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", user.ID).Order("is_default desc, id asc").Find(&addresses).Error; err != nil {
		utils.LogError("Failed to fetch addresses for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", nil)
		return
	}

	utils.Success(c, "Addresses retrieved successfully", gin.H{"addresses": addresses})
}

// AddAddress saves a new service address.
func AddAddress(c *gin.Context) {
	utils.LogInfo("AddAddress called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to save address", nil)
		return
	}

	if req.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to reset default address for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to save address", nil)
			return
		}
	}

	address := models.Address{
		UserID:     user.ID,
		Label:      req.Label,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
	}
	if err := tx.Create(&address).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create address for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save address", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to save address", nil)
		return
	}

	utils.LogInfo("Address ID: %d created for user ID: %d", address.ID, user.ID)
	utils.Success(c, "Address saved successfully", gin.H{"address": address})
}

// UpdateAddress edits a saved address.
func UpdateAddress(c *gin.Context) {
	utils.LogInfo("UpdateAddress called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil || addressID < 1 {
		utils.BadRequest(c, "Invalid address ID", nil)
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).First(&address).Error; err != nil {
		utils.LogError("Address not found: %d for user ID: %d", addressID, user.ID)
		utils.NotFound(c, "Address not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	if req.IsDefault && !address.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to reset default address for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update address", nil)
			return
		}
	}

	if err := tx.Model(&address).Updates(map[string]interface{}{
		"label":       req.Label,
		"line1":       req.Line1,
		"line2":       req.Line2,
		"city":        req.City,
		"state":       req.State,
		"country":     req.Country,
		"postal_code": req.PostalCode,
		"is_default":  req.IsDefault,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update address ID: %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	utils.LogInfo("Address ID: %d updated for user ID: %d", address.ID, user.ID)
	utils.Success(c, "Address updated successfully", gin.H{"address": address})
}

// DeleteAddress removes a saved address.
func DeleteAddress(c *gin.Context) {
	utils.LogInfo("DeleteAddress called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil || addressID < 1 {
		utils.BadRequest(c, "Invalid address ID", nil)
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).Delete(&models.Address{})
	if result.Error != nil {
		utils.LogError("Failed to delete address ID: %d: %v", addressID, result.Error)
		utils.InternalServerError(c, "Failed to delete address", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Address not found")
		return
	}

	utils.LogInfo("Address ID: %d deleted for user ID: %d", addressID, user.ID)
	utils.Success(c, "Address deleted successfully", nil)
}

// SetDefaultAddress marks one address as the default for checkout.
func SetDefaultAddress(c *gin.Context) {
	utils.LogInfo("SetDefaultAddress called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil || addressID < 1 {
		utils.BadRequest(c, "Invalid address ID", nil)
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}
	if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to reset default address for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}
	if err := tx.Model(&address).Update("is_default", true).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to set default address ID: %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	utils.LogInfo("Address ID: %d set as default for user ID: %d", address.ID, user.ID)
	utils.Success(c, "Default address updated", gin.H{"address_id": address.ID})
}
