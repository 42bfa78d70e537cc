package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// AdminListServices returns every service including inactive ones.
//
// GET /admin/services
func AdminListServices(c *gin.Context) {
	utils.LogInfo("AdminListServices called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Service{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count services: %v", err)
		utils.InternalServerError(c, "Failed to fetch services", nil)
		return
	}
	pagination.SetTotal(total)

	var services []models.Service
	if err := query.Preload("ServiceTypes.PricingTiers").
		Order("id asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&services).Error; err != nil {
		utils.LogError("Failed to fetch services: %v", err)
		utils.InternalServerError(c, "Failed to fetch services", nil)
		return
	}

	utils.Success(c, "Services retrieved successfully", gin.H{
		"services": services,
		"pagination": gin.H{
			"page":      pagination.Page,
			"limit":     pagination.Limit,
			"total":     pagination.Total,
			"last_page": pagination.LastPage,
		},
	})
}

// CreateService adds a new pest-control service.
//
// POST /admin/services
func CreateService(c *gin.Context) {
	utils.LogInfo("CreateService called")

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var existing models.Service
	if err := config.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.BadRequest(c, "A service with this name already exists", nil)
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if err := config.DB.Create(&service).Error; err != nil {
		utils.LogError("Failed to create service: %v", err)
		utils.InternalServerError(c, "Failed to create service", nil)
		return
	}

	utils.LogInfo("Service ID: %d created", service.ID)
	utils.Success(c, "Service created successfully", gin.H{"service": service})
}

// UpdateService edits a service's details or toggles its visibility.
//
// PUT /admin/services/:id
func UpdateService(c *gin.Context) {
	utils.LogInfo("UpdateService called")

	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil || serviceID < 1 {
		utils.BadRequest(c, "Invalid service ID", nil)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		utils.NotFound(c, "Service not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&service).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update service ID: %d: %v", service.ID, err)
		utils.InternalServerError(c, "Failed to update service", nil)
		return
	}

	utils.LogInfo("Service ID: %d updated", service.ID)
	utils.Success(c, "Service updated successfully", gin.H{"service": service})
}

// CreateServiceType adds a treatment variant under a service.
//
// POST /admin/services/:id/types
func CreateServiceType(c *gin.Context) {
	utils.LogInfo("CreateServiceType called")

	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil || serviceID < 1 {
		utils.BadRequest(c, "Invalid service ID", nil)
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		utils.NotFound(c, "Service not found")
		return
	}

	serviceType := models.ServiceType{
		ServiceID:   service.ID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := config.DB.Create(&serviceType).Error; err != nil {
		utils.LogError("Failed to create service type: %v", err)
		utils.InternalServerError(c, "Failed to create service type", nil)
		return
	}

	utils.LogInfo("Service type ID: %d created under service ID: %d", serviceType.ID, service.ID)
	utils.Success(c, "Service type created successfully", gin.H{"service_type": serviceType})
}

// UpdateServiceType edits a treatment variant.
//
// PUT /admin/service-types/:id
func UpdateServiceType(c *gin.Context) {
	utils.LogInfo("UpdateServiceType called")

	typeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || typeID < 1 {
		utils.BadRequest(c, "Invalid service type ID", nil)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, typeID).Error; err != nil {
		utils.NotFound(c, "Service type not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&serviceType).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update service type ID: %d: %v", serviceType.ID, err)
		utils.InternalServerError(c, "Failed to update service type", nil)
		return
	}

	utils.Success(c, "Service type updated successfully", gin.H{"service_type": serviceType})
}

// SetPricingTier creates or updates the price for a room size under a
// treatment. Each (service type, room size) pair holds exactly one price.
//
// PUT /admin/service-types/:id/tiers
func SetPricingTier(c *gin.Context) {
	utils.LogInfo("SetPricingTier called")

	typeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || typeID < 1 {
		utils.BadRequest(c, "Invalid service type ID", nil)
		return
	}

	var req struct {
		RoomSize string  `json:"room_size" binding:"required"`
		Price    float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Price <= 0 {
		utils.BadRequest(c, "Price must be greater than zero", nil)
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, typeID).Error; err != nil {
		utils.NotFound(c, "Service type not found")
		return
	}

	var tier models.PricingTier
	err = config.DB.Where("service_type_id = ? AND room_size = ?", serviceType.ID, req.RoomSize).First(&tier).Error
	if err != nil {
		tier = models.PricingTier{
			ServiceTypeID: serviceType.ID,
			RoomSize:      req.RoomSize,
			Price:         utils.Round2(req.Price),
		}
		if err := config.DB.Create(&tier).Error; err != nil {
			utils.LogError("Failed to create pricing tier: %v", err)
			utils.InternalServerError(c, "Failed to save pricing tier", nil)
			return
		}
	} else {
		if err := config.DB.Model(&tier).Update("price", utils.Round2(req.Price)).Error; err != nil {
			utils.LogError("Failed to update pricing tier ID: %d: %v", tier.ID, err)
			utils.InternalServerError(c, "Failed to save pricing tier", nil)
			return
		}
	}

	utils.LogInfo("Pricing tier saved for service type ID: %d, room size: %s", serviceType.ID, req.RoomSize)
	utils.Success(c, "Pricing tier saved successfully", gin.H{"pricing_tier": tier})
}

// DeletePricingTier removes a room-size price from a treatment.
//
// DELETE /admin/service-types/:id/tiers
func DeletePricingTier(c *gin.Context) {
	utils.LogInfo("DeletePricingTier called")

	typeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || typeID < 1 {
		utils.BadRequest(c, "Invalid service type ID", nil)
		return
	}
	roomSize := c.Query("room_size")
	if roomSize == "" {
		utils.BadRequest(c, "room_size query parameter is required", nil)
		return
	}

	result := config.DB.Where("service_type_id = ? AND room_size = ?", typeID, roomSize).Delete(&models.PricingTier{})
	if result.Error != nil {
		utils.LogError("Failed to delete pricing tier: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete pricing tier", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Pricing tier not found")
		return
	}

	utils.Success(c, "Pricing tier deleted successfully", nil)
}
