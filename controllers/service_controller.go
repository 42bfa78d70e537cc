package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetServices lists active services for the storefront.
func GetServices(c *gin.Context) {
	utils.LogInfo("GetServices called")

	pagination := utils.NewPagination(c)
	search := c.Query("search")

	query := config.DB.Model(&models.Service{}).Where("is_active = ?", true)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count services: %v", err)
		utils.InternalServerError(c, "Failed to fetch services", nil)
		return
	}

	var services []models.Service
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Order("name asc").Find(&services).Error; err != nil {
		utils.LogError("Failed to fetch services: %v", err)
		utils.InternalServerError(c, "Failed to fetch services", nil)
		return
	}

	var list []gin.H
	for _, s := range services {
		list = append(list, gin.H{
			"id":          s.ID,
			"name":        s.Name,
			"description": s.Description,
			"image_url":   s.ImageURL,
		})
	}

	utils.SuccessWithPagination(c, "Services retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

// GetServiceDetails returns one service with its types and room-size pricing
// tiers, the data the cart picks line items from.
func GetServiceDetails(c *gin.Context) {
	utils.LogInfo("GetServiceDetails called")

	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid service ID", nil)
		return
	}

	var service models.Service
	if err := config.DB.Preload("ServiceTypes", "is_active = ?", true).
		Preload("ServiceTypes.PricingTiers").
		Where("id = ? AND is_active = ?", serviceID, true).First(&service).Error; err != nil {
		utils.LogError("Service not found: %d", serviceID)
		utils.NotFound(c, "Service not found")
		return
	}

	var types []gin.H
	for _, st := range service.ServiceTypes {
		var tiers []gin.H
		for _, tier := range st.PricingTiers {
			tiers = append(tiers, gin.H{
				"id":        tier.ID,
				"room_size": tier.RoomSize,
				"price":     tier.Price,
			})
		}
		types = append(types, gin.H{
			"id":            st.ID,
			"name":          st.Name,
			"description":   st.Description,
			"pricing_tiers": tiers,
		})
	}

	utils.LogInfo("Retrieved service %d with %d types", service.ID, len(service.ServiceTypes))
	utils.Success(c, "Service retrieved successfully", gin.H{
		"id":            service.ID,
		"name":          service.Name,
		"description":   service.Description,
		"image_url":     service.ImageURL,
		"service_types": types,
	})
}
