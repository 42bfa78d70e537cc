package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// AdminListCoupons returns all coupons with usage counts.
//
// GET /admin/coupons
func AdminListCoupons(c *gin.Context) {
	utils.LogInfo("AdminListCoupons called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Coupon{})
	if search := c.Query("search"); search != "" {
		query = query.Where("code ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}
	pagination.SetTotal(total)

	var coupons []models.Coupon
	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	utils.Success(c, "Coupons retrieved successfully", gin.H{
		"coupons": coupons,
		"pagination": gin.H{
			"page":      pagination.Page,
			"limit":     pagination.Limit,
			"total":     pagination.Total,
			"last_page": pagination.LastPage,
		},
	})
}

type couponRequest struct {
	Code          string  `json:"code" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Value         float64 `json:"value" binding:"required"`
	MinOrderValue float64 `json:"min_order_value"`
	MaxDiscount   float64 `json:"max_discount"`
	Expiry        string  `json:"expiry" binding:"required"`
	UsageLimit    int     `json:"usage_limit"`
	Active        bool    `json:"active"`
}

func (r couponRequest) validate() string {
	if r.Type != "flat" && r.Type != "percent" {
		return "Coupon type must be flat or percent"
	}
	if r.Value <= 0 {
		return "Coupon value must be greater than zero"
	}
	if r.Type == "percent" && r.Value > 100 {
		return "Percent coupons cannot exceed 100"
	}
	return ""
}

// CreateCoupon adds a new coupon code.
//
// POST /admin/coupons
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	expiry, err := time.Parse("2006-01-02", req.Expiry)
	if err != nil {
		utils.BadRequest(c, "Expiry must be in YYYY-MM-DD format", nil)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	var existing models.Coupon
	if err := config.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		utils.BadRequest(c, "A coupon with this code already exists", nil)
		return
	}

	coupon := models.Coupon{
		Code:          code,
		Type:          req.Type,
		Value:         req.Value,
		MinOrderValue: req.MinOrderValue,
		MaxDiscount:   req.MaxDiscount,
		Expiry:        expiry.Add(24*time.Hour - time.Second),
		UsageLimit:    req.UsageLimit,
		Active:        req.Active,
	}
	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", nil)
		return
	}

	utils.LogInfo("Coupon %s created", coupon.Code)
	utils.Success(c, "Coupon created successfully", gin.H{"coupon": coupon})
}

// UpdateCoupon edits an existing coupon.
//
// PUT /admin/coupons/:id
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil || couponID < 1 {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var req struct {
		Value         *float64 `json:"value"`
		MinOrderValue *float64 `json:"min_order_value"`
		MaxDiscount   *float64 `json:"max_discount"`
		Expiry        string   `json:"expiry"`
		UsageLimit    *int     `json:"usage_limit"`
		Active        *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, couponID).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Value != nil {
		if *req.Value <= 0 {
			utils.BadRequest(c, "Coupon value must be greater than zero", nil)
			return
		}
		updates["value"] = *req.Value
	}
	if req.MinOrderValue != nil {
		updates["min_order_value"] = *req.MinOrderValue
	}
	if req.MaxDiscount != nil {
		updates["max_discount"] = *req.MaxDiscount
	}
	if req.Expiry != "" {
		expiry, err := time.Parse("2006-01-02", req.Expiry)
		if err != nil {
			utils.BadRequest(c, "Expiry must be in YYYY-MM-DD format", nil)
			return
		}
		updates["expiry"] = expiry.Add(24*time.Hour - time.Second)
	}
	if req.UsageLimit != nil {
		updates["usage_limit"] = *req.UsageLimit
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&coupon).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update coupon ID: %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	utils.LogInfo("Coupon %s updated", coupon.Code)
	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": coupon})
}

// DeleteCoupon soft-deletes a coupon so existing bookings keep their codes.
//
// DELETE /admin/coupons/:id
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil || couponID < 1 {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	result := config.DB.Delete(&models.Coupon{}, couponID)
	if result.Error != nil {
		utils.LogError("Failed to delete coupon ID: %d: %v", couponID, result.Error)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Coupon not found")
		return
	}

	utils.LogInfo("Coupon ID: %d deleted", couponID)
	utils.Success(c, "Coupon deleted successfully", nil)
}
