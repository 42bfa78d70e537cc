package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// ValidateCoupon checks a code against an order amount without applying it.
// The SPA calls this as the user types so the discount preview stays honest.
func ValidateCoupon(c *gin.Context) {
	utils.LogInfo("ValidateCoupon called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		CouponCode  string  `json:"coupon_code" binding:"required"`
		OrderAmount float64 `json:"order_amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.CouponCode))

	var coupon models.Coupon
	if err := config.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		utils.LogError("Coupon not found: %s", code)
		utils.NotFound(c, "Invalid or inactive coupon")
		return
	}

	if reason := utils.CheckCouponEligibility(&coupon, req.OrderAmount, time.Now()); reason != "" {
		utils.LogInfo("Coupon %s rejected for user ID: %d: %s", code, user.ID, reason)
		utils.BadRequest(c, reason, nil)
		return
	}

	var used models.UserCoupon
	if err := config.DB.Where("user_id = ? AND coupon_id = ?", user.ID, coupon.ID).First(&used).Error; err == nil {
		utils.LogInfo("Coupon %s already used by user ID: %d", code, user.ID)
		utils.BadRequest(c, "You have already used this coupon", nil)
		return
	}

	discount := utils.CouponDiscountFor(&coupon, req.OrderAmount)
	utils.LogInfo("Coupon %s valid for user ID: %d, discount: %.2f", code, user.ID, discount)
	utils.Success(c, "Coupon is valid", gin.H{
		"coupon_code":     coupon.Code,
		"discount_amount": fmt.Sprintf("%.2f", discount),
	})
}

// ApplyCoupon attaches a coupon to the user's cart. Only one coupon may be
// active at a time; applying a second code is rejected until the first is
// removed.
func ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	var req struct {
		CouponCode string `json:"coupon_code" binding:"required"`
		ServiceID  uint   `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.CouponCode))

	var active models.UserActiveCoupon
	if err := config.DB.Where("user_id = ?", userID).First(&active).Error; err == nil {
		utils.LogInfo("User ID: %d already has coupon %s applied", userID, active.Code)
		utils.BadRequest(c, "A coupon is already applied. Remove it before applying another", nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		utils.LogError("Coupon not found: %s", code)
		utils.NotFound(c, "Invalid or inactive coupon")
		return
	}

	var items []models.CartItem
	if err := config.DB.Where("user_id = ? AND service_id = ?", userID, req.ServiceID).Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}
	if len(items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	orderAmount := utils.Round2(utils.CartSubtotal(items))

	if reason := utils.CheckCouponEligibility(&coupon, orderAmount, time.Now()); reason != "" {
		utils.LogInfo("Coupon %s rejected for user ID: %d: %s", code, userID, reason)
		utils.BadRequest(c, reason, nil)
		return
	}

	var used models.UserCoupon
	if err := config.DB.Where("user_id = ? AND coupon_id = ?", userID, coupon.ID).First(&used).Error; err == nil {
		utils.BadRequest(c, "You have already used this coupon", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	record := models.UserActiveCoupon{
		UserID:    userID,
		CouponID:  coupon.ID,
		Code:      coupon.Code,
		AppliedAt: time.Now(),
	}
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to apply coupon for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	discount := utils.CouponDiscountFor(&coupon, orderAmount)
	summary, err := cartSummary(userID, req.ServiceID)
	if err != nil {
		utils.LogError("Failed to build cart summary for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.LogInfo("Coupon %s applied for user ID: %d, discount: %.2f", code, userID, discount)
	utils.Success(c, "Coupon applied successfully", gin.H{
		"coupon_code":     coupon.Code,
		"discount_amount": fmt.Sprintf("%.2f", discount),
		"cart":            summary,
	})
}

// RemoveCoupon detaches the active coupon. Removing when nothing is applied
// still succeeds; the outcome is the same either way.
func RemoveCoupon(c *gin.Context) {
	utils.LogInfo("RemoveCoupon called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	if err := config.DB.Where("user_id = ?", userID).Delete(&models.UserActiveCoupon{}).Error; err != nil {
		utils.LogError("Failed to remove coupon for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to remove coupon", nil)
		return
	}

	utils.LogInfo("Coupon removed for user ID: %d", userID)
	utils.Success(c, "Coupon removed successfully", gin.H{
		"coupon_code":     "",
		"discount_amount": "0.00",
	})
}
