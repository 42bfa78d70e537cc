package controllers

import (
	"strings"
	"time"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// ForgotPassword emails a reset OTP to a registered address.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Do not reveal whether the address exists
		utils.Success(c, "If the email is registered, an OTP has been sent", nil)
		return
	}

	otp := utils.GenerateOTP()
	record := models.UserOTP{
		Email:     email,
		OTP:       otp,
		Purpose:   "password_reset",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		utils.LogError("Failed to store reset OTP for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	if err := utils.SendPasswordResetOTP(email, otp); err != nil {
		utils.LogError("Failed to send reset OTP to %s: %v", email, err)
		utils.InternalServerError(c, "Failed to send OTP email", nil)
		return
	}

	utils.LogInfo("Password reset OTP sent to %s", email)
	utils.Success(c, "If the email is registered, an OTP has been sent", nil)
}

// ResetPassword sets a new password after OTP verification.
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req struct {
		Email       string `json:"email" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !utils.IsValidPassword(req.NewPassword) {
		utils.BadRequest(c, "Password must be at least 8 characters with upper, lower and digit", nil)
		return
	}

	var record models.UserOTP
	if err := config.DB.Where("email = ? AND purpose = ?", email, "password_reset").
		Order("created_at desc").First(&record).Error; err != nil {
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}
	if time.Now().After(record.ExpiresAt) || record.OTP != req.OTP {
		utils.LogError("Invalid reset OTP for %s", email)
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.InternalServerError(c, "Failed to process password", nil)
		return
	}

	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Update("password", hash).Error; err != nil {
		utils.LogError("Failed to update password for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	// One-shot OTP
	config.DB.Delete(&record)

	utils.LogInfo("Password reset completed for %s", email)
	utils.Success(c, "Password reset successful", nil)
}
