package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// AdminListUsers returns customer accounts with booking counts.
//
// GET /admin/users
func AdminListUsers(c *gin.Context) {
	utils.LogInfo("AdminListUsers called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		query = query.Where("username ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	var list []gin.H
	for _, user := range users {
		var bookings int64
		config.DB.Model(&models.Booking{}).Where("user_id = ?", user.ID).Count(&bookings)
		list = append(list, gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"name":        user.FirstName + " " + user.LastName,
			"phone":       user.Phone,
			"is_blocked":  user.IsBlocked,
			"is_verified": user.IsVerified,
			"bookings":    bookings,
			"created_at":  user.CreatedAt,
		})
	}

	utils.Success(c, "Users retrieved successfully", gin.H{
		"users": list,
		"pagination": gin.H{
			"page":      pagination.Page,
			"limit":     pagination.Limit,
			"total":     pagination.Total,
			"last_page": pagination.LastPage,
		},
	})
}

// BlockUser prevents a customer from logging in or booking.
//
// PUT /admin/users/:id/block
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")
	setUserBlocked(c, true)
}

// UnblockUser restores a blocked customer account.
//
// PUT /admin/users/:id/unblock
func UnblockUser(c *gin.Context) {
	utils.LogInfo("UnblockUser called")
	setUserBlocked(c, false)
}

func setUserBlocked(c *gin.Context, blocked bool) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil || userID < 1 {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.IsBlocked == blocked {
		msg := "User is already unblocked"
		if blocked {
			msg = "User is already blocked"
		}
		utils.BadRequest(c, msg, nil)
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	action := "unblocked"
	if blocked {
		action = "blocked"
	}
	utils.LogInfo("User ID: %d %s", user.ID, action)
	utils.Success(c, "User "+action+" successfully", gin.H{
		"user_id":    user.ID,
		"is_blocked": blocked,
	})
}
