package controllers

import (
	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSupportTicket opens a new customer query.
//
// POST /user/tickets
func CreateSupportTicket(c *gin.Context) {
	utils.LogInfo("CreateSupportTicket called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	ticket := models.SupportTicket{
		Reference: uuid.New().String(),
		UserID:    user.ID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.TicketStatusOpen,
	}
	if err := config.DB.Create(&ticket).Error; err != nil {
		utils.LogError("Failed to create ticket for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create ticket", nil)
		return
	}

	utils.LogInfo("Ticket %s created for user ID: %d", ticket.Reference, user.ID)
	utils.Success(c, "Support ticket created successfully", gin.H{
		"reference": ticket.Reference,
		"subject":   ticket.Subject,
		"status":    ticket.Status,
	})
}

// ListSupportTickets returns the user's tickets with any admin replies.
//
// GET /user/tickets
func ListSupportTickets(c *gin.Context) {
	utils.LogInfo("ListSupportTickets called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var tickets []models.SupportTicket
	if err := config.DB.Preload("Replies").Where("user_id = ?", user.ID).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		utils.LogError("Failed to fetch tickets for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch tickets", nil)
		return
	}

	var list []gin.H
	for _, ticket := range tickets {
		var replies []gin.H
		for _, reply := range ticket.Replies {
			replies = append(replies, gin.H{
				"message":    reply.Message,
				"created_at": reply.CreatedAt,
			})
		}
		list = append(list, gin.H{
			"reference":  ticket.Reference,
			"subject":    ticket.Subject,
			"message":    ticket.Message,
			"status":     ticket.Status,
			"replies":    replies,
			"created_at": ticket.CreatedAt,
		})
	}

	utils.Success(c, "Tickets retrieved successfully", gin.H{"tickets": list})
}
