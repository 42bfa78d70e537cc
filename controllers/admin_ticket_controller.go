package controllers

import (
	"fmt"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

func currentAdmin(c *gin.Context) (models.Admin, bool) {
	adminVal, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return models.Admin{}, false
	}
	admin, ok := adminVal.(models.Admin)
	if !ok {
		utils.LogError("Invalid admin type in context")
		utils.InternalServerError(c, "Invalid admin context", nil)
		return models.Admin{}, false
	}
	return admin, true
}

// AdminListTickets returns support tickets, open ones first.
//
// GET /admin/tickets
func AdminListTickets(c *gin.Context) {
	utils.LogInfo("AdminListTickets called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.SupportTicket{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count tickets: %v", err)
		utils.InternalServerError(c, "Failed to fetch tickets", nil)
		return
	}
	pagination.SetTotal(total)

	var tickets []models.SupportTicket
	if err := query.Preload("User").Preload("Replies").
		Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&tickets).Error; err != nil {
		utils.LogError("Failed to fetch tickets: %v", err)
		utils.InternalServerError(c, "Failed to fetch tickets", nil)
		return
	}

	var list []gin.H
	for _, ticket := range tickets {
		list = append(list, gin.H{
			"reference": ticket.Reference,
			"subject":   ticket.Subject,
			"message":   ticket.Message,
			"status":    ticket.Status,
			"customer": gin.H{
				"name":  ticket.User.FirstName + " " + ticket.User.LastName,
				"email": ticket.User.Email,
			},
			"replies":    len(ticket.Replies),
			"created_at": ticket.CreatedAt,
		})
	}

	utils.Success(c, "Tickets retrieved successfully", gin.H{
		"tickets": list,
		"pagination": gin.H{
			"page":      pagination.Page,
			"limit":     pagination.Limit,
			"total":     pagination.Total,
			"last_page": pagination.LastPage,
		},
	})
}

// ReplyToTicket posts an admin reply and emails the customer.
//
// POST /admin/tickets/:reference/reply
func ReplyToTicket(c *gin.Context) {
	utils.LogInfo("ReplyToTicket called")

	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	reference := c.Param("reference")

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var ticket models.SupportTicket
	if err := config.DB.Preload("User").Where("reference = ?", reference).First(&ticket).Error; err != nil {
		utils.LogError("Ticket not found: %s", reference)
		utils.NotFound(c, "Ticket not found")
		return
	}
	if ticket.Status == models.TicketStatusClosed {
		utils.BadRequest(c, "Cannot reply to a closed ticket", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to post reply", nil)
		return
	}

	reply := models.TicketReply{
		TicketID: ticket.ID,
		AdminID:  admin.ID,
		Message:  req.Message,
	}
	if err := tx.Create(&reply).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create reply for ticket %s: %v", reference, err)
		utils.InternalServerError(c, "Failed to post reply", nil)
		return
	}
	if err := tx.Model(&ticket).Update("status", models.TicketStatusAnswered).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update ticket %s: %v", reference, err)
		utils.InternalServerError(c, "Failed to post reply", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to post reply", nil)
		return
	}

	// Notify the customer; a mail failure only gets logged
	go func(email, subject, message string) {
		body := fmt.Sprintf(`
			<h2>We replied to your support ticket</h2>
			<p><b>%s</b></p>
			<p>%s</p>
		`, subject, message)
		if err := utils.SendEmail(email, "Update on your support ticket", body); err != nil {
			utils.LogError("Failed to send ticket reply email: %v", err)
		}
	}(ticket.User.Email, ticket.Subject, req.Message)

	utils.LogInfo("Reply posted on ticket %s by admin ID: %d", reference, admin.ID)
	utils.Success(c, "Reply posted successfully", gin.H{
		"reference": ticket.Reference,
		"status":    models.TicketStatusAnswered,
	})
}

// CloseTicket marks a ticket as resolved.
//
// PUT /admin/tickets/:reference/close
func CloseTicket(c *gin.Context) {
	utils.LogInfo("CloseTicket called")

	reference := c.Param("reference")

	var ticket models.SupportTicket
	if err := config.DB.Where("reference = ?", reference).First(&ticket).Error; err != nil {
		utils.NotFound(c, "Ticket not found")
		return
	}
	if ticket.Status == models.TicketStatusClosed {
		utils.BadRequest(c, "Ticket is already closed", nil)
		return
	}

	if err := config.DB.Model(&ticket).Update("status", models.TicketStatusClosed).Error; err != nil {
		utils.LogError("Failed to close ticket %s: %v", reference, err)
		utils.InternalServerError(c, "Failed to close ticket", nil)
		return
	}

	utils.LogInfo("Ticket %s closed", reference)
	utils.Success(c, "Ticket closed successfully", gin.H{
		"reference": ticket.Reference,
		"status":    models.TicketStatusClosed,
	})
}
