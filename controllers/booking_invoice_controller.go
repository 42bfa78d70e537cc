package controllers

import (
	"fmt"
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// DownloadInvoice streams the booking invoice as a PDF.
//
// GET /user/bookings/:id/invoice
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID < 1 {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Address").Preload("Items").
		Where("id = ? AND user_id = ?", bookingID, user.ID).First(&booking).Error; err != nil {
		utils.LogError("Booking not found: %d for user ID: %d", bookingID, user.ID)
		utils.NotFound(c, "Booking not found")
		return
	}

	if booking.Status == models.BookingStatusCancelled {
		utils.BadRequest(c, "Invoices are not available for cancelled bookings", nil)
		return
	}

	pdf, err := utils.BuildInvoicePDF(&booking)
	if err != nil {
		utils.LogError("Failed to build invoice for booking ID: %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	utils.LogInfo("Invoice generated for booking ID: %d, user ID: %d", booking.ID, user.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", booking.ID))
	c.Data(200, "application/pdf", pdf)
}
