package controllers

import (
	"fmt"
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

func bookingSummary(booking models.Booking) gin.H {
	return gin.H{
		"id":             booking.ID,
		"service_name":   booking.ServiceName,
		"service_date":   booking.ServiceDate.Format("2006-01-02"),
		"time_slot":      booking.TimeSlot,
		"total_amount":   fmt.Sprintf("%.2f", booking.TotalAmount),
		"payment_method": booking.PaymentMethod,
		"payment_status": booking.PaymentStatus,
		"status":         booking.Status,
		"created_at":     booking.CreatedAt,
	}
}

// ListBookings returns the user's bookings newest first.
//
// GET /user/bookings
func ListBookings(c *gin.Context) {
	utils.LogInfo("ListBookings called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Booking{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !models.IsValidBookingStatus(status) {
			utils.BadRequest(c, "Invalid booking status", nil)
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count bookings for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}

	var list []gin.H
	for _, booking := range bookings {
		list = append(list, bookingSummary(booking))
	}

	utils.Success(c, "Bookings retrieved successfully", gin.H{
		"bookings": list,
		"pagination": gin.H{
			"page":      pagination.Page,
			"limit":     pagination.Limit,
			"total":     pagination.Total,
			"last_page": pagination.LastPage,
		},
	})
}

// GetBookingDetails returns one booking with its frozen line items.
//
// GET /user/bookings/:id
func GetBookingDetails(c *gin.Context) {
	utils.LogInfo("GetBookingDetails called")

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
	if err := config.DB.Preload("Items").Preload("Address").
		Where("id = ? AND user_id = ?", bookingID, user.ID).First(&booking).Error; err != nil {
		utils.LogError("Booking not found: %d for user ID: %d", bookingID, user.ID)
		utils.NotFound(c, "Booking not found")
		return
	}

	var items []gin.H
	for _, item := range booking.Items {
		items = append(items, gin.H{
			"service_type_name": item.ServiceTypeName,
			"room_size":         item.RoomSize,
			"unit_price":        fmt.Sprintf("%.2f", item.UnitPrice),
			"quantity":          item.Quantity,
			"total":             fmt.Sprintf("%.2f", item.Total),
		})
	}

	utils.Success(c, "Booking retrieved successfully", gin.H{
		"id":                booking.ID,
		"service_name":      booking.ServiceName,
		"service_date":      booking.ServiceDate.Format("2006-01-02"),
		"time_slot":         booking.TimeSlot,
		"address":           booking.Address,
		"notes":             booking.Notes,
		"items":             items,
		"subtotal":          fmt.Sprintf("%.2f", booking.Subtotal),
		"standard_discount": fmt.Sprintf("%.2f", booking.StandardDiscount),
		"coupon_code":       booking.CouponCode,
		"coupon_discount":   fmt.Sprintf("%.2f", booking.CouponDiscount),
		"total_amount":      fmt.Sprintf("%.2f", booking.TotalAmount),
		"payment_method":    booking.PaymentMethod,
		"payment_status":    booking.PaymentStatus,
		"status":            booking.Status,
		"cancel_reason":     booking.CancelReason,
		"created_at":        booking.CreatedAt,
	})
}

// CancelBooking cancels a booking that has not been completed yet.
//
// POST /user/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	utils.LogInfo("CancelBooking called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID < 1 {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	var booking models.Booking
	if err := config.DB.Where("id = ? AND user_id = ?", bookingID, user.ID).First(&booking).Error; err != nil {
		utils.LogError("Booking not found: %d for user ID: %d", bookingID, user.ID)
		utils.NotFound(c, "Booking not found")
		return
	}

	if !models.CanTransitionBooking(booking.Status, models.BookingStatusCancelled) {
		utils.LogInfo("Booking ID: %d cannot be cancelled from status %s", booking.ID, booking.Status)
		utils.BadRequest(c, fmt.Sprintf("Booking in %s status cannot be cancelled", booking.Status), nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for booking ID: %d: %v", booking.ID, tx.Error)
		utils.InternalServerError(c, "Failed to cancel booking", nil)
		return
	}

	updates := map[string]interface{}{
		"status":        models.BookingStatusCancelled,
		"cancel_reason": req.Reason,
	}
	if booking.PaymentStatus == models.PaymentStatusPending {
		updates["payment_status"] = models.PaymentStatusCancelled
	}
	if err := tx.Model(&booking).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to cancel booking ID: %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to cancel booking", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit cancellation for booking ID: %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to cancel booking", nil)
		return
	}

	utils.LogInfo("Booking ID: %d cancelled by user ID: %d", booking.ID, user.ID)
	utils.Success(c, "Booking cancelled successfully", gin.H{
		"booking_id": booking.ID,
		"status":     models.BookingStatusCancelled,
	})
}
