package controllers

import (
	"fmt"
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// AdminListBookings returns all bookings with optional status and date filters.
//
// GET /admin/bookings
func AdminListBookings(c *gin.Context) {
	utils.LogInfo("AdminListBookings called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		if !models.IsValidBookingStatus(status) {
			utils.BadRequest(c, "Invalid booking status", nil)
			return
		}
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("service_date = ?", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := query.Preload("User").Preload("Address").
		Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}

	var list []gin.H
	for _, booking := range bookings {
		entry := bookingSummary(booking)
		entry["customer"] = gin.H{
			"id":    booking.User.ID,
			"name":  booking.User.FirstName + " " + booking.User.LastName,
			"email": booking.User.Email,
			"phone": booking.User.Phone,
		}
		entry["employee_id"] = booking.EmployeeID
		list = append(list, entry)
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

// UpdateBookingStatus moves a booking through its lifecycle. Only the
// transitions the status machine allows go through; completing a cash booking
// also settles its payment.
//
// PUT /admin/bookings/:id/status
func UpdateBookingStatus(c *gin.Context) {
	utils.LogInfo("UpdateBookingStatus called")

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID < 1 {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if !models.IsValidBookingStatus(req.Status) {
		utils.BadRequest(c, "Invalid booking status", nil)
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}

	if !models.CanTransitionBooking(booking.Status, req.Status) {
		utils.LogInfo("Rejected transition %s -> %s for booking ID: %d", booking.Status, req.Status, booking.ID)
		utils.BadRequest(c, fmt.Sprintf("Cannot move booking from %s to %s", booking.Status, req.Status), nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for booking ID: %d: %v", booking.ID, tx.Error)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.BookingStatusCancelled {
		updates["cancel_reason"] = req.Reason
		if booking.PaymentStatus == models.PaymentStatusPending {
			updates["payment_status"] = models.PaymentStatusCancelled
		}
	}
	if req.Status == models.BookingStatusCompleted && booking.PaymentMethod == models.PaymentMethodCash {
		// Cash is collected on site, so completion settles the payment
		updates["payment_status"] = models.PaymentStatusCompleted
		if err := tx.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).
			Update("status", models.PaymentStatusCompleted).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to settle payment for booking ID: %d: %v", booking.ID, err)
			utils.InternalServerError(c, "Failed to update booking", nil)
			return
		}
	}

	if err := tx.Model(&booking).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update booking ID: %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit booking update for booking ID: %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}

	utils.LogInfo("Booking ID: %d moved to %s", booking.ID, req.Status)
	utils.Success(c, "Booking status updated successfully", gin.H{
		"booking_id": booking.ID,
		"status":     req.Status,
	})
}

// AssignEmployee attaches a technician to a booking.
//
// PUT /admin/bookings/:id/assign
func AssignEmployee(c *gin.Context) {
	utils.LogInfo("AssignEmployee called")

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID < 1 {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var req struct {
		EmployeeID uint `json:"employee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}
	if booking.Status == models.BookingStatusCompleted || booking.Status == models.BookingStatusCancelled {
		utils.BadRequest(c, fmt.Sprintf("Cannot assign staff to a %s booking", booking.Status), nil)
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, req.EmployeeID).Error; err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}
	if !employee.IsActive {
		utils.BadRequest(c, "Employee is not active", nil)
		return
	}

	if err := config.DB.Model(&booking).Update("employee_id", employee.ID).Error; err != nil {
		utils.LogError("Failed to assign employee to booking ID: %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to assign employee", nil)
		return
	}

	utils.LogInfo("Employee ID: %d assigned to booking ID: %d", employee.ID, booking.ID)
	utils.Success(c, "Employee assigned successfully", gin.H{
		"booking_id":  booking.ID,
		"employee_id": employee.ID,
		"employee":    employee.Name,
	})
}
