package controllers

import (
	"fmt"
	"time"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the headline numbers for the admin dashboard.
//
// GET /admin/dashboard
func GetDashboardStats(c *gin.Context) {
	utils.LogInfo("GetDashboardStats called")

	db := config.DB

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var totalServices int64
	if err := db.Model(&models.Service{}).Where("is_active = ?", true).Count(&totalServices).Error; err != nil {
		utils.LogError("Failed to count services: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var totalBookings int64
	if err := db.Model(&models.Booking{}).Count(&totalBookings).Error; err != nil {
		utils.LogError("Failed to count bookings: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var pendingBookings int64
	if err := db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&pendingBookings).Error; err != nil {
		utils.LogError("Failed to count pending bookings: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var openTickets int64
	if err := db.Model(&models.SupportTicket{}).Where("status = ?", models.TicketStatusOpen).Count(&openTickets).Error; err != nil {
		utils.LogError("Failed to count open tickets: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	// Revenue excludes cancelled bookings
	var totalRevenue float64
	if err := db.Model(&models.Booking{}).Where("status != ?", models.BookingStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue).Error; err != nil {
		utils.LogError("Failed to sum revenue: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	monthStart := time.Now().AddDate(0, 0, -30)
	var monthRevenue float64
	if err := db.Model(&models.Booking{}).
		Where("status != ? AND created_at >= ?", models.BookingStatusCancelled, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&monthRevenue).Error; err != nil {
		utils.LogError("Failed to sum monthly revenue: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	// Today's scheduled visits
	today := time.Now().Format("2006-01-02")
	var todaysBookings []models.Booking
	if err := db.Preload("User").
		Where("service_date = ? AND status IN ?", today, []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Order("time_slot asc").Find(&todaysBookings).Error; err != nil {
		utils.LogError("Failed to fetch today's bookings: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var schedule []gin.H
	for _, booking := range todaysBookings {
		schedule = append(schedule, gin.H{
			"booking_id":   booking.ID,
			"customer":     booking.User.FirstName + " " + booking.User.LastName,
			"service_name": booking.ServiceName,
			"time_slot":    booking.TimeSlot,
			"status":       booking.Status,
		})
	}

	utils.LogInfo("Dashboard stats built: %d bookings, revenue %.2f", totalBookings, totalRevenue)
	utils.Success(c, "Dashboard stats retrieved successfully", gin.H{
		"total_users":      totalUsers,
		"active_services":  totalServices,
		"total_bookings":   totalBookings,
		"pending_bookings": pendingBookings,
		"open_tickets":     openTickets,
		"total_revenue":    fmt.Sprintf("%.2f", utils.Round2(totalRevenue)),
		"month_revenue":    fmt.Sprintf("%.2f", utils.Round2(monthRevenue)),
		"todays_schedule":  schedule,
	})
}
