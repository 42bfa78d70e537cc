package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
)

type bookingReportSummary struct {
	TotalBookings     int
	TotalRevenue      float64
	TotalTreatments   int
	TotalCustomers    int
	TotalDiscounts    float64
	CancelledBookings int
	NetRevenue        float64
	AverageBookingVal float64
}

func reportPeriodRange(period string, now time.Time) (time.Time, time.Time, bool) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		end := now.Add(24 * time.Hour)
		return start, end, true
	}
	return time.Time{}, time.Time{}, false
}

func summarizeBookings(bookings []models.Booking) bookingReportSummary {
	var summary bookingReportSummary
	customerSet := make(map[uint]bool)
	for _, booking := range bookings {
		summary.TotalBookings++
		customerSet[booking.UserID] = true
		summary.TotalDiscounts += booking.StandardDiscount + booking.CouponDiscount
		for _, item := range booking.Items {
			summary.TotalTreatments += item.Quantity
		}
		if booking.Status == models.BookingStatusCancelled {
			summary.CancelledBookings++
			continue
		}
		summary.TotalRevenue += booking.TotalAmount
	}
	summary.TotalCustomers = len(customerSet)
	if summary.TotalBookings > 0 {
		summary.AverageBookingVal = math.Round((summary.TotalRevenue/float64(summary.TotalBookings))*100) / 100
	}
	summary.NetRevenue = math.Round(summary.TotalRevenue*100) / 100
	summary.TotalRevenue = math.Round(summary.TotalRevenue*100) / 100
	summary.TotalDiscounts = math.Round(summary.TotalDiscounts*100) / 100
	return summary
}

// DownloadBookingReportExcel exports the booking report as an Excel sheet.
//
// GET /admin/reports/bookings/excel?period=day|week|month
func DownloadBookingReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadBookingReportExcel called")

	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportPeriodRange(period, time.Now())
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}
	utils.LogDebug("Generating Excel report for period: %s", period)

	var bookings []models.Booking
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("User").
		Preload("Items").
		Order("created_at DESC")
	if err := query.Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d bookings for Excel report", len(bookings))

	summary := summarizeBookings(bookings)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Booking Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString("NPC PEST CONTROL - Booking Report")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Email: support@npcpestcontrol.com")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Booking ID", "Customer", "Service", "Service Date", "Slot", "Treatments", "Subtotal", "Discounts", "Total", "Payment", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, booking := range bookings {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(booking.ID))
		row.AddCell().SetString(booking.User.FirstName + " " + booking.User.LastName)
		row.AddCell().SetString(booking.ServiceName)
		row.AddCell().SetString(booking.ServiceDate.Format("2006-01-02"))
		row.AddCell().SetString(booking.TimeSlot)
		row.AddCell().SetInt(len(booking.Items))
		row.AddCell().SetFloat(booking.Subtotal)
		row.AddCell().SetFloat(booking.StandardDiscount + booking.CouponDiscount)
		row.AddCell().SetFloat(booking.TotalAmount)
		row.AddCell().SetString(booking.PaymentMethod)
		row.AddCell().SetString(booking.Status)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Bookings", fmt.Sprintf("%d", summary.TotalBookings)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Treatments", fmt.Sprintf("%d", summary.TotalTreatments)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Total Discounts", fmt.Sprintf("%.2f", summary.TotalDiscounts)},
		{"Cancelled Bookings", fmt.Sprintf("%d", summary.CancelledBookings)},
		{"Net Revenue", fmt.Sprintf("%.2f", summary.NetRevenue)},
		{"Avg. Booking Value", fmt.Sprintf("%.2f", summary.AverageBookingVal)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=booking_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}
