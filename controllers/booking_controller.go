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

// PlaceBookingRequest carries the booking submission payload. The Razorpay
// fields are required only for online payments, where the payment must already
// be completed before this endpoint is called.
type PlaceBookingRequest struct {
	ServiceID         uint   `json:"service_id" binding:"required"`
	ServiceDate       string `json:"service_date"`
	TimeSlot          string `json:"time_slot"`
	AddressID         uint   `json:"address_id"`
	Address           string `json:"address"`
	Notes             string `json:"notes"`
	PaymentMethod     string `json:"payment_method"`
	TermsAccepted     bool   `json:"terms_accepted"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// PlaceBooking submits the cart as a booking. All field validation runs before
// anything is touched; a rejected request leaves the cart, coupon and payment
// records exactly as they were.
//
// POST /user/bookings
func PlaceBooking(c *gin.Context) {
	utils.LogInfo("PlaceBooking called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID
	utils.LogInfo("Processing booking for user ID: %d", userID)

	var req PlaceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	// Validate everything up front, before any side effects
	problems := utils.ValidateBookingInput(utils.BookingInput{
		ServiceDate:   req.ServiceDate,
		TimeSlot:      req.TimeSlot,
		Address:       req.Address,
		AddressID:     req.AddressID,
		PaymentMethod: req.PaymentMethod,
		TermsAccepted: req.TermsAccepted,
	})
	if len(problems) > 0 {
		utils.LogInfo("Booking validation failed for user ID: %d: %v", userID, problems)
		utils.BadRequest(c, "Please fix the highlighted fields", gin.H{"errors": problems})
		return
	}

	serviceDate, _ := time.Parse("2006-01-02", req.ServiceDate)
	paymentMethod := strings.ToLower(strings.TrimSpace(req.PaymentMethod))

	var service models.Service
	if err := config.DB.First(&service, req.ServiceID).Error; err != nil {
		utils.LogError("Service not found: %d", req.ServiceID)
		utils.NotFound(c, "Service not found")
		return
	}

	details, err := utils.GetCartDetails(userID, req.ServiceID)
	if err != nil {
		utils.LogError("Failed to fetch cart details for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch cart details", nil)
		return
	}
	if len(details.Items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	// Guard against double submission of the same booking
	var pending models.Booking
	if err := config.DB.Where("user_id = ? AND service_id = ? AND service_date = ? AND time_slot = ? AND status = ?",
		userID, req.ServiceID, serviceDate, req.TimeSlot, models.BookingStatusPending).First(&pending).Error; err == nil {
		utils.LogInfo("Duplicate booking submission for user ID: %d, existing booking ID: %d", userID, pending.ID)
		utils.BadRequest(c, "This booking has already been submitted", gin.H{"booking_id": pending.ID})
		return
	}

	paymentStatus := models.PaymentStatusPending
	var verifiedPayment models.Payment
	if paymentMethod == models.PaymentMethodOnline {
		// Online bookings require a completed, verified payment
		if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
			utils.BadRequest(c, "Payment details are required for online bookings", nil)
			return
		}
		if !verifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			utils.LogError("Payment verification failed for user ID: %d, order %s", userID, req.RazorpayOrderID)
			utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
			return
		}
		if err := config.DB.Where("razorpay_order_id = ? AND status = ?",
			req.RazorpayOrderID, models.PaymentStatusPending).First(&verifiedPayment).Error; err != nil {
			utils.LogError("No pending payment found for order %s, user ID: %d", req.RazorpayOrderID, userID)
			utils.BadRequest(c, "No pending payment found for this order", nil)
			return
		}
		if utils.Round2(verifiedPayment.Amount) != utils.Round2(details.FinalTotal) {
			utils.LogError("Payment amount mismatch for user ID: %d. Paid: %.2f, cart: %.2f",
				userID, verifiedPayment.Amount, details.FinalTotal)
			utils.BadRequest(c, "Payment amount does not match the cart total", nil)
			return
		}
		paymentStatus = models.PaymentStatusCompleted
		utils.LogInfo("Payment verified for user ID: %d, order %s", userID, req.RazorpayOrderID)
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user ID: %d: %v", userID, tx.Error)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}

	// Resolve the service address, creating one from free text if needed
	addressID := req.AddressID
	if addressID != 0 {
		var address models.Address
		if err := tx.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
			tx.Rollback()
			utils.LogError("Address not found: %d for user ID: %d", addressID, userID)
			utils.NotFound(c, "Address not found")
			return
		}
	} else {
		address := models.Address{
			UserID: userID,
			Line1:  strings.TrimSpace(req.Address),
		}
		if err := tx.Create(&address).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to save address for user ID: %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to save address", nil)
			return
		}
		addressID = address.ID
	}

	booking := models.Booking{
		UserID:           userID,
		ServiceID:        service.ID,
		ServiceName:      service.Name,
		ServiceDate:      serviceDate,
		TimeSlot:         req.TimeSlot,
		AddressID:        addressID,
		Notes:            req.Notes,
		Subtotal:         details.Subtotal,
		StandardDiscount: details.StandardDiscount,
		CouponCode:       details.CouponCode,
		CouponDiscount:   details.CouponDiscount,
		TotalAmount:      details.FinalTotal,
		PaymentMethod:    paymentMethod,
		PaymentStatus:    paymentStatus,
		RazorpayOrderID:  req.RazorpayOrderID,
		Status:           models.BookingStatusPending,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create booking for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}

	// Freeze the cart lines into the booking
	for _, item := range details.Items {
		bookingItem := models.BookingItem{
			BookingID:       booking.ID,
			ServiceTypeID:   item.ServiceTypeID,
			ServiceTypeName: item.ServiceTypeName,
			RoomSize:        item.RoomSize,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			Total:           utils.Round2(item.UnitPrice * float64(item.Quantity)),
		}
		if err := tx.Create(&bookingItem).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create booking item for booking ID: %d: %v", booking.ID, err)
			utils.InternalServerError(c, "Failed to place booking", nil)
			return
		}
	}

	// Burn the coupon
	if details.CouponCode != "" {
		var coupon models.Coupon
		if err := tx.Where("code = ?", details.CouponCode).First(&coupon).Error; err == nil {
			if err := tx.Model(&coupon).Update("used_count", coupon.UsedCount+1).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to update coupon usage for booking ID: %d: %v", booking.ID, err)
				utils.InternalServerError(c, "Failed to place booking", nil)
				return
			}
			userCoupon := models.UserCoupon{
				UserID:   userID,
				CouponID: coupon.ID,
				UsedAt:   time.Now(),
			}
			if err := tx.Create(&userCoupon).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to record coupon usage for booking ID: %d: %v", booking.ID, err)
				utils.InternalServerError(c, "Failed to place booking", nil)
				return
			}
		}
	}

	// Clear the cart and the active coupon
	if err := tx.Where("user_id = ? AND service_id = ?", userID, req.ServiceID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear cart for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.UserActiveCoupon{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear active coupon for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}

	// Record the payment against the booking
	if paymentMethod == models.PaymentMethodOnline {
		if err := tx.Model(&models.Payment{}).Where("id = ?", verifiedPayment.ID).Updates(map[string]interface{}{
			"booking_id":          booking.ID,
			"razorpay_payment_id": req.RazorpayPaymentID,
			"status":              models.PaymentStatusCompleted,
		}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update payment for booking ID: %d: %v", booking.ID, err)
			utils.InternalServerError(c, "Failed to place booking", nil)
			return
		}
	} else {
		payment := models.Payment{
			BookingID: booking.ID,
			Amount:    details.FinalTotal,
			Status:    models.PaymentStatusPending,
			Reference: fmt.Sprintf("cash_booking_%d", booking.ID),
		}
		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to record payment for booking ID: %d: %v", booking.ID, err)
			utils.InternalServerError(c, "Failed to place booking", nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit booking for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}
	utils.LogInfo("Booking ID: %d placed for user ID: %d, total: %.2f", booking.ID, userID, booking.TotalAmount)

	// Confirmation email and SMS are soft effects; failures only get logged
	emailSent := false
	var full models.Booking
	if err := config.DB.Preload("User").Preload("Address").Preload("Items").First(&full, booking.ID).Error; err != nil {
		utils.LogError("Failed to reload booking ID: %d: %v", booking.ID, err)
	} else {
		if pdf, err := utils.BuildInvoicePDF(&full); err != nil {
			utils.LogError("Failed to build invoice for booking ID: %d: %v", booking.ID, err)
		} else if err := utils.SendBookingConfirmation(&full, pdf); err != nil {
			utils.LogError("Failed to send confirmation email for booking ID: %d: %v", booking.ID, err)
		} else {
			emailSent = true
		}

		if full.User.Phone != "" {
			go func(b models.Booking) {
				if err := utils.SendBookingSMS(b.User.Phone, b.ServiceName,
					b.ServiceDate.Format("2006-01-02"), b.TimeSlot, b.ID); err != nil {
					utils.LogError("Failed to send booking SMS for booking ID: %d: %v", b.ID, err)
				}
			}(full)
		}
	}

	utils.Success(c, "Booking placed successfully", gin.H{
		"booking_id":        booking.ID,
		"service_name":      booking.ServiceName,
		"service_date":      booking.ServiceDate.Format("2006-01-02"),
		"time_slot":         booking.TimeSlot,
		"subtotal":          fmt.Sprintf("%.2f", booking.Subtotal),
		"standard_discount": fmt.Sprintf("%.2f", booking.StandardDiscount),
		"coupon_code":       booking.CouponCode,
		"coupon_discount":   fmt.Sprintf("%.2f", booking.CouponDiscount),
		"total_amount":      fmt.Sprintf("%.2f", booking.TotalAmount),
		"payment_method":    booking.PaymentMethod,
		"payment_status":    booking.PaymentStatus,
		"status":            booking.Status,
		"email_sent":        emailSent,
	})
}
