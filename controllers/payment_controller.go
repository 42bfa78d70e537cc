package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// verifyRazorpaySignature checks the HMAC-SHA256 signature Razorpay returns
// after a successful payment.
func verifyRazorpaySignature(orderID, paymentID, signature string) bool {
	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := orderID + "|" + paymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	generated := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(generated), []byte(signature))
}

// InitiateRazorpayPayment creates a Razorpay order for the current cart total.
// The payment must complete before a booking exists; the booking is created
// only once the client returns with a verified payment.
//
// POST /user/payment/initiate
func InitiateRazorpayPayment(c *gin.Context) {
	utils.LogInfo("InitiateRazorpayPayment called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID
	utils.LogInfo("Processing payment initiation for user ID: %d", userID)

	var req struct {
		ServiceID uint `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request. service_id is required", err.Error())
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
	if details.FinalTotal <= 0 {
		utils.BadRequest(c, "Nothing to pay for this cart", nil)
		return
	}

	// Razorpay expects the amount in paise
	amountPaise := int(math.Round(details.FinalTotal * 100))
	utils.LogInfo("Processing payment amount: %d paise for user ID: %d", amountPaise, userID)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         "booking_rcptid_" + strconv.FormatUint(uint64(userID), 10),
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to create Razorpay order", err.Error())
		return
	}
	rzOrderID := fmt.Sprintf("%v", rzOrder["id"])
	utils.LogInfo("Created Razorpay order %s for user ID: %d", rzOrderID, userID)

	// Track the pending payment so booking submission can match it up later
	payment := models.Payment{
		RazorpayOrderID: rzOrderID,
		Amount:          details.FinalTotal,
		Status:          models.PaymentStatusPending,
		Reference:       "user_" + strconv.FormatUint(uint64(userID), 10),
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record pending payment for user ID: %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to record payment", nil)
		return
	}

	utils.Success(c, "Payment initiated successfully", gin.H{
		"razorpay_order_id": rzOrderID,
		"amount":            amountPaise,
		"amount_display":    fmt.Sprintf("₹%.2f", details.FinalTotal),
		"currency":          "INR",
		"key":               os.Getenv("RAZORPAY_KEY"),
		"user": gin.H{
			"name":  user.FirstName + " " + user.LastName,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}

// PaymentCancelled records that the user backed out of the payment flow.
// The cart is left untouched so checkout can be retried.
//
// POST /user/payment/cancelled
func PaymentCancelled(c *gin.Context) {
	utils.LogInfo("PaymentCancelled called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	userID := user.ID

	var req struct {
		RazorpayOrderID string `json:"razorpay_order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", userID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := config.DB.Model(&models.Payment{}).
		Where("razorpay_order_id = ? AND status = ?", req.RazorpayOrderID, models.PaymentStatusPending).
		Update("status", models.PaymentStatusCancelled).Error; err != nil {
		utils.LogError("Failed to mark payment cancelled for user ID: %d: %v", userID, err)
	}

	utils.LogInfo("Payment cancelled by user ID: %d, order %s", userID, req.RazorpayOrderID)
	utils.Success(c, "Payment cancelled. Your cart is unchanged", gin.H{
		"razorpay_order_id": req.RazorpayOrderID,
	})
}

// UpdatePaymentStatus is the best-effort status webhook the payment page calls
// on failures. Errors are swallowed after logging; the booking flow never
// depends on this endpoint.
//
// POST /user/payment/status
func UpdatePaymentStatus(c *gin.Context) {
	utils.LogInfo("UpdatePaymentStatus called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		RazorpayOrderID string `json:"razorpay_order_id" binding:"required"`
		Status          string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Status != models.PaymentStatusFailed && req.Status != models.PaymentStatusCancelled {
		utils.BadRequest(c, "Status must be failed or cancelled", nil)
		return
	}

	if err := config.DB.Model(&models.Payment{}).
		Where("razorpay_order_id = ? AND status = ?", req.RazorpayOrderID, models.PaymentStatusPending).
		Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update payment status for user ID: %d: %v", user.ID, err)
	}

	utils.Success(c, "Payment status recorded", nil)
}
