package routes

import (
	"github.com/hariprabhu571/npc-backend/controllers"
	"github.com/hariprabhu571/npc-backend/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all customer-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	// Service catalogue
	router.GET("/services", controllers.GetServices)
	router.GET("/services/:id", controllers.GetServiceDetails)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.LogoutUser)

		// Per-service cart operations
		protected.POST("/cart/add", controllers.AddToCart)
		protected.GET("/cart", controllers.GetCart)
		protected.GET("/cart/quantity", controllers.GetCartQuantity)
		protected.DELETE("/cart/remove", controllers.RemoveOneFromCart)
		protected.DELETE("/cart/clear", controllers.ClearCart)

		// Cross-service shopping cart
		protected.GET("/shopping-cart", controllers.GetGlobalCart)
		protected.POST("/shopping-cart/add", controllers.MergeCartIntoGlobal)
		protected.PUT("/shopping-cart/quantity", controllers.UpdateGlobalCartQuantity)
		protected.DELETE("/shopping-cart/remove", controllers.RemoveGlobalCartItem)

		// Coupons
		protected.POST("/coupons/validate", controllers.ValidateCoupon)
		protected.POST("/coupons/apply", controllers.ApplyCoupon)
		protected.DELETE("/coupons/remove", controllers.RemoveCoupon)

		// Checkout and payment
		protected.GET("/checkout", controllers.GetCheckoutSummary)
		protected.POST("/payment/initiate", controllers.InitiateRazorpayPayment)
		protected.POST("/payment/cancelled", controllers.PaymentCancelled)
		protected.POST("/payment/status", controllers.UpdatePaymentStatus)

		// Bookings
		protected.POST("/bookings", controllers.PlaceBooking)
		protected.GET("/bookings", controllers.ListBookings)
		protected.GET("/bookings/:id", controllers.GetBookingDetails)
		protected.POST("/bookings/:id/cancel", controllers.CancelBooking)
		protected.GET("/bookings/:id/invoice", controllers.DownloadInvoice)

		// Addresses
		protected.GET("/addresses", controllers.GetAddresses)
		protected.POST("/addresses", controllers.AddAddress)
		protected.PUT("/addresses/:id", controllers.UpdateAddress)
		protected.DELETE("/addresses/:id", controllers.DeleteAddress)
		protected.PUT("/addresses/:id/default", controllers.SetDefaultAddress)

		// Support tickets
		protected.POST("/tickets", controllers.CreateSupportTicket)
		protected.GET("/tickets", controllers.ListSupportTickets)
	}
}
