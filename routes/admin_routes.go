package routes

import (
	"github.com/hariprabhu571/npc-backend/controllers"
	"github.com/hariprabhu571/npc-backend/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes the admin dashboard routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")

	admin.POST("/login", controllers.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", controllers.AdminLogout)
		protected.GET("/dashboard", controllers.GetDashboardStats)

		// Catalogue management
		protected.GET("/services", controllers.AdminListServices)
		protected.POST("/services", controllers.CreateService)
		protected.PUT("/services/:id", controllers.UpdateService)
		protected.POST("/services/:id/types", controllers.CreateServiceType)
		protected.PUT("/service-types/:id", controllers.UpdateServiceType)
		protected.PUT("/service-types/:id/tiers", controllers.SetPricingTier)
		protected.DELETE("/service-types/:id/tiers", controllers.DeletePricingTier)

		// Coupons
		protected.GET("/coupons", controllers.AdminListCoupons)
		protected.POST("/coupons", controllers.CreateCoupon)
		protected.PUT("/coupons/:id", controllers.UpdateCoupon)
		protected.DELETE("/coupons/:id", controllers.DeleteCoupon)

		// Bookings
		protected.GET("/bookings", controllers.AdminListBookings)
		protected.PUT("/bookings/:id/status", controllers.UpdateBookingStatus)
		protected.PUT("/bookings/:id/assign", controllers.AssignEmployee)

		// Staff
		protected.GET("/employees", controllers.AdminListEmployees)
		protected.POST("/employees", controllers.CreateEmployee)
		protected.PUT("/employees/:id", controllers.UpdateEmployee)
		protected.DELETE("/employees/:id", controllers.DeleteEmployee)

		// Customers
		protected.GET("/users", controllers.AdminListUsers)
		protected.PUT("/users/:id/block", controllers.BlockUser)
		protected.PUT("/users/:id/unblock", controllers.UnblockUser)

		// Support tickets
		protected.GET("/tickets", controllers.AdminListTickets)
		protected.POST("/tickets/:reference/reply", controllers.ReplyToTicket)
		protected.PUT("/tickets/:reference/close", controllers.CloseTicket)

		// Reports
		protected.GET("/reports/bookings/excel", controllers.DownloadBookingReportExcel)
	}
}
