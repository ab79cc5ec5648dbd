package routes

import (
	"barbearia_matheus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients    = "/clients"
	PathServices   = "/services"
	PathAttendance = "/attendance"
	PathAdmins     = "/admins"
	PathReports    = "/reports"
)

func addBarbershopRoutes(
	rg *gin.RouterGroup,
	requireAdmin gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	serviceHandler *handlers.ServiceHandler,
	attendanceHandler *handlers.AttendanceHandler,
	reportHandler *handlers.ReportHandler,
) {
	clients := rg.Group(PathClients)
	{
		// Public: self-registration and passwordless login.
		clients.POST("/", clientHandler.Register)
		clients.POST("/login", authHandler.ClientLogin)
		clients.GET("/:id/attendances", attendanceHandler.ListByClient)

		// Admin: client base management.
		clients.GET("/", requireAdmin, clientHandler.List)
		clients.GET("/:id", requireAdmin, clientHandler.GetByID)
		clients.PUT("/:id", requireAdmin, clientHandler.Update)
		clients.DELETE("/:id", requireAdmin, clientHandler.Delete)
		clients.POST("/auto-inactivate", requireAdmin, clientHandler.AutoInactivate)
		clients.POST("/:id/reactivate", requireAdmin, clientHandler.Reactivate)
	}

	services := rg.Group(PathServices)
	{
		// The catalog is public to read (the booking screen lists it).
		services.GET("/", serviceHandler.List)
		services.GET("/:id", serviceHandler.GetByID)

		services.POST("/", requireAdmin, serviceHandler.Create)
		services.PUT("/:id", requireAdmin, serviceHandler.Update)
		services.DELETE("/:id", requireAdmin, serviceHandler.Delete)
	}

	attendance := rg.Group(PathAttendance)
	{
		// Public: clients book their own attendances.
		attendance.POST("/", attendanceHandler.Create)

		attendance.GET("/today", requireAdmin, attendanceHandler.GetToday)
		attendance.GET("/:id", requireAdmin, attendanceHandler.GetByID)
		attendance.PUT("/:id", requireAdmin, attendanceHandler.UpdateStatus)
		attendance.POST("/:id/advance", requireAdmin, attendanceHandler.Advance)
		attendance.POST("/:id/payment", requireAdmin, attendanceHandler.SettlePayment)
		attendance.DELETE("/:id/payment", requireAdmin, attendanceHandler.CancelPayment)
	}

	admins := rg.Group(PathAdmins)
	{
		admins.POST("/login", authHandler.AdminLogin)
		admins.POST("/logout", requireAdmin, authHandler.AdminLogout)
	}

	reports := rg.Group(PathReports, requireAdmin)
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/summary-by-period", reportHandler.SummaryByPeriod)
		reports.GET("/top-clients", reportHandler.TopClients)
		reports.GET("/revenue-chart", reportHandler.RevenueChart)
		reports.GET("/recent-activities", reportHandler.RecentActivities)
		reports.GET("/export", reportHandler.ExportCSV)
	}
}
