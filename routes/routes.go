package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"loon-backend/cache"
	"loon-backend/config"
	"loon-backend/controllers"
	"loon-backend/services"
	"loon-backend/utils"
)

func SetupRouter(
	catalog *services.CatalogService,
	bookings *services.BookingService,
	dashboard *services.DashboardService,
	serviceStore services.ServiceStore,
	svcCache *cache.ServiceCache,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	catalogCtl := &controllers.CatalogController{Catalog: catalog}
	bookingCtl := &controllers.BookingController{Bookings: bookings, Services: serviceStore}
	dashboardCtl := &controllers.DashboardController{Dashboard: dashboard}
	profileCtl := &controllers.ProfileController{Cache: svcCache}

	auth := r.Group("/auth")
	{
		auth.POST("/signup/user", controllers.SignUpUser)
		auth.POST("/signup/salon", controllers.SignUpSalon)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		api.GET("/services/search", catalogCtl.Search)

		// Customer routes
		bookingsGroup := api.Group("/bookings", utils.RequireAccountType(utils.AccountTypeUser))
		{
			bookingsGroup.POST("", bookingCtl.CreateBooking)
			bookingsGroup.GET("/mine", bookingCtl.MyBookings)
			bookingsGroup.PUT("/:id/cancel", bookingCtl.CancelBooking)
		}

		// Salon routes
		salon := api.Group("/salon", utils.RequireAccountType(utils.AccountTypeSalon))
		{
			salon.GET("/dashboard", dashboardCtl.GetSalonDashboard)
			salon.PUT("/bookings/:id/approve", bookingCtl.ApproveBooking)
			salon.GET("/profile", profileCtl.GetSalonProfile)
			salon.PUT("/profile", profileCtl.UpdateSalonProfile)
			salon.DELETE("/account", profileCtl.DeleteSalonAccount)
		}
	}

	return r
}
