package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"loon-backend/cache"
	"loon-backend/config"
	"loon-backend/models"
	"loon-backend/repository"
	"loon-backend/routes"
	"loon-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.NotificationLog{},
	)
}

func main() {
	rdb := config.ConnectRedis()
	svcCache := cache.NewServiceCache(rdb)

	bookingRepo := repository.NewBookingRepository(config.DB)
	serviceRepo := repository.NewServiceRepository(config.DB)
	userRepo := repository.NewUserRepository(config.DB)

	notifier := services.NewTwilioNotifier(config.DB)
	catalogSvc := services.NewCatalogService(serviceRepo)
	bookingSvc := services.NewBookingService(bookingRepo, userRepo, serviceRepo, svcCache, notifier)
	dashboardSvc := services.NewDashboardService(bookingRepo, userRepo)

	reminderSvc := services.NewReminderService(bookingRepo, userRepo, notifier)
	reminderSvc.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(catalogSvc, bookingSvc, dashboardSvc, serviceRepo, svcCache)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
