package main

import (
	"fmt"
	"log"

	"lina-nails-backend/config"
	"lina-nails-backend/metrics"
	"lina-nails-backend/models"
	"lina-nails-backend/routes"
	"lina-nails-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	config.ConnectDB(cfg)
	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Appointment{},
	)

	reminderMetrics := metrics.NewReminderMetrics(nil)
	repo := services.NewGormAppointmentRepository(config.DB)
	sender := services.NewWhatsAppSender(cfg)
	reminderService := services.NewReminderService(cfg, repo, sender, reminderMetrics)

	scheduler := reminderService.StartScheduler()
	defer scheduler.Stop()

	r := routes.SetupRouter(reminderService)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
