package main

import (
	"fmt"

	"shiftportal/config"
	"shiftportal/internal/geocode"
	"shiftportal/internal/mailer"
	"shiftportal/internal/meeting"
	"shiftportal/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// External collaborators
	geocoder := geocode.NewNominatim(
		config.GetEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		config.GetEnvAsInt("GEOCODE_TIMEOUT_SECONDS", 5),
	)
	notifier := mailer.NewSMTPMailer(
		config.GetEnv("SMTP_HOST", ""),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
		config.GetEnv("SMTP_FROM", "noreply@shiftportal.local"),
	)
	linker := meeting.NewJitsiLinker(config.GetEnv("MEETING_BASE_URL", "https://meet.jit.si"))

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupShiftRoutes(app, config.DB, geocoder)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupShiftChangeRoutes(app, config.DB, notifier)
	routes.SetupMeetingRoutes(app, config.DB, linker)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Server ready, listening on port :" + port)
	app.Listen(":" + port)
}
