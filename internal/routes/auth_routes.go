package routes

import (
	"shiftportal/internal/handler"
	"shiftportal/internal/middleware"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewAuthHandler(staffRepo)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
	api.Get("/profile", middleware.Auth, hdl.GetProfile)
}
