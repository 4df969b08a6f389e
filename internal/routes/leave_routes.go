package routes

import (
	"shiftportal/internal/handler"
	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLeaveRepository(db)
	hdl := handler.NewLeaveHandler(repo)

	api := app.Group("/api/leave", middleware.Auth)

	api.Post("/", hdl.Submit)
	api.Get("/", hdl.GetLeaveRequests)

	// Admin decision endpoint
	api.Post("/approval", middleware.Role(model.RoleAdmin), hdl.ProcessApproval)
}
