package routes

import (
	"shiftportal/internal/handler"
	"shiftportal/internal/mailer"
	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShiftChangeRoutes(app *fiber.App, db *gorm.DB, notifier mailer.Mailer) {
	repo := repository.NewShiftChangeRepository(db)
	shiftRepo := repository.NewShiftRepository(db) // needed for snapshots
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewShiftChangeHandler(repo, shiftRepo, staffRepo, notifier)

	api := app.Group("/api/shift-changes", middleware.Auth)

	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetShiftChangeRequests)
	api.Post("/respond", hdl.Respond)

	// Admin decision endpoint
	api.Post("/approval", middleware.Role(model.RoleAdmin), hdl.ProcessApproval)
}
