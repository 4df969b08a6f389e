package routes

import (
	"shiftportal/internal/geocode"
	"shiftportal/internal/handler"
	"shiftportal/internal/middleware"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShiftRoutes(app *fiber.App, db *gorm.DB, geocoder geocode.Geocoder) {
	shiftRepo := repository.NewShiftRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	hdl := handler.NewShiftHandler(shiftRepo, branchRepo, roleRepo, geocoder)

	api := app.Group("/api/shifts", middleware.Auth)

	api.Post("/clockin", hdl.ClockIn)
	api.Post("/clockout", hdl.ClockOut)
	api.Get("/", hdl.GetShifts)
}
