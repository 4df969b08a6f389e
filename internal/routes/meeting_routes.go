package routes

import (
	"shiftportal/internal/handler"
	"shiftportal/internal/meeting"
	"shiftportal/internal/middleware"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMeetingRoutes(app *fiber.App, db *gorm.DB, linker meeting.LinkGenerator) {
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewMeetingHandler(linker, staffRepo)

	api := app.Group("/api", middleware.Auth)

	api.Post("/meetings", hdl.CreateMeeting)
	api.Get("/staff", hdl.GetStaffList)
}
