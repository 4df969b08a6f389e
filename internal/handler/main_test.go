package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"shiftportal/config"
	"shiftportal/internal/database"
	"shiftportal/internal/mailer"
	"shiftportal/internal/meeting"
	"shiftportal/internal/middleware"
	"shiftportal/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubGeocoder stands in for the Nominatim collaborator so tests never
// leave the process.
type stubGeocoder struct{}

func (stubGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	return "Headquarters Plaza, New York"
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	database.SeedAll(db)

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupShiftRoutes(app, db, stubGeocoder{})
	routes.SetupLeaveRoutes(app, db)
	routes.SetupShiftChangeRoutes(app, db, mailer.NewSMTPMailer("", 587, "", "", ""))
	routes.SetupMeetingRoutes(app, db, meeting.NewJitsiLinker("https://meet.jit.si"))
	return app, db
}

func tokenFor(t *testing.T, username, name, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"name":     name,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.JWTSecret())
	require.NoError(t, err)
	return signed
}

func johnToken(t *testing.T) string  { return tokenFor(t, "john", "John Doe", "staff") }
func janeToken(t *testing.T) string  { return tokenFor(t, "jane", "Jane Smith", "staff") }
func adminToken(t *testing.T) string { return tokenFor(t, "admin", "Administrator", "admin") }

// doJSON fires one request through the app and decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

// clockIn creates one open shift for the given token and returns its id.
func clockIn(t *testing.T, app *fiber.App, token string) string {
	t.Helper()
	status, payload := doJSON(t, app, http.MethodPost, "/api/shifts/clockin", token, fiber.Map{
		"branch":    "branch1",
		"role":      "associate",
		"latitude":  0.0,
		"longitude": 0.0,
	})
	require.Equal(t, http.StatusOK, status)
	shift := payload["shift"].(map[string]interface{})
	return shift["id"].(string)
}
