package classController_test

import (
	"bytes"
	"encoding/json"
	"fithub/config"
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	classRoutes "fithub/routers/classRoutes"
)

func setupClassApp(t *testing.T) *fiber.App {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Class{}))

	database.Database = database.DbInstance{Db: db}

	users := []models.User{
		{Name: "Alice Admin", Email: "admin@fithub.io", Role: models.RoleAdmin},
		{Name: "Ivan Instructor", Email: "ivan@fithub.io", Role: models.RoleInstructor},
		{Name: "Sam Student", Email: "sam@fithub.io", Role: models.RoleStudent},
	}
	require.NoError(t, db.Create(&users).Error)

	app := fiber.New()
	classRoutes.SetupClassRoutes(app)
	return app
}

func roleToken(t *testing.T, email string) string {
	token, err := middleware.GenerateJWT("", email, "")
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target, token string, payload fiber.Map) *http.Request {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func listedClassNames(t *testing.T, app *fiber.App) []string {
	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Class `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	names := make([]string, len(envelope.Data))
	for i, class := range envelope.Data {
		names[i] = class.Name
	}
	return names
}

// A class is created pending and stays out of the public listing until an
// admin approves it. Denied classes never appear.
func TestClassStatusGating(t *testing.T) {
	app := setupClassApp(t)
	db := database.Database.Db

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/new-class", roleToken(t, "ivan@fithub.io"), fiber.Map{
		"name":            "Yoga",
		"instructorName":  "Ivan Instructor",
		"instructorEmail": "ivan@fithub.io",
		"price":           50,
		"availableSeats":  10,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var class models.Class
	require.NoError(t, db.Where("name = ?", "Yoga").First(&class).Error)
	assert.Equal(t, models.ClassStatusPending, class.Status)

	assert.Empty(t, listedClassNames(t, app))

	// Approve, class appears
	resp, err = app.Test(jsonRequest(t, http.MethodPatch, fmt.Sprintf("/class-status/%d", class.ID), roleToken(t, "admin@fithub.io"), fiber.Map{
		"status": models.ClassStatusApproved,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{"Yoga"}, listedClassNames(t, app))

	// Deny another class, it never appears
	denied := models.Class{Name: "Boxing", InstructorEmail: "ivan@fithub.io", AvailableSeats: 5, Status: models.ClassStatusPending}
	require.NoError(t, db.Create(&denied).Error)

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, fmt.Sprintf("/class-status/%d", denied.ID), roleToken(t, "admin@fithub.io"), fiber.Map{
		"status": models.ClassStatusDenied,
		"reason": "Duplicate submission",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{"Yoga"}, listedClassNames(t, app))
}

func TestDenyRequiresReason(t *testing.T) {
	app := setupClassApp(t)
	db := database.Database.Db

	class := models.Class{Name: "Boxing", InstructorEmail: "ivan@fithub.io", AvailableSeats: 5, Status: models.ClassStatusPending}
	require.NoError(t, db.Create(&class).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, fmt.Sprintf("/class-status/%d", class.ID), roleToken(t, "admin@fithub.io"), fiber.Map{
		"status": models.ClassStatusDenied,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStatusTransitionIsAdminOnly(t *testing.T) {
	app := setupClassApp(t)
	db := database.Database.Db

	class := models.Class{Name: "Boxing", InstructorEmail: "ivan@fithub.io", AvailableSeats: 5, Status: models.ClassStatusPending}
	require.NoError(t, db.Create(&class).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, fmt.Sprintf("/class-status/%d", class.ID), roleToken(t, "ivan@fithub.io"), fiber.Map{
		"status": models.ClassStatusApproved,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestNewClassRequiresInstructor(t *testing.T) {
	app := setupClassApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/new-class", roleToken(t, "sam@fithub.io"), fiber.Map{
		"name":           "Pilates",
		"availableSeats": 10,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Admin passes the instructor gate
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/new-class", roleToken(t, "admin@fithub.io"), fiber.Map{
		"name":           "Pilates",
		"availableSeats": 10,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestPopularClassesOrdering(t *testing.T) {
	app := setupClassApp(t)
	db := database.Database.Db

	for i, enrolled := range []int{3, 9, 1, 7, 5, 8, 2, 6} {
		class := models.Class{
			Name:            fmt.Sprintf("Class-%d", i),
			InstructorEmail: "ivan@fithub.io",
			AvailableSeats:  10,
			TotalEnrolled:   enrolled,
			Status:          models.ClassStatusApproved,
		}
		require.NoError(t, db.Create(&class).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/popular-classes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Class `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	require.Len(t, envelope.Data, 6)
	assert.Equal(t, 9, envelope.Data[0].TotalEnrolled)
	for i := 1; i < len(envelope.Data); i++ {
		assert.GreaterOrEqual(t, envelope.Data[i-1].TotalEnrolled, envelope.Data[i].TotalEnrolled)
	}
}
