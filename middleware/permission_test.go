package middleware_test

import (
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
)

func setupRoleDB(t *testing.T) {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.Database = database.DbInstance{Db: db}

	users := []models.User{
		{Name: "Alice Admin", Email: "admin@fithub.io", Role: models.RoleAdmin},
		{Name: "Ivan Instructor", Email: "instructor@fithub.io", Role: models.RoleInstructor},
		{Name: "Sam Student", Email: "student@fithub.io", Role: models.RoleStudent},
	}
	require.NoError(t, db.Create(&users).Error)
}

func gatedApp() *fiber.App {
	app := fiber.New()
	app.Get("/instructor-gate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin-gate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

// The admin role is a superset of instructor; a student passes neither gate.
func TestRoleGateHierarchy(t *testing.T) {
	setupRoleDB(t)
	app := gatedApp()

	tests := []struct {
		name  string
		email string
		path  string
		want  int
	}{
		{"admin passes admin gate", "admin@fithub.io", "/admin-gate", fiber.StatusOK},
		{"admin passes instructor gate", "admin@fithub.io", "/instructor-gate", fiber.StatusOK},
		{"instructor passes instructor gate", "instructor@fithub.io", "/instructor-gate", fiber.StatusOK},
		{"instructor rejected by admin gate", "instructor@fithub.io", "/admin-gate", fiber.StatusForbidden},
		{"student rejected by instructor gate", "student@fithub.io", "/instructor-gate", fiber.StatusForbidden},
		{"student rejected by admin gate", "student@fithub.io", "/admin-gate", fiber.StatusForbidden},
		{"unknown caller rejected", "ghost@fithub.io", "/admin-gate", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := middleware.GenerateJWT("", tt.email, "")
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

// The gate reads the stored role on every request, so a promotion takes
// effect without reissuing the token.
func TestRoleGateRereadsRole(t *testing.T) {
	setupRoleDB(t)
	app := gatedApp()

	token, err := middleware.GenerateJWT("Sam Student", "student@fithub.io", models.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/instructor-gate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Promote, same token
	err = database.Database.Db.Model(&models.User{}).
		Where("email = ?", "student@fithub.io").
		Update("role", models.RoleInstructor).Error
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/instructor-gate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
