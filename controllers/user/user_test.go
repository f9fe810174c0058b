package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorlink/config"
	"tutorlink/database"
	"tutorlink/middleware"
	"tutorlink/models"
	userRoutes "tutorlink/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testDBName(t *testing.T) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
}

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", testDBName(t))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Teacher{}, &models.Package{}, &models.Purchase{}, &models.Lesson{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	api := app.Group("/api")
	userRoutes.SetupUserRoutes(api)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*envelope, int) {
	var r *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	} else {
		r = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return &env, resp.StatusCode
}

func adminToken(t *testing.T, db *gorm.DB) string {
	admin := models.User{Name: "Root", Email: "root@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Email, admin.Role)
	require.NoError(t, err)
	return token
}

func TestCreateUser(t *testing.T) {
	app, _ := setup(t)

	t.Run("explicit role is honoured", func(t *testing.T) {
		env, code := do(t, app, "POST", "/api/users", "", fiber.Map{
			"name":     "Tina",
			"email":    "tina@example.com",
			"password": "secret123",
			"role":     models.RoleTeacher,
		})
		require.Equal(t, fiber.StatusCreated, code)

		var got models.UserSummary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, models.RoleTeacher, got.Role)
	})

	t.Run("omitted role defaults to student", func(t *testing.T) {
		env, code := do(t, app, "POST", "/api/users", "", fiber.Map{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "secret123",
		})
		require.Equal(t, fiber.StatusCreated, code)

		var got models.UserSummary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, models.RoleStudent, got.Role)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, code := do(t, app, "POST", "/api/users", "", fiber.Map{
			"name":     "Alice Again",
			"email":    "alice@example.com",
			"password": "secret123",
		})
		assert.Equal(t, fiber.StatusConflict, code)
	})

	t.Run("bad role fails validation", func(t *testing.T) {
		_, code := do(t, app, "POST", "/api/users", "", fiber.Map{
			"name":     "Bob",
			"email":    "bob@example.com",
			"password": "secret123",
			"role":     "SUPERUSER",
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	})
}

func TestUserAdminOperations(t *testing.T) {
	app, db := setup(t)
	token := adminToken(t, db)

	student := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	t.Run("listing returns summaries without passwords", func(t *testing.T) {
		env, code := do(t, app, "GET", "/api/users", "", nil)
		require.Equal(t, fiber.StatusOK, code)
		assert.NotContains(t, string(env.Data), "password")

		var got []models.UserSummary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
	})

	t.Run("update requires an admin token", func(t *testing.T) {
		_, code := do(t, app, "PUT", fmt.Sprintf("/api/users/%d", student.ID), "", fiber.Map{
			"name": "Alicia",
		})
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("admin merges partial updates", func(t *testing.T) {
		env, code := do(t, app, "PUT", fmt.Sprintf("/api/users/%d", student.ID), token, fiber.Map{
			"name": "Alicia",
		})
		require.Equal(t, fiber.StatusOK, code)

		var got models.UserSummary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("non-admin token is forbidden", func(t *testing.T) {
		studentToken, err := middleware.GenerateJWT(student.ID, student.Name, student.Email, student.Role)
		require.NoError(t, err)

		_, code := do(t, app, "DELETE", fmt.Sprintf("/api/users/%d", student.ID), studentToken, nil)
		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("admin delete is hard and 404s when repeated", func(t *testing.T) {
		_, code := do(t, app, "DELETE", fmt.Sprintf("/api/users/%d", student.ID), token, nil)
		assert.Equal(t, fiber.StatusOK, code)

		_, code = do(t, app, "DELETE", fmt.Sprintf("/api/users/%d", student.ID), token, nil)
		assert.Equal(t, fiber.StatusNotFound, code)
	})
}
