package packageController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorlink/config"
	"tutorlink/database"
	"tutorlink/models"
	packageRoutes "tutorlink/routers/packageRoutes"

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
	packageRoutes.SetupPackageRoutes(api)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (*envelope, int) {
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
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return &env, resp.StatusCode
}

func TestCreatePackage(t *testing.T) {
	app, _ := setup(t)

	t.Run("defaults to active", func(t *testing.T) {
		env, code := do(t, app, "POST", "/api/packages", fiber.Map{
			"name":         "Starter",
			"price":        99.0,
			"lessonsCount": 10,
			"description":  "ten lessons",
		})
		require.Equal(t, fiber.StatusCreated, code)

		var got models.Package
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.True(t, got.IsActive)
		assert.Equal(t, 10, got.LessonsCount)
	})

	t.Run("zero price fails validation", func(t *testing.T) {
		_, code := do(t, app, "POST", "/api/packages", fiber.Map{
			"name":         "Freebie",
			"price":        0,
			"lessonsCount": 5,
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	})

	t.Run("zero lessons fails validation", func(t *testing.T) {
		_, code := do(t, app, "POST", "/api/packages", fiber.Map{
			"name":         "Empty",
			"price":        10.0,
			"lessonsCount": 0,
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	})
}

func TestActivePackageFilter(t *testing.T) {
	app, db := setup(t)

	active := models.Package{Name: "Starter", Price: 99, LessonsCount: 10, IsActive: true}
	retired := models.Package{Name: "Legacy", Price: 49, LessonsCount: 5, IsActive: false}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&retired).Error)

	t.Run("active endpoint hides retired packages", func(t *testing.T) {
		env, code := do(t, app, "GET", "/api/packages/active", nil)
		require.Equal(t, fiber.StatusOK, code)

		var got []models.Package
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, active.ID, got[0].ID)
	})

	t.Run("full listing keeps both", func(t *testing.T) {
		env, code := do(t, app, "GET", "/api/packages", nil)
		require.Equal(t, fiber.StatusOK, code)

		var got []models.Package
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
	})

	t.Run("deactivating leaves existing purchases alone", func(t *testing.T) {
		student := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleStudent}
		require.NoError(t, db.Create(&student).Error)
		purchase := models.Purchase{StudentID: student.ID, PackageID: active.ID, RemainingLessons: 4, Status: models.PurchaseActive}
		require.NoError(t, db.Create(&purchase).Error)

		_, code := do(t, app, "PUT", fmt.Sprintf("/api/packages/%d", active.ID), fiber.Map{
			"isActive": false,
		})
		require.Equal(t, fiber.StatusOK, code)

		var after models.Purchase
		require.NoError(t, db.First(&after, purchase.ID).Error)
		assert.Equal(t, 4, after.RemainingLessons)
		assert.Equal(t, models.PurchaseActive, after.Status)
	})
}

func TestUpdateAndDeletePackage(t *testing.T) {
	app, db := setup(t)

	pkg := models.Package{Name: "Starter", Price: 99, LessonsCount: 10, IsActive: true}
	require.NoError(t, db.Create(&pkg).Error)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		env, code := do(t, app, "PUT", fmt.Sprintf("/api/packages/%d", pkg.ID), fiber.Map{
			"price": 120.0,
		})
		require.Equal(t, fiber.StatusOK, code)

		var got models.Package
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 120.0, got.Price)
		assert.Equal(t, "Starter", got.Name)
		assert.Equal(t, 10, got.LessonsCount)
	})

	t.Run("update on a missing package is a 404", func(t *testing.T) {
		_, code := do(t, app, "PUT", "/api/packages/4242", fiber.Map{"price": 1.0})
		assert.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run("delete is hard and 404s when repeated", func(t *testing.T) {
		_, code := do(t, app, "DELETE", fmt.Sprintf("/api/packages/%d", pkg.ID), nil)
		assert.Equal(t, fiber.StatusOK, code)

		_, code = do(t, app, "DELETE", fmt.Sprintf("/api/packages/%d", pkg.ID), nil)
		assert.Equal(t, fiber.StatusNotFound, code)
	})
}
