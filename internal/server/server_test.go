package server

import (
	"net/http"
	"testing"

	"sahayogi/internal/config"
	"sahayogi/internal/database"
	"sahayogi/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// A server built through NewServerWithDeps must handle authenticated traffic
// on its own, with no separate middleware initialization step. The auth
// config is cleared first so any missing wiring in the constructor surfaces
// as a failure here instead of only on a production boot.
func TestNewServerWithDepsConfiguresAuth(t *testing.T) {
	middleware.InitMiddleware(nil)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := &config.Config{
		JWTSecret: "test-secret-key-12345678901234567890123456789012",
		Env:       "test",
	}
	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)

	token := signupUser(t, app, "John Doe", "john@example.com", "elderly")

	status, body := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "john@example.com", body["email"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/requests", token, newRequestPayload())
	assert.Equal(t, http.StatusCreated, status)
}
