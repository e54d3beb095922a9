package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/container"
	"github.com/joshua-takyi/kost/internal/events"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/metrics"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full router over a container without a database,
// so every store call fails with a store error.
func newTestRouter(t *testing.T) (*gin.Engine, *helpers.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := helpers.NewTokenManager("route-test-secret-route-test-secret", time.Hour)
	c := container.NewContainer(logger, nil, "kost_test", models.NopListingCache{}, events.Nop{}, tokens, metrics.New("kost_test"))

	var r *gin.Engine
	require.NotPanics(t, func() {
		r = SetupRoutes(c, Options{AllowedOrigins: []string{"http://localhost:3000"}})
	})
	return r, tokens
}

func TestSetupRoutes_RegistersEveryRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/v1/health",
		"GET /api/v1/metrics",
		"POST /api/v1/users/register",
		"POST /api/v1/users/login",
		"POST /api/v1/users/logout",
		"GET /api/v1/users/profile",
		"PUT /api/v1/users/profile",
		"GET /api/v1/listings",
		"GET /api/v1/listings/:id",
		"POST /api/v1/listings",
		"PATCH /api/v1/listings/:id/status",
		"GET /api/v1/listings/owner/:owner_id",
		"GET /api/v1/rooms/listing/:listing_id",
		"POST /api/v1/rooms",
		"PUT /api/v1/rooms/:id",
		"DELETE /api/v1/rooms/:id",
		"POST /api/v1/reviews",
		"GET /api/v1/reviews/listing/:listing_id",
		"GET /api/v1/favourites",
		"POST /api/v1/favourites/:listing_id",
		"DELETE /api/v1/favourites/:listing_id",
		"POST /api/v1/bookings",
		"GET /api/v1/bookings",
		"GET /api/v1/bookings/user/:user_id",
		"GET /api/v1/bookings/:id",
		"PATCH /api/v1/bookings/:id/status",
		"GET /api/v1/contracts",
		"GET /api/v1/contracts/user/:user_id",
		"GET /api/v1/transactions",
		"GET /api/v1/transactions/user/:user_id",
		"POST /api/v1/messages",
		"GET /api/v1/messages/rooms",
		"GET /api/v1/messages/:listing_id/:user1_id/:user2_id",
		"PATCH /api/v1/messages/:listing_id/:user_id/read",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestSetupRoutes_Health(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupRoutes_ProtectedRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/profile"},
		{http.MethodPost, "/api/v1/listings"},
		{http.MethodGet, "/api/v1/rooms/listing/65e1c0ffee0000000000abcd"},
		{http.MethodGet, "/api/v1/favourites"},
		{http.MethodGet, "/api/v1/bookings"},
		{http.MethodGet, "/api/v1/bookings/65e1c0ffee0000000000abcd"},
		{http.MethodGet, "/api/v1/contracts/user/65e1c0ffee0000000000abcd"},
		{http.MethodGet, "/api/v1/transactions"},
		{http.MethodGet, "/api/v1/messages/rooms"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSetupRoutes_StoreFailureIsGeneric500(t *testing.T) {
	r, tokens := newTestRouter(t)
	token, err := tokens.IssueToken("65e1c0ffee0000000000abcd", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "mongodb")
}
