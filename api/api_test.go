package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"showtracker/internal/handler"
	"showtracker/model"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, accessToken string) (*model.Identity, error) {
	if accessToken == "user-token" {
		return &model.Identity{UserId: "u1", Role: model.UserRole}, nil
	}
	return nil, model.ErrInvalidToken
}

func newTestRouter() *fiber.App {
	return InitRouter(Handlers{
		Account:   handler.NewAccountHandler(nil),
		Watchlist: handler.NewWatchlistHandler(nil),
		Review:    handler.NewReviewHandler(nil),
		Playlist:  handler.NewPlaylistHandler(nil),
		Show:      handler.NewShowHandler(nil, nil, nil),
		Profile:   handler.NewProfileHandler(nil),
		Admin:     handler.NewAdminHandler(nil),
	}, stubAuthenticator{})
}

func statusOf(t *testing.T, app *fiber.App, method string, target string, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	app := newTestRouter()
	require.Equal(t, http.StatusOK, statusOf(t, app, http.MethodGet, "/", ""))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestRouter()
	for _, target := range []string{"/v1/watchlist", "/v1/reviews", "/v1/favorites", "/v1/playlists", "/v1/profile", "/v1/auth/me"} {
		require.Equal(t, http.StatusUnauthorized, statusOf(t, app, http.MethodGet, target, ""), target)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app := newTestRouter()
	require.Equal(t, http.StatusUnauthorized, statusOf(t, app, http.MethodGet, "/v1/admin/configs", ""))
	require.Equal(t, http.StatusForbidden, statusOf(t, app, http.MethodGet, "/v1/admin/configs", "user-token"))
}

func TestTimeoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(timeoutMiddleware(20 * time.Millisecond))
	app.Get("/slow", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return nil
	})
	app.Get("/fast", func(c *fiber.Ctx) error {
		_, ok := c.UserContext().Deadline()
		require.True(t, ok)
		return c.SendStatus(http.StatusNoContent)
	})

	require.Equal(t, http.StatusGatewayTimeout, statusOf(t, app, http.MethodGet, "/slow", ""))
	require.Equal(t, http.StatusNoContent, statusOf(t, app, http.MethodGet, "/fast", ""))
}
