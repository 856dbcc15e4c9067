package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"showtracker/model"
	"showtracker/pkg/response"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	identities map[string]*model.Identity
}

func (f fakeAuthenticator) Authenticate(_ context.Context, accessToken string) (*model.Identity, error) {
	if identity, ok := f.identities[accessToken]; ok {
		return identity, nil
	}
	return nil, model.ErrInvalidToken
}

func newAuthenticator() fakeAuthenticator {
	return fakeAuthenticator{identities: map[string]*model.Identity{
		"user-token":  {UserId: "u1", Role: model.UserRole},
		"admin-token": {UserId: "a1", Role: model.AdminRole},
	}}
}

func echoIdentity(c *fiber.Ctx) error {
	identity, _ := c.Locals("identity").(*model.Identity)
	if identity == nil {
		return c.SendString("anonymous")
	}
	return c.SendString(identity.UserId)
}

func send(t *testing.T, app *fiber.App, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := make([]byte, 512)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope.ErrorMessage
}

func TestAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", NewAuthMiddleware(newAuthenticator()), echoIdentity)

	code, body := send(t, app, "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "Unauthorized, accessToken not provided", errorMessage(t, body))

	code, body = send(t, app, "Bearer stale")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, response.InvalidToken, errorMessage(t, body))

	code, body = send(t, app, "Bearer user-token")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "u1", body)

	code, body = send(t, app, "user-token")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "u1", body)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", NewOptionalAuthMiddleware(newAuthenticator()), echoIdentity)

	code, body := send(t, app, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "anonymous", body)

	code, body = send(t, app, "Bearer stale")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "anonymous", body)

	code, body = send(t, app, "Bearer user-token")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "u1", body)
}

func TestAdminMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", NewAuthMiddleware(newAuthenticator()), AdminMiddleware, echoIdentity)

	code, body := send(t, app, "Bearer user-token")
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, response.AdminOnly, errorMessage(t, body))

	code, body = send(t, app, "Bearer admin-token")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "a1", body)

	bare := fiber.New()
	bare.Get("/", AdminMiddleware, echoIdentity)
	code, _ = send(t, bare, "")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestLocalhostRegex(t *testing.T) {
	require.True(t, LocalhostRegex.MatchString("http://localhost:3000"))
	require.True(t, LocalhostRegex.MatchString("localhost"))
	require.False(t, LocalhostRegex.MatchString("http://evil.com"))
}
