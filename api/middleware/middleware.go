package middleware

import (
	"context"
	"regexp"
	"showtracker/model"
	"showtracker/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*model.Identity, error)
}

// NewAuthMiddleware rejects requests without a valid access token and stores
// the resolved identity under the "identity" local.
func NewAuthMiddleware(authenticator IAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := bearerToken(c)
		if accessToken == "" {
			return response.ResponseError(c, "Unauthorized, accessToken not provided", fiber.StatusUnauthorized)
		}

		identity, err := authenticator.Authenticate(c.UserContext(), accessToken)
		if err != nil || !identity.Authenticated() {
			return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
		}

		c.Locals("identity", identity)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware resolves the identity when a valid token is sent
// and lets anonymous requests through untouched.
func NewOptionalAuthMiddleware(authenticator IAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := bearerToken(c); accessToken != "" {
			identity, err := authenticator.Authenticate(c.UserContext(), accessToken)
			if err == nil && identity.Authenticated() {
				c.Locals("identity", identity)
			}
		}
		return c.Next()
	}
}

// AdminMiddleware must run after the auth middleware.
func AdminMiddleware(c *fiber.Ctx) error {
	identity, _ := c.Locals("identity").(*model.Identity)
	if !identity.Authenticated() {
		return response.ResponseError(c, response.Unauthenticated, fiber.StatusUnauthorized)
	}
	if identity.Role != model.AdminRole {
		return response.ResponseError(c, response.AdminOnly, fiber.StatusForbidden)
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	accessToken := strings.TrimSpace(c.Get("Authorization", ""))
	strArr := strings.Fields(accessToken)
	if len(strArr) == 2 && strings.EqualFold(strArr[0], "Bearer") {
		return strArr[1]
	}
	if len(strArr) == 1 {
		return strArr[0]
	}
	return ""
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
