package handler

import (
	"errors"
	"fmt"
	"showtracker/model"
	"showtracker/pkg/catalog"
	errorHandler "showtracker/pkg/error"
	"showtracker/pkg/response"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var reportError = errorHandler.SaveError

func getIdentity(c *fiber.Ctx) *model.Identity {
	identity, _ := c.Locals("identity").(*model.Identity)
	return identity
}

func getShowId(c *fiber.Ctx) (int64, bool) {
	showId, err := strconv.ParseInt(c.Params("showId", ""), 10, 64)
	if err != nil || showId <= 0 {
		return 0, false
	}
	return showId, true
}

// errorResponse maps domain errors to status codes. Anything unknown is
// reported and answered with a generic server error.
func errorResponse(c *fiber.Ctx, err error) error {
	var statusErr *catalog.StatusError
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		return response.ResponseError(c, response.Unauthenticated, fiber.StatusUnauthorized)
	case errors.Is(err, model.ErrInvalidToken):
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	case errors.Is(err, model.ErrInvalidCredentials):
		return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusUnauthorized)
	case errors.Is(err, model.ErrForbidden):
		return response.ResponseError(c, response.AdminOnly, fiber.StatusForbidden)
	case errors.Is(err, model.ErrWrongPassword):
		return response.ResponseError(c, response.OldPassNotMatch, fiber.StatusForbidden)
	case errors.Is(err, model.ErrInvalidShow):
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidRating):
		return response.ResponseError(c, response.InvalidRating, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidPlaylistName), errors.Is(err, model.ErrInvalidProfileName):
		return response.ResponseError(c, response.InvalidName, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrMissingFields):
		return response.ResponseError(c, response.MissingFields, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidEmail):
		return response.ResponseError(c, response.InvalidEmail, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrPasswordMismatch):
		return response.ResponseError(c, response.PasswordMismatch, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrWeakPassword):
		return response.ResponseError(c, response.WeakPassword, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrUnsupportedProvider):
		return response.ResponseError(c, response.UnsupportedAuth, fiber.StatusBadRequest)
	case errors.Is(err, model.ErrReviewNotFound):
		return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
	case errors.Is(err, model.ErrPlaylistNotFound):
		return response.ResponseError(c, response.PlaylistNotFound, fiber.StatusNotFound)
	case errors.Is(err, model.ErrAccountNotFound):
		return response.ResponseError(c, response.AccountNotFound, fiber.StatusNotFound)
	case errors.Is(err, catalog.ErrShowNotFound):
		return response.ResponseError(c, response.ShowNotFound, fiber.StatusNotFound)
	case errors.Is(err, model.ErrEmailAlreadyExist):
		return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusConflict)
	case errors.As(err, &statusErr):
		return catalogErrorResponse(c, err)
	}

	errorMessage := fmt.Sprintf("Error on %s %s: %v", c.Method(), c.Path(), err)
	reportError(errorMessage, err)
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}

// catalogErrorResponse answers catalog failures. Everything except a missing
// show is reported as an upstream outage.
func catalogErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, catalog.ErrShowNotFound) {
		return response.ResponseError(c, response.ShowNotFound, fiber.StatusNotFound)
	}
	errorMessage := fmt.Sprintf("Error on catalog request %s %s: %v", c.Method(), c.Path(), err)
	reportError(errorMessage, err)
	return response.ResponseError(c, response.CatalogUnavailable, fiber.StatusBadGateway)
}
