package handler

import (
	"showtracker/internal/service"
	"showtracker/model"
	"showtracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IWatchlistHandler interface {
	GetWatchlist(c *fiber.Ctx) error
	AddToWatchlist(c *fiber.Ctx) error
	RemoveFromWatchlist(c *fiber.Ctx) error
}

type WatchlistHandler struct {
	watchlistService service.IWatchlistService
}

func NewWatchlistHandler(watchlistService service.IWatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

//------------------------------------------
//------------------------------------------

// GetWatchlist godoc
//
//	@Summary		Watchlist
//	@Description	Shows on the caller's watchlist, newest first.
//	@Tags			Watchlist
//	@Success		200	{object}	[]model.WatchlistEntry
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c *fiber.Ctx) error {
	entries, err := h.watchlistService.GetWatchlist(c.UserContext(), getIdentity(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, entries)
}

// AddToWatchlist godoc
//
//	@Summary		Add To Watchlist
//	@Description	Add a show to the watchlist. Adding it again refreshes the entry.
//	@Tags			Watchlist
//	@Param			show	body		model.Show	true	"show"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/watchlist [put]
func (h *WatchlistHandler) AddToWatchlist(c *fiber.Ctx) error {
	var show model.Show
	if err := c.BodyParser(&show); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.watchlistService.AddToWatchlist(c.UserContext(), getIdentity(c), show); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// RemoveFromWatchlist godoc
//
//	@Summary		Remove From Watchlist
//	@Description	Remove a show from the watchlist. Removing a missing show is a no-op.
//	@Tags			Watchlist
//	@Param			showId	path		integer	true	"showId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/watchlist/{showId} [delete]
func (h *WatchlistHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	if err := h.watchlistService.RemoveFromWatchlist(c.UserContext(), getIdentity(c), showId); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}
