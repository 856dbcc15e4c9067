package handler

import (
	"showtracker/internal/service"
	"showtracker/model"
	"showtracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IPlaylistHandler interface {
	GetPlaylists(c *fiber.Ctx) error
	CreatePlaylist(c *fiber.Ctx) error
	DeletePlaylist(c *fiber.Ctx) error
	GetPlaylistItems(c *fiber.Ctx) error
	AddToPlaylist(c *fiber.Ctx) error
	RemoveFromPlaylist(c *fiber.Ctx) error
	RecountPlaylist(c *fiber.Ctx) error
}

type PlaylistHandler struct {
	playlistService service.IPlaylistService
}

func NewPlaylistHandler(playlistService service.IPlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
	}
}

//------------------------------------------
//------------------------------------------

// GetPlaylists godoc
//
//	@Summary		Playlists
//	@Description	The caller's playlists, newest first.
//	@Tags			Playlist
//	@Success		200	{object}	[]model.Playlist
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists [get]
func (h *PlaylistHandler) GetPlaylists(c *fiber.Ctx) error {
	playlists, err := h.playlistService.GetPlaylists(c.UserContext(), getIdentity(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, playlists)
}

// CreatePlaylist godoc
//
//	@Summary		Create Playlist
//	@Description	Create an empty playlist.
//	@Tags			Playlist
//	@Param			playlist	body		model.CreatePlaylistReq	true	"name"
//	@Success		201			{object}	model.Playlist
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *fiber.Ctx) error {
	var req model.CreatePlaylistReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	playlist, err := h.playlistService.CreatePlaylist(c.UserContext(), getIdentity(c), req.Name)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseCreated(c, playlist)
}

// DeletePlaylist godoc
//
//	@Summary		Delete Playlist
//	@Description	Delete a playlist together with its items.
//	@Tags			Playlist
//	@Param			playlistId	path		string	true	"playlistId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *fiber.Ctx) error {
	if err := h.playlistService.DeletePlaylist(c.UserContext(), getIdentity(c), c.Params("playlistId", "")); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// GetPlaylistItems godoc
//
//	@Summary		Playlist Items
//	@Description	Shows in a playlist, most recently added first.
//	@Tags			Playlist
//	@Param			playlistId	path		string	true	"playlistId"
//	@Success		200			{object}	[]model.PlaylistItem
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists/{playlistId}/items [get]
func (h *PlaylistHandler) GetPlaylistItems(c *fiber.Ctx) error {
	items, err := h.playlistService.GetPlaylistItems(c.UserContext(), getIdentity(c), c.Params("playlistId", ""))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, items)
}

// AddToPlaylist godoc
//
//	@Summary		Add To Playlist
//	@Description	Add a show to a playlist and make its poster the playlist cover.
//	@Tags			Playlist
//	@Param			playlistId	path		string		true	"playlistId"
//	@Param			show		body		model.Show	true	"show"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists/{playlistId}/items [put]
func (h *PlaylistHandler) AddToPlaylist(c *fiber.Ctx) error {
	var show model.Show
	if err := c.BodyParser(&show); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.playlistService.AddToPlaylist(c.UserContext(), getIdentity(c), c.Params("playlistId", ""), show); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// RemoveFromPlaylist godoc
//
//	@Summary		Remove From Playlist
//	@Description	Remove a show from a playlist.
//	@Tags			Playlist
//	@Param			playlistId	path		string	true	"playlistId"
//	@Param			showId		path		integer	true	"showId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists/{playlistId}/items/{showId} [delete]
func (h *PlaylistHandler) RemoveFromPlaylist(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	if err := h.playlistService.RemoveFromPlaylist(c.UserContext(), getIdentity(c), c.Params("playlistId", ""), showId); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// RecountPlaylist godoc
//
//	@Summary		Recount Playlist
//	@Description	Recompute the item count of a playlist from its members.
//	@Tags			Playlist
//	@Param			playlistId	path		string	true	"playlistId"
//	@Success		200			{object}	model.Playlist
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/playlists/{playlistId}/recount [put]
func (h *PlaylistHandler) RecountPlaylist(c *fiber.Ctx) error {
	playlist, err := h.playlistService.RecountPlaylist(c.UserContext(), getIdentity(c), c.Params("playlistId", ""))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, playlist)
}
