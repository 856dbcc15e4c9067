package handler

import (
	"showtracker/internal/service"
	"showtracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAdminHandler interface {
	FetchDbConfigs(c *fiber.Ctx) error
	GetDbConfigs(c *fiber.Ctx) error
	RecountUserPlaylists(c *fiber.Ctx) error
	InvalidateShowCache(c *fiber.Ctx) error
}

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

//------------------------------------------
//------------------------------------------

// FetchDbConfigs godoc
//
//	@Summary		Fetch Configs
//	@Description	Reload db configs and dynamic configs.
//	@Tags			Admin
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/fetch_configs [get]
func (m *AdminHandler) FetchDbConfigs(c *fiber.Ctx) error {
	err := m.adminService.FetchDbConfigs()
	if err != nil {
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}

// GetDbConfigs godoc
//
//	@Summary		Get Configs
//	@Description	Dynamic configs currently in use.
//	@Tags			Admin
//	@Success		200		{object}	configs.DbConfigData
//	@Failure		401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/configs [get]
func (m *AdminHandler) GetDbConfigs(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, m.adminService.GetDbConfigs())
}

// RecountUserPlaylists godoc
//
//	@Summary		Recount Playlists
//	@Description	Reconcile the item counters of every playlist owned by a user.
//	@Tags			Admin
//	@Param			userId		path		string	true	"userId"
//	@Success		200			{object}	[]model.Playlist
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{userId}/playlists/recount [put]
func (m *AdminHandler) RecountUserPlaylists(c *fiber.Ctx) error {
	userId := c.Params("userId", "")
	if userId == "" || userId == ":userId" {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	playlists, err := m.adminService.RecountUserPlaylists(c.UserContext(), userId)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, playlists)
}

// InvalidateShowCache godoc
//
//	@Summary		Invalidate Show Cache
//	@Description	Drop the cached detail of a show so the next read goes to the catalog.
//	@Tags			Admin
//	@Param			showId		path		integer	true	"showId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/cache/shows/{showId} [delete]
func (m *AdminHandler) InvalidateShowCache(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	if err := m.adminService.InvalidateShowCache(c.UserContext(), showId); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}
