package handler

import (
	"showtracker/internal/service"
	"showtracker/model"
	"showtracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IProfileHandler interface {
	GetProfile(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
}

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

//------------------------------------------
//------------------------------------------

// GetProfile godoc
//
//	@Summary		Profile
//	@Description	Profile of the caller with review, watchlist and playlist counts.
//	@Tags			Profile
//	@Success		200	{object}	model.ProfileRes
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profileService.GetProfile(c.UserContext(), getIdentity(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, profile)
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	Update the supplied profile fields only.
//	@Tags			Profile
//	@Param			profile	body		model.ProfileUpdate	true	"fields to change"
//	@Success		200		{object}	model.ProfileRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.ProfileUpdate
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	profile, err := h.profileService.UpdateProfile(c.UserContext(), getIdentity(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, profile)
}
