package handler

import (
	"showtracker/internal/service"
	"showtracker/model"
	"showtracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAccountHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Refresh(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	ChangePassword(c *fiber.Ctx) error
	Me(c *fiber.Ctx) error
}

type AccountHandler struct {
	accountService service.IAccountService
}

func NewAccountHandler(accountService service.IAccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	Create an account with email and password, returns a token pair.
//	@Tags			Auth
//	@Param			user	body		model.RegisterReq	true	"register info"
//	@Success		201		{object}	model.TokenRes
//	@Failure		400,409	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/register [post]
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.accountService.Register(c.UserContext(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseCreated(c, res)
}

// Login godoc
//
//	@Summary		Login
//	@Description	Login with email and password, returns a token pair.
//	@Tags			Auth
//	@Param			user	body		model.LoginReq	true	"login info"
//	@Success		200		{object}	model.TokenRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/login [post]
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.accountService.Login(c.UserContext(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// Refresh godoc
//
//	@Summary		Refresh Token
//	@Description	Exchange a refresh token for a new token pair. The old session is revoked.
//	@Tags			Auth
//	@Param			token	body		model.RefreshReq	true	"refresh token"
//	@Success		200		{object}	model.TokenRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/refresh [post]
func (h *AccountHandler) Refresh(c *fiber.Ctx) error {
	var req model.RefreshReq
	_ = c.BodyParser(&req)
	if req.RefreshToken == "" {
		req.RefreshToken = c.Get("refreshToken", "")
	}
	if req.RefreshToken == "" {
		return response.ResponseError(c, response.InvalidRefreshToken, fiber.StatusUnauthorized)
	}

	res, err := h.accountService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Revoke the current session.
//	@Tags			Auth
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [put]
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	if err := h.accountService.Logout(c.UserContext(), getIdentity(c)); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// ChangePassword godoc
//
//	@Summary		Change Password
//	@Description	Change password after re-checking the current one.
//	@Tags			Auth
//	@Param			passwords	body		model.ChangePasswordReq	true	"passwords"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/auth/password [put]
func (h *AccountHandler) ChangePassword(c *fiber.Ctx) error {
	var req model.ChangePasswordReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.accountService.ChangePassword(c.UserContext(), getIdentity(c), req); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// Me godoc
//
//	@Summary		Current Identity
//	@Description	Return the identity resolved from the access token.
//	@Tags			Auth
//	@Success		200	{object}	model.Identity
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get]
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	identity := getIdentity(c)
	if !identity.Authenticated() {
		return response.ResponseError(c, response.Unauthenticated, fiber.StatusUnauthorized)
	}
	return response.ResponseOKWithData(c, identity)
}
