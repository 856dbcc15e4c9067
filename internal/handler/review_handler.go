package handler

import (
	"showtracker/internal/service"
	"showtracker/model"
	"showtracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IReviewHandler interface {
	SaveReview(c *fiber.Ctx) error
	GetMyReviews(c *fiber.Ctx) error
	GetFavorites(c *fiber.Ctx) error
	DeleteReview(c *fiber.Ctx) error
}

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// SaveReview godoc
//
//	@Summary		Save Review
//	@Description	Create or update the caller's review of a show. Omitted fields keep their stored value.
//	@Tags			Review
//	@Param			review	body		model.SaveReviewReq	true	"show and review fields"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reviews [put]
func (h *ReviewHandler) SaveReview(c *fiber.Ctx) error {
	var req model.SaveReviewReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.reviewService.SaveReview(c.UserContext(), getIdentity(c), req.Show, req.Review); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// GetMyReviews godoc
//
//	@Summary		My Reviews
//	@Description	The caller's reviews, most recently updated first.
//	@Tags			Review
//	@Success		200	{object}	[]model.ReviewEntry
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reviews [get]
func (h *ReviewHandler) GetMyReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetMyReviews(c.UserContext(), getIdentity(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, reviews)
}

// GetFavorites godoc
//
//	@Summary		Favorites
//	@Description	The caller's reviews marked as favorite, most recently updated first.
//	@Tags			Review
//	@Success		200	{object}	[]model.ReviewEntry
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/favorites [get]
func (h *ReviewHandler) GetFavorites(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetFavorites(c.UserContext(), getIdentity(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, reviews)
}

// DeleteReview godoc
//
//	@Summary		Delete Review
//	@Description	Delete the caller's review of a show.
//	@Tags			Review
//	@Param			showId		path		integer	true	"showId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reviews/{showId} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	if err := h.reviewService.DeleteReview(c.UserContext(), getIdentity(c), showId); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}
