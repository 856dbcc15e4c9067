package handler

import (
	"showtracker/internal/service"
	"showtracker/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IShowHandler interface {
	Discover(c *fiber.Ctx) error
	Search(c *fiber.Ctx) error
	GetShow(c *fiber.Ctx) error
	GetShowStatus(c *fiber.Ctx) error
	GetShowReviews(c *fiber.Ctx) error
}

type ShowHandler struct {
	catalogService service.ICatalogService
	statusService  service.IStatusService
	reviewService  service.IReviewService
}

func NewShowHandler(catalogService service.ICatalogService, statusService service.IStatusService, reviewService service.IReviewService) *ShowHandler {
	return &ShowHandler{
		catalogService: catalogService,
		statusService:  statusService,
		reviewService:  reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// Discover godoc
//
//	@Summary		Discover Shows
//	@Description	Next batch of filtered, shuffled catalog shows. Without page a random page is used.
//	@Tags			Catalog
//	@Param			page	query		integer	false	"page to start from"
//	@Param			genres	query		string	false	"comma separated genres, any of them matches"
//	@Success		200		{object}	catalog.Batch
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/discover [get]
func (h *ShowHandler) Discover(c *fiber.Ctx) error {
	var page *int
	if c.Query("page", "") != "" {
		p := c.QueryInt("page", -1)
		if p < 0 {
			return response.ResponseError(c, response.InvalidPage, fiber.StatusBadRequest)
		}
		page = &p
	}
	var genres []string
	if g := c.Query("genres", ""); g != "" {
		genres = strings.Split(g, ",")
	}

	batch := h.catalogService.Discover(c.UserContext(), page, genres)
	return response.ResponseOKWithData(c, batch)
}

// Search godoc
//
//	@Summary		Search Shows
//	@Description	Search the catalog by name. A blank query returns an empty list.
//	@Tags			Catalog
//	@Param			q	query		string	false	"search query"
//	@Success		200	{object}	[]catalog.Show
//	@Failure		502	{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/search [get]
func (h *ShowHandler) Search(c *fiber.Ctx) error {
	shows, err := h.catalogService.Search(c.UserContext(), c.Query("q", ""))
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, shows)
}

// GetShow godoc
//
//	@Summary		Show Detail
//	@Description	Show with cast and episodes grouped by season.
//	@Tags			Catalog
//	@Param			showId	path		integer	true	"showId"
//	@Success		200		{object}	catalog.ShowDetail
//	@Failure		400,404,502	{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/shows/{showId} [get]
func (h *ShowHandler) GetShow(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	show, err := h.catalogService.GetShowDetail(c.UserContext(), showId)
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, show)
}

// GetShowStatus godoc
//
//	@Summary		Show Status
//	@Description	Watchlist, favorite and rating state of a show for the caller.
//	@Description	Anonymous callers and lookup failures get the empty status.
//	@Tags			Show
//	@Param			showId	path		integer	true	"showId"
//	@Success		200		{object}	model.ShowStatus
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/shows/{showId}/status [get]
func (h *ShowHandler) GetShowStatus(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	status := h.statusService.GetShowStatus(c.UserContext(), getIdentity(c), showId)
	return response.ResponseOKWithData(c, status)
}

// GetShowReviews godoc
//
//	@Summary		Show Reviews
//	@Description	Latest reviews of a show from all users.
//	@Tags			Show
//	@Param			showId	path		integer	true	"showId"
//	@Success		200		{object}	[]model.ReviewEntry
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/v1/shows/{showId}/reviews [get]
func (h *ShowHandler) GetShowReviews(c *fiber.Ctx) error {
	showId, ok := getShowId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidShowId, fiber.StatusBadRequest)
	}

	reviews := h.reviewService.GetShowReviews(c.UserContext(), showId)
	return response.ResponseOKWithData(c, reviews)
}
