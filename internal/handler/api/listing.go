package api

import (
	"net/http"

	reqdto "stay-marketplace/internal/handler/dto/request"
	resdto "stay-marketplace/internal/handler/dto/response"
	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary List listings
// @Description List every listing, optionally filtered by the host's username
// @Tags listings
// @Produce json
// @Param host query string false "Host username"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.DetailBody
// @Router /api/listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	var query reqdto.ListingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), middleware.Principal(c), query.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.DetailBody
// @Router /api/listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Create listing
// @Description The acting user becomes the host
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ListingRequest true "Listing"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Router /api/listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)
	var req reqdto.ListingRequest
	if !bindBody(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), p, req.ToFields())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), p, result.ListingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Replace listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.ListingRequest true "Listing"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// @Summary Partially update listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.ListingRequest true "Fields to change"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/listings/{id} [patch]
func (h *ListingHandler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

func (h *ListingHandler) update(c *gin.Context, partial bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p := middleware.Principal(c)
	var req reqdto.ListingRequest
	if !bindBody(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), p, id, req.ToFields(), partial); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Delete listing
// @Description Deletes the listing with its bookings and reviews
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
