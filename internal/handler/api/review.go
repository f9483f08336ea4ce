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

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param listing_id query string false "Only reviews of this listing"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string][]string
// @Router /api/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var query reqdto.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), middleware.Principal(c), query.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary List my reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReviewResponse
// @Failure 401 {object} httperr.DetailBody
// @Router /api/reviews/my_reviews [get]
func (h *ReviewHandler) MyReviews(c *gin.Context) {
	views, err := h.q.ListMine(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} httperr.DetailBody
// @Router /api/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Create review
// @Description One review per user and listing
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.DetailBody
// @Failure 401 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)
	var req reqdto.ReviewRequest
	if !bindBody(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), p, req.ToCreateInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), p, result.ReviewID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Replace review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// @Summary Partially update review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ReviewRequest true "Fields to change"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/reviews/{id} [patch]
func (h *ReviewHandler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

func (h *ReviewHandler) update(c *gin.Context, partial bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p := middleware.Principal(c)
	var req reqdto.ReviewRequest
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
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
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
