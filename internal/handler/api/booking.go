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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.DetailBody
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Create booking
// @Description Book another host's listing. Status always starts as PENDING.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.DetailBody
// @Failure 401 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)
	var req reqdto.BookingRequest
	if !bindBody(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), p, req.ToCreateInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), p, result.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Replace booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// @Summary Partially update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

// The listing of an existing booking cannot change; a listing in the body is ignored.
func (h *BookingHandler) update(c *gin.Context, partial bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p := middleware.Principal(c)
	var req reqdto.BookingRequest
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
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.DetailBody
// @Failure 403 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
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
