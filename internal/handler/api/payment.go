package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"

	reqdto "stay-marketplace/internal/handler/dto/request"
	resdto "stay-marketplace/internal/handler/dto/response"
	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	HeaderGatewaySignature = "X-Gateway-Signature"
	MsgInvalidSignature    = "Invalid gateway signature."
	MsgBodyTooLarge        = "Request body too large."

	MaxWebhookBodyBytes = 64 << 10
)

var errInvalidSignature = errors.New("gateway signature mismatch")

type PaymentHandler struct {
	cmds          commands.PaymentCommands
	q             queries.PaymentQueries
	webhookSecret []byte
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries, cfg config.PaymentConfig) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q, webhookSecret: []byte(cfg.WebhookSecret)}
}

// @Summary List my payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} httperr.DetailBody
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 401 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Create payment
// @Description Opens a pending payment for one of the caller's bookings
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Router /api/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)
	var req reqdto.CreatePaymentRequest
	if !bindBody(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), p, req.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), p, result.PaymentID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Payment gateway webhook
// @Description Settles a pending payment. The body must be signed with the shared webhook secret.
// @Tags payments
// @Accept json
// @Param X-Gateway-Signature header string true "hex(HMAC-SHA256(body))"
// @Param request body reqdto.GatewayWebhookRequest true "Settlement"
// @Success 204 "No Content"
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httperr.DetailBody
// @Failure 404 {object} httperr.DetailBody
// @Failure 413 {object} httperr.DetailBody
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, MsgBodyTooLarge)
			return
		}
		httperr.Abort(c, err)
		return
	}
	if !h.validSignature(body, c.GetHeader(HeaderGatewaySignature)) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidSignature, MsgInvalidSignature)
		return
	}

	var req reqdto.GatewayWebhookRequest
	if err = binding.JSON.BindBody(body, &req); err != nil {
		httperr.Abort(c, err)
		return
	}
	if err = h.cmds.ApplyGatewayUpdate(c.Request.Context(), req.ToUpdate()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) validSignature(body []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, h.webhookSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
