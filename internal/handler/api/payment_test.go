//go:build unit

package api_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/handler/api"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/queries"
	"stay-marketplace/tests/common/builder"
	"stay-marketplace/tests/common/httptest"
	commandsmock "stay-marketplace/tests/mock/commands"
	queriesmock "stay-marketplace/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	handlerSuite
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.setupRouter()
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	h := api.NewPaymentHandler(s.mockCommands, s.mockQueries, s.cfg.Payment)

	s.router.GET("/api/payments", h.List)
	s.router.POST("/api/payments", h.Create)
	s.router.POST("/api/payments/webhook", h.Webhook)
	s.router.GET("/api/payments/:id", h.Get)
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.Payment.WebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *PaymentHandlerTestSuite) TestCreate() {
	url := "/api/payments"

	s.Run("success: 201 expands the booking", func() {
		booking := builder.NewBookingBuilder().WithUserID(s.userID)
		p := builder.NewPaymentBuilder().WithBooking(booking)
		bookingID := booking.ID.String()
		s.mockCommands.EXPECT().Create(gomock.Any(), principalIs(s.userID), &bookingID).
			Return(&commands.CreatePaymentResult{PaymentID: p.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), principalIs(s.userID), p.ID).Return(p.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"booking_id": bookingID}, s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		body := s.decode(rec)
		s.Equal(p.ID.String(), body["payment_id"])
		s.Equal("600.00", body["amount"])
		s.Equal("PENDING", body["status"])
		s.Equal(p.TransactionReference, body["transaction_reference"])
		s.Nil(body["gateway_transaction_id"])

		nested, ok := body["booking"].(map[string]any)
		s.Require().True(ok, "booking should be expanded: %s", rec.Body.String())
		s.Equal(bookingID, nested["booking_id"])
		s.Equal("600.00", nested["total_price"])
	})

	s.Run("error: booking not found", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.NotFound(commands.MsgBookingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"booking_id": "nope"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.MsgBookingNotFound)
	})
}

func (s *PaymentHandlerTestSuite) TestListAndGet() {
	s.Run("success: list", func() {
		p := builder.NewPaymentBuilder().AsCompleted("gw-1")
		s.mockQueries.EXPECT().List(gomock.Any(), principalIs(s.userID)).Return([]*queries.PaymentView{p.BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		items := s.decodeList(rec)
		s.Require().Len(items, 1)
		s.Equal("COMPLETED", items[0]["status"])
		s.Equal("gw-1", items[0]["gateway_transaction_id"])
	})

	s.Run("error: get of a foreign payment", func() {
		p := builder.NewPaymentBuilder()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), p.ID).Return(nil, errs.NotFound(policy.MsgNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/"+p.ID.String(), nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, policy.MsgNotFound)
	})
}

// ================================================================================
// TestWebhook
// ================================================================================

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/api/payments/webhook"
	body := []byte(`{"transaction_reference":"TX-1","status":"COMPLETED","gateway_transaction_id":"gw-9"}`)

	s.Run("success: signed settlement", func() {
		s.mockCommands.EXPECT().ApplyGatewayUpdate(gomock.Any(), commands.GatewayUpdate{
			TransactionReference: "TX-1",
			Status:               payment.StatusCompleted.String(),
			GatewayTransactionID: "gw-9",
		}).Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body,
			map[string]string{api.HeaderGatewaySignature: s.sign(body)})
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: signature rejected", func() {
		tampered := []byte(`{"transaction_reference":"TX-1","status":"FAILED","gateway_transaction_id":"gw-9"}`)
		testCases := []struct {
			name      string
			signature string
		}{
			{"missing", ""},
			{"not hex", "zz"},
			{"signed over another body", s.sign(body)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, tampered,
					map[string]string{api.HeaderGatewaySignature: tc.signature})
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, api.MsgInvalidSignature)
			})
		}
	})

	s.Run("error: body over the limit is refused before verification", func() {
		padding := bytes.Repeat([]byte(" "), api.MaxWebhookBodyBytes)
		large := append(append([]byte{}, body[:len(body)-1]...), append(padding, '}')...)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, large,
			map[string]string{api.HeaderGatewaySignature: s.sign(large)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, api.MsgBodyTooLarge)
	})

	s.Run("success: body at the limit is accepted", func() {
		padding := bytes.Repeat([]byte(" "), api.MaxWebhookBodyBytes-len(body))
		exact := append(append([]byte{}, body[:len(body)-1]...), append(padding, '}')...)
		s.Require().Len(exact, api.MaxWebhookBodyBytes)
		s.mockCommands.EXPECT().ApplyGatewayUpdate(gomock.Any(), gomock.Any()).Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, exact,
			map[string]string{api.HeaderGatewaySignature: s.sign(exact)})
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: signed but incomplete", func() {
		partial := []byte(`{"transaction_reference":"TX-1"}`)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, partial,
			map[string]string{api.HeaderGatewaySignature: s.sign(partial)})
		fe := httptest.AssertFieldErrors(s.T(), rec, "status")
		s.Equal([]string{errs.MsgRequired}, fe["status"])
	})

	s.Run("error: unknown reference", func() {
		s.mockCommands.EXPECT().ApplyGatewayUpdate(gomock.Any(), gomock.Any()).
			Return(errs.NotFound(commands.MsgPaymentNotFound))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body,
			map[string]string{api.HeaderGatewaySignature: s.sign(body)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.MsgPaymentNotFound)
	})

	s.Run("error: contradicting verdict", func() {
		s.mockCommands.EXPECT().ApplyGatewayUpdate(gomock.Any(), gomock.Any()).
			Return(errs.Invalid(payment.ErrAlreadySettled, "Payment has already been settled."))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body,
			map[string]string{api.HeaderGatewaySignature: s.sign(body)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment has already been settled.")
	})
}
