//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/handler/api"
	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/queries"
	"stay-marketplace/tests/common/builder"
	"stay-marketplace/tests/common/httptest"
	"stay-marketplace/tests/common/testutil"
	commandsmock "stay-marketplace/tests/mock/commands"
	queriesmock "stay-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	handlerSuite
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
}

func (s *ListingHandlerTestSuite) SetupTest() {
	s.setupRouter()
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	h := api.NewListingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/listings", h.List)
	s.router.POST("/api/listings", h.Create)
	s.router.GET("/api/listings/:id", h.Get)
	s.router.PUT("/api/listings/:id", h.Update)
	s.router.PATCH("/api/listings/:id", h.PartialUpdate)
	s.router.DELETE("/api/listings/:id", h.Delete)
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *ListingHandlerTestSuite) TestList() {
	s.Run("success: anonymous sees every listing", func() {
		views := []*queries.ListingView{builder.NewListingBuilder().BuildView(), builder.NewListingBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), anonymous(), queries.ListingFilter{}).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Len(s.decodeList(rec), 2)
	})

	s.Run("success: host filter", func() {
		host := "carol"
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ListingFilter{HostUsername: &host}).
			Return([]*queries.ListingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings?host=carol", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("[]", rec.Body.String())
	})

	s.Run("success: overlong host matches nobody", func() {
		host := strings.Repeat("h", 151)
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ListingFilter{HostUsername: &host}).
			Return([]*queries.ListingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings?host="+host, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("[]", rec.Body.String())
	})

	s.Run("error: invalid token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings", nil, "garbage")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, middleware.MsgInvalidToken)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ListingHandlerTestSuite) TestGet() {
	s.Run("success: wire shape", func() {
		b := builder.NewListingBuilder().WithPricePerNight("150")
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+b.ID.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		body := s.decode(rec)
		s.Equal(b.ID.String(), body["listing_id"])
		s.Equal(b.HostID.String(), body["host"])
		s.Equal("Seaside Cottage", body["name"])
		s.Equal("150.00", body["price_per_night"])
		s.Equal("2026-05-01T12:00:00Z", body["created_at"])
	})

	s.Run("error: malformed id is not found", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, policy.MsgNotFound)
	})

	s.Run("error: missing listing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, errs.NotFound(policy.MsgNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, policy.MsgNotFound)
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ListingHandlerTestSuite) TestCreate() {
	url := "/api/listings"
	b := builder.NewListingBuilder().WithHostID(s.userID)
	reqBody := b.BuildRequest()

	s.Run("success: returns 201 with the stored listing", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), principalIs(s.userID), b.Fields()).
			Return(&commands.CreateListingResult{ListingID: b.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), principalIs(s.userID), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		s.Equal(s.userID.String(), s.decode(rec)["host"])
	})

	s.Run("success: numeric price keeps its literal text", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("price_per_night", 99.5))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, in listing.Fields) (*commands.CreateListingResult, error) {
				s.Equal("99.5", *in.PricePerNight)
				return &commands.CreateListingResult{ListingID: b.ID}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on field errors from the usecase", func() {
		fe := errs.FieldErrors{"name": {errs.MsgRequired}, "price_per_night": {errs.MsgNotNumber}}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fe.Err())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.token)
		got := httptest.AssertFieldErrors(s.T(), rec, "name", "price_per_night")
		s.Equal([]string{errs.MsgNotNumber}, got["price_per_night"])
	})

	s.Run("error: wrong JSON type", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", 5))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		fe := httptest.AssertFieldErrors(s.T(), rec, "name")
		s.Equal([]string{"Not a valid string."}, fe["name"])
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"name":`),
			map[string]string{"Authorization": "Bearer " + s.token})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.MsgParseError)
	})

	s.Run("error: 401 when unauthenticated", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), anonymous(), gomock.Any()).
			Return(nil, errs.Public(errs.ErrAuthenticationRequired, policy.MsgNotAuthenticated))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, policy.MsgNotAuthenticated)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ListingHandlerTestSuite) TestUpdate() {
	b := builder.NewListingBuilder().WithHostID(s.userID)
	url := "/api/listings/" + b.ID.String()

	s.Run("success: PUT is a full update", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), principalIs(s.userID), b.ID, b.Fields(), false).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildRequest(), s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: PATCH with empty body", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), b.ID, listing.Fields{}, true).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, url, nil,
			map[string]string{"Authorization": "Bearer " + s.token})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for someone else's listing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), b.ID, gomock.Any(), true).
			Return(errs.Public(errs.ErrPermissionDenied, "You can only update your own listings."))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "x"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You can only update your own listings.")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ListingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/listings/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), principalIs(s.userID), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: storage failure is a 500 without internals", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(errs.New("pq: connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.MsgServerError)
	})
}
