//go:build unit

package api_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// handlerSuite runs handlers behind the real error and auth middleware.
type handlerSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cfg      config.Config
	jwt      *authtest.JWTHelper
	userID   uuid.UUID
	token    string
}

func (s *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.jwt = authtest.NewJWTHelper(s.cfg.JWT)
	s.mockCtrl = gomock.NewController(s.T())
	s.userID = uuid.New()
	s.token = s.jwt.GenerateToken(s.T(), s.userID, "alice")

	authMiddleware := middleware.NewAuthMiddleware(s.jwt.Service(s.T()))
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler(), authMiddleware.Authenticate())
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func (s *handlerSuite) decodeList(w *httptest.ResponseRecorder) []map[string]any {
	var body []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// principalIs matches the auth.Principal argument handed to usecases.
type principalIs uuid.UUID

func (m principalIs) Matches(x any) bool {
	p, ok := x.(auth.Principal)
	return ok && p.UserID() == uuid.UUID(m)
}

func (m principalIs) String() string {
	return fmt.Sprintf("principal %s", uuid.UUID(m))
}

func anonymous() gomock.Matcher {
	return gomock.Eq(auth.Anonymous())
}

func ptr[T any](v T) *T {
	return &v
}
