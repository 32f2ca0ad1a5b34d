//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"residesk/internal/handler/api"
	"residesk/tests/common/httptest"
	queriesmock "residesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockUserQueries
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	// The apartment directory never touches auth commands
	s.handler = api.NewAuthHandler(nil, s.mockQueries)

	s.router.GET("/apartments", s.handler.ListApartments)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestListApartments() {
	s.Run("returns apartment names without authentication", func() {
		s.mockQueries.EXPECT().
			ListApartments(gomock.Any()).
			Return([]string{"Lotus Heights", "Sunrise Towers"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments", nil, "")

		s.Equal(http.StatusOK, w.Code)
		var names []string
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &names))
		s.Equal([]string{"Lotus Heights", "Sunrise Towers"}, names)
	})

	s.Run("empty directory returns an empty array, not null", func() {
		s.mockQueries.EXPECT().
			ListApartments(gomock.Any()).
			Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})

	s.Run("store failure maps to 500", func() {
		s.mockQueries.EXPECT().
			ListApartments(gomock.Any()).
			Return(nil, errors.New("db down"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments", nil, "")

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
