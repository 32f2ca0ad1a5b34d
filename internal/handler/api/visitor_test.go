//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"residesk/internal/handler/api"
	reqdto "residesk/internal/handler/dto/request"
	resdto "residesk/internal/handler/dto/response"
	"residesk/internal/usecase/commands"
	"residesk/internal/usecase/queries"
	"residesk/tests/common/httptest"
	commandsmock "residesk/tests/mock/commands"
	queriesmock "residesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VisitorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVisitorCommands
	mockQueries  *queriesmock.MockVisitorQueries
	handler      *api.VisitorHandler
	hostID       uuid.UUID
}

func (s *VisitorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVisitorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVisitorQueries(s.mockCtrl)
	s.handler = api.NewVisitorHandler(s.mockCommands, s.mockQueries)
	s.hostID = uuid.New()

	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		// Mock middleware behavior: a bearer header stands in for a verified token
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.hostID)
			}
			next(c)
		}
	}

	s.router.POST("/visitors", authed(s.handler.Create))
	s.router.GET("/visitors", authed(s.handler.ListMine))
	s.router.POST("/visitors/validate", authed(s.handler.Validate))
	s.router.GET("/visitors/scanned", authed(s.handler.ListScanned))
}

func (s *VisitorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVisitorHandlerSuite(t *testing.T) {
	suite.Run(t, new(VisitorHandlerTestSuite))
}

func (s *VisitorHandlerTestSuite) passView() *queries.VisitorPassView {
	from := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return &queries.VisitorPassView{
		ID:          uuid.New(),
		VisitorName: "Asha Verma",
		Contact:     "9876543210",
		Purpose:     "Delivery",
		FlatNumber:  "B-402",
		QRCode:      "Asha Verma-B-402-1767857400000",
		NumericCode: "482913",
		ValidFrom:   from,
		ValidTo:     from.Add(10 * time.Hour),
		Status:      "pending",
		CreatedAt:   from.Add(-time.Hour),
	}
}

func (s *VisitorHandlerTestSuite) TestCreate() {
	url := "/visitors"
	view := s.passView()

	reqBody := reqdto.CreateVisitorRequest{
		Name:        view.VisitorName,
		Contact:     view.Contact,
		Purpose:     view.Purpose,
		FlatNumber:  view.FlatNumber,
		QRCode:      view.QRCode,
		NumericCode: view.NumericCode,
		StartTime:   view.ValidFrom,
		EndTime:     view.ValidTo,
	}

	s.Run("success: returns 201 with the stored pass", func() {
		s.mockCommands.EXPECT().CreatePass(gomock.Any(), gomock.Any(), s.hostID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.VisitorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.QRCode, response.QRCode)
		s.Equal(view.NumericCode, response.NumericCode)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Asha Verma"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid pass data",
				commandsError:  commands.ErrPassValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid visitor pass data",
			},
			{
				name:           "duplicate code",
				commandsError:  commands.ErrDuplicatePass,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Pass code already exists",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreatePass(gomock.Any(), gomock.Any(), s.hostID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *VisitorHandlerTestSuite) TestValidate() {
	url := "/visitors/validate"
	view := s.passView()
	reqBody := reqdto.ValidateVisitorRequest{QRCode: view.QRCode}

	s.Run("success: accepted scan returns the visitor", func() {
		s.mockCommands.EXPECT().ValidatePass(gomock.Any(), view.QRCode).
			Return(&commands.ValidatePassResult{Accepted: true, Visitor: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ValidateVisitorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Expired)
		s.Require().NotNil(response.Visitor)
		s.Equal(view.FlatNumber, response.Visitor.FlatNumber)
	})

	s.Run("success: rejected scan is a 200 with expired=true", func() {
		for _, reason := range []string{commands.ReasonExpired, commands.ReasonNotFound} {
			s.Run(reason, func() {
				s.mockCommands.EXPECT().ValidatePass(gomock.Any(), view.QRCode).
					Return(&commands.ValidatePassResult{Accepted: false, Reason: reason}, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

				var response resdto.ValidateVisitorResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.True(response.Expired)
				s.Equal(reason, response.Reason)
				s.Nil(response.Visitor)
			})
		}
	})

	s.Run("error: 400 on missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().ValidatePass(gomock.Any(), view.QRCode).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VisitorHandlerTestSuite) TestListMine() {
	url := "/visitors"
	view := s.passView()

	s.Run("success: returns the host's passes", func() {
		s.mockQueries.EXPECT().ListMyPasses(gomock.Any(), s.hostID).
			Return([]*queries.VisitorPassView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.VisitorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.ID, response[0].ID)
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VisitorHandlerTestSuite) TestListScanned() {
	url := "/visitors/scanned"

	s.Run("success: returns consumed passes", func() {
		consumed := s.passView()
		consumedAt := consumed.ValidFrom.Add(time.Hour)
		consumed.Status = "consumed"
		consumed.ConsumedAt = &consumedAt

		s.mockQueries.EXPECT().ListScanned(gomock.Any()).
			Return([]*queries.VisitorPassView{consumed}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.VisitorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("consumed", response[0].Status)
		s.NotNil(response[0].ConsumedAt)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListScanned(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
