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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		// Mock middleware behavior: a bearer header stands in for a verified token
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}

	s.router.GET("/bookings/me", authed(s.handler.ListMine))
	s.router.POST("/bookings/amenities/:id", authed(s.handler.Create))
	s.router.DELETE("/bookings/:id", authed(s.handler.Cancel))
	s.router.GET("/admin/amenities", authed(s.handler.ListAmenities))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingView(amenityID uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		AmenityID:   amenityID,
		AmenityName: "Clubhouse",
		UserID:      s.userID,
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
		Status:      "confirmed",
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	amenityID := uuid.New()
	url := "/bookings/amenities/" + amenityID.String()
	reqBody := reqdto.CreateBookingRequest{StartDate: "2026-03-10", EndDate: "2026-03-12"}

	s.Run("success: returns 201 with the confirmed booking", func() {
		view := s.bookingView(amenityID)
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), commands.RequestBookingParams{
				AmenityID: amenityID,
				StartDate: reqBody.StartDate,
				EndDate:   reqBody.EndDate,
			}, s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal("2026-03-10", response.StartDate)
	})

	s.Run("error: 400 on malformed amenity id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/amenities/not-a-uuid", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid amenity ID format")
	})

	s.Run("error: 400 on missing dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start_date": "2026-03-10"}, "token")
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
				name:           "invalid range",
				commandsError:  commands.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date range",
			},
			{
				name:           "unknown amenity",
				commandsError:  commands.ErrAmenityNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Amenity not found",
			},
			{
				name:           "overlapping booking",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Amenity already booked",
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
				s.mockCommands.EXPECT().
					RequestBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking cancelled", response["message"])
	})

	s.Run("success: repeated cancel is still 200", func() {
		// The usecase swallows the already-cancelled case
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(nil).Times(2)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		}
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings/me"

	s.Run("success: returns the user's bookings", func() {
		view := s.bookingView(uuid.New())
		s.mockQueries.EXPECT().ListMyBookings(gomock.Any(), s.userID).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.AmenityName, response[0].AmenityName)
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestListAmenities() {
	url := "/admin/amenities"

	s.Run("success: returns amenities", func() {
		s.mockQueries.EXPECT().ListAmenities(gomock.Any()).
			Return([]*queries.AmenityView{
				{ID: uuid.New(), Name: "Clubhouse", Description: "Main hall"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Clubhouse", response[0].Name)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListAmenities(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
