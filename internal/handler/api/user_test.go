//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockUsers    *queriesmock.MockUserQueries
	mockBookings *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewUserHandler(s.mockUsers, s.mockBookings)
	s.router.GET("/users/me/usage", fakeAuth(s.userID), h.Usage)
	s.router.GET("/users/:id", h.GetQuota)
	s.router.GET("/booking-window", h.Window)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestUsage() {
	usage := &queries.WeeklyUsageView{
		UserID: s.userID,
		Quota:  3,
		CurrentWeek: queries.WeekUsage{
			WeekStart:      builder.At(2025, time.June, 1, 0),
			WeekEnd:        builder.At(2025, time.June, 8, 0).Add(-time.Millisecond),
			Hours:          2,
			RemainingHours: 1,
		},
		NextWeek: queries.WeekUsage{
			WeekStart:      builder.At(2025, time.June, 8, 0),
			WeekEnd:        builder.At(2025, time.June, 15, 0).Add(-time.Millisecond),
			RemainingHours: 3,
		},
	}

	s.Run("success: today by default", func() {
		s.mockBookings.EXPECT().ComputeWeeklyUsage(gomock.Any(), s.userID, "").Return(usage, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/usage", nil, "bearer-token")

		var body resdto.WeeklyUsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.UserID)
		s.Equal(3, body.Quota)
		s.Equal(2.0, body.CurrentWeek.Hours)
		s.Equal(1.0, body.CurrentWeek.RemainingHours)
		s.True(body.NextWeek.WeekStart.Equal(usage.NextWeek.WeekStart))
	})

	s.Run("success: anchor is forwarded", func() {
		s.mockBookings.EXPECT().ComputeWeeklyUsage(gomock.Any(), s.userID, "2025-06-20").Return(usage, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/usage?anchor=2025-06-20", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "bad anchor", err: booking.ErrInvalidDate, expectedStatus: http.StatusBadRequest},
			{name: "unknown member", err: queries.ErrUserNotFound, expectedStatus: http.StatusNotFound},
			{name: "storage failure", err: errors.New("timeout"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().ComputeWeeklyUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/usage", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/usage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *UserHandlerTestSuite) TestGetQuota() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockUsers.EXPECT().GetQuota(gomock.Any(), id).
			Return(&queries.UserQuotaView{ID: id, BookingQuota: 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil, "")

		var body resdto.UserQuotaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.UserQuotaResponse{ID: id, BookingQuota: 5}, body)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})

	s.Run("error: 404 on unknown member", func() {
		s.mockUsers.EXPECT().GetQuota(gomock.Any(), id).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *UserHandlerTestSuite) TestWindow() {
	s.Run("renders bookable dates", func() {
		s.mockBookings.EXPECT().BookingWindow(gomock.Any()).Return(&queries.BookingWindowView{
			Open:          true,
			TimeZone:      "America/New_York",
			Policy:        "exact_next_week",
			BookableDates: []string{"2025-06-11"},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-window", nil, "")

		var body resdto.BookingWindowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Open)
		s.Equal("America/New_York", body.TimeZone)
		s.Equal([]string{"2025-06-11"}, body.BookableDates)
	})

	s.Run("nil dates render as an empty array", func() {
		s.mockBookings.EXPECT().BookingWindow(gomock.Any()).Return(&queries.BookingWindowView{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-window", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"bookableDates":[]`)
	})
}
