package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	users    queries.UserQueries
	bookings queries.BookingQueries
}

func NewUserHandler(users queries.UserQueries, bookings queries.BookingQueries) *UserHandler {
	return &UserHandler{users: users, bookings: bookings}
}

// @Summary Weekly usage
// @Description Hours booked by the authenticated member in the week of the anchor date and the following week
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.WeeklyUsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /users/me/usage [get]
func (h *UserHandler) Usage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var query reqdto.UsageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidQuery(c, err)
		return
	}
	usage, err := h.bookings.ComputeWeeklyUsage(c.Request.Context(), userID, query.Anchor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWeeklyUsageView(usage)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Member quota
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserQuotaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetQuota(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	view, err := h.users.GetQuota(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserQuotaView(view))
}

// @Summary Booking window status
// @Description Whether bookings are currently accepted, and which dates the active policy allows
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingWindowResponse
// @Failure 500 {object} httperr.Response
// @Router /booking-window [get]
func (h *UserHandler) Window(c *gin.Context) {
	res, err := resdto.FromBookingWindowView(h.bookings.BookingWindow(c.Request.Context()))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
