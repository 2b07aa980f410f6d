package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create bookings
// @Description Book one or more court slots for the authenticated member. Either every slot is booked or none is.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingsRequest true "Slots to book"
// @Success 201 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortMissingFields(c, err)
		return
	}
	result, err := h.cmds.CreateBookings(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookingViews(result.Bookings)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List bookings
// @Description List every member's bookings starting in [from, to). Used to render the court calendar.
// @Tags bookings
// @Produce json
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidQuery(c, err)
		return
	}
	views, err := h.q.ListBookings(c.Request.Context(), query.From, query.To)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookingViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List my upcoming bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/me [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	views, err := h.q.ListUpcomingForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookingViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Available slots
// @Description Candidate slots for a date and duration, excluding booked and currently selected ones
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD) in the club time zone"
// @Param duration query int true "Duration in hours (1 or 2)"
// @Param selected query []string false "Already selected slots as start/end (RFC3339)" collectionFormat(multi)
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidQuery(c, err)
		return
	}
	selected, err := query.SelectedSlots()
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, err.Error(), invalidInputCode, nil)
		return
	}
	slots, err := h.q.ListAvailableSlots(c.Request.Context(), query.Date, query.Duration, selected)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromSlotViews(slots)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
