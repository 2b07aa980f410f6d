package response

import (
	"time"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	SlotID        string    `json:"slotId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	DurationHours float64   `json:"durationHours"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SlotResponse struct {
	ID            string    `json:"id"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	DurationHours float64   `json:"durationHours"`
}

type WeekUsageResponse struct {
	WeekStart      time.Time `json:"weekStart"`
	WeekEnd        time.Time `json:"weekEnd"`
	Hours          float64   `json:"hours"`
	RemainingHours float64   `json:"remainingHours"`
}

type WeeklyUsageResponse struct {
	UserID      uuid.UUID         `json:"userId"`
	Quota       int               `json:"quota"`
	CurrentWeek WeekUsageResponse `json:"currentWeek"`
	NextWeek    WeekUsageResponse `json:"nextWeek"`
}

type UserQuotaResponse struct {
	ID           uuid.UUID `json:"id"`
	BookingQuota int       `json:"bookingQuota"`
}

type BookingWindowResponse struct {
	Open          bool      `json:"open"`
	Enforced      bool      `json:"enforced"`
	TimeZone      string    `json:"timezone"`
	Policy        string    `json:"policy"`
	OpensAt       time.Time `json:"opensAt"`
	ClosesAt      time.Time `json:"closesAt"`
	Now           time.Time `json:"now"`
	BookableDates []string  `json:"bookableDates"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map booking view")
	}
	return res, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromSlotViews(vs []*queries.SlotView) ([]*SlotResponse, error) {
	res := make([]*SlotResponse, len(vs))
	for i, v := range vs {
		res[i] = &SlotResponse{}
		if err := copier.Copy(res[i], v); err != nil {
			return nil, errs.Wrapf(err, "failed to map slot %d", i)
		}
	}
	return res, nil
}

func FromWeeklyUsageView(v *queries.WeeklyUsageView) (*WeeklyUsageResponse, error) {
	res := &WeeklyUsageResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map weekly usage")
	}
	return res, nil
}

func FromUserQuotaView(v *queries.UserQuotaView) *UserQuotaResponse {
	return &UserQuotaResponse{ID: v.ID, BookingQuota: v.BookingQuota}
}

func FromBookingWindowView(v *queries.BookingWindowView) (*BookingWindowResponse, error) {
	res := &BookingWindowResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map booking window")
	}
	if res.BookableDates == nil {
		res.BookableDates = []string{}
	}
	return res, nil
}
