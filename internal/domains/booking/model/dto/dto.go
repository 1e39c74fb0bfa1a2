package dto

import (
	"lendhub/internal/domains/booking/model"
	itemModel "lendhub/internal/domains/item/model"
	userModel "lendhub/internal/domains/user/model"
	"lendhub/shared/constant"
	gModel "lendhub/shared/model"
	"lendhub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Start  string `json:"start"   validate:"required"`
	End    string `json:"end"     validate:"required"`
	Status string `json:"status"  validate:"omitempty,oneof=WAITING APPROVED REJECTED"`
}

// ParseWindow parses the requested start/end as local date-times.
func (c *CreateBookingRequest) ParseWindow() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateTimeFormat, c.Start)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateTimeFormat, c.End)

	return start, end, err
}

func (c *CreateBookingRequest) ToModel(bookerID string, start, end time.Time) model.Booking {
	status := model.StatusWaiting
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Booking{
		ID:        uuid.NewString(),
		ItemID:    c.ItemID,
		BookerID:  bookerID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  bookerID,
			ModifiedBy: bookerID,
		},
	}
}

type BookerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ItemView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingResponse is the enriched booking view: the booking window plus the
// resolved item and booker.
type BookingResponse struct {
	ID     string     `json:"id"`
	Start  string     `json:"start"`
	End    string     `json:"end"`
	Status string     `json:"status"`
	Booker BookerView `json:"booker"`
	Item   ItemView   `json:"item"`
}

func (r *BookingResponse) FromModel(booking model.Booking, item itemModel.Item, booker userModel.User) {
	r.ID = booking.ID
	r.Start = timezone.Format(booking.StartDate, constant.DateTimeFormat)
	r.End = timezone.Format(booking.EndDate, constant.DateTimeFormat)
	r.Status = string(booking.Status)
	r.Booker = BookerView{ID: booker.ID, Name: booker.Name}
	r.Item = ItemView{ID: item.ID, Name: item.Name}
}

// BookingShort is the compact view attached to owner item listings as
// lastBooking/nextBooking.
type BookingShort struct {
	ID       string `json:"id"`
	BookerID string `json:"booker_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

func (r *BookingShort) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookerID = booking.BookerID
	r.Start = timezone.Format(booking.StartDate, constant.DateTimeFormat)
	r.End = timezone.Format(booking.EndDate, constant.DateTimeFormat)
}
