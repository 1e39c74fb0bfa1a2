package model

import (
	"lendhub/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldItemID    = "item_id"
	FieldBookerID  = "booker_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStatus    = "status"
)

// Status is the booking approval state. WAITING is the initial state;
// APPROVED and REJECTED are set by the item owner, and REJECTED is terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Booking struct {
	ID        string    `db:"id"`
	ItemID    string    `db:"item_id"`
	BookerID  string    `db:"booker_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    Status    `db:"status"`
	model.Metadata
}
