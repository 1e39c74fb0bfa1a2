package model

import "lendhub/shared/model"

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldOwnerID     = "owner_id"
	FieldRequestID   = "request_id"
)

// Item is a listing owned by exactly one user. Available is a manual flag
// set by the owner; bookings never flip it.
type Item struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Available   bool    `db:"available"`
	OwnerID     string  `db:"owner_id"`
	RequestID   *string `db:"request_id"`
	model.Metadata
}
