package model

import "lendhub/shared/model"

const (
	TableName  = "requests"
	EntityName = "request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequesterID = "requester_id"
)

// Request is a standing ask for an item not yet in the catalog. It is
// read-only once created; items may later reference it.
type Request struct {
	ID          string `db:"id"`
	Description string `db:"description"`
	RequesterID string `db:"requester_id"`
	model.Metadata
}
