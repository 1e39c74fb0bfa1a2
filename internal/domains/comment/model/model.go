package model

import "lendhub/shared/model"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID       = "id"
	FieldText     = "text"
	FieldItemID   = "item_id"
	FieldAuthorID = "author_id"
)

type Comment struct {
	ID       string `db:"id"`
	Text     string `db:"text"`
	ItemID   string `db:"item_id"`
	AuthorID string `db:"author_id"`
	model.Metadata
}

// CommentWithAuthor is the read model for item views where the author's
// display name is joined in.
type CommentWithAuthor struct {
	Comment
	AuthorName string `db:"author_name"`
}
