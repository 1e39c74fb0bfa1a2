package dto

import (
	"lendhub/internal/domains/comment/model"
	"lendhub/shared/constant"
	gModel "lendhub/shared/model"
	"lendhub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

func (c *CreateCommentRequest) ToModel(authorID, itemID string, created time.Time) model.Comment {
	return model.Comment{
		ID:       uuid.NewString(),
		Text:     c.Text,
		ItemID:   itemID,
		AuthorID: authorID,
		Metadata: gModel.Metadata{
			CreatedAt:  created,
			ModifiedAt: created,
			CreatedBy:  authorID,
			ModifiedBy: authorID,
		},
	}
}

type CommentResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	Created    string `json:"created"`
}

func (r *CommentResponse) FromModel(comment model.Comment, authorName string) {
	r.ID = comment.ID
	r.Text = comment.Text
	r.AuthorName = authorName
	r.Created = timezone.Format(comment.CreatedAt, constant.DateTimeFormat)
}

func (r *CommentResponse) FromModelWithAuthor(comment model.CommentWithAuthor) {
	r.FromModel(comment.Comment, comment.AuthorName)
}

// CommentsFromModels always yields a non-nil slice so item views serialize
// an empty list rather than null.
func CommentsFromModels(models []model.CommentWithAuthor) []CommentResponse {
	res := make([]CommentResponse, len(models))
	for i, mod := range models {
		res[i].FromModelWithAuthor(mod)
	}

	return res
}
