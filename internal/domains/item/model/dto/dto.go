package dto

import (
	bookingDto "lendhub/internal/domains/booking/model/dto"
	commentDto "lendhub/internal/domains/comment/model/dto"
	"lendhub/internal/domains/item/model"
	gModel "lendhub/shared/model"
	"lendhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"required,max=1000"`
	Available   *bool   `json:"available"   validate:"required"`
	RequestID   *string `json:"request_id"  validate:"omitempty"`
}

func (c *CreateItemRequest) ToModel(ownerID string) model.Item {
	return model.Item{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Available:   *c.Available,
		OwnerID:     ownerID,
		RequestID:   c.RequestID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

// UpdateItemRequest carries a partial update. Nil fields are no-ops, not
// clears; only the owner may apply it.
type UpdateItemRequest struct {
	Name        *string `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Available   *bool   `db:"available"   json:"available"   validate:"omitempty"`
}

// ItemResponse is the item view. LastBooking/NextBooking are only populated
// for the owner; Comments is always present, empty when none exist.
type ItemResponse struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Available   bool                         `json:"available"`
	RequestID   *string                      `json:"request_id,omitempty"`
	LastBooking *bookingDto.BookingShort     `json:"last_booking,omitempty"`
	NextBooking *bookingDto.BookingShort     `json:"next_booking,omitempty"`
	Comments    []commentDto.CommentResponse `json:"comments"`
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Available = item.Available
	r.RequestID = item.RequestID
	r.Comments = []commentDto.CommentResponse{}
}

type GetItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

func (r *GetItemsResponse) FromModels(models []model.Item) {
	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
