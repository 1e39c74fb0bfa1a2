package dto

import (
	itemModel "lendhub/internal/domains/item/model"
	"lendhub/internal/domains/request/model"
	"lendhub/shared/constant"
	gModel "lendhub/shared/model"
	"lendhub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
}

func (c *CreateRequestRequest) ToModel(requesterID string, created time.Time) model.Request {
	return model.Request{
		ID:          uuid.NewString(),
		Description: c.Description,
		RequesterID: requesterID,
		Metadata: gModel.Metadata{
			CreatedAt:  created,
			ModifiedAt: created,
			CreatedBy:  requesterID,
			ModifiedBy: requesterID,
		},
	}
}

// OfferedItem is an item listed in answer to a request.
type OfferedItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     string `json:"owner_id"`
}

type RequestResponse struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Created     string        `json:"created"`
	Items       []OfferedItem `json:"items"`
}

func (r *RequestResponse) FromModel(request model.Request, items []itemModel.Item) {
	r.ID = request.ID
	r.Description = request.Description
	r.Created = timezone.Format(request.CreatedAt, constant.DateTimeFormat)

	r.Items = make([]OfferedItem, len(items))
	for i, item := range items {
		r.Items[i] = OfferedItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			OwnerID:     item.OwnerID,
		}
	}
}
