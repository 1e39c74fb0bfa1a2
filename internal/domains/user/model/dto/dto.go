package dto

import (
	"lendhub/internal/domains/user/model"
	gModel "lendhub/shared/model"
	"lendhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (c *CreateUserRequest) ToModel() model.User {
	id := uuid.NewString()

	return model.User{
		ID:    id,
		Name:  c.Name,
		Email: c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

// UpdateUserRequest carries a partial update. Nil fields are no-ops.
type UpdateUserRequest struct {
	Name  *string `db:"name"  json:"name"  validate:"omitempty,max=255"`
	Email *string `db:"email" json:"email" validate:"omitempty,email,max=255"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

type GetUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
