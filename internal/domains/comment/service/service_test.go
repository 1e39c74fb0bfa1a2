package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lendhub/infras/otel/mocks"
	bookingMocks "lendhub/internal/domains/booking/mocks"
	commentMocks "lendhub/internal/domains/comment/mocks"
	"lendhub/internal/domains/comment/model"
	"lendhub/internal/domains/comment/model/dto"
	"lendhub/internal/domains/comment/service"
	itemMocks "lendhub/internal/domains/item/mocks"
	userMocks "lendhub/internal/domains/user/mocks"
	userModel "lendhub/internal/domains/user/model"
	"lendhub/shared/failure"
)

type commentFixture struct {
	repo        *commentMocks.MockComment
	itemRepo    *itemMocks.MockItem
	userRepo    *userMocks.MockUser
	bookingRepo *bookingMocks.MockBooking
	svc         service.Comment
}

func newCommentFixture(t *testing.T) commentFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := commentMocks.NewMockComment(ctrl)
	itemRepo := itemMocks.NewMockItem(ctrl)
	userRepo := userMocks.NewMockUser(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)

	return commentFixture{
		repo:        repo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		svc:         service.New(repo, itemRepo, userRepo, bookingRepo, mocks.NewOtel()),
	}
}

func TestCommentService_Create(t *testing.T) {
	author := userModel.User{ID: "author-1", Name: "Author"}
	req := dto.CreateCommentRequest{Text: "worked great"}

	tests := []struct {
		name      string
		setupMock func(f commentFixture)
		wantCode  int
	}{
		{
			name: "booker with a completed approved booking may comment",
			setupMock: func(f commentFixture) {
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, comment model.Comment) error {
						assert.Equal(t, "worked great", comment.Text)
						assert.Equal(t, "item-1", comment.ItemID)
						assert.Equal(t, "author-1", comment.AuthorID)

						return nil
					})
			},
		},
		{
			name: "missing item",
			setupMock: func(f commentFixture) {
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "missing author",
			setupMock: func(f commentFixture) {
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "no completed booking blocks the comment",
			setupMock: func(f commentFixture) {
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCommentFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), req, "item-1", "author-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "worked great", res.Text)
			assert.Equal(t, "Author", res.AuthorName)
			assert.NotEmpty(t, res.Created)
		})
	}
}
