package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lendhub/infras/otel/mocks"
	bookingMocks "lendhub/internal/domains/booking/mocks"
	bookingModel "lendhub/internal/domains/booking/model"
	commentMocks "lendhub/internal/domains/comment/mocks"
	commentModel "lendhub/internal/domains/comment/model"
	itemMocks "lendhub/internal/domains/item/mocks"
	"lendhub/internal/domains/item/model"
	"lendhub/internal/domains/item/model/dto"
	"lendhub/internal/domains/item/service"
	requestMocks "lendhub/internal/domains/request/mocks"
	userMocks "lendhub/internal/domains/user/mocks"
	cacheMocks "lendhub/shared/cache/mocks"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	gModel "lendhub/shared/model"
	"lendhub/shared/timezone"
)

type itemFixture struct {
	repo        *itemMocks.MockItem
	userRepo    *userMocks.MockUser
	requestRepo *requestMocks.MockRequest
	bookingRepo *bookingMocks.MockBooking
	commentRepo *commentMocks.MockComment
	svc         service.Item
}

func newItemFixture(t *testing.T) itemFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := itemMocks.NewMockItem(ctrl)
	userRepo := userMocks.NewMockUser(ctrl)
	requestRepo := requestMocks.NewMockRequest(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	commentRepo := commentMocks.NewMockComment(ctrl)

	// Request-cache invalidation runs in a detached goroutine.
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return itemFixture{
		repo:        repo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		svc:         service.New(repo, userRepo, requestRepo, bookingRepo, commentRepo, mockCache, mocks.NewOtel()),
	}
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestItemService_Create(t *testing.T) {
	req := dto.CreateItemRequest{Name: "Drill", Description: "Cordless drill", Available: boolPtr(true)}

	t.Run("successful creation", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item model.Item) error {
				assert.Equal(t, "Drill", item.Name)
				assert.Equal(t, "owner-1", item.OwnerID)
				assert.True(t, item.Available)

				return nil
			})

		res, err := f.svc.Create(context.Background(), req, "owner-1")

		assert.NoError(t, err)
		assert.Equal(t, "Drill", res.Name)
		assert.NotNil(t, res.Comments)
		assert.Empty(t, res.Comments)
	})

	t.Run("missing owner", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req, "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("answering a missing request", func(t *testing.T) {
		f := newItemFixture(t)

		withRequest := req
		withRequest.RequestID = strPtr("request-1")

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.requestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), withRequest, "owner-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Update(t *testing.T) {
	owned := model.Item{ID: "item-1", Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: "owner-1"}

	t.Run("owner updates a subset of fields", func(t *testing.T) {
		f := newItemFixture(t)

		updated := owned
		updated.Available = false

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, "available")
				assert.NotContains(t, fields, "name")
				assert.NotContains(t, fields, "description")

				return nil
			})
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Available: boolPtr(false)}, "item-1", "owner-1")

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, "Drill", res.Name)
	})

	t.Run("non-owner reads as missing item", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Name: strPtr("Hammer")}, "item-1", "stranger-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Name: strPtr("Hammer")}, "nope", "owner-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Get(t *testing.T) {
	item := model.Item{ID: "item-1", Name: "Drill", Available: true, OwnerID: "owner-1"}

	comments := []commentModel.CommentWithAuthor{
		{
			Comment: commentModel.Comment{
				ID: "comment-1", Text: "worked great", ItemID: "item-1", AuthorID: "author-1",
				Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
			},
			AuthorName: "Author",
		},
	}

	t.Run("owner sees booking history", func(t *testing.T) {
		f := newItemFixture(t)

		now := timezone.Now()
		last := bookingModel.Booking{ID: "booking-1", BookerID: "booker-1", StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour), Status: bookingModel.StatusApproved}
		next := bookingModel.Booking{ID: "booking-2", BookerID: "booker-2", StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour), Status: bookingModel.StatusApproved}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(item, nil)
		f.commentRepo.EXPECT().GetAllForItem(gomock.Any(), "item-1").Return(comments, nil)
		f.bookingRepo.EXPECT().First(gomock.Any(), gomock.Any(), gomock.Any(), gDto.SortDirDesc).Return(last, nil)
		f.bookingRepo.EXPECT().First(gomock.Any(), gomock.Any(), gomock.Any(), gDto.SortDirAsc).Return(next, nil)

		res, err := f.svc.Get(context.Background(), "item-1", "owner-1")

		assert.NoError(t, err)
		assert.NotNil(t, res.LastBooking)
		assert.Equal(t, "booking-1", res.LastBooking.ID)
		assert.NotNil(t, res.NextBooking)
		assert.Equal(t, "booking-2", res.NextBooking.ID)
		assert.Len(t, res.Comments, 1)
		assert.Equal(t, "Author", res.Comments[0].AuthorName)
	})

	t.Run("non-owner gets comments but no booking history", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(item, nil)
		f.commentRepo.EXPECT().GetAllForItem(gomock.Any(), "item-1").Return([]commentModel.CommentWithAuthor{}, nil)

		res, err := f.svc.Get(context.Background(), "item-1", "viewer-1")

		assert.NoError(t, err)
		assert.Nil(t, res.LastBooking)
		assert.Nil(t, res.NextBooking)
		assert.NotNil(t, res.Comments)
		assert.Empty(t, res.Comments)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)

		_, err := f.svc.Get(context.Background(), "nope", "viewer-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_GetAllByOwner(t *testing.T) {
	page := gDto.PageSpec{Page: 0, Size: 10}

	t.Run("items carry comments and booking history", func(t *testing.T) {
		f := newItemFixture(t)

		items := []model.Item{
			{ID: "item-1", Name: "Drill", Available: true, OwnerID: "owner-1"},
			{ID: "item-2", Name: "Ladder", Available: true, OwnerID: "owner-1"},
		}

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(items, nil)
		f.commentRepo.EXPECT().GetAllForItems(gomock.Any(), []string{"item-1", "item-2"}).Return([]commentModel.CommentWithAuthor{}, nil)
		f.bookingRepo.EXPECT().First(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil).Times(4)

		res, err := f.svc.GetAllByOwner(context.Background(), "owner-1", page)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.NotNil(t, res.Items[0].Comments)
		assert.Nil(t, res.Items[0].LastBooking)
	})

	t.Run("missing owner", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.GetAllByOwner(context.Background(), "ghost", page)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Search(t *testing.T) {
	page := gDto.PageSpec{Page: 0, Size: 10}

	t.Run("empty text short-circuits to an empty list", func(t *testing.T) {
		f := newItemFixture(t)

		res, err := f.svc.Search(context.Background(), "", page)

		assert.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("matching items are returned", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Item, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "items.available = :available")
				assert.Contains(t, where, "LOWER(items.name) LIKE LOWER(:search_name)")
				assert.Contains(t, where, "LOWER(items.description) LIKE LOWER(:search_description)")
				assert.Contains(t, where, " OR ")
				assert.Equal(t, "%drill%", args["search_name"])

				return []model.Item{{ID: "item-1", Name: "Drill", Available: true}}, nil
			})

		res, err := f.svc.Search(context.Background(), "drill", page)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, "Drill", res.Items[0].Name)
	})
}
