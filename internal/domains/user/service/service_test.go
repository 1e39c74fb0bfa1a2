package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lendhub/config"
	"lendhub/infras/otel/mocks"
	userMocks "lendhub/internal/domains/user/mocks"
	"lendhub/internal/domains/user/model"
	"lendhub/internal/domains/user/model/dto"
	"lendhub/internal/domains/user/service"
	cacheMocks "lendhub/shared/cache/mocks"
	"lendhub/shared/failure"
)

type userFixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newUserFixture(t *testing.T) userFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// Cache writes and invalidations run in detached goroutines; the test
	// only pins down repository behavior.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return userFixture{
		repo:  repo,
		cache: mockCache,
		svc:   service.New(repo, cfg, mockCache, mocks.NewOtel()),
	}
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"}

	t.Run("successful creation", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", res.Name)
		assert.Equal(t, "alice@example.com", res.Email)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{ID: "other-user"}, nil)

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestUserService_Update(t *testing.T) {
	email := "alice@example.com"
	name := "Alice Updated"

	t.Run("updating own email is not a conflict", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Name: "Alice", Email: email}, nil)

		res, err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Email: &email}, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, email, res.Email)
	})

	t.Run("email held by another user conflicts", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{ID: "other-user"}, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Email: &email}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("name-only update skips the email check", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Name: name}, nil)

		res, err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Name: &name}, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, name, res.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Name: &name}, "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newUserFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Name: "Alice"}, nil)

		res, err := f.svc.Get(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Alice", res.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newUserFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.Get(context.Background(), "nope")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "user-1"))
	})

	t.Run("missing user", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
