package service

import (
	"context"
	"fmt"
	"lendhub/config"
	"lendhub/infras/otel"
	itemModel "lendhub/internal/domains/item/model"
	itemRepository "lendhub/internal/domains/item/repository"
	"lendhub/internal/domains/request/model"
	"lendhub/internal/domains/request/model/dto"
	"lendhub/internal/domains/request/repository"
	userModel "lendhub/internal/domains/user/model"
	userRepository "lendhub/internal/domains/user/repository"
	"lendhub/shared"
	"lendhub/shared/cache"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	"lendhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest     = "request:get"
	cacheGetAllRequests = "request:gets"
)

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest, requesterID string) (dto.RequestResponse, error)
	GetOwn(ctx context.Context, requesterID string) ([]dto.RequestResponse, error)
	GetAll(ctx context.Context, callerID string, page gDto.PageSpec) ([]dto.RequestResponse, error)
	Get(ctx context.Context, id, callerID string) (dto.RequestResponse, error)
}

type serviceImpl struct {
	repo     repository.Request
	userRepo userRepository.User
	itemRepo itemRepository.Item
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Request, userRepo userRepository.User, itemRepo itemRepository.Item, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Request {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest, requesterID string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, requesterID); err != nil {
		return res, err
	}

	request := req.ToModel(requesterID, timezone.Now())

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create request")

		return res, fmt.Errorf("failed to create request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequests)
	}()

	res.FromModel(request, nil)

	return res, nil
}

func (s *serviceImpl) GetOwn(ctx context.Context, requesterID string) (res []dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, requesterID); err != nil {
		return res, err
	}

	requests, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: "created_at", SortDir: gDto.SortDirAsc}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Value:    requesterID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get own requests")

		return res, fmt.Errorf("failed to get own requests: %w", err)
	}

	return s.withOfferedItems(ctx, requests)
}

// GetAll pages through requests raised by other users, newest first.
func (s *serviceImpl) GetAll(ctx context.Context, callerID string, page gDto.PageSpec) (res []dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, callerID); err != nil {
		return res, err
	}

	params := page.ToQueryParams("created_at", gDto.SortDirDesc)
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Value:    callerID,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRequests, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res, err = s.withOfferedItems(ctx, requests)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, callerID string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, callerID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("request not found") // nolint:wrapcheck
	}

	items, err := s.offeredItems(ctx, []string{request.ID})
	if err != nil {
		return res, err
	}

	res.FromModel(request, items[request.ID])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) requireUser(ctx context.Context, id string) error {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) withOfferedItems(ctx context.Context, requests []model.Request) ([]dto.RequestResponse, error) {
	res := []dto.RequestResponse{}
	if len(requests) == 0 {
		return res, nil
	}

	ids := make([]string, len(requests))
	for i, request := range requests {
		ids[i] = request.ID
	}

	items, err := s.offeredItems(ctx, ids)
	if err != nil {
		return res, err
	}

	for _, request := range requests {
		var view dto.RequestResponse

		view.FromModel(request, items[request.ID])

		res = append(res, view)
	}

	return res, nil
}

// offeredItems batches the items listed against the given requests, keyed by
// request id.
func (s *serviceImpl) offeredItems(ctx context.Context, requestIDs []string) (map[string][]itemModel.Item, error) {
	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "request_ids",
				Field:    itemModel.FieldRequestID,
				Value:    requestIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    itemModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get offered items")

		return nil, fmt.Errorf("failed to get offered items: %w", err)
	}

	byRequest := map[string][]itemModel.Item{}

	for _, item := range items {
		if item.RequestID == nil {
			continue
		}

		byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
	}

	return byRequest, nil
}
