package service

import (
	"context"
	"fmt"
	"lendhub/infras/otel"
	bookingModel "lendhub/internal/domains/booking/model"
	bookingDto "lendhub/internal/domains/booking/model/dto"
	bookingRepository "lendhub/internal/domains/booking/repository"
	commentDto "lendhub/internal/domains/comment/model/dto"
	commentRepository "lendhub/internal/domains/comment/repository"
	"lendhub/internal/domains/item/model"
	"lendhub/internal/domains/item/model/dto"
	"lendhub/internal/domains/item/repository"
	requestModel "lendhub/internal/domains/request/model"
	requestRepository "lendhub/internal/domains/request/repository"
	userModel "lendhub/internal/domains/user/model"
	userRepository "lendhub/internal/domains/user/repository"
	"lendhub/shared"
	"lendhub/shared/cache"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	"lendhub/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest     = "request:get"
	cacheGetAllRequests = "request:gets"
)

type Item interface {
	Create(ctx context.Context, req dto.CreateItemRequest, ownerID string) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, id, callerID string) (dto.ItemResponse, error)
	Get(ctx context.Context, id, callerID string) (dto.ItemResponse, error)
	GetAllByOwner(ctx context.Context, ownerID string, page gDto.PageSpec) (dto.GetItemsResponse, error)
	Search(ctx context.Context, text string, page gDto.PageSpec) (dto.GetItemsResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	userRepo    userRepository.User
	requestRepo requestRepository.Request
	bookingRepo bookingRepository.Booking
	commentRepo commentRepository.Comment
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Item,
	userRepo userRepository.User,
	requestRepo requestRepository.Request,
	bookingRepo bookingRepository.Booking,
	commentRepo commentRepository.Comment,
	cache cache.RedisCache,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest, ownerID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerExist, err := s.userRepo.Exist(ctx, shared.FilterByID(ownerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return res, fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !ownerExist {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	if req.RequestID != nil {
		requestExist, err := s.requestRepo.Exist(ctx, shared.FilterByID(*req.RequestID, requestModel.FieldID, requestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if request exists")

			return res, fmt.Errorf("failed to check if request exists: %w", err)
		}

		if !requestExist {
			return res, failure.NotFound("request not found") // nolint:wrapcheck
		}
	}

	item := req.ToModel(ownerID)

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	// Cached request views list the items offered against them.
	if req.RequestID != nil {
		requestID := *req.RequestID

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRequest, requestID)); err != nil {
				log.Error().Err(err).Msg("failed to delete request from cache")
			}

			shared.InvalidateCaches(c, s.cache, cacheGetAllRequests)
		}()
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, id, callerID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	// A non-owner editing is answered the same as a missing item.
	if item.ID == constant.Empty || item.OwnerID != callerID {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, callerID)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	item, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated item")

		return res, fmt.Errorf("failed to get updated item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, callerID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	comments, err := s.commentRepo.GetAllForItem(ctx, item.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, fmt.Errorf("failed to get item comments: %w", err)
	}

	res.Comments = commentDto.CommentsFromModels(comments)

	// Booking history is the owner's view only.
	if item.OwnerID == callerID {
		if err = s.attachBookings(ctx, &res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) GetAllByOwner(ctx context.Context, ownerID string, page gDto.PageSpec) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetAllByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerExist, err := s.userRepo.Exist(ctx, shared.FilterByID(ownerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return res, fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !ownerExist {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetAll(ctx, page.ToQueryParams(model.FieldID, gDto.SortDirAsc), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Value:    ownerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get items by owner")

		return res, fmt.Errorf("failed to get items by owner: %w", err)
	}

	res.FromModels(items)

	itemIDs := make([]string, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	comments, err := s.commentRepo.GetAllForItems(ctx, itemIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, fmt.Errorf("failed to get item comments: %w", err)
	}

	commentsByItem := map[string][]commentDto.CommentResponse{}

	for _, comment := range comments {
		var view commentDto.CommentResponse

		view.FromModelWithAuthor(comment)

		commentsByItem[comment.ItemID] = append(commentsByItem[comment.ItemID], view)
	}

	for i := range res.Items {
		if views, ok := commentsByItem[res.Items[i].ID]; ok {
			res.Items[i].Comments = views
		}

		if err = s.attachBookings(ctx, &res.Items[i]); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, text string, page gDto.PageSpec) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Items = []dto.ItemResponse{}

	if text == constant.Empty {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAvailable,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "search_name",
						Field:    model.FieldName,
						Value:    text,
						Operator: gDto.FilterOperatorLike,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "search_description",
						Field:    model.FieldDescription,
						Value:    text,
						Operator: gDto.FilterOperatorLike,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	items, err := s.repo.GetAll(ctx, page.ToQueryParams(model.FieldID, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return res, fmt.Errorf("failed to search items: %w", err)
	}

	res.FromModels(items)

	return res, nil
}

// attachBookings fills the owner-only lastBooking/nextBooking views: the most
// recently started approved booking and the next approved one relative to now.
func (s *serviceImpl) attachBookings(ctx context.Context, view *dto.ItemResponse) error {
	now := timezone.Now()

	last, err := s.bookingRepo.First(ctx, approvedWindow(view.ID, now, gDto.FilterOperatorLess), bookingModel.FieldStartDate, gDto.SortDirDesc)
	if err != nil {
		log.Error().Err(err).Msg("failed to get last booking")

		return fmt.Errorf("failed to get last booking: %w", err)
	}

	next, err := s.bookingRepo.First(ctx, approvedWindow(view.ID, now, gDto.FilterOperatorGreater), bookingModel.FieldStartDate, gDto.SortDirAsc)
	if err != nil {
		log.Error().Err(err).Msg("failed to get next booking")

		return fmt.Errorf("failed to get next booking: %w", err)
	}

	if last.ID != constant.Empty {
		view.LastBooking = &bookingDto.BookingShort{}

		view.LastBooking.FromModel(last)
	}

	if next.ID != constant.Empty {
		view.NextBooking = &bookingDto.BookingShort{}

		view.NextBooking.FromModel(next)
	}

	return nil
}

func approvedWindow(itemID string, now time.Time, startOperator string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldItemID,
				Value:    itemID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Value:    string(bookingModel.StatusApproved),
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    bookingModel.FieldStartDate,
				Value:    now,
				Operator: startOperator,
				Table:    bookingModel.TableName,
			},
		},
	}
}
