package service

import (
	"context"
	"fmt"
	"lendhub/infras/otel"
	bookingModel "lendhub/internal/domains/booking/model"
	bookingRepository "lendhub/internal/domains/booking/repository"
	"lendhub/internal/domains/comment/model/dto"
	"lendhub/internal/domains/comment/repository"
	itemModel "lendhub/internal/domains/item/model"
	itemRepository "lendhub/internal/domains/item/repository"
	userModel "lendhub/internal/domains/user/model"
	userRepository "lendhub/internal/domains/user/repository"
	"lendhub/shared"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	"lendhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Comment interface {
	Create(ctx context.Context, req dto.CreateCommentRequest, itemID, authorID string) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Comment
	itemRepo    itemRepository.Item
	userRepo    userRepository.User
	bookingRepo bookingRepository.Booking
	otel        otel.Otel
}

func New(repo repository.Comment, itemRepo itemRepository.Item, userRepo userRepository.User, bookingRepo bookingRepository.Booking, otel otel.Otel) Comment {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCommentRequest, itemID, authorID string) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	itemExist, err := s.itemRepo.Exist(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if item exists")

		return res, fmt.Errorf("failed to check if item exists: %w", err)
	}

	if !itemExist {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	author, err := s.userRepo.Get(ctx, shared.FilterByID(authorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get author")

		return res, fmt.Errorf("failed to get author: %w", err)
	}

	if author.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	now := timezone.Now()

	// Only someone who has finished an approved booking of the item may
	// comment on it.
	completed, err := s.bookingRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldItemID,
				Value:    itemID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldBookerID,
				Value:    authorID,
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
				ArgName:  "completed_before",
				Field:    bookingModel.FieldEndDate,
				Value:    now,
				Operator: gDto.FilterOperatorLess,
				Table:    bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed bookings")

		return res, fmt.Errorf("failed to check completed bookings: %w", err)
	}

	if !completed {
		return res, failure.BadRequestFromString("user has no completed booking of this item") // nolint:wrapcheck
	}

	comment := req.ToModel(authorID, itemID, now)

	if err = s.repo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	res.FromModel(comment, author.Name)

	return res, nil
}
