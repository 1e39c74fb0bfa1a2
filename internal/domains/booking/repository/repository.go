package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lendhub/infras/otel"
	"lendhub/infras/postgres"
	"lendhub/internal/domains/booking/model"
	itemModel "lendhub/internal/domains/item/model"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/logger"
	gRepo "lendhub/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllForOwner(ctx context.Context, ownerID string, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	First(ctx context.Context, filter gDto.FilterGroup, sortBy, sortDir string) (model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllForOwner lists bookings of items owned by ownerID. The filter narrows
// the set further (status, time window); fields must be unambiguous across the
// joined tables.
func (r *repositoryImpl) GetAllForOwner(ctx context.Context, ownerID string, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAllForOwner", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	combined := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    itemModel.TableName,
				Field:    itemModel.FieldOwnerID,
				ArgName:  "owner_id",
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
			},
			filter,
		},
	}

	where, args := r.BuildWhereClause(combined)

	var ordering, pagination string

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = "LIMIT :limit OFFSET :offset"
	}

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s.%s %s", model.TableName, params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf(
		"SELECT %s.* FROM %s JOIN %s ON %s.id = %s.item_id %s %s %s",
		model.TableName, model.TableName, itemModel.TableName, itemModel.TableName, model.TableName,
		where, ordering, pagination,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}
