package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lendhub/infras/otel"
	"lendhub/infras/postgres"
	"lendhub/internal/domains/comment/model"
	userModel "lendhub/internal/domains/user/model"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/logger"
	gRepo "lendhub/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, model model.Comment) error
	GetAllForItem(ctx context.Context, itemID string) ([]model.CommentWithAuthor, error)
	GetAllForItems(ctx context.Context, itemIDs []string) ([]model.CommentWithAuthor, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetAllForItem(ctx context.Context, itemID string) ([]model.CommentWithAuthor, error) {
	return r.getAllWithAuthor(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldItemID, Operator: gDto.FilterOperatorEq, Value: itemID},
		},
	})
}

func (r *repositoryImpl) GetAllForItems(ctx context.Context, itemIDs []string) ([]model.CommentWithAuthor, error) {
	if len(itemIDs) == 0 {
		return []model.CommentWithAuthor{}, nil
	}

	return r.getAllWithAuthor(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldItemID, Operator: gDto.FilterOperatorIn, Value: itemIDs},
		},
	})
}

func (r *repositoryImpl) getAllWithAuthor(ctx context.Context, filter gDto.FilterGroup) ([]model.CommentWithAuthor, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAllWithAuthor", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	where, args := r.BuildWhereClause(filter)

	query := fmt.Sprintf(
		"SELECT %s.*, %s.name AS author_name FROM %s JOIN %s ON %s.id = %s.author_id %s ORDER BY %s.created_at DESC",
		model.TableName, userModel.TableName, model.TableName, userModel.TableName, userModel.TableName, model.TableName,
		where, model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var comments []model.CommentWithAuthor

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return comments, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &comments, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return comments, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return comments, nil
}
