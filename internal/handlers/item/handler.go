package item

import (
	"lendhub/infras/otel"
	commentDto "lendhub/internal/domains/comment/model/dto"
	commentService "lendhub/internal/domains/comment/service"
	"lendhub/internal/domains/item/model/dto"
	"lendhub/internal/domains/item/service"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/validator"
	"lendhub/transport/http/middleware"
	"lendhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Item
	commentService commentService.Comment
	middleware     middleware.AppMiddleware
	otel           otel.Otel
}

func New(service service.Item, commentService commentService.Comment, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		commentService: commentService,
		middleware:     middleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.CallerID)

		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetOwnItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Post("/{id}/comment", handler.CreateComment)
	})
}

// CreateItem lists a new item under the calling owner.
// @Summary List a new item
// @Description List a new item owned by the caller, optionally answering a request.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.ItemResponse] "Item created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, req, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnItems pages through the caller's items.
// @Summary Get own items
// @Description Retrieve the caller's items with booking history and comments.
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param from query int false "Offset of the first item"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "List of items"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [get]
func (handler *Handler) GetOwnItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnItems")
	defer scope.End()

	page, err := gDto.PageFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read page parameters")

		response.WithError(writer, err)

		return
	}

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetAllByOwner(ctx, ownerID, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchItems searches available items by text.
// @Summary Search items
// @Description Search available items whose name or description contains the text.
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param text query string true "Search text"
// @Param from query int false "Offset of the first item"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "Matching items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/search [get]
func (handler *Handler) SearchItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	page, err := gDto.PageFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read page parameters")

		response.WithError(writer, err)

		return
	}

	text := request.URL.Query().Get(constant.RequestParamText)

	res, err := handler.service.Search(ctx, text, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetItemByID fetches a single item.
// @Summary Get an item by id
// @Description Retrieve an item with comments; booking history is included for the owner.
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Item"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [get]
func (handler *Handler) GetItemByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Get(ctx, id, callerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateItem applies a partial update to an item.
// @Summary Update an item
// @Description Update the name, description and/or availability of an owned item.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Data[dto.ItemResponse] "Updated item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [patch]
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Update(ctx, req, id, callerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateComment adds a comment to an item the caller has booked before.
// @Summary Comment on an item
// @Description Leave a comment on an item after a completed approved booking.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param id path string true "Item ID"
// @Param request body commentDto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} response.Data[commentDto.CommentResponse] "Comment created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/comment [post]
func (handler *Handler) CreateComment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	itemID := chi.URLParam(request, constant.RequestParamID)

	req := commentDto.CreateCommentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	authorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.commentService.Create(ctx, req, itemID, authorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create comment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
