package request

import (
	"lendhub/infras/otel"
	"lendhub/internal/domains/request/model/dto"
	"lendhub/internal/domains/request/service"
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
	service    service.Request
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Request, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.CallerID)

		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetOwnRequests)
		routerGroup.Get("/all", handler.GetAllRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
	})
}

// CreateRequest raises a request for a missing item.
// @Summary Raise an item request
// @Description Describe an item the caller is looking for so owners can list one.
// @Tags Request
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param request body dto.CreateRequestRequest true "Create Request Request"
// @Success 201 {object} response.Data[dto.RequestResponse] "Request created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	requesterID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, req, requesterID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnRequests lists the caller's requests with offered items.
// @Summary Get own requests
// @Description Retrieve the caller's requests, oldest first, with the items offered against them.
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Success 200 {array} dto.RequestResponse "List of requests"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [get]
func (handler *Handler) GetOwnRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRequests")
	defer scope.End()

	requesterID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetOwn(ctx, requesterID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAllRequests pages through other users' requests.
// @Summary Get other users' requests
// @Description Retrieve requests raised by other users, newest first.
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param from query int false "Offset of the first request"
// @Param size query int false "Page size"
// @Success 200 {array} dto.RequestResponse "List of requests"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/all [get]
func (handler *Handler) GetAllRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRequests")
	defer scope.End()

	page, err := gDto.PageFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read page parameters")

		response.WithError(writer, err)

		return
	}

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetAll(ctx, callerID, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRequestByID fetches a single request.
// @Summary Get a request by id
// @Description Retrieve a request and the items offered against it.
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.RequestResponse] "Request"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id} [get]
func (handler *Handler) GetRequestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Get(ctx, id, callerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
