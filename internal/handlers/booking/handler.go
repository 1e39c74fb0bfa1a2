package booking

import (
	"lendhub/infras/otel"
	"lendhub/internal/domains/booking/model/dto"
	"lendhub/internal/domains/booking/service"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	"lendhub/shared/validator"
	"lendhub/transport/http/middleware"
	"lendhub/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.CallerID)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetOwnBookings)
		routerGroup.Get("/owner", handler.GetOwnedItemBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.SetApproval)
	})
}

// CreateBooking books an item for the caller.
// @Summary Book an item
// @Description Book an available item for a time window; the booking starts WAITING.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	bookerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, req, bookerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnBookings pages through the caller's bookings.
// @Summary Get own bookings
// @Description Retrieve the caller's bookings filtered by state.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param state query string false "Booking state filter" Enums(ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED)
// @Param from query int false "Offset of the first booking"
// @Param size query int false "Page size"
// @Success 200 {array} dto.BookingResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetOwnBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnBookings")
	defer scope.End()

	page, err := gDto.PageFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read page parameters")

		response.WithError(writer, err)

		return
	}

	bookerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	state := request.URL.Query().Get(constant.RequestParamState)

	res, err := handler.service.GetAllByBooker(ctx, bookerID, state, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOwnedItemBookings pages through bookings of the caller's items.
// @Summary Get bookings of owned items
// @Description Retrieve bookings of every item the caller owns, filtered by state.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param state query string false "Booking state filter" Enums(ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED)
// @Param from query int false "Offset of the first booking"
// @Param size query int false "Page size"
// @Success 200 {array} dto.BookingResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/owner [get]
func (handler *Handler) GetOwnedItemBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnedItemBookings")
	defer scope.End()

	page, err := gDto.PageFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read page parameters")

		response.WithError(writer, err)

		return
	}

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	state := request.URL.Query().Get(constant.RequestParamState)

	res, err := handler.service.GetAllByOwner(ctx, ownerID, state, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owned item bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID fetches a single booking.
// @Summary Get a booking by id
// @Description Retrieve a booking; only the booker or the item owner may see it.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Get(ctx, id, callerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetApproval approves or rejects a waiting booking.
// @Summary Approve or reject a booking
// @Description Approve or reject a booking of an owned item.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param id path string true "Booking ID"
// @Param approved query boolean true "Approve when true, reject when false"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) SetApproval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetApproval")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	approved, err := strconv.ParseBool(request.URL.Query().Get(constant.RequestParamApproved))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse approved parameter")

		response.WithError(writer, failure.BadRequestFromString(constant.RequestParamApproved+" must be a boolean"))

		return
	}

	res, err := handler.service.SetApproval(ctx, id, callerID, approved)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
