package service

import (
	"context"
	"fmt"
	"lendhub/config"
	"lendhub/infras/kafka"
	"lendhub/infras/otel"
	"lendhub/internal/domains/booking/model"
	"lendhub/internal/domains/booking/model/dto"
	"lendhub/internal/domains/booking/repository"
	itemModel "lendhub/internal/domains/item/model"
	itemRepository "lendhub/internal/domains/item/repository"
	userModel "lendhub/internal/domains/user/model"
	userRepository "lendhub/internal/domains/user/repository"
	"lendhub/shared"
	"lendhub/shared/constant"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	"lendhub/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, bookerID string) (dto.BookingResponse, error)
	SetApproval(ctx context.Context, id, callerID string, approved bool) (dto.BookingResponse, error)
	Get(ctx context.Context, id, callerID string) (dto.BookingResponse, error)
	GetAllByBooker(ctx context.Context, bookerID, stateToken string, page gDto.PageSpec) ([]dto.BookingResponse, error)
	GetAllByOwner(ctx context.Context, ownerID, stateToken string, page gDto.PageSpec) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	itemRepo itemRepository.Item
	userRepo userRepository.User
	cfg      *config.Config
	event    kafka.Client
	otel     otel.Otel
}

func New(repo repository.Booking, itemRepo itemRepository.Item, userRepo userRepository.User, cfg *config.Config, event kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		itemRepo: itemRepo,
		userRepo: userRepo,
		cfg:      cfg,
		event:    event,
		otel:     otel,
	}
}

// lifecycleEvent is the payload published on booking topics.
type lifecycleEvent struct {
	BookingID  string `json:"booking_id"`
	ItemID     string `json:"item_id"`
	BookerID   string `json:"booker_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, bookerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.ParseWindow()
	if err != nil {
		return res, failure.BadRequestFromString("start and end must be date-times formatted as " + constant.DateTimeFormat) // nolint:wrapcheck
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	booker, err := s.userRepo.Get(ctx, shared.FilterByID(bookerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booker")

		return res, fmt.Errorf("failed to get booker: %w", err)
	}

	if booker.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	// An owner booking their own item is reported as absence, not rejection,
	// so the item's existence leaks nothing to its owner's probes.
	if item.OwnerID == bookerID {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	if !item.Available {
		return res, failure.BadRequestFromString("item is not available for booking") // nolint:wrapcheck
	}

	if err = validateWindow(start, end); err != nil {
		return res, err
	}

	booking := req.ToModel(bookerID, start, end)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, constant.TopicBookingCreated, booking)

	res.FromModel(booking, item, booker)

	return res, nil
}

func (s *serviceImpl) SetApproval(ctx context.Context, id, callerID string, approved bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetApproval")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(booking.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked item")

		return res, fmt.Errorf("failed to get booked item: %w", err)
	}

	// Non-owners get the same answer as a missing booking.
	if item.OwnerID != callerID {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if approved && booking.Status == model.StatusApproved {
		return res, failure.BadRequestFromString("incorrect status update") // nolint:wrapcheck
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	fields := map[string]any{
		model.FieldStatus: string(status),
		"modified_at":     timezone.Now(),
		"modified_by":     callerID,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status

	s.publish(ctx, constant.TopicBookingStatusChanged, booking)

	booker, err := s.userRepo.Get(ctx, shared.FilterByID(booking.BookerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booker")

		return res, fmt.Errorf("failed to get booker: %w", err)
	}

	res.FromModel(booking, item, booker)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, callerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(booking.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked item")

		return res, fmt.Errorf("failed to get booked item: %w", err)
	}

	if callerID != booking.BookerID && callerID != item.OwnerID {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	booker, err := s.userRepo.Get(ctx, shared.FilterByID(booking.BookerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booker")

		return res, fmt.Errorf("failed to get booker: %w", err)
	}

	res.FromModel(booking, item, booker)

	return res, nil
}

func (s *serviceImpl) GetAllByBooker(ctx context.Context, bookerID, stateToken string, page gDto.PageSpec) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAllByBooker")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, bookerID); err != nil {
		return res, err
	}

	state, err := model.ParseState(stateToken)
	if err != nil {
		return res, err
	}

	filter, sortDir := state.WindowFilter(timezone.Now())
	filter = gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookerID,
				Value:    bookerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			filter,
		},
	}

	bookings, err := s.repo.GetAll(ctx, page.ToQueryParams(model.FieldStartDate, sortDir), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by booker")

		return res, fmt.Errorf("failed to get bookings by booker: %w", err)
	}

	return s.enrich(ctx, bookings)
}

func (s *serviceImpl) GetAllByOwner(ctx context.Context, ownerID, stateToken string, page gDto.PageSpec) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAllByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, ownerID); err != nil {
		return res, err
	}

	ownsAny, err := s.itemRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    itemModel.FieldOwnerID,
				Value:    ownerID,
				Operator: gDto.FilterOperatorEq,
				Table:    itemModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check owned items")

		return res, fmt.Errorf("failed to check owned items: %w", err)
	}

	if !ownsAny {
		return res, failure.BadRequestFromString("user has no items to book") // nolint:wrapcheck
	}

	state, err := model.ParseState(stateToken)
	if err != nil {
		return res, err
	}

	filter, sortDir := state.WindowFilter(timezone.Now())

	bookings, err := s.repo.GetAllForOwner(ctx, ownerID, page.ToQueryParams(model.FieldStartDate, sortDir), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by owner")

		return res, fmt.Errorf("failed to get bookings by owner: %w", err)
	}

	return s.enrich(ctx, bookings)
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

// enrich resolves the item and booker of each booking with one batched lookup
// per table.
func (s *serviceImpl) enrich(ctx context.Context, bookings []model.Booking) ([]dto.BookingResponse, error) {
	res := []dto.BookingResponse{}
	if len(bookings) == 0 {
		return res, nil
	}

	itemIDs := make([]string, 0, len(bookings))
	bookerIDs := make([]string, 0, len(bookings))

	for _, booking := range bookings {
		itemIDs = append(itemIDs, booking.ItemID)
		bookerIDs = append(bookerIDs, booking.BookerID)
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "item_ids",
				Field:    itemModel.FieldID,
				Value:    itemIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    itemModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked items")

		return res, fmt.Errorf("failed to get booked items: %w", err)
	}

	bookers, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "booker_ids",
				Field:    userModel.FieldID,
				Value:    bookerIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    userModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookers")

		return res, fmt.Errorf("failed to get bookers: %w", err)
	}

	itemsByID := make(map[string]itemModel.Item, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}

	bookersByID := make(map[string]userModel.User, len(bookers))
	for _, booker := range bookers {
		bookersByID[booker.ID] = booker
	}

	for _, booking := range bookings {
		var view dto.BookingResponse

		view.FromModel(booking, itemsByID[booking.ItemID], bookersByID[booking.BookerID])

		res = append(res, view)
	}

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, topic string, booking model.Booking) {
	if !s.cfg.Event.Kafka.Enable {
		return
	}

	event := lifecycleEvent{
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		BookerID:   booking.BookerID,
		Status:     string(booking.Status),
		OccurredAt: timezone.Format(timezone.Now(), constant.DateTimeFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.event.SendMessages(c, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}

func validateWindow(start, end time.Time) error {
	if start.Equal(end) {
		return failure.BadRequestFromString("start and end must not be equal") // nolint:wrapcheck
	}

	if end.Before(start) {
		return failure.BadRequestFromString("end must be after start") // nolint:wrapcheck
	}

	return nil
}
