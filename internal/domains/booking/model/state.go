package model

import (
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
	"time"
)

// State is a listing filter over bookings: either a time window relative to
// now (CURRENT, PAST, FUTURE) or a status match (WAITING, REJECTED).
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a request token onto the closed state set. Unknown tokens
// fail; there is no silent default. An empty token means ALL.
func ParseState(token string) (State, error) {
	if token == "" {
		return StateAll, nil
	}

	switch State(token) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(token), nil
	default:
		return "", failure.BadRequestFromString("unknown state: " + token) // nolint:wrapcheck
	}
}

// WindowFilter translates the state into booking-table filters evaluated
// against now, plus the sort direction for start_date. CURRENT is the only
// ascending case, so the soonest-ending active booking surfaces first.
func (s State) WindowFilter(now time.Time) (gDto.FilterGroup, string) {
	switch s {
	case StateCurrent:
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					ArgName:  "window_start",
					Field:    FieldStartDate,
					Value:    now,
					Operator: gDto.FilterOperatorLess,
					Table:    TableName,
				},
				gDto.Filter{
					ArgName:  "window_end",
					Field:    FieldEndDate,
					Value:    now,
					Operator: gDto.FilterOperatorGreater,
					Table:    TableName,
				},
			},
		}, gDto.SortDirAsc
	case StatePast:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					ArgName:  "window_end",
					Field:    FieldEndDate,
					Value:    now,
					Operator: gDto.FilterOperatorLess,
					Table:    TableName,
				},
			},
		}, gDto.SortDirDesc
	case StateFuture:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					ArgName:  "window_start",
					Field:    FieldStartDate,
					Value:    now,
					Operator: gDto.FilterOperatorGreater,
					Table:    TableName,
				},
			},
		}, gDto.SortDirDesc
	case StateWaiting, StateRejected:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    FieldStatus,
					Value:    string(s),
					Operator: gDto.FilterOperatorEq,
					Table:    TableName,
				},
			},
		}, gDto.SortDirDesc
	default:
		return gDto.FilterGroup{}, gDto.SortDirDesc
	}
}
