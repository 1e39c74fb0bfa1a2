package model_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lendhub/internal/domains/booking/model"
	gDto "lendhub/shared/dto"
	"lendhub/shared/failure"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    model.State
		wantErr bool
	}{
		{name: "empty defaults to ALL", token: "", want: model.StateAll},
		{name: "ALL", token: "ALL", want: model.StateAll},
		{name: "CURRENT", token: "CURRENT", want: model.StateCurrent},
		{name: "PAST", token: "PAST", want: model.StatePast},
		{name: "FUTURE", token: "FUTURE", want: model.StateFuture},
		{name: "WAITING", token: "WAITING", want: model.StateWaiting},
		{name: "REJECTED", token: "REJECTED", want: model.StateRejected},
		{name: "unknown token", token: "SOMETIME", wantErr: true},
		{name: "lowercase is not accepted", token: "current", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := model.ParseState(tt.token)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Contains(t, err.Error(), tt.token)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestState_WindowFilter(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("CURRENT brackets now and sorts ascending", func(t *testing.T) {
		filter, sortDir := model.StateCurrent.WindowFilter(now)

		assert.Equal(t, gDto.SortDirAsc, sortDir)

		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.start_date < :window_start")
		assert.Contains(t, where, "bookings.end_date > :window_end")
		assert.Equal(t, now, args["window_start"])
		assert.Equal(t, now, args["window_end"])
	})

	t.Run("PAST ends before now", func(t *testing.T) {
		filter, sortDir := model.StatePast.WindowFilter(now)

		assert.Equal(t, gDto.SortDirDesc, sortDir)

		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.end_date < :window_end")
		assert.Equal(t, now, args["window_end"])
	})

	t.Run("FUTURE starts after now", func(t *testing.T) {
		filter, sortDir := model.StateFuture.WindowFilter(now)

		assert.Equal(t, gDto.SortDirDesc, sortDir)

		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.start_date > :window_start")
		assert.Equal(t, now, args["window_start"])
	})

	t.Run("WAITING matches status", func(t *testing.T) {
		filter, sortDir := model.StateWaiting.WindowFilter(now)

		assert.Equal(t, gDto.SortDirDesc, sortDir)

		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.status = :status")
		assert.Equal(t, "WAITING", args["status"])
	})

	t.Run("REJECTED matches status", func(t *testing.T) {
		filter, _ := model.StateRejected.WindowFilter(now)

		_, args := filter.GetWhereClause()
		assert.Equal(t, "REJECTED", args["status"])
	})

	t.Run("ALL has no filter", func(t *testing.T) {
		filter, sortDir := model.StateAll.WindowFilter(now)

		assert.Equal(t, gDto.SortDirDesc, sortDir)

		where, _ := filter.GetWhereClause()
		assert.Empty(t, where)
	})
}
