package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lendhub/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "owner_id",
				Value:    "owner-1",
				Operator: dto.FilterOperatorEq,
				Table:    "items",
			},
			wantWhere: "items.owner_id = :owner_id",
			wantArgs:  map[string]any{"owner_id": "owner-1"},
		},
		{
			name: "explicit arg name wins over field",
			filter: dto.Filter{
				ArgName:  "window_start",
				Field:    "start_date",
				Value:    "now",
				Operator: dto.FilterOperatorLess,
				Table:    "bookings",
			},
			wantWhere: "bookings.start_date < :window_start",
			wantArgs:  map[string]any{"window_start": "now"},
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "requester_id",
				Value:    "caller-1",
				Operator: dto.FilterOperatorNotEq,
				Table:    "requests",
			},
			wantWhere: "requests.requester_id != :requester_id",
			wantArgs:  map[string]any{"requester_id": "caller-1"},
		},
		{
			name: "like wraps value and lowercases both sides",
			filter: dto.Filter{
				ArgName:  "search_name",
				Field:    "name",
				Value:    "Drill",
				Operator: dto.FilterOperatorLike,
				Table:    "items",
			},
			wantWhere: "LOWER(items.name) LIKE LOWER(:search_name) ",
			wantArgs:  map[string]any{"search_name": "%Drill%"},
		},
		{
			name: "in expands slice into numbered args",
			filter: dto.Filter{
				ArgName:  "item_ids",
				Field:    "item_id",
				Value:    []string{"a", "b"},
				Operator: dto.FilterOperatorIn,
				Table:    "bookings",
			},
			wantWhere: "bookings.item_id IN (:item_ids_0, :item_ids_1) ",
			wantArgs:  map[string]any{"item_ids_0": "a", "item_ids_1": "b"},
		},
		{
			name: "unknown operator renders nothing",
			filter: dto.Filter{
				Field:    "id",
				Value:    "x",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "available", Value: true, Operator: dto.FilterOperatorEq, Table: "items"},
				dto.Filter{Field: "owner_id", Value: "owner-1", Operator: dto.FilterOperatorEq, Table: "items"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(items.available = :available AND items.owner_id = :owner_id)", where)
		assert.Equal(t, map[string]any{"available": true, "owner_id": "owner-1"}, args)
	})

	t.Run("nested group with OR", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "available", Value: true, Operator: dto.FilterOperatorEq, Table: "items"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "search_name", Field: "name", Value: "drill", Operator: dto.FilterOperatorLike, Table: "items"},
						dto.Filter{ArgName: "search_description", Field: "description", Value: "drill", Operator: dto.FilterOperatorLike, Table: "items"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Contains(t, where, "items.available = :available AND ")
		assert.Contains(t, where, "LOWER(items.name) LIKE LOWER(:search_name)")
		assert.Contains(t, where, " OR ")
		assert.Contains(t, where, "LOWER(items.description) LIKE LOWER(:search_description)")
		assert.Equal(t, "%drill%", args["search_name"])
		assert.Equal(t, "%drill%", args["search_description"])
	})

	t.Run("empty nested group is skipped", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "booker_id", Value: "booker-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
				dto.FilterGroup{},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.booker_id = :booker_id)", where)
		assert.NotContains(t, where, "AND )")
		assert.Equal(t, map[string]any{"booker_id": "booker-1"}, args)
	})

	t.Run("filter with unknown operator is skipped", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "id", Value: "x", Operator: "between"},
				dto.Filter{Field: "status", Value: "WAITING", Operator: dto.FilterOperatorEq, Table: "bookings"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.status = :status)", where)
		assert.Equal(t, map[string]any{"status": "WAITING"}, args)
	})

	t.Run("empty group renders nothing", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}
