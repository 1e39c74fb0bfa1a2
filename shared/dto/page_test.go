package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"lendhub/shared/dto"
	"lendhub/shared/failure"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		size     int
		wantErr  bool
		wantPage int
		wantSize int
	}{
		{
			name:     "first page",
			from:     0,
			size:     10,
			wantPage: 0,
			wantSize: 10,
		},
		{
			name:     "offset aligned to page boundary",
			from:     20,
			size:     10,
			wantPage: 2,
			wantSize: 10,
		},
		{
			name:     "offset inside a page rounds down",
			from:     25,
			size:     10,
			wantPage: 2,
			wantSize: 10,
		},
		{
			name:    "both zero",
			from:    0,
			size:    0,
			wantErr: true,
		},
		{
			name:    "negative from",
			from:    -1,
			size:    10,
			wantErr: true,
		},
		{
			name:    "zero size with offset",
			from:    10,
			size:    0,
			wantErr: true,
		},
		{
			name:    "negative size",
			from:    0,
			size:    -5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := dto.ValidatePage(tt.from, tt.size)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantSize, page.Size)
		})
	}
}

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    map[string]string
		wantErr  bool
		wantPage int
		wantSize int
	}{
		{
			name:     "defaults when absent",
			query:    map[string]string{},
			wantPage: 0,
			wantSize: 10,
		},
		{
			name:     "explicit values",
			query:    map[string]string{"from": "30", "size": "15"},
			wantPage: 2,
			wantSize: 15,
		},
		{
			name:    "non-integer from",
			query:   map[string]string{"from": "abc"},
			wantErr: true,
		},
		{
			name:    "non-integer size",
			query:   map[string]string{"size": "x"},
			wantErr: true,
		},
		{
			name:    "negative from",
			query:   map[string]string{"from": "-3", "size": "10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.query {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			page, err := dto.PageFromRequest(request)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantSize, page.Size)
		})
	}
}

func TestPageSpec_ToQueryParams(t *testing.T) {
	page := dto.PageSpec{Page: 2, Size: 10}

	params := page.ToQueryParams("start_date", dto.SortDirDesc)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "start_date", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
}
