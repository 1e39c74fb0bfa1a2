package dto

import (
	"lendhub/shared/constant"
	"lendhub/shared/failure"
	"net/http"
	"strconv"
)

// PageSpec is a validated offset-based page request. Page is the zero-based
// page index computed as from/size.
type PageSpec struct {
	Page int
	Size int
}

// ValidatePage checks the shared from/size pagination contract and converts
// it to a zero-based page spec.
//
// The from==0 && size==0 branch is subsumed by the size check but is kept so
// the legacy message order stays intact.
func ValidatePage(from, size int) (PageSpec, error) {
	if from == 0 && size == 0 {
		return PageSpec{}, failure.BadRequestFromString("from and size must not both be zero")
	}

	if size <= 0 {
		return PageSpec{}, failure.BadRequestFromString("size must be positive")
	}

	if from < 0 {
		return PageSpec{}, failure.BadRequestFromString("from must not be negative")
	}

	return PageSpec{Page: from / size, Size: size}, nil
}

// PageFromRequest reads from/size query parameters, applying defaults when a
// parameter is absent, then validates them.
func PageFromRequest(r *http.Request) (PageSpec, error) {
	from := constant.DefaultValueFrom
	size := constant.DefaultValueSize

	query := r.URL.Query()

	if raw := query.Get(constant.RequestParamFrom); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return PageSpec{}, failure.BadRequestFromString("from must be an integer")
		}

		from = parsed
	}

	if raw := query.Get(constant.RequestParamSize); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return PageSpec{}, failure.BadRequestFromString("size must be an integer")
		}

		size = parsed
	}

	return ValidatePage(from, size)
}

// ToQueryParams maps the zero-based page spec onto the repository's 1-based
// paging contract.
func (p PageSpec) ToQueryParams(sortBy, sortDir string) QueryParams {
	return QueryParams{
		Page:    p.Page + 1,
		Limit:   p.Size,
		SortBy:  sortBy,
		SortDir: sortDir,
	}
}
