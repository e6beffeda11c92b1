package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"todolist/internal/core/domain"
)

var ErrInvalidTaskFilter = errors.New("invalid task filter")

// BuildTaskFilter reads the search query parameters. Malformed numbers and dates are rejected;
// status, direction and out-of-range paging are left to the service normalizer.
func BuildTaskFilter(query url.Values) (domain.TaskFilter, error) {
	filter := domain.TaskFilter{
		Title:      optionalParam(query, "title"),
		Status:     optionalParam(query, "status"),
		CategoryID: optionalParam(query, "categoryId"),
		Page:       0,
		Size:       domain.DefaultPageSize,
		Sort:       domain.DefaultSortProperty,
		Direction:  string(domain.SortAsc),
	}

	var err error
	if filter.Page, err = intParam(query, "page", filter.Page); err != nil {
		return domain.TaskFilter{}, err
	}
	if filter.Size, err = intParam(query, "size", filter.Size); err != nil {
		return domain.TaskFilter{}, err
	}
	if filter.DueAfter, err = dateParam(query, "dueAfter"); err != nil {
		return domain.TaskFilter{}, err
	}
	if filter.DueBefore, err = dateParam(query, "dueBefore"); err != nil {
		return domain.TaskFilter{}, err
	}
	if sort := query.Get("sort"); sort != "" {
		filter.Sort = sort
	}
	if direction, ok := query["direction"]; ok && len(direction) > 0 {
		filter.Direction = direction[0]
	}

	return filter, nil
}

func optionalParam(query url.Values, key string) *string {
	values, ok := query[key]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}

func intParam(query url.Values, key string, fallback int) (int, error) {
	value := strings.TrimSpace(query.Get(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInvalidTaskFilter
	}
	return parsed, nil
}

func dateParam(query url.Values, key string) (*time.Time, error) {
	value := strings.TrimSpace(query.Get(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := domain.ParseLocalDate(value)
	if err != nil {
		return nil, ErrInvalidTaskFilter
	}
	return &parsed, nil
}
