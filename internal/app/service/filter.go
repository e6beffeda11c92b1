package service

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"todolist/internal/core/domain"
)

const (
	FilterFieldPage      = "page"
	FilterFieldSize      = "size"
	FilterFieldStatus    = "status"
	FilterFieldDirection = "direction"
)

// NormalizeFilter turns a raw filter into its canonical form. Invalid values never fail the
// request: they are replaced by defaults or dropped, and reported in Ignored.
func NormalizeFilter(filter domain.TaskFilter) domain.NormalizedFilter {
	var ignored []domain.IgnoredField

	page := filter.Page
	if page < 0 {
		ignored = append(ignored, domain.IgnoredField{
			Field:  FilterFieldPage,
			Value:  strconv.Itoa(filter.Page),
			Reason: "negative page, using 0",
		})
		page = 0
	}

	size := filter.Size
	if size <= 0 {
		ignored = append(ignored, domain.IgnoredField{
			Field:  FilterFieldSize,
			Value:  strconv.Itoa(filter.Size),
			Reason: "non-positive size, using 1",
		})
		size = 1
	}

	sortProperty := filter.Sort
	if strings.TrimSpace(sortProperty) == "" {
		sortProperty = domain.DefaultSortProperty
	}

	direction := domain.SortAsc
	switch {
	case strings.EqualFold(filter.Direction, string(domain.SortDesc)):
		direction = domain.SortDesc
	case strings.TrimSpace(filter.Direction) != "" && !strings.EqualFold(filter.Direction, string(domain.SortAsc)):
		zap.L().Warn("invalid sort direction, using ascending", zap.String("direction", filter.Direction))
		ignored = append(ignored, domain.IgnoredField{
			Field:  FilterFieldDirection,
			Value:  filter.Direction,
			Reason: "unknown direction, using asc",
		})
	}

	var status *domain.TaskStatus
	if filter.Status != nil && strings.TrimSpace(*filter.Status) != "" {
		parsed, err := domain.ParseTaskStatus(*filter.Status)
		if err != nil {
			zap.L().Warn("invalid status filter, skipping status filter", zap.String("status", *filter.Status))
			ignored = append(ignored, domain.IgnoredField{
				Field:  FilterFieldStatus,
				Value:  *filter.Status,
				Reason: "unknown status, filter not applied",
			})
		} else {
			status = &parsed
		}
	}

	keyword := ""
	if filter.Title != nil && strings.TrimSpace(*filter.Title) != "" {
		keyword = *filter.Title
	}

	var dueAfter, dueBefore *time.Time
	if filter.DueAfter != nil {
		value := StartOfDay(*filter.DueAfter)
		dueAfter = &value
	}
	if filter.DueBefore != nil {
		value := EndOfDay(*filter.DueBefore)
		dueBefore = &value
	}

	return domain.NormalizedFilter{
		Query: domain.TaskQuery{
			Keyword:       &keyword,
			Status:        status,
			CategoryID:    blankToNil(filter.CategoryID),
			DueAfter:      dueAfter,
			DueBefore:     dueBefore,
			Page:          page,
			Size:          size,
			SortProperty:  sortProperty,
			SortDirection: direction,
		},
		Ignored: ignored,
	}
}

// StartOfDay returns 00:00:00.000000000 of the calendar date of t, in UTC.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999999999 of the calendar date of t, in UTC.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, time.UTC)
}

func blankToNil(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
