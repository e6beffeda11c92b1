package service

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"todolist/internal/core/domain"
)

var collationLanguage = language.Polish

// TaskSorter orders an already fetched task list in memory.
//
// Text keys use Polish collation at primary strength, so case and diacritics are ignored.
// Missing values sort last. A descending sort reverses the whole comparator, which moves
// missing values first, unless NullsLastAlways is set.
type TaskSorter struct {
	NullsLastAlways bool
}

func (s TaskSorter) Sort(tasks []domain.Task, property, direction string) {
	// collate.Collator keeps internal buffers and must not be shared between goroutines.
	collator := collate.New(collationLanguage, collate.IgnoreCase, collate.IgnoreDiacritics)
	desc := strings.EqualFold(direction, string(domain.SortDesc))

	var cmp func(a, b domain.Task) int
	switch property {
	case domain.SortByDescription:
		cmp = byNullableKey(desc, s.NullsLastAlways, func(t domain.Task) *string { return t.Description }, collator.CompareString)
	case domain.SortByCategoryName:
		cmp = byNullableKey(desc, s.NullsLastAlways, domain.Task.CategoryName, collator.CompareString)
	case domain.SortByDueDate:
		cmp = byNullableKey(desc, s.NullsLastAlways, func(t domain.Task) *time.Time { return t.DueDate }, func(a, b time.Time) int {
			return a.Compare(b)
		})
	case domain.SortByStatus:
		cmp = byNullableKey(desc, s.NullsLastAlways, statusKey, func(a, b int) int { return a - b })
	default:
		cmp = byNullableKey(desc, s.NullsLastAlways, func(t domain.Task) *string { return &t.Title }, collator.CompareString)
	}

	slices.SortStableFunc(tasks, cmp)
}

func statusKey(t domain.Task) *int {
	if !t.Status.Valid() {
		return nil
	}
	ordinal := t.Status.Ordinal()
	return &ordinal
}

func byNullableKey[K any](desc, nullsLastAlways bool, key func(domain.Task) *K, compare func(a, b K) int) func(a, b domain.Task) int {
	return func(a, b domain.Task) int {
		ka, kb := key(a), key(b)
		switch {
		case ka == nil && kb == nil:
			return 0
		case ka == nil:
			if desc && !nullsLastAlways {
				return -1
			}
			return 1
		case kb == nil:
			if desc && !nullsLastAlways {
				return 1
			}
			return -1
		}
		c := compare(*ka, *kb)
		if desc {
			return -c
		}
		return c
	}
}
