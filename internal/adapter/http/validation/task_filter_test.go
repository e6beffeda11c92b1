package validation

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"todolist/internal/core/domain"
)

func TestBuildTaskFilter_Defaults(t *testing.T) {
	filter, err := BuildTaskFilter(url.Values{})

	require.NoError(t, err)
	require.Nil(t, filter.Title)
	require.Nil(t, filter.Status)
	require.Nil(t, filter.CategoryID)
	require.Nil(t, filter.DueAfter)
	require.Nil(t, filter.DueBefore)
	require.Equal(t, 0, filter.Page)
	require.Equal(t, domain.DefaultPageSize, filter.Size)
	require.Equal(t, domain.SortByTitle, filter.Sort)
	require.Equal(t, "asc", filter.Direction)
}

func TestBuildTaskFilter_ReadsEverything(t *testing.T) {
	query, err := url.ParseQuery("title=milk&status=DONE&categoryId=c1&dueAfter=2024-05-01&dueBefore=2024-05-03T10:00&page=2&size=5&sort=dueDate&direction=DESC")
	require.NoError(t, err)

	filter, err := BuildTaskFilter(query)

	require.NoError(t, err)
	require.Equal(t, "milk", *filter.Title)
	require.Equal(t, "DONE", *filter.Status)
	require.Equal(t, "c1", *filter.CategoryID)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *filter.DueAfter)
	require.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), *filter.DueBefore)
	require.Equal(t, 2, filter.Page)
	require.Equal(t, 5, filter.Size)
	require.Equal(t, domain.SortByDueDate, filter.Sort)
	require.Equal(t, "DESC", filter.Direction)
}

func TestBuildTaskFilter_KeepsOutOfRangePagingForNormalizer(t *testing.T) {
	filter, err := BuildTaskFilter(url.Values{"page": {"-3"}, "size": {"0"}})

	require.NoError(t, err)
	require.Equal(t, -3, filter.Page)
	require.Equal(t, 0, filter.Size)
}

func TestBuildTaskFilter_RejectsMalformedValues(t *testing.T) {
	for _, raw := range []string{"page=x", "size=2.5", "dueAfter=tomorrow", "dueBefore=2024-13-01"} {
		query, err := url.ParseQuery(raw)
		require.NoError(t, err)

		_, err = BuildTaskFilter(query)
		require.ErrorIs(t, err, ErrInvalidTaskFilter, raw)
	}
}

func TestBuildTaskFilter_EmptyNumbersUseDefaults(t *testing.T) {
	filter, err := BuildTaskFilter(url.Values{"page": {""}, "size": {" "}})

	require.NoError(t, err)
	require.Equal(t, 0, filter.Page)
	require.Equal(t, domain.DefaultPageSize, filter.Size)
}
