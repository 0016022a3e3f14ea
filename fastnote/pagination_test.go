package fastnote

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastnote-sync/fastnote-go/models"
)

// pagedNotesHandler serves pages of the given rows, pageSize rows per page,
// counting round trips.
func pagedNotesHandler(t *testing.T, rows []string, hits *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*hits++
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
		require.NoError(t, err)

		start := (page - 1) * pageSize
		end := min(start+pageSize, len(rows))
		list := []any{}
		if start < len(rows) {
			for i, p := range rows[start:end] {
				list = append(list, map[string]any{"id": start + i + 1, "path": p})
			}
		}

		writeData(t, w, map[string]any{
			"list": list,
			"pager": map[string]any{
				"page":      page,
				"pageSize":  pageSize,
				"totalRows": len(rows),
			},
		})
	}
}

func TestAllNotes_WalksEveryPageOnce(t *testing.T) {
	rows := []string{"a.md", "b.md", "c.md", "d.md", "e.md"}
	hits := 0
	c := newTestClient(t, pagedNotesHandler(t, rows, &hits), WithToken("tok"))

	var got []string
	for note, err := range c.AllNotes(context.Background(), "v", &AllNotesOptions{PageSize: 2}) {
		require.NoError(t, err)
		got = append(got, note.Path)
	}

	// 5 rows at 2 per page: pages 1..3, then 3*2 >= 5 stops the walk.
	assert.Equal(t, rows, got)
	assert.Equal(t, 3, hits)
}

func TestAllNotes_EmptyVault(t *testing.T) {
	hits := 0
	c := newTestClient(t, pagedNotesHandler(t, nil, &hits), WithToken("tok"))

	count := 0
	for _, err := range c.AllNotes(context.Background(), "v", nil) {
		require.NoError(t, err)
		count++
	}

	assert.Equal(t, 0, count)
	assert.Equal(t, 1, hits)
}

func TestAllNotes_ConsumerBreaksEarly(t *testing.T) {
	rows := []string{"a.md", "b.md", "c.md", "d.md", "e.md"}
	hits := 0
	c := newTestClient(t, pagedNotesHandler(t, rows, &hits), WithToken("tok"))

	for note, err := range c.AllNotes(context.Background(), "v", &AllNotesOptions{PageSize: 2}) {
		require.NoError(t, err)
		if note.Path == "a.md" {
			break
		}
	}

	// Breaking inside page 1 must not trigger further fetches.
	assert.Equal(t, 1, hits)
}

func TestAllNotes_RestartableSequence(t *testing.T) {
	rows := []string{"a.md", "b.md", "c.md"}
	hits := 0
	c := newTestClient(t, pagedNotesHandler(t, rows, &hits), WithToken("tok"))

	seq := c.AllNotes(context.Background(), "v", &AllNotesOptions{PageSize: 2})

	countSeq := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}

	assert.Equal(t, 3, countSeq())
	// A second range is a fresh walk from page one.
	assert.Equal(t, 3, countSeq())
	assert.Equal(t, 4, hits)
}

func TestAllNotes_FetchErrorStopsSequence(t *testing.T) {
	hits := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 2 {
			writeAPIError(t, w, 414, "vault not found", nil)
			return
		}
		writeData(t, w, map[string]any{
			"list": []any{
				map[string]any{"id": 1, "path": "a.md"},
				map[string]any{"id": 2, "path": "b.md"},
			},
			"pager": map[string]any{"page": 1, "pageSize": 2, "totalRows": 5},
		})
	}, WithToken("tok"))

	var items []models.NoteListItem
	var errs []error
	for note, err := range c.AllNotes(context.Background(), "v", &AllNotesOptions{PageSize: 2}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, note)
	}

	assert.Len(t, items, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, hits)
}

func TestAllNotes_ZeroReportedPageSizeTerminates(t *testing.T) {
	rows := [][]string{{"a.md", "b.md"}, {"c.md"}}
	hits := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		list := []any{}
		if page <= len(rows) {
			for _, p := range rows[page-1] {
				list = append(list, map[string]any{"path": p})
			}
		}
		// pageSize 0 despite three rows; the walk must still end.
		writeData(t, w, map[string]any{
			"list":  list,
			"pager": map[string]any{"page": page, "pageSize": 0, "totalRows": 3},
		})
	}, WithToken("tok"))

	var got []string
	for note, err := range c.AllNotes(context.Background(), "v", &AllNotesOptions{PageSize: 2}) {
		require.NoError(t, err)
		got = append(got, note.Path)
	}

	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, got)
	assert.Equal(t, 2, hits)
}

func TestListNotes_MissingListKeepsEmptySlice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, map[string]any{
			"pager": map[string]any{"page": 1, "pageSize": 10, "totalRows": 0},
		})
	}, WithToken("tok"))

	res, err := c.ListNotes(context.Background(), "v", nil)
	require.NoError(t, err)
	assert.NotNil(t, res.List)
	assert.Empty(t, res.List)
}

func TestAllNotes_ForwardsFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "todo", q.Get("keyword"))
		assert.Equal(t, "false", q.Get("isRecycle"))
		assert.Equal(t, "50", q.Get("page_size"))

		writeData(t, w, map[string]any{
			"list":  []any{},
			"pager": map[string]any{"page": 1, "pageSize": 50, "totalRows": 0},
		})
	}, WithToken("tok"))

	for _, err := range c.AllNotes(context.Background(), "v", &AllNotesOptions{
		Keyword:   "todo",
		IsRecycle: Bool(false),
	}) {
		require.NoError(t, err)
	}
}
