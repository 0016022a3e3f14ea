package fastnote

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastnote-sync/fastnote-go/models"
)

func TestListNoteHistories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/note/histories", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "v", q.Get("vault"))
		assert.Equal(t, "a.md", q.Get("path"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))

		writeData(t, w, map[string]any{
			"list": []any{
				map[string]any{"id": 11, "noteId": 2, "version": 4, "clientName": "laptop"},
				map[string]any{"id": 10, "noteId": 2, "version": 3, "clientName": "phone"},
			},
			"pager": map[string]any{"page": 1, "pageSize": 10, "totalRows": 2},
		})
	}, WithToken("tok"))

	res, err := c.ListNoteHistories(context.Background(), "v", "a.md", nil)
	require.NoError(t, err)
	require.Len(t, res.List, 2)
	assert.Equal(t, int64(11), res.List[0].ID)
	assert.Equal(t, "laptop", res.List[0].ClientName)
	assert.Equal(t, int64(4), res.List[0].Version)
}

func TestGetNoteHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/note/history", r.URL.Path)
		assert.Equal(t, "11", r.URL.Query().Get("id"))

		writeData(t, w, map[string]any{
			"id":      11,
			"noteId":  2,
			"content": "full content at v4",
			"diffs": []any{
				map[string]any{"Type": 0, "Text": "full content"},
				map[string]any{"Type": 1, "Text": " at v4"},
			},
		})
	}, WithToken("tok"))

	h, err := c.GetNoteHistory(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "full content at v4", h.Content)
	require.Len(t, h.Diffs, 2)
	assert.Equal(t, models.DiffInsert, h.Diffs[1].Type)
}

func TestRestoreNoteFromHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/note/history/restore", r.URL.Path)

		body := decodeJSONBody(t, r)
		assert.Equal(t, "v", body["vault"])
		assert.Equal(t, float64(11), body["historyId"])

		writeData(t, w, map[string]any{"path": "a.md", "version": 5})
	}, WithToken("tok"))

	n, err := c.RestoreNoteFromHistory(context.Background(), "v", 11)
	require.NoError(t, err)
	// Restoring bumps the version; it never rewinds it.
	assert.Equal(t, int64(5), n.Version)
}
