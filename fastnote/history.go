package fastnote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fastnote-sync/fastnote-go/models"
)

// ListHistoriesOptions pages a history listing; semantics match
// ListNotesOptions.
type ListHistoriesOptions struct {
	IsRecycle *bool
	Page      int
	PageSize  int
}

// ListNoteHistories returns one page of a note's version history (GET
// /api/note/histories).
func (c *Client) ListNoteHistories(ctx context.Context, vault, path string, opts *ListHistoriesOptions) (models.Paginated[models.HistoryListItem], error) {
	var o ListHistoriesOptions
	if opts != nil {
		o = *opts
	}
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = 10
	}

	q := url.Values{}
	q.Set("vault", vault)
	q.Set("path", path)
	q.Set("page", strconv.Itoa(o.Page))
	q.Set("page_size", strconv.Itoa(o.PageSize))
	if o.IsRecycle != nil {
		q.Set("isRecycle", strconv.FormatBool(*o.IsRecycle))
	}

	data, err := c.do(ctx, http.MethodGet, "/note/histories", q, nil, nil)
	if err != nil {
		return models.Paginated[models.HistoryListItem]{}, err
	}
	return paginated(data, models.HistoryListItemFromMap), nil
}

// GetNoteHistory fetches one historical version in full, diffs included
// (GET /api/note/history?id=...).
func (c *Client) GetNoteHistory(ctx context.Context, id int64) (models.HistoryDetail, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(id, 10))

	data, err := c.do(ctx, http.MethodGet, "/note/history", q, nil, nil)
	if err != nil {
		return models.HistoryDetail{}, err
	}
	return models.HistoryDetailFromMap(dataMap(data)), nil
}

// RestoreNoteFromHistory rolls a note back to the given historical version
// (PUT /api/note/history/restore, JSON body). The server saves the current
// content as a new history entry before restoring.
func (c *Client) RestoreNoteFromHistory(ctx context.Context, vault string, historyID int64) (models.NoteInfo, error) {
	data, err := c.do(ctx, http.MethodPut, "/note/history/restore", nil, nil, map[string]any{
		"vault":     vault,
		"historyId": historyID,
	})
	if err != nil {
		return models.NoteInfo{}, err
	}
	return models.NoteInfoFromMap(dataMap(data)), nil
}
