package fastnote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fastnote-sync/fastnote-go/models"
)

// ListNotesOptions narrows and pages a note listing. Zero values mean
// "unset": an empty Keyword is omitted from the query, a nil IsRecycle is
// omitted, and non-positive Page/PageSize fall back to the server defaults
// (page 1, 10 rows).
type ListNotesOptions struct {
	// Keyword runs a full-text search over note contents.
	Keyword string

	// IsRecycle switches the listing to the recycle bin.
	IsRecycle *bool

	Page     int
	PageSize int
}

// ListNotes returns one page of a vault's note listing (GET /api/notes).
// Rows exclude note bodies; use GetNote for content.
func (c *Client) ListNotes(ctx context.Context, vault string, opts *ListNotesOptions) (models.Paginated[models.NoteListItem], error) {
	var o ListNotesOptions
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
	q.Set("page", strconv.Itoa(o.Page))
	q.Set("page_size", strconv.Itoa(o.PageSize))
	if o.Keyword != "" {
		q.Set("keyword", o.Keyword)
	}
	if o.IsRecycle != nil {
		q.Set("isRecycle", strconv.FormatBool(*o.IsRecycle))
	}

	data, err := c.do(ctx, http.MethodGet, "/notes", q, nil, nil)
	if err != nil {
		return models.Paginated[models.NoteListItem]{}, err
	}
	return paginated(data, models.NoteListItemFromMap), nil
}

// GetNote fetches a single note with its full content (GET /api/note).
// Pass isRecycle to address the recycle bin; nil leaves it to the server
// default.
func (c *Client) GetNote(ctx context.Context, vault, path string, isRecycle *bool) (models.NoteDetail, error) {
	q := url.Values{}
	q.Set("vault", vault)
	q.Set("path", path)
	if isRecycle != nil {
		q.Set("isRecycle", strconv.FormatBool(*isRecycle))
	}

	data, err := c.do(ctx, http.MethodGet, "/note", q, nil, nil)
	if err != nil {
		return models.NoteDetail{}, err
	}
	return models.NoteDetailFromMap(dataMap(data)), nil
}

// CreateNote creates a note (POST /api/note, JSON body). extra carries the
// endpoint's open optional field set (ctime, mtime, …); the accepted keys
// are server-defined. pathHash and contentHash must not be supplied: the
// server computes them.
func (c *Client) CreateNote(ctx context.Context, vault, path, content string, extra map[string]any) (models.NoteInfo, error) {
	return c.writeNote(ctx, vault, path, content, extra)
}

// UpdateNote replaces a note's content (POST /api/note, JSON body — the
// endpoint is shared with CreateNote). extra accepts the same open field
// set plus srcPath for renames.
func (c *Client) UpdateNote(ctx context.Context, vault, path, content string, extra map[string]any) (models.NoteInfo, error) {
	return c.writeNote(ctx, vault, path, content, extra)
}

func (c *Client) writeNote(ctx context.Context, vault, path, content string, extra map[string]any) (models.NoteInfo, error) {
	payload := map[string]any{
		"vault":   vault,
		"path":    path,
		"content": content,
	}
	for k, v := range extra {
		payload[k] = v
	}

	data, err := c.do(ctx, http.MethodPost, "/note", nil, nil, payload)
	if err != nil {
		return models.NoteInfo{}, err
	}
	return models.NoteInfoFromMap(dataMap(data)), nil
}

// DeleteNote moves a note to the recycle bin (DELETE /api/note). The
// returned object's shape is server-defined and unspecified beyond being a
// key-value object; it usually echoes the deleted note.
func (c *Client) DeleteNote(ctx context.Context, vault, path string) (map[string]any, error) {
	q := url.Values{}
	q.Set("vault", vault)
	q.Set("path", path)

	data, err := c.do(ctx, http.MethodDelete, "/note", q, nil, nil)
	if err != nil {
		return nil, err
	}
	return dataMap(data), nil
}

// GetNoteFile downloads a note's or attachment's raw content (GET
// /api/note/file). This is the one endpoint that answers outside the JSON
// envelope; the bytes are returned untouched.
func (c *Client) GetNoteFile(ctx context.Context, vault, path string) ([]byte, error) {
	q := url.Values{}
	q.Set("vault", vault)
	q.Set("path", path)

	return c.doRaw(ctx, http.MethodGet, "/note/file", q)
}
