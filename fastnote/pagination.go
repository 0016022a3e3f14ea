package fastnote

import (
	"context"
	"iter"

	"github.com/fastnote-sync/fastnote-go/models"
)

// paginated unwraps the {"list": [...], "pager": {...}} shape shared by the
// listing endpoints.
func paginated[T any](data any, from func(map[string]any) T) models.Paginated[T] {
	m := dataMap(data)

	items := []T{}
	if l, ok := m["list"].([]any); ok {
		items = make([]T, 0, len(l))
		for _, it := range l {
			items = append(items, from(dataMap(it)))
		}
	}

	pagerMap, _ := m["pager"].(map[string]any)
	return models.Paginated[T]{
		List:  items,
		Pager: models.PagerFromMap(pagerMap),
		Raw:   m,
	}
}

// AllNotesOptions controls AllNotes. A non-positive PageSize defaults to 50.
type AllNotesOptions struct {
	Keyword   string
	IsRecycle *bool
	PageSize  int
}

// AllNotes returns a lazy iterator over every note in the vault, fetching
// one page per round trip as the consumer advances. Each range over the
// sequence starts again from page one. Iteration ends after the page where
// page*pageSize reaches the reported total, so a page is never fetched
// twice; a fetch failure is yielded once with a zero item and the sequence
// stops.
//
//	for note, err := range c.AllNotes(ctx, "my-vault", nil) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(note.Path)
//	}
func (c *Client) AllNotes(ctx context.Context, vault string, opts *AllNotesOptions) iter.Seq2[models.NoteListItem, error] {
	var o AllNotesOptions
	if opts != nil {
		o = *opts
	}
	if o.PageSize <= 0 {
		o.PageSize = 50
	}

	return func(yield func(models.NoteListItem, error) bool) {
		for page := 1; ; page++ {
			res, err := c.ListNotes(ctx, vault, &ListNotesOptions{
				Keyword:   o.Keyword,
				IsRecycle: o.IsRecycle,
				Page:      page,
				PageSize:  o.PageSize,
			})
			if err != nil {
				yield(models.NoteListItem{}, err)
				return
			}
			for _, item := range res.List {
				if !yield(item, nil) {
					return
				}
			}
			// Stop on the reported extent; a server answering with a
			// non-positive pageSize would otherwise never terminate.
			size := res.Pager.PageSize
			if size <= 0 {
				size = o.PageSize
			}
			if page*size >= res.Pager.TotalRows {
				return
			}
		}
	}
}
