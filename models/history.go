package models

// Diff segment kinds, matching the server's diff-match-patch output.
const (
	DiffDelete = -1
	DiffEqual  = 0
	DiffInsert = 1
)

// HistoryListItem is one row of a note's history listing.
type HistoryListItem struct {
	ID         int64  `mapstructure:"id"`
	NoteID     int64  `mapstructure:"noteId"`
	VaultID    int64  `mapstructure:"vaultId"`
	Path       string `mapstructure:"path"`
	ClientName string `mapstructure:"clientName"`
	Version    int64  `mapstructure:"version"`
	CreatedAt  string `mapstructure:"createdAt"`

	Raw map[string]any `mapstructure:"-"`
}

func HistoryListItemFromMap(d map[string]any) HistoryListItem {
	var h HistoryListItem
	decode(d, &h)
	h.Raw = rawCopy(d)
	return h
}

// DiffItem is one segment of a text diff. The wire keys are capitalized
// ("Type", "Text"), unlike every other model.
type DiffItem struct {
	Type int    `mapstructure:"Type"`
	Text string `mapstructure:"Text"`
}

func DiffItemFromMap(d map[string]any) DiffItem {
	var i DiffItem
	decode(d, &i)
	return i
}

// HistoryDetail is one historical version in full: the diff against the
// previous version plus the complete content and hash at that version.
type HistoryDetail struct {
	ID          int64      `mapstructure:"id"`
	NoteID      int64      `mapstructure:"noteId"`
	VaultID     int64      `mapstructure:"vaultId"`
	Path        string     `mapstructure:"path"`
	Diffs       []DiffItem `mapstructure:"diffs"`
	Content     string     `mapstructure:"content"`
	ContentHash string     `mapstructure:"contentHash"`
	ClientName  string     `mapstructure:"clientName"`
	Version     int64      `mapstructure:"version"`
	CreatedAt   string     `mapstructure:"createdAt"`

	Raw map[string]any `mapstructure:"-"`
}

func HistoryDetailFromMap(d map[string]any) HistoryDetail {
	var h HistoryDetail
	decode(d, &h)
	if h.Diffs == nil {
		h.Diffs = []DiffItem{}
	}
	h.Raw = rawCopy(d)
	return h
}
