package models

// NoteListItem is one row of a note listing. Listings exclude the note body
// to keep responses small; fetch the full note for content.
type NoteListItem struct {
	ID               int64  `mapstructure:"id"`
	Action           string `mapstructure:"action"`
	Path             string `mapstructure:"path"`
	PathHash         string `mapstructure:"pathHash"`
	Version          int64  `mapstructure:"version"`
	Ctime            int64  `mapstructure:"ctime"`
	Mtime            int64  `mapstructure:"mtime"`
	UpdatedTimestamp int64  `mapstructure:"updatedTimestamp"`
	UpdatedAt        string `mapstructure:"updatedAt"`
	CreatedAt        string `mapstructure:"createdAt"`

	Raw map[string]any `mapstructure:"-"`
}

func NoteListItemFromMap(d map[string]any) NoteListItem {
	var n NoteListItem
	decode(d, &n)
	n.Raw = rawCopy(d)
	return n
}

// NoteDetail is a full note including its body content and the links of
// files embedded in it. PathHash and ContentHash are server-computed;
// Version advances only through server mutations.
type NoteDetail struct {
	ID               int64             `mapstructure:"id"`
	Path             string            `mapstructure:"path"`
	PathHash         string            `mapstructure:"pathHash"`
	Content          string            `mapstructure:"content"`
	ContentHash      string            `mapstructure:"contentHash"`
	FileLinks        map[string]string `mapstructure:"fileLinks"`
	Version          int64             `mapstructure:"version"`
	Ctime            int64             `mapstructure:"ctime"`
	Mtime            int64             `mapstructure:"mtime"`
	UpdatedTimestamp int64             `mapstructure:"updatedTimestamp"`
	UpdatedAt        string            `mapstructure:"updatedAt"`
	CreatedAt        string            `mapstructure:"createdAt"`

	Raw map[string]any `mapstructure:"-"`
}

func NoteDetailFromMap(d map[string]any) NoteDetail {
	var n NoteDetail
	decode(d, &n)
	if n.FileLinks == nil {
		n.FileLinks = map[string]string{}
	}
	n.Raw = rawCopy(d)
	return n
}

// NoteInfo is the echo returned by the create, update and restore
// mutations. LastTime is the server-side write moment and is distinct
// from Mtime, which the caller may have supplied.
type NoteInfo struct {
	ID          int64  `mapstructure:"id"`
	Path        string `mapstructure:"path"`
	PathHash    string `mapstructure:"pathHash"`
	Content     string `mapstructure:"content"`
	ContentHash string `mapstructure:"contentHash"`
	Version     int64  `mapstructure:"version"`
	Ctime       int64  `mapstructure:"ctime"`
	Mtime       int64  `mapstructure:"mtime"`
	LastTime    int64  `mapstructure:"lastTime"`

	Raw map[string]any `mapstructure:"-"`
}

func NoteInfoFromMap(d map[string]any) NoteInfo {
	var n NoteInfo
	decode(d, &n)
	n.Raw = rawCopy(d)
	return n
}
