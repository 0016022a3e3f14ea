package models

// Pager describes a paginated result's position and extent. It is the only
// model the client itself inspects: pagination stops once
// page*pageSize >= totalRows.
type Pager struct {
	Page      int `mapstructure:"page"`
	PageSize  int `mapstructure:"pageSize"`
	TotalRows int `mapstructure:"totalRows"`

	Raw map[string]any `mapstructure:"-"`
}

// PagerFromMap builds a Pager from a loosely typed envelope fragment.
// Absent page/pageSize keys take the server defaults (1 and 10); a key that
// is present with a zero value stays zero.
func PagerFromMap(d map[string]any) Pager {
	var p Pager
	decode(d, &p)
	if _, ok := d["page"]; !ok {
		p.Page = 1
	}
	if _, ok := d["pageSize"]; !ok {
		p.PageSize = 10
	}
	p.Raw = rawCopy(d)
	return p
}

// Paginated wraps one page of items together with its Pager and the raw
// data object both were built from.
type Paginated[T any] struct {
	List  []T
	Pager Pager
	Raw   map[string]any
}
