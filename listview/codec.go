package listview

import (
	"net/url"
	"strconv"
	"strings"
)

// Filters maps filter keys to scalar values. Values are pre-stringified by
// the caller (dates as YYYY-MM-DD, numbers verbatim).
type Filters map[string]string

// Clone returns an independent copy.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// DefaultPerPage is the page size used when a feature does not set one.
const DefaultPerPage = 15

// isSentinel reports whether a value means "no constraint" and must be
// omitted from the request.
func isSentinel(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "all", "null":
		return true
	}
	return false
}

// EncodeQuery translates filter state into backend query parameters. Keys
// carrying a sentinel or their documented default are omitted; page and
// per_page are always present, clamped to 1 and DefaultPerPage respectively.
// The function is pure; parameter order follows url.Values encoding and is
// not part of the contract.
func EncodeQuery(filters, defaults Filters, page, perPage int) url.Values {
	q := url.Values{}
	for k, v := range filters {
		if isSentinel(v) || v == defaults[k] {
			continue
		}
		q.Set(k, v)
	}
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}
