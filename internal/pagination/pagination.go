// Package pagination handles the banking API's cursor-based pagination.
//
// The bank returns opaque prev/next link URLs with each collection page. The
// raw links are passed through to clients untouched; as a convenience the
// page[after]/page[before] cursors are also extracted so clients do not have
// to parse link URLs themselves. Cursors describe only the bank-sourced
// subset of a merged listing — locally stored rows are never paginated.
package pagination

import "net/url"

// Links carries a page's raw pagination links plus the extracted cursors.
type Links struct {
	Prev       *string `json:"prev"`
	Next       *string `json:"next"`
	PrevCursor string  `json:"prev_cursor,omitempty"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

// FromLinkURLs builds Links from the bank's raw prev/next link URLs.
func FromLinkURLs(prev, next *string) Links {
	return Links{
		Prev:       prev,
		Next:       next,
		PrevCursor: cursorParam(prev, "page[before]"),
		NextCursor: cursorParam(next, "page[after]"),
	}
}

// cursorParam extracts a pagination cursor query parameter from a link URL.
// Returns "" for nil links, unparsable URLs, or missing parameters.
func cursorParam(link *string, key string) string {
	if link == nil {
		return ""
	}
	u, err := url.Parse(*link)
	if err != nil {
		return ""
	}
	return u.Query().Get(key)
}
