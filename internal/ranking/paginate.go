package ranking

import (
	"slices"
	"strconv"
)

// Page is one slice of an ordered ID list. Empty NextCursor means the list is exhausted.
type Page struct {
	IDs        []int64
	NextCursor string
}

// EncodeCursor turns the last seen ID into an opaque cursor
func EncodeCursor(id int64) string {
	return strconv.FormatInt(id, 10)
}

// DecodeCursor parses a cursor. ok is false for malformed input.
func DecodeCursor(cursor string) (id int64, ok bool) {
	id, err := strconv.ParseInt(cursor, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Paginate returns the page right after cursor. An empty cursor starts at the head.
// A cursor that is malformed or no longer present in ids yields an empty page.
func Paginate(ids []int64, cursor string, pageSize int) Page {
	if pageSize <= 0 {
		return Page{}
	}

	start := 0
	if cursor != "" {
		id, ok := DecodeCursor(cursor)
		if !ok {
			return Page{}
		}
		i := slices.Index(ids, id)
		if i < 0 {
			return Page{}
		}
		start = i + 1
	}
	if start >= len(ids) {
		return Page{}
	}

	end := min(start+pageSize, len(ids))
	page := Page{IDs: append([]int64(nil), ids[start:end]...)}
	if end < len(ids) {
		page.NextCursor = EncodeCursor(ids[end-1])
	}
	return page
}
