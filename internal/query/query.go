package query

import (
	"net/url"
	"slices"
	"strings"
)

// Query is an immutable snapshot of search and filter intent. Every update
// returns a new snapshot, so an in-flight request keeps observing the query
// it was issued for. The zero value means "no constraints".
type Query struct {
	search     string
	categories []string // kept sorted, no duplicates
	inStock    *bool    // nil = unconstrained
}

// Search returns the raw search text.
func (q Query) Search() string {
	return q.search
}

// Categories returns the selected categories in sorted order.
func (q Query) Categories() []string {
	return slices.Clone(q.categories)
}

// HasCategory reports whether name is selected.
func (q Query) HasCategory(name string) bool {
	_, found := slices.BinarySearch(q.categories, name)
	return found
}

// InStock returns the tri-state stock constraint: nil when unconstrained.
func (q Query) InStock() *bool {
	return q.inStock
}

// IsEmpty reports whether no constraint is active after trimming.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.search) == "" && len(q.categories) == 0 && q.inStock == nil
}

// WithSearch returns a snapshot with the search text replaced.
func (q Query) WithSearch(text string) Query {
	next := q
	next.search = text
	return next
}

// ToggleCategory returns a snapshot with the category added when absent or
// removed when present.
func (q Query) ToggleCategory(name string) Query {
	next := q
	idx, found := slices.BinarySearch(q.categories, name)
	if found {
		next.categories = slices.Delete(slices.Clone(q.categories), idx, idx+1)
	} else {
		next.categories = slices.Insert(slices.Clone(q.categories), idx, name)
	}
	return next
}

// WithStock returns a snapshot with the stock constraint set. Passing nil
// clears the constraint; true and false are explicit filters.
func (q Query) WithStock(inStock *bool) Query {
	next := q
	if inStock == nil {
		next.inStock = nil
	} else {
		v := *inStock
		next.inStock = &v
	}
	return next
}

// Clear returns an unconstrained snapshot.
func (q Query) Clear() Query {
	return Query{}
}

// Params canonicalizes the snapshot into request parameters. Semantically
// equal snapshots encode to byte-identical query strings: url.Values.Encode
// sorts keys, categories are sorted and comma-joined, search is trimmed and
// omitted when empty, and the stock key is omitted when unconstrained.
func (q Query) Params() url.Values {
	values := url.Values{}
	if search := strings.TrimSpace(q.search); search != "" {
		values.Set("search", search)
	}
	if len(q.categories) > 0 {
		values.Set("category", strings.Join(q.categories, ","))
	}
	if q.inStock != nil {
		if *q.inStock {
			values.Set("inStock", "true")
		} else {
			values.Set("inStock", "false")
		}
	}
	return values
}

// Encode returns the canonical query string.
func (q Query) Encode() string {
	return q.Params().Encode()
}
