package view

import (
	"net/url"
	"strings"
	"sync"
)

// QueryKey is the query parameter that carries the requested word.
const QueryKey = "w"

// Navigator reads and updates the word held in the query state.
type Navigator interface {
	Word() string
	SetWord(word string)
}

// QueryNavigator is a Navigator backed by URL query values.
// It is safe for concurrent use.
type QueryNavigator struct {
	mu     sync.RWMutex
	values url.Values
}

// NewQueryNavigator parses rawQuery. Malformed pairs are skipped.
func NewQueryNavigator(rawQuery string) *QueryNavigator {
	values, _ := url.ParseQuery(rawQuery)
	if values == nil {
		values = url.Values{}
	}
	return &QueryNavigator{values: values}
}

// Word returns the trimmed value of the "w" parameter, or "".
func (n *QueryNavigator) Word() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return strings.TrimSpace(n.values.Get(QueryKey))
}

// SetWord replaces the "w" parameter. Other parameters are kept.
func (n *QueryNavigator) SetWord(word string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.values.Set(QueryKey, word)
}

// Encode returns the query in URL-encoded form.
func (n *QueryNavigator) Encode() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.values.Encode()
}

// NormalizeSearch trims a search term and reports whether anything is left.
func NormalizeSearch(term string) (string, bool) {
	term = strings.TrimSpace(term)
	return term, term != ""
}

// WordHref returns the link target that re-issues a lookup for word.
func WordHref(word string) string {
	return "/?" + QueryKey + "=" + url.QueryEscape(word)
}
