package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIndex indicates a token is not a non-negative integer.
var ErrInvalidIndex = errors.New("invalid index")

// Selector identifies an item, either by list index or by title prefix.
type Selector struct {
	Index   int    // valid when ByIndex is true
	Prefix  string // valid when ByIndex is false
	ByIndex bool
}

// IndexSelector returns a selector for the item at position i.
func IndexSelector(i int) Selector {
	return Selector{Index: i, ByIndex: true}
}

// PrefixSelector returns a selector matching titles that start with prefix.
func PrefixSelector(prefix string) Selector {
	return Selector{Prefix: prefix}
}

// ParseSelector interprets a raw token.
//
// Parsing rules:
// 1. If the trimmed token is a non-negative integer → index selector
// 2. Otherwise → prefix selector over the raw, untrimmed token
//
// Whether the index is in range is decided by the operation consuming it.
func ParseSelector(token string) Selector {
	if n, err := ParseIndex(token); err == nil {
		return IndexSelector(n)
	}
	return PrefixSelector(token)
}

// ParseIndex parses a non-negative integer list index.
// Surrounding whitespace and a single leading '+' are accepted.
// Values that overflow int are rejected.
func ParseIndex(token string) (int, error) {
	s := strings.TrimSpace(token)
	s = strings.TrimPrefix(s, "+")
	if !isAllDigits(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, token)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, token)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FindFirst resolves sel to a position in l.
// Among several prefix matches the first one wins.
func (l *List) FindFirst(sel Selector) (int, bool) {
	if sel.ByIndex {
		return sel.Index, l.inRange(sel.Index)
	}
	for i, it := range l.Items {
		if it.hasPrefix(sel.Prefix) {
			return i, true
		}
	}
	return -1, false
}

// FindLast resolves sel to a position in l.
// Among several prefix matches the last one wins.
func (l *List) FindLast(sel Selector) (int, bool) {
	if sel.ByIndex {
		return sel.Index, l.inRange(sel.Index)
	}
	found := -1
	for i, it := range l.Items {
		if it.hasPrefix(sel.Prefix) {
			found = i
		}
	}
	return found, found >= 0
}
