// Package todo holds the todo list data model and its mutation operations.
package todo

import "strings"

// Item is a single todo entry.
// Items have no identity beyond their position in a List.
type Item struct {
	Title string  `json:"title"`
	Due   *string `json:"due"`
	Done  bool    `json:"done"`
}

// String formats the item as "[x] title (due)".
// The due suffix is omitted when the item has no due date.
func (it Item) String() string {
	var b strings.Builder
	if it.Done {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(it.Title)
	if it.Due != nil {
		b.WriteString(" (")
		b.WriteString(*it.Due)
		b.WriteString(")")
	}
	return b.String()
}

// HasTitle reports whether the item's title equals title,
// ignoring case and surrounding whitespace.
func (it Item) HasTitle(title string) bool {
	return strings.EqualFold(strings.TrimSpace(it.Title), strings.TrimSpace(title))
}

// hasPrefix reports whether the item's title starts with prefix, ignoring case.
func (it Item) hasPrefix(prefix string) bool {
	return strings.HasPrefix(strings.ToLower(it.Title), strings.ToLower(prefix))
}
