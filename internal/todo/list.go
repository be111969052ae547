package todo

// List is an ordered sequence of items in insertion order.
// Deleting an item shifts every later item down by one position.
type List struct {
	Items []Item
}

// NewList wraps items in a List. A nil slice yields an empty list.
func NewList(items []Item) *List {
	if items == nil {
		items = []Item{}
	}
	return &List{Items: items}
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

func (l *List) inRange(i int) bool {
	return i >= 0 && i < len(l.Items)
}

// Add appends a new, not-done item and returns its position.
func (l *List) Add(title string, due *string) int {
	l.Items = append(l.Items, Item{Title: title, Due: due})
	return len(l.Items) - 1
}

// Edit replaces the title of the item at index and sets its due date.
// An empty title leaves the current title in place; due is always overwritten.
// Returns false, changing nothing, if index is out of range.
func (l *List) Edit(index int, title string, due *string) bool {
	if !l.inRange(index) {
		return false
	}
	if title != "" {
		l.Items[index].Title = title
	}
	l.Items[index].Due = due
	return true
}

// SetDone sets the done flag of the item selected by sel.
// Prefix selectors resolve to the last matching item.
func (l *List) SetDone(sel Selector, done bool) (int, bool) {
	i, ok := l.FindLast(sel)
	if !ok {
		return -1, false
	}
	l.Items[i].Done = done
	return i, true
}

// Delete removes the item selected by sel and returns it.
// Prefix selectors resolve to the first matching item.
func (l *List) Delete(sel Selector) (Item, bool) {
	i, ok := l.FindFirst(sel)
	if !ok {
		return Item{}, false
	}
	removed := l.Items[i]
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return removed, true
}

// DeleteDone removes every done item, keeping the order of the rest.
// Removed items are returned in their original order.
func (l *List) DeleteDone() []Item {
	var removed []Item
	kept := l.Items[:0]
	for _, it := range l.Items {
		if it.Done {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	l.Items = kept
	return removed
}

// Contains reports whether any item has the given title,
// ignoring case and surrounding whitespace.
func (l *List) Contains(title string) bool {
	for _, it := range l.Items {
		if it.HasTitle(title) {
			return true
		}
	}
	return false
}
