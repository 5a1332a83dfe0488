package tui

// cursorList is a list with a single selected row.
type cursorList[T any] struct {
	items []T
	idx   int
}

func (l *cursorList[T]) set(items []T) {
	l.items = items
	if l.idx >= len(l.items) {
		l.idx = len(l.items) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l *cursorList[T]) up() {
	if l.idx > 0 {
		l.idx--
	}
}

func (l *cursorList[T]) down() {
	if l.idx < len(l.items)-1 {
		l.idx++
	}
}

func (l *cursorList[T]) current() (T, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[l.idx], true
}

func (l *cursorList[T]) selected(i int) bool {
	return i == l.idx
}
