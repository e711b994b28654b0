package selection

import (
	"sync"

	"github.com/s0up4200/ocmovies/catalog"
)

// TextList is a View rendering options as a terminal dropdown
type TextList struct {
	mu        sync.Mutex
	options   []string
	marked    map[int]bool
	formatter *catalog.ConsoleFormatter
}

// NewTextList creates a view over options with no marks
func NewTextList(options []string) *TextList {
	return &TextList{
		options:   options,
		marked:    make(map[int]bool),
		formatter: catalog.NewConsoleFormatter(),
	}
}

// Mark implements View
func (l *TextList) Mark(index int) {
	l.mu.Lock()
	l.marked[index] = true
	l.mu.Unlock()
}

// Unmark implements View
func (l *TextList) Unmark(index int) {
	l.mu.Lock()
	delete(l.marked, index)
	l.mu.Unlock()
}

// Marked returns the marked indexes in ascending order
func (l *TextList) Marked() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []int
	for i := range l.options {
		if l.marked[i] {
			out = append(out, i)
		}
	}
	return out
}

// Render draws the list with a marker in front of the selected option
func (l *TextList) Render() string {
	selected := NoSelection
	if marked := l.Marked(); len(marked) > 0 {
		selected = marked[0]
	}
	return l.formatter.FormatGenreList(l.options, selected)
}
