package selection

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// NoSelection is the index reported when nothing is selected
const NoSelection = -1

// Listener is notified with the newly selected option name
type Listener func(ctx context.Context, name string)

// View reflects the selection state of a list of options
type View interface {
	// Mark flags the option at index as selected
	Mark(index int)
	// Unmark clears the flag of the option at index
	Unmark(index int)
}

// Controller tracks a single selected option among a fixed ordered list
type Controller struct {
	mu       sync.Mutex
	options  []string
	index    int
	listener Listener
	view     View
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithView reflects selection changes into view
func WithView(view View) ControllerOption {
	return func(c *Controller) {
		c.view = view
	}
}

// WithListener registers the change listener at construction
func WithListener(l Listener) ControllerOption {
	return func(c *Controller) {
		c.listener = l
	}
}

// NewController creates a controller over options with nothing selected
func NewController(options []string, opts ...ControllerOption) *Controller {
	c := &Controller{
		options: slices.Clone(options),
		index:   NoSelection,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetListener replaces the change listener; nil clears it
func (c *Controller) SetListener(l Listener) {
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// Options returns a copy of the option list
func (c *Controller) Options() []string {
	return slices.Clone(c.options)
}

// Selected returns the selected option, if any
func (c *Controller) Selected() (string, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == NoSelection {
		return "", NoSelection, false
	}
	return c.options[c.index], c.index, true
}

// SelectByNameOrIndex selects the option at value when it parses as an
// integer, otherwise the first option named value. It reports whether the
// selection changed.
func (c *Controller) SelectByNameOrIndex(ctx context.Context, value string) bool {
	if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return c.SelectIndex(ctx, i)
	}
	return c.SelectName(ctx, value)
}

// SelectName selects the first option named name
func (c *Controller) SelectName(ctx context.Context, name string) bool {
	return c.SelectIndex(ctx, slices.Index(c.options, name))
}

// SelectIndex selects the option at index. Out of range and unchanged
// indexes are ignored.
func (c *Controller) SelectIndex(ctx context.Context, index int) bool {
	c.mu.Lock()

	if index < 0 || index >= len(c.options) || index == c.index {
		c.mu.Unlock()
		return false
	}

	previous := c.index
	c.index = index

	if c.view != nil {
		if previous != NoSelection {
			c.view.Unmark(previous)
		}
		c.view.Mark(index)
	}

	listener := c.listener
	name := c.options[index]
	c.mu.Unlock()

	// listeners may call back into the controller
	if listener != nil {
		listener(ctx, name)
	}

	return true
}
