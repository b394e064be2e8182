// Package calendar implements a month-view date picker: a day grid for one month,
// navigation to adjacent months, a selected-day marker and a change callback.
package calendar

import (
	"sync"

	"github.com/mazzegi/log"
	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/signal"
)

// TopicRender is emitted after every state replacement.
const TopicRender signal.Topic = "render"

// Options configure a Calendar at mount.
type Options struct {
	// Value is the initial date. The zero value means today.
	Value date.Date
	// OnChange is called with the date of an activated day cell.
	OnChange func(date.Date)
	// Today overrides date.Today when Value is zero.
	Today func() date.Date
}

// Handle gives a holder of the calendar out-of-band access to its date.
type Handle interface {
	GetDate() date.Date
	SetDate(d date.Date)
}

// Calendar owns the displayed date, which is both the shown month and the selected day.
// The date is only ever replaced as a whole.
type Calendar struct {
	mu       sync.RWMutex
	date     date.Date
	revision uint64
	onChange func(date.Date)
	signals  *signal.Signals
}

// New mounts a calendar at opts.Value, or at today if Value is zero.
func New(opts Options) *Calendar {
	d := opts.Value
	if d.IsZero() {
		today := opts.Today
		if today == nil {
			today = date.Today
		}
		d = today()
	}
	log.Debugf("calendar: mount at %s", d)
	return &Calendar{
		date:     d,
		onChange: opts.OnChange,
		signals:  signal.New(),
	}
}

// Close unmounts the calendar. Pending render subscriptions are released.
func (c *Calendar) Close() {
	c.signals.Close()
}

// Handle returns the get/set handle of c.
func (c *Calendar) Handle() Handle {
	return c
}

// GetDate returns a copy of the displayed date.
func (c *Calendar) GetDate() date.Date {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.date
}

// SetDate replaces the date as is; it is not validated.
func (c *Calendar) SetDate(d date.Date) {
	c.transition("set-date", func(date.Date) date.Date { return d })
}

// PrevMonth shows the first day of the previous month.
func (c *Calendar) PrevMonth() {
	c.transition("prev-month", PrevMonth)
}

// NextMonth shows the first day of the next month.
func (c *Calendar) NextMonth() {
	c.transition("next-month", NextMonth)
}

// SelectDay calls OnChange with day of the displayed month. The displayed date is left untouched.
func (c *Calendar) SelectDay(day int) {
	c.selectDay(c.GetDate(), day)
}

// Activate activates the cell at index of the current grid. It reports false for empty or out of range cells.
func (c *Calendar) Activate(index int) bool {
	d := c.GetDate()
	cells := Grid(d.YearMonth(), d.Day())
	if index < 0 || index >= len(cells) || cells[index].IsEmpty() {
		return false
	}
	c.selectDay(d, cells[index].Day)
	return true
}

func (c *Calendar) selectDay(current date.Date, day int) {
	sel := current.YearMonth().Day(day)
	log.Debugf("calendar: select %s", sel)
	if c.onChange != nil {
		c.onChange(sel)
	}
}

// View renders the current state.
func (c *Calendar) View() View {
	c.mu.RLock()
	d, rev := c.date, c.revision
	c.mu.RUnlock()
	v := MakeView(d)
	v.Revision = rev
	return v
}

// Grid returns the cells of the displayed month.
func (c *Calendar) Grid() []Cell {
	return c.View().Cells
}

// Revision counts the state replacements since mount.
func (c *Calendar) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

// Subscribe returns a subscription that fires on the next re-render.
func (c *Calendar) Subscribe() *signal.Subscription {
	return c.signals.Subscribe(TopicRender)
}

func (c *Calendar) transition(name string, next func(date.Date) date.Date) {
	c.mu.Lock()
	from := c.date
	c.date = next(from)
	c.revision++
	to, rev := c.date, c.revision
	c.mu.Unlock()

	log.Debugf("calendar: %s %s -> %s (rev %d)", name, from, to, rev)
	c.signals.Emit(TopicRender)
}
