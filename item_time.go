package proptree

import "time"

// DefaultTimeLayout is the layout TimeItem stamps with when none is given.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// TimeItem records "last observed time" stamps. Refresh recomputes now and
// stores it; Get is a pure read of whatever was last stored. Callers wanting
// the current time must Refresh first — reading never mutates.
type TimeItem struct {
	*Item
	layout string
	now    func() time.Time
}

// NewTimeItem attaches a timestamp item to parent. An empty layout selects
// DefaultTimeLayout.
func NewTimeItem(parent Container, name, layout string) *TimeItem {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return &TimeItem{
		Item:   NewItem(parent, name),
		layout: layout,
		now:    time.Now,
	}
}

// Layout returns the configured time layout.
func (it *TimeItem) Layout() string { return it.layout }

// Refresh formats the current time per the configured layout, stores it
// through the delegation chain, and returns the stamp.
func (it *TimeItem) Refresh() string {
	stamp := it.now().Format(it.layout)
	it.SetValue(stamp)
	return stamp
}

// Get returns the last stored stamp without recomputing, "" when never
// stamped.
func (it *TimeItem) Get() string {
	raw, _ := it.Value().(string)
	return raw
}
