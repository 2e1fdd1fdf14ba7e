package proptree

import (
	"reflect"

	"github.com/goliatone/go-proptree/pkg/signal"
)

// Item is one named slot in the tree. An item with a parent never holds a
// value of its own: its logical value is always the slot named after it in
// the parent's backing dictionary. An item without a parent is a storage root
// and keeps its value directly.
//
// Construction is the registration step: the item is appended to the parent's
// child list and subscribed to the parent's change signal, so it observes
// every mutation of the parent's dictionary, including sibling writes and
// bulk replacement. Items are never re-parented.
type Item struct {
	name     string
	parent   Container
	self     any
	lastSeen any
	changed  *signal.Signal
}

// NewItem attaches a named item to parent. A nil parent makes the item a
// storage root. Constructing a delegating item without a name is a
// programming error and panics.
func NewItem(parent Container, name string) *Item {
	if parent != nil && name == "" {
		panic("proptree: delegating item constructed without a name")
	}
	it := &Item{
		name:    name,
		parent:  parent,
		changed: signal.New(),
	}
	if parent != nil {
		parent.attach(it)
		parent.Changed().Subscribe(signal.ListenerFunc(func(any) {
			it.CheckChange()
		}))
		it.lastSeen = it.Value()
	}
	return it
}

// Name returns the item's slot name.
func (it *Item) Name() string { return it.name }

// Parent returns the container holding this item's storage, nil for roots.
func (it *Item) Parent() Container { return it.parent }

// Changed is the item's own change notification channel. It fires when
// CheckChange observes that the item's slot took a new value.
func (it *Item) Changed() *signal.Signal { return it.changed }

// Value resolves the item's raw value: the parent's slot for delegating
// items, the internal slot for roots.
func (it *Item) Value() any {
	if it.parent != nil {
		return it.parent.Property(it.name)
	}
	return it.self
}

// SetValue writes the item's raw value. For delegating items the write lands
// in the parent's backing dictionary and the parent emits the whole updated
// dictionary; the fan-out completes before SetValue returns. Roots store
// directly and run their own change detection.
func (it *Item) SetValue(value any) {
	if it.parent != nil {
		it.parent.SetProperty(it.name, value)
		return
	}
	it.self = value
	it.CheckChange()
}

// CheckChange re-reads the item's slot and, when it differs from the last
// observed value, records the new value and re-emits it on the item's own
// channel. It runs on every ancestor mutation, so the comparison is what
// filters sibling writes from changes to this item's slot.
func (it *Item) CheckChange() {
	current := it.Value()
	if reflect.DeepEqual(current, it.lastSeen) {
		return
	}
	it.lastSeen = current
	it.changed.Emit(current)
}
