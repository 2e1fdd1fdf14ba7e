package proptree

import (
	"testing"

	"github.com/goliatone/go-proptree/pkg/signal"
	"github.com/goliatone/go-proptree/pkg/store"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	return NewProject("test.json", WithStore(store.NewMemoryStore()))
}

func TestDelegationIdentity(t *testing.T) {
	project := newTestProject(t)
	item := NewItem(project, "title")

	item.SetValue("hello")

	if got := project.Property("title"); got != "hello" {
		t.Fatalf("expected parent slot to hold written value, got %v", got)
	}
	if got := item.Value(); got != "hello" {
		t.Fatalf("expected item to read back written value, got %v", got)
	}
}

func TestRootItemOwnsStorage(t *testing.T) {
	item := NewItem(nil, "standalone")

	if got := item.Value(); got != nil {
		t.Fatalf("expected empty root item to read nil, got %v", got)
	}
	item.SetValue(42)
	if got := item.Value(); got != 42 {
		t.Fatalf("expected root item to hold value directly, got %v", got)
	}

	var seen any
	item.Changed().Subscribe(signal.ListenerFunc(func(value any) { seen = value }))
	item.SetValue(43)
	if seen != 43 {
		t.Fatalf("expected root write to run change detection, saw %v", seen)
	}
}

func TestUnnamedDelegatingItemPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for delegating item without a name")
		}
	}()
	NewItem(newTestProject(t), "")
}

func TestAttachmentRegistersChildAndSubscription(t *testing.T) {
	project := newTestProject(t)
	first := NewItem(project, "first")
	second := NewItem(project, "second")

	children := project.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0] != first || children[1] != second {
		t.Fatalf("expected children in attachment order")
	}
	if project.Changed().Len() != 2 {
		t.Fatalf("expected one subscription per child, got %d", project.Changed().Len())
	}
}

func TestNotificationFanOutOrder(t *testing.T) {
	project := newTestProject(t)

	var order []string
	c1 := NewItem(project, "c1")
	project.Changed().Subscribe(signal.ListenerFunc(func(any) { order = append(order, "observer-1") }))
	c2 := NewItem(project, "c2")
	project.Changed().Subscribe(signal.ListenerFunc(func(any) { order = append(order, "observer-2") }))

	calls := map[string]int{}
	c1.Changed().Subscribe(signal.ListenerFunc(func(any) { calls["c1"]++ }))
	c2.Changed().Subscribe(signal.ListenerFunc(func(any) { calls["c2"]++ }))

	project.SetProperty("c1", "x")

	// c1's slot changed once, c2's not at all; both CheckChange hooks ran
	// before SetProperty returned.
	if calls["c1"] != 1 {
		t.Fatalf("expected c1 to observe one change, got %d", calls["c1"])
	}
	if calls["c2"] != 0 {
		t.Fatalf("expected c2 to filter sibling write, got %d", calls["c2"])
	}
	if len(order) != 2 || order[0] != "observer-1" || order[1] != "observer-2" {
		t.Fatalf("expected observers in subscription order, got %v", order)
	}
}

func TestCheckChangeDetectsOutOfBandMutation(t *testing.T) {
	project := newTestProject(t)
	item := NewItem(project, "watched")

	var seen []any
	item.Changed().Subscribe(signal.ListenerFunc(func(value any) { seen = append(seen, value) }))

	// Sibling write: watched slot untouched, no emission.
	project.SetProperty("other", 1)
	if len(seen) != 0 {
		t.Fatalf("expected no emission for sibling write, got %v", seen)
	}

	// Direct out-of-band write to the slot.
	project.SetProperty("watched", "v1")
	if len(seen) != 1 || seen[0] != "v1" {
		t.Fatalf("expected emission with new value, got %v", seen)
	}

	// Bulk replacement dropping the slot.
	project.SetValue(map[string]any{"unrelated": true})
	if len(seen) != 2 || seen[1] != nil {
		t.Fatalf("expected emission with nil after bulk replace, got %v", seen)
	}
}

func TestReentrantWriteRunsNestedCycleFirst(t *testing.T) {
	project := newTestProject(t)
	trigger := NewItem(project, "trigger")
	follower := NewItem(project, "follower")

	var order []string
	trigger.Changed().Subscribe(signal.ListenerFunc(func(any) {
		order = append(order, "trigger")
		// Re-entrant write: the nested notification cycle completes before
		// the outer cycle's remaining subscribers run.
		follower.SetValue("derived")
	}))
	follower.Changed().Subscribe(signal.ListenerFunc(func(any) {
		order = append(order, "follower")
	}))
	project.Changed().Subscribe(signal.ListenerFunc(func(any) {
		order = append(order, "tail")
	}))

	trigger.SetValue("go")

	want := []string{"trigger", "follower", "tail", "tail"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}
