package signal

import "testing"

func TestEmitDeliversInSubscriptionOrder(t *testing.T) {
	sig := New()

	var order []string
	sig.Subscribe(ListenerFunc(func(any) { order = append(order, "first") }))
	sig.Subscribe(ListenerFunc(func(any) { order = append(order, "second") }))
	sig.Subscribe(ListenerFunc(func(any) { order = append(order, "third") }))

	sig.Emit("payload")

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("expected delivery %d to be %q, got %q", i, name, order[i])
		}
	}
}

func TestEmitCarriesValue(t *testing.T) {
	sig := New()
	var got any
	sig.Subscribe(ListenerFunc(func(value any) { got = value }))

	payload := map[string]any{"kind": "project"}
	sig.Emit(payload)

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", got)
	}
	if m["kind"] != "project" {
		t.Fatalf("expected payload to carry kind, got %v", m["kind"])
	}
}

func TestNestedEmitCompletesBeforeOuterResumes(t *testing.T) {
	sig := New()

	var order []string
	sig.Subscribe(ListenerFunc(func(value any) {
		order = append(order, "outer-a")
		if value == "outer" {
			sig.Emit("inner")
		}
	}))
	sig.Subscribe(ListenerFunc(func(value any) {
		if value == "outer" {
			order = append(order, "outer-b")
		} else {
			order = append(order, "inner-b")
		}
	}))

	sig.Emit("outer")

	want := []string{"outer-a", "outer-a", "inner-b", "outer-b"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestSubscribeDuringEmitSkipsInFlightValue(t *testing.T) {
	sig := New()

	late := 0
	sig.Subscribe(ListenerFunc(func(any) {
		sig.Subscribe(ListenerFunc(func(any) { late++ }))
	}))

	sig.Emit("first")
	if late != 0 {
		t.Fatalf("late subscriber should not see in-flight emission, saw %d", late)
	}
	sig.Emit("second")
	if late != 1 {
		t.Fatalf("late subscriber should see one later emission, saw %d", late)
	}
}

func TestNilSignalIsInert(t *testing.T) {
	var sig *Signal
	sig.Subscribe(ListenerFunc(func(any) {}))
	sig.Emit("ignored")
	if sig.Len() != 0 {
		t.Fatalf("nil signal should report zero listeners")
	}
}
