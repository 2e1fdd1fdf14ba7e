package proptree

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goliatone/go-proptree/pkg/signal"
)

func TestBulkReplaceIsolates(t *testing.T) {
	project := newTestProject(t)

	project.SetValue(map[string]any{"a": 1})
	project.SetValue(map[string]any{"b": 2})

	if got := project.Property("a"); got != nil {
		t.Fatalf("expected a to be cleared by bulk replace, got %v", got)
	}
	if got := project.Property("b"); got != 2 {
		t.Fatalf("expected b to be 2, got %v", got)
	}
}

func TestBulkReplaceKeepsDictionaryIdentity(t *testing.T) {
	project := newTestProject(t)
	before := project.Dict()

	project.SetValue(map[string]any{"x": "y"})

	after := project.Dict()
	if reflect.ValueOf(before).Pointer() != reflect.ValueOf(after).Pointer() {
		t.Fatalf("bulk replace must mutate the dictionary in place, not swap it")
	}
}

func TestSetPropertyEmitsWholeDictionary(t *testing.T) {
	project := newTestProject(t)
	project.SetProperty("existing", "kept")

	var payload any
	emissions := 0
	project.Changed().Subscribe(signal.ListenerFunc(func(value any) {
		emissions++
		payload = value
	}))

	project.SetProperty("added", 7)

	if emissions != 1 {
		t.Fatalf("expected exactly one emission, got %d", emissions)
	}
	dict, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("expected whole dictionary payload, got %T", payload)
	}
	if dict["existing"] != "kept" || dict["added"] != 7 {
		t.Fatalf("payload is not the whole dictionary: %v", dict)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "settings.json")

	project := NewProject(filename)
	project.SetProperty("kind", "project")
	project.SetProperty("title", "Grüße")
	project.SetProperty("size", map[string]any{"width": "800"})

	want := map[string]any{}
	for k, v := range project.Dict() {
		want[k] = v
	}

	if err := project.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if project.Meta().SnapshotID == "" {
		t.Fatalf("expected save to record a snapshot id")
	}

	fresh := NewProject(filename)
	if err := fresh.Load("kind", "project"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(fresh.Dict(), want) {
		t.Fatalf("round trip mismatch:\nwant %v\ngot  %v", want, fresh.Dict())
	}
}

func TestLoadMissingFile(t *testing.T) {
	project := NewProject(filepath.Join(t.TempDir(), "absent.json"))

	err := project.Load("kind", "project")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRejectsArrayTopLevel(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(filename, []byte(`[1, 2, 3]`), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	err := NewProject(filename).Load("kind", "project")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Unwrap() == nil {
		t.Fatalf("expected decode cause to be preserved")
	}
}

func TestLoadRejectsMissingSentinel(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(filename, []byte(`{"title": "no sentinel"}`), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	err := NewProject(filename).Load("kind", "project")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestLoadRejectsSentinelMismatch(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(filename, []byte(`{"kind": "template"}`), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	err := NewProject(filename).Load("kind", "project")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestLoadBulkReplacesAndEmitsOnce(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(filename, []byte(`{"kind": "project", "fresh": true}`), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	project := NewProject(filename)
	project.SetProperty("stale", "dropped on load")

	emissions := 0
	project.Changed().Subscribe(signal.ListenerFunc(func(any) { emissions++ }))

	if err := project.Load("kind", "project"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if emissions != 1 {
		t.Fatalf("expected one emission on load, got %d", emissions)
	}
	if project.Property("stale") != nil {
		t.Fatalf("expected load to fully replace in-memory state")
	}
	if project.Property("fresh") != true {
		t.Fatalf("expected loaded key to be present, got %v", project.Property("fresh"))
	}
}

func TestExists(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "settings.json")
	project := NewProject(filename)

	if project.Exists() {
		t.Fatalf("expected Exists to be false before save")
	}
	if err := project.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !project.Exists() {
		t.Fatalf("expected Exists to be true after save")
	}
}
