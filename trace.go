package proptree

import "encoding/json"

// Trace reports how one item resolved its value: the slot name, whether the
// slot exists in the owning backing dictionary, the raw value found, and the
// snapshot identity of the owning document when known.
type Trace struct {
	Name       string         `json:"name"`
	Found      bool           `json:"found"`
	Value      any            `json:"value,omitempty"`
	Document   map[string]any `json:"document,omitempty"`
	SnapshotID string         `json:"snapshot_id,omitempty"`
}

// NewTrace inspects item's resolution without mutating anything.
func NewTrace(item *Item) Trace {
	trace := Trace{Name: item.Name()}

	parent := item.Parent()
	if parent == nil {
		trace.Value = item.Value()
		trace.Found = trace.Value != nil
		return trace
	}

	if document, ok := parent.Value().(map[string]any); ok {
		trace.Document = document
		value, found := document[item.Name()]
		trace.Value = value
		trace.Found = found
	}
	if project, ok := parent.(*Project); ok {
		trace.SnapshotID = project.Meta().SnapshotID
	}
	return trace
}

// ToJSON serialises the trace for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a payload previously generated via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
