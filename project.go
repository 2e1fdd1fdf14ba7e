package proptree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-proptree/pkg/signal"
	"github.com/goliatone/go-proptree/pkg/store"
)

// Project is the document root of a property tree: the storage root that
// owns the backing dictionary, tracks every item ever attached, and brokers
// persistence through a store.Store.
//
// Every mutation, whether a single-key SetProperty or a bulk SetValue, emits
// the whole backing dictionary on Changed — not a delta. Subscribers that
// care about one key filter inside their own CheckChange. Fan-out is
// synchronous and O(children) per write; callers mutating many keys in a hot
// path should batch through SetValue.
type Project struct {
	filename string
	store    store.Store
	dict     map[string]any
	children []*Item
	changed  *signal.Signal
	meta     store.Meta
}

// ProjectOption configures a Project at construction time.
type ProjectOption func(*Project)

// WithStore replaces the default file-backed store.
func WithStore(s store.Store) ProjectOption {
	return func(p *Project) {
		if s != nil {
			p.store = s
		}
	}
}

// NewProject constructs a document root persisted at filename.
func NewProject(filename string, opts ...ProjectOption) *Project {
	p := &Project{
		filename: filename,
		store:    store.NewFileStore(),
		changed:  signal.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *Project) backing() map[string]any {
	if p.dict == nil {
		p.dict = map[string]any{}
	}
	return p.dict
}

// Filename returns the persistence target.
func (p *Project) Filename() string { return p.filename }

// Changed is the project's change notification channel. Every emission
// carries the whole backing dictionary.
func (p *Project) Changed() *signal.Signal { return p.changed }

// Children returns every item ever attached, in attachment order.
func (p *Project) Children() []*Item {
	out := make([]*Item, len(p.children))
	copy(out, p.children)
	return out
}

// Meta returns the storage metadata recorded by the last Load or Save.
func (p *Project) Meta() store.Meta { return p.meta }

// Exists reports whether the persistence target currently holds a document.
func (p *Project) Exists() bool {
	_, _, ok, err := p.store.Load(p.filename)
	return err == nil && ok
}

func (p *Project) attach(child *Item) {
	p.children = append(p.children, child)
}

// Value returns the backing dictionary itself, not a copy.
func (p *Project) Value() any {
	return p.backing()
}

// Dict is Value with its concrete type.
func (p *Project) Dict() map[string]any {
	return p.backing()
}

// SetValue bulk-replaces the backing dictionary: all current keys are cleared
// and value's entries copied in, then one change notification is emitted. The
// dictionary instance itself is mutated in place, never swapped, so existing
// references stay valid. Passing anything but a map (or nil, which clears) is
// a programming error.
func (p *Project) SetValue(value any) {
	replacement, ok := value.(map[string]any)
	if value != nil && !ok {
		panic(fmt.Sprintf("proptree: project bulk set requires map[string]any, got %T", value))
	}
	d := p.backing()
	for key := range d {
		delete(d, key)
	}
	for key, v := range replacement {
		d[key] = v
	}
	p.changed.Emit(d)
}

// Property returns the raw value stored under name, nil when absent.
func (p *Project) Property(name string) any {
	return p.backing()[name]
}

// SetProperty upserts name and emits the whole updated dictionary. The
// fan-out to every subscriber completes before SetProperty returns.
func (p *Project) SetProperty(name string, value any) {
	d := p.backing()
	d[name] = value
	p.changed.Emit(d)
}

// Load reads the persisted document, validates the sentinel pair, and
// bulk-replaces the in-memory state.
//
// A missing file fails with ErrNotFound. Content whose top level is not a
// JSON object, or whose sentinel key does not hold sentinelValue, fails with
// a *FormatError preserving the original cause. On success the backing
// dictionary is replaced wholesale and one change notification fires.
func (p *Project) Load(sentinelKey, sentinelValue string) error {
	document, meta, ok, err := p.store.Load(p.filename)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		if errors.As(err, &typeErr) || errors.As(err, &syntaxErr) {
			return &FormatError{Filename: p.filename, Reason: "top level is not a JSON object", Err: err}
		}
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p.filename)
	}
	if document == nil {
		return &FormatError{Filename: p.filename, Reason: "top level is not a JSON object"}
	}
	if got, _ := document[sentinelKey].(string); got != sentinelValue {
		return &FormatError{
			Filename: p.filename,
			Reason:   fmt.Sprintf("sentinel %q is %q, want %q", sentinelKey, got, sentinelValue),
		}
	}

	p.meta = meta
	p.SetValue(document)
	return nil
}

// Save serializes the backing dictionary to the persistence target,
// overwriting whatever is there. There is no partial-write protection: a
// crash mid-write can corrupt the file. I/O errors propagate as-is.
func (p *Project) Save() error {
	meta, err := p.store.Save(p.filename, p.backing(), store.Meta{})
	if err != nil {
		return err
	}
	p.meta = meta
	return nil
}

var _ Container = (*Project)(nil)
