package proptree

import (
	"time"

	"github.com/goliatone/go-proptree/pkg/signal"
)

// Node is the value resolution contract every member of the tree implements:
// read the node's own slot, write the node's own slot. Where that slot lives
// (an ancestor's backing dictionary or the node's own storage) is the
// implementation's concern, not the caller's.
type Node interface {
	Value() any
	SetValue(value any)
}

// Container is implemented by storage roots that host named child items. The
// unexported attach method seals the interface to this package: a delegating
// item can only be parented to a container this package constructed, which
// keeps the tree acyclic by construction.
type Container interface {
	Node

	// Property returns the raw value stored under name, nil when absent.
	Property(name string) any
	// SetProperty upserts name in the backing dictionary and emits the whole
	// updated dictionary on the container's change signal.
	SetProperty(name string, value any)
	// Changed is the container's change notification channel.
	Changed() *signal.Signal

	attach(child *Item)
}

// EvalContext carries the inputs a computed-item expression evaluates against.
type EvalContext struct {
	// Document is the whole backing dictionary of the owning container.
	Document map[string]any
	// Now overrides the evaluation timestamp; nil means time.Now.
	Now *time.Time
	// Args carries per-evaluation values exposed to expressions as "args".
	Args map[string]any
}

func (ctx EvalContext) withDefaults() EvalContext {
	if ctx.Now == nil {
		now := time.Now()
		ctx.Now = &now
	}
	if ctx.Document == nil {
		ctx.Document = map[string]any{}
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

func (ctx EvalContext) timestamp() time.Time {
	ctx = ctx.withDefaults()
	return *ctx.Now
}

// Evaluator executes expressions against an evaluation context.
type Evaluator interface {
	Evaluate(ctx EvalContext, expr string) (any, error)
	Compile(expr string) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx EvalContext) (any, error)
}
