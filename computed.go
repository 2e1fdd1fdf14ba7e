package proptree

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEvaluator reports a computed item constructed without an evaluator.
var ErrNoEvaluator = errors.New("proptree: evaluator not configured")

// ComputedItem is a derived property: its value is an expression evaluated
// against the owning container's whole backing dictionary. Eval is the pure
// evaluation; Refresh evaluates and stores the result through the delegation
// chain, so other subscribers observe the recomputation.
type ComputedItem struct {
	*Item
	expression string
	evaluator  Evaluator
	logger     EvaluatorLogger
}

// ComputedOption configures a ComputedItem at construction time.
type ComputedOption func(*ComputedItem)

// ComputedWithLogger attaches an evaluation logger. Nil restores the noop.
func ComputedWithLogger(logger EvaluatorLogger) ComputedOption {
	return func(c *ComputedItem) {
		if logger == nil {
			c.logger = noopEvaluatorLogger{}
			return
		}
		c.logger = logger
	}
}

// NewComputedItem attaches a computed item to parent.
func NewComputedItem(parent Container, name, expression string, evaluator Evaluator, opts ...ComputedOption) *ComputedItem {
	c := &ComputedItem{
		Item:       NewItem(parent, name),
		expression: expression,
		evaluator:  evaluator,
		logger:     noopEvaluatorLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Expression returns the configured expression.
func (c *ComputedItem) Expression() string { return c.expression }

// Eval executes the expression against the current backing dictionary
// without storing anything.
func (c *ComputedItem) Eval() (any, error) {
	return c.EvalWith(EvalContext{Document: c.document()})
}

// EvalWith executes the expression against an explicit context. A zero
// Document falls back to the owning container's backing dictionary.
func (c *ComputedItem) EvalWith(ctx EvalContext) (any, error) {
	if c.evaluator == nil {
		return nil, ErrNoEvaluator
	}
	if c.expression == "" {
		return nil, fmt.Errorf("proptree: computed item %q has no expression", c.Name())
	}
	if ctx.Document == nil {
		ctx.Document = c.document()
	}

	started := time.Now()
	result, err := c.evaluator.Evaluate(ctx, c.expression)
	c.logger.LogEvaluation(EvaluatorLogEvent{
		Engine:   c.engine(),
		Expr:     c.expression,
		Item:     c.Name(),
		Duration: time.Since(started),
		Err:      err,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Refresh evaluates the expression and stores the result in the item's slot.
func (c *ComputedItem) Refresh() (any, error) {
	result, err := c.Eval()
	if err != nil {
		return nil, err
	}
	c.SetValue(result)
	return result, nil
}

func (c *ComputedItem) document() map[string]any {
	parent := c.Parent()
	if parent == nil {
		m, _ := c.Value().(map[string]any)
		return m
	}
	m, _ := parent.Value().(map[string]any)
	return m
}

func (c *ComputedItem) engine() string {
	if named, ok := c.evaluator.(interface{ Engine() string }); ok {
		return named.Engine()
	}
	return "custom"
}
