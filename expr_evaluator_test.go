package proptree

import (
	"errors"
	"strings"
	"testing"
)

func TestExprEvaluatorFlattensDocument(t *testing.T) {
	evaluator := NewExprEvaluator()
	ctx := EvalContext{Document: map[string]any{"width": 800, "height": 600}}

	result, err := evaluator.Evaluate(ctx, "width * height")
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if result != 480000 {
		t.Fatalf("expected 480000, got %v", result)
	}
}

func TestExprEvaluatorExposesDocMap(t *testing.T) {
	evaluator := NewExprEvaluator()
	ctx := EvalContext{Document: map[string]any{"title": "demo"}}

	result, err := evaluator.Evaluate(ctx, `doc["title"]`)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if result != "demo" {
		t.Fatalf("expected demo, got %v", result)
	}
}

func TestExprEvaluatorArgs(t *testing.T) {
	evaluator := NewExprEvaluator()
	ctx := EvalContext{Args: map[string]any{"factor": 3}}

	result, err := evaluator.Evaluate(ctx, `args["factor"]`)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if result != 3 {
		t.Fatalf("expected 3, got %v", result)
	}
}

func TestExprEvaluatorEmptyExpression(t *testing.T) {
	_, err := NewExprEvaluator().Evaluate(EvalContext{}, "")
	if err == nil {
		t.Fatalf("expected error for empty expression")
	}
}

func TestExprEvaluatorWrapsErrors(t *testing.T) {
	_, err := NewExprEvaluator().Evaluate(EvalContext{}, "1 +")
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	if evalErr.Engine != "expr" {
		t.Fatalf("expected expr engine, got %q", evalErr.Engine)
	}
	if !strings.Contains(evalErr.Error(), "expr=") {
		t.Fatalf("expected error to describe the expression, got %q", evalErr.Error())
	}
}

func TestExprEvaluatorFunctionRegistry(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("double", func(args ...any) (any, error) {
		n, _ := args[0].(int)
		return n * 2, nil
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	evaluator := NewExprEvaluator(ExprWithFunctionRegistry(registry))
	result, err := evaluator.Evaluate(EvalContext{}, `call("double", 21)`)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if result != 42 {
		t.Fatalf("expected 42, got %v", result)
	}
}

func TestExprEvaluatorProgramCache(t *testing.T) {
	cache := NewMapCache()
	evaluator := NewExprEvaluator(ExprWithProgramCache(cache))
	ctx := EvalContext{Document: map[string]any{"n": 5}}

	if _, err := evaluator.Evaluate(ctx, "n + 1"); err != nil {
		t.Fatalf("first evaluate failed: %v", err)
	}
	if _, ok := cache.Get("n + 1"); !ok {
		t.Fatalf("expected program to be cached")
	}
	result, err := evaluator.Evaluate(ctx, "n + 1")
	if err != nil {
		t.Fatalf("cached evaluate failed: %v", err)
	}
	if result != 6 {
		t.Fatalf("expected 6, got %v", result)
	}
}

func TestExprCompiledRule(t *testing.T) {
	evaluator := NewExprEvaluator()
	rule, err := evaluator.Compile("width + 1")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	result, err := rule.Evaluate(EvalContext{Document: map[string]any{"width": 10}})
	if err != nil {
		t.Fatalf("rule evaluate failed: %v", err)
	}
	if result != 11 {
		t.Fatalf("expected 11, got %v", result)
	}
}
