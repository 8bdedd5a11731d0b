// Package expr compiles and evaluates CEL guard conditions for the
// link-confirmation behavior. A condition sees the navigation context as
// the variable "link" (a map of href, label, external, ...).
package expr

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

// LinkVar is the name the navigation context is bound to inside a condition.
const LinkVar = "link"

// Evaluator compiles and evaluates CEL guard conditions.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the standard extension libraries
// enabled so conditions can use string/list/math helpers.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable(LinkVar, cel.DynType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Env returns the CEL environment for introspection.
func (e *Evaluator) Env() *cel.Env {
	return e.env
}

// Condition is a compiled guard condition.
type Condition struct {
	src string
	prg cel.Program
}

// Source returns the original expression text.
func (c *Condition) Source() string {
	return c.src
}

// Compile parses, checks, and plans a condition expression.
func (e *Evaluator) Compile(src string) (*Condition, error) {
	ast, issues := e.env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Condition{src: src, prg: prg}, nil
}

// Eval evaluates the condition against a navigation context. The result
// must be a boolean; anything else is an error.
func (c *Condition) Eval(link map[string]any) (bool, error) {
	result, _, err := c.prg.Eval(map[string]any{
		LinkVar: link,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := toGo(result).(bool)
	if !ok {
		return false, fmt.Errorf("condition %q did not evaluate to a boolean", c.src)
	}
	return b, nil
}

// toGo converts the CEL primitive results a condition can produce to Go
// native types.
func toGo(val ref.Val) any {
	if val == nil {
		return nil
	}
	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	}
	if valuer, ok := val.(interface{ Value() any }); ok {
		return valuer.Value()
	}
	return val
}
