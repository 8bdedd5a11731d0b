package showcase

import (
	"github.com/federicobaldini/native-components/internal/expr"
	"github.com/federicobaldini/native-components/internal/guard"
)

// GuardCondition is a compiled guard condition plus the link fields it
// references that the navigation context will not carry. Callers surface
// the unknown fields as warnings; evaluation still fails safe at runtime.
type GuardCondition struct {
	cond          *expr.Condition
	UnknownFields []string
}

// Source returns the original expression text.
func (c *GuardCondition) Source() string {
	return c.cond.Source()
}

// CompileGuardCondition compiles a guard condition expression for the
// gallery's links.
func CompileGuardCondition(source string) (*GuardCondition, error) {
	ev, err := expr.NewEvaluator()
	if err != nil {
		return nil, err
	}
	cond, unknown, err := guard.CompileCondition(ev, source)
	if err != nil {
		return nil, err
	}
	return &GuardCondition{cond: cond, UnknownFields: unknown}, nil
}
