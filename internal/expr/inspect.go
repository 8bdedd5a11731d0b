package expr

import (
	"sort"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// ReferencedFields parses a condition and returns the navigation-context
// fields it selects off the "link" variable, sorted and de-duplicated.
// Callers use this to warn about fields the context will never carry.
func (e *Evaluator) ReferencedFields(src string) ([]string, error) {
	ast, issues := e.env.Parse(src)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	collectLinkFields(parsed.GetExpr(), seen)

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields, nil
}

// collectLinkFields walks the proto expression tree and records every
// field selected directly off the link variable.
func collectLinkFields(e *exprpb.Expr, seen map[string]bool) {
	if e == nil {
		return
	}

	switch e.ExprKind.(type) {
	case *exprpb.Expr_SelectExpr:
		sel := e.GetSelectExpr()
		if sel == nil {
			return
		}
		if ident := sel.Operand.GetIdentExpr(); ident != nil && ident.Name == LinkVar {
			seen[sel.Field] = true
			return
		}
		collectLinkFields(sel.Operand, seen)

	case *exprpb.Expr_CallExpr:
		call := e.GetCallExpr()
		if call == nil {
			return
		}
		collectLinkFields(call.Target, seen)
		for _, arg := range call.Args {
			collectLinkFields(arg, seen)
		}

	case *exprpb.Expr_ListExpr:
		for _, elem := range e.GetListExpr().Elements {
			collectLinkFields(elem, seen)
		}

	case *exprpb.Expr_StructExpr:
		for _, entry := range e.GetStructExpr().Entries {
			collectLinkFields(entry.GetMapKey(), seen)
			collectLinkFields(entry.GetValue(), seen)
		}

	case *exprpb.Expr_ComprehensionExpr:
		comp := e.GetComprehensionExpr()
		collectLinkFields(comp.GetIterRange(), seen)
		collectLinkFields(comp.GetAccuInit(), seen)
		collectLinkFields(comp.GetLoopCondition(), seen)
		collectLinkFields(comp.GetLoopStep(), seen)
		collectLinkFields(comp.GetResult(), seen)
	}
}
