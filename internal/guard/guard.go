// Package guard decorates link activation with a synchronous confirmation
// step. A guard shares the widgets' attach/detach lifecycle: while attached
// it intercepts activations and asks before navigating, while detached the
// link behaves as if the guard did not exist.
package guard

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"

	"github.com/federicobaldini/native-components/internal/expr"
)

// Prompter answers a yes/no question synchronously. The showcase wires this
// to its confirm modal; tests use a canned implementation.
type Prompter interface {
	Confirm(message string) bool
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(message string) bool

func (f PrompterFunc) Confirm(message string) bool { return f(message) }

// Navigator performs the guarded navigation once it is allowed.
type Navigator func(link Link)

// Link is the navigation target a guard protects.
type Link struct {
	Href     string
	Label    string
	External bool
	Visited  bool
}

// contextMap exposes the link to condition expressions under the "link"
// variable.
func (l Link) contextMap() map[string]any {
	return map[string]any{
		"href":     l.Href,
		"label":    l.Label,
		"external": l.External,
		"visited":  l.Visited,
	}
}

// handler is the bound activation callback. Attach stores one, Detach
// removes that same one, so bind/unbind can never go out of sync.
type handler func(Link) bool

// NavigationGuard asks before navigating. The zero value is not usable;
// construct with NewNavigationGuard.
type NavigationGuard struct {
	prompter  Prompter
	navigate  Navigator
	condition *expr.Condition
	message   string
	log       logr.Logger

	bound handler
}

// Option configures a NavigationGuard at construction.
type Option func(*NavigationGuard)

// WithMessage overrides the prompt text. The verb %s, when present, is
// substituted with the link href.
func WithMessage(message string) Option {
	return func(g *NavigationGuard) { g.message = message }
}

// WithCondition gates prompting on a compiled expression: the question is
// asked only for links the condition matches, everything else navigates
// straight through.
func WithCondition(cond *expr.Condition) Option {
	return func(g *NavigationGuard) { g.condition = cond }
}

// WithLogger routes guard diagnostics to the given logger.
func WithLogger(log logr.Logger) Option {
	return func(g *NavigationGuard) { g.log = log }
}

// NewNavigationGuard builds a guard around a prompter and the navigation
// it protects.
func NewNavigationGuard(prompter Prompter, navigate Navigator, opts ...Option) *NavigationGuard {
	g := &NavigationGuard{
		prompter: prompter,
		navigate: navigate,
		message:  "Leave this page and open %s?",
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Attach binds the activation handler. Attaching twice is a no-op.
func (g *NavigationGuard) Attach() {
	if g.bound != nil {
		return
	}
	g.bound = g.confirmThenNavigate
}

// Detach unbinds the handler stored by Attach. The guard keeps its
// configuration and can be re-attached.
func (g *NavigationGuard) Detach() {
	g.bound = nil
}

// Attached reports whether the guard currently intercepts activations.
func (g *NavigationGuard) Attached() bool {
	return g.bound != nil
}

// Activate runs a link activation through the guard. It returns true when
// navigation happened. A detached guard never intercepts: the link
// navigates as if unguarded.
func (g *NavigationGuard) Activate(link Link) bool {
	if g.bound == nil {
		g.run(link)
		return true
	}
	return g.bound(link)
}

// confirmThenNavigate is the activation handler bound while attached.
func (g *NavigationGuard) confirmThenNavigate(link Link) bool {
	if !g.shouldPrompt(link) {
		g.run(link)
		return true
	}
	if !g.prompter.Confirm(fmt.Sprintf(g.message, link.Href)) {
		g.log.V(1).Info("navigation declined", "href", link.Href)
		return false
	}
	g.run(link)
	return true
}

// shouldPrompt evaluates the optional condition. An evaluation failure
// falls back to prompting: a broken condition must never wave a guarded
// link through.
func (g *NavigationGuard) shouldPrompt(link Link) bool {
	if g.condition == nil {
		return true
	}
	matched, err := g.condition.Eval(link.contextMap())
	if err != nil {
		g.log.Error(err, "guard condition failed", "expression", g.condition.Source(), "href", link.Href)
		return true
	}
	return matched
}

func (g *NavigationGuard) run(link Link) {
	if g.navigate != nil {
		g.navigate(link)
	}
}

// knownLinkFields lists the fields condition expressions can select from
// the link variable.
func knownLinkFields() map[string]bool {
	return map[string]bool{
		"href":     true,
		"label":    true,
		"external": true,
		"visited":  true,
	}
}

// CompileCondition compiles a guard condition and reports any referenced
// link fields the evaluation context will not carry. Unknown fields are
// returned as warnings rather than errors: CEL resolves them at runtime
// and the guard fails safe on evaluation errors.
func CompileCondition(ev *expr.Evaluator, source string) (*expr.Condition, []string, error) {
	cond, err := ev.Compile(source)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling guard condition %q: %w", source, err)
	}
	fields, err := ev.ReferencedFields(source)
	if err != nil {
		return nil, nil, fmt.Errorf("inspecting guard condition %q: %w", source, err)
	}
	known := knownLinkFields()
	var unknown []string
	for _, f := range fields {
		if !known[f] {
			unknown = append(unknown, f)
		}
	}
	sort.Strings(unknown)
	return cond, unknown, nil
}
