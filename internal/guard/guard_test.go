package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/federicobaldini/native-components/internal/expr"
)

type promptRecorder struct {
	answer   bool
	messages []string
}

func (p *promptRecorder) Confirm(message string) bool {
	p.messages = append(p.messages, message)
	return p.answer
}

func newGuard(t *testing.T, answer bool, opts ...Option) (*NavigationGuard, *promptRecorder, *[]Link) {
	t.Helper()
	prompter := &promptRecorder{answer: answer}
	var navigated []Link
	g := NewNavigationGuard(prompter, func(l Link) { navigated = append(navigated, l) }, opts...)
	return g, prompter, &navigated
}

func TestGuardAcceptNavigates(t *testing.T) {
	g, prompter, navigated := newGuard(t, true)
	g.Attach()

	ok := g.Activate(Link{Href: "https://example.com"})

	assert.True(t, ok)
	require.Len(t, *navigated, 1)
	assert.Equal(t, "https://example.com", (*navigated)[0].Href)
	require.Len(t, prompter.messages, 1)
	assert.Contains(t, prompter.messages[0], "https://example.com")
}

func TestGuardDeclineSuppressesNavigation(t *testing.T) {
	g, prompter, navigated := newGuard(t, false)
	g.Attach()

	ok := g.Activate(Link{Href: "https://example.com"})

	assert.False(t, ok)
	assert.Empty(t, *navigated)
	assert.Len(t, prompter.messages, 1)
}

func TestGuardDetachedDoesNotIntercept(t *testing.T) {
	g, prompter, navigated := newGuard(t, false)

	ok := g.Activate(Link{Href: "/about"})

	assert.True(t, ok, "unguarded links navigate directly")
	assert.Len(t, *navigated, 1)
	assert.Empty(t, prompter.messages)
}

func TestGuardAttachDetachLifecycle(t *testing.T) {
	g, prompter, navigated := newGuard(t, false)

	g.Attach()
	g.Attach() // idempotent
	require.True(t, g.Attached())
	assert.False(t, g.Activate(Link{Href: "/a"}))

	g.Detach()
	require.False(t, g.Attached())
	assert.True(t, g.Activate(Link{Href: "/a"}))

	g.Attach()
	assert.False(t, g.Activate(Link{Href: "/a"}))

	assert.Len(t, *navigated, 1)
	assert.Len(t, prompter.messages, 2)
}

func TestGuardCustomMessage(t *testing.T) {
	g, prompter, _ := newGuard(t, true, WithMessage("Really open %s now?"))
	g.Attach()

	g.Activate(Link{Href: "/docs"})
	require.Len(t, prompter.messages, 1)
	assert.Equal(t, "Really open /docs now?", prompter.messages[0])
}

func TestGuardConditionGatesPrompt(t *testing.T) {
	ev, err := expr.NewEvaluator()
	require.NoError(t, err)
	cond, unknown, err := CompileCondition(ev, "link.external == true")
	require.NoError(t, err)
	assert.Empty(t, unknown)

	g, prompter, navigated := newGuard(t, false, WithCondition(cond))
	g.Attach()

	// Internal link: condition is false, no question asked.
	assert.True(t, g.Activate(Link{Href: "/local"}))
	assert.Empty(t, prompter.messages)
	assert.Len(t, *navigated, 1)

	// External link: condition holds, the declining prompter blocks it.
	assert.False(t, g.Activate(Link{Href: "https://elsewhere.io", External: true}))
	assert.Len(t, prompter.messages, 1)
	assert.Len(t, *navigated, 1)
}

func TestGuardConditionErrorFailsSafe(t *testing.T) {
	ev, err := expr.NewEvaluator()
	require.NoError(t, err)
	// Compiles against the dyn link variable but fails at runtime: the
	// evaluation context has no such field.
	cond, err2 := ev.Compile("link.missing_field == true")
	require.NoError(t, err2)

	g, prompter, navigated := newGuard(t, false, WithCondition(cond))
	g.Attach()

	assert.False(t, g.Activate(Link{Href: "/x"}), "a failing condition must still prompt")
	assert.Len(t, prompter.messages, 1)
	assert.Empty(t, *navigated)
}

func TestCompileConditionReportsUnknownFields(t *testing.T) {
	ev, err := expr.NewEvaluator()
	require.NoError(t, err)

	cond, unknown, err := CompileCondition(ev, `link.hrf.startsWith("http") && link.external`)
	require.NoError(t, err)
	require.NotNil(t, cond)
	assert.Equal(t, []string{"hrf"}, unknown)
}

func TestCompileConditionInvalidExpression(t *testing.T) {
	ev, err := expr.NewEvaluator()
	require.NoError(t, err)

	_, _, err = CompileCondition(ev, "link.external ==")
	assert.Error(t, err)
}
