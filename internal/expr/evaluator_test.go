package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndEval(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	tests := []struct {
		name string
		src  string
		link map[string]any
		want bool
	}{
		{
			name: "external link matches",
			src:  `link.external == true`,
			link: map[string]any{"external": true},
			want: true,
		},
		{
			name: "external link does not match",
			src:  `link.external == true`,
			link: map[string]any{"external": false},
			want: false,
		},
		{
			name: "href prefix",
			src:  `link.href.startsWith("https://")`,
			link: map[string]any{"href": "https://example.com"},
			want: true,
		},
		{
			name: "combined condition",
			src:  `link.external && !link.visited`,
			link: map[string]any{"external": true, "visited": false},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := ev.Compile(tt.src)
			require.NoError(t, err)
			got, err := cond.Eval(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.src, cond.Source())
		})
	}
}

func TestCompileRejectsInvalidExpression(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	_, err = ev.Compile(`link.href ==`)
	assert.Error(t, err)
}

func TestEvalRejectsNonBooleanResult(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	cond, err := ev.Compile(`link.href`)
	require.NoError(t, err)

	_, err = cond.Eval(map[string]any{"href": "https://example.com"})
	assert.ErrorContains(t, err, "did not evaluate to a boolean")
}

func TestEvalMissingFieldErrors(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	cond, err := ev.Compile(`link.external == true`)
	require.NoError(t, err)

	_, err = cond.Eval(map[string]any{"href": "x"})
	assert.Error(t, err)
}

func TestReferencedFields(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "single select",
			src:  `link.external`,
			want: []string{"external"},
		},
		{
			name: "multiple selects sorted and deduplicated",
			src:  `link.visited || (link.external && link.external)`,
			want: []string{"external", "visited"},
		},
		{
			name: "select inside call",
			src:  `link.href.startsWith("https://")`,
			want: []string{"href"},
		},
		{
			name: "no link references",
			src:  `1 < 2`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.ReferencedFields(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
