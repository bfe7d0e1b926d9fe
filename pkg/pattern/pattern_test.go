// Test Type: Unit Test
// Description: Tests for structural matching of patterns against token sequences

package pattern_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_Head(t *testing.T) {
	tests := []struct {
		name   string
		head   pattern.Element
		token  string
		want   pattern.Result
		binds  string
		expect string
	}{
		{"literal_equal", pattern.Literal("load"), "load", pattern.Matched, "", ""},
		{"literal_differs", pattern.Literal("load"), "Load", pattern.NoMatch, "", ""},
		{"alternation_member", pattern.Alt("quit", "exit", "bye"), "bye", pattern.Matched, "", ""},
		{"alternation_non_member", pattern.Alt("quit", "exit", "bye"), "stop", pattern.NoMatch, "", ""},
		{"alternation_with_bind", pattern.Alt("quit", "exit").As("cmd"), "exit", pattern.Matched, "cmd", "exit"},
		{"binding", pattern.Binding("cmd"), "anything", pattern.Matched, "cmd", "anything"},
		{"wildcard", pattern.Wildcard{}, "anything", pattern.Matched, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pattern.New(tt.head, pattern.Fixed())
			env, result, err := p.Match([]string{tt.token})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)

			if tt.binds == "" {
				assert.Equal(t, 0, env.Len())
				return
			}
			got, err := env.Token(tt.binds)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestMatch_EmptySequenceNeverMatches(t *testing.T) {
	patterns := []pattern.Pattern{
		pattern.New(pattern.Literal("load"), pattern.Fixed()),
		pattern.New(pattern.Wildcard{}, pattern.Rest("words")),
		pattern.New(pattern.Binding("cmd"), pattern.Rest("args")),
	}

	for _, p := range patterns {
		t.Run(p.String(), func(t *testing.T) {
			env, result, err := p.Match(nil)
			require.NoError(t, err)
			assert.Equal(t, pattern.NoMatch, result)
			assert.Equal(t, 0, env.Len())

			_, result, err = p.Match([]string{})
			require.NoError(t, err)
			assert.Equal(t, pattern.NoMatch, result)
		})
	}
}

func TestMatch_FixedArity(t *testing.T) {
	p := pattern.New(pattern.Literal("cp"), pattern.Fixed(pattern.Binding("src"), pattern.Binding("dst")))

	tests := []struct {
		name   string
		tokens []string
		want   pattern.Result
	}{
		{"exact_arity", []string{"cp", "a", "b"}, pattern.Matched},
		{"one_short", []string{"cp", "a"}, pattern.NoMatch},
		{"one_over", []string{"cp", "a", "b", "c"}, pattern.NoMatch},
		{"head_only", []string{"cp"}, pattern.NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := p.Match(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestMatch_FixedArityProperty(t *testing.T) {
	for k := 0; k <= 4; k++ {
		elems := make([]pattern.Element, k)
		for i := range elems {
			elems[i] = pattern.Wildcard{}
		}
		p := pattern.New(pattern.Literal("cmd"), pattern.Fixed(elems...))

		for n := 0; n <= 6; n++ {
			tokens := make([]string, n+1)
			tokens[0] = "cmd"
			for i := 1; i <= n; i++ {
				tokens[i] = fmt.Sprintf("arg%d", i)
			}

			_, result, err := p.Match(tokens)
			require.NoError(t, err)
			if n == k {
				assert.Equal(t, pattern.Matched, result, "arity %d with %d args", k, n)
			} else {
				assert.Equal(t, pattern.NoMatch, result, "arity %d with %d args", k, n)
			}
		}
	}
}

func TestMatch_RestCapture(t *testing.T) {
	p := pattern.New(pattern.Alt("quit", "exit", "bye"), pattern.Rest("rest"))

	tests := []struct {
		name   string
		tokens []string
		rest   []string
	}{
		{"head_only_gives_empty_capture", []string{"quit"}, []string{}},
		{"one_flag", []string{"exit", "--force"}, []string{"--force"}},
		{"many_tokens", []string{"bye", "now", "-f", "please"}, []string{"now", "-f", "please"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, result, err := p.Match(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, pattern.Matched, result)

			rest, err := env.Tokens("rest")
			require.NoError(t, err)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestMatch_FixedThenRest(t *testing.T) {
	p := pattern.New(pattern.Alt("quit", "exit"), pattern.FixedRest("rest", pattern.Alt("--force", "-f")))

	env, result, err := p.Match([]string{"quit", "-f", "now"})
	require.NoError(t, err)
	require.Equal(t, pattern.Matched, result)
	rest, err := env.Tokens("rest")
	require.NoError(t, err)
	assert.Equal(t, []string{"now"}, rest)

	_, result, err = p.Match([]string{"quit"})
	require.NoError(t, err)
	assert.Equal(t, pattern.NoMatch, result)

	_, result, err = p.Match([]string{"quit", "now", "-f"})
	require.NoError(t, err)
	assert.Equal(t, pattern.NoMatch, result)
}

func TestMatch_HeadFailureSkipsTailAndGuard(t *testing.T) {
	called := false
	p := pattern.New(pattern.Literal("load"), pattern.Rest("rest")).
		When(pattern.GuardFunc(func(pattern.Env) (bool, error) {
			called = true
			return true, nil
		}))

	_, result, err := p.Match([]string{"save", "x"})
	require.NoError(t, err)
	assert.Equal(t, pattern.NoMatch, result)
	assert.False(t, called, "guard must not run when the head fails")
}

func TestMatch_Guard(t *testing.T) {
	p := pattern.New(pattern.Alt("quit", "exit", "bye"), pattern.Rest("rest")).
		When(pattern.HasAny("rest", "--force", "-f"))

	env, result, err := p.Match([]string{"quit", "--force"})
	require.NoError(t, err)
	assert.Equal(t, pattern.Matched, result)
	assert.True(t, env.Has("rest"))

	env, result, err = p.Match([]string{"quit"})
	require.NoError(t, err)
	assert.Equal(t, pattern.GuardRejected, result)
	assert.Equal(t, 0, env.Len(), "a rejected match discards its environment")
}

func TestMatch_GuardErrors(t *testing.T) {
	t.Run("unbound_name", func(t *testing.T) {
		p := pattern.New(pattern.Literal("quit"), pattern.Rest("rest")).
			When(pattern.HasAny("flags", "--force"))

		_, result, err := p.Match([]string{"quit"})
		require.Error(t, err)
		assert.Equal(t, pattern.NoMatch, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrGuardEvaluation))
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnboundName))
	})

	t.Run("guard_returns_error", func(t *testing.T) {
		p := pattern.New(pattern.Literal("quit"), pattern.Fixed()).
			When(pattern.GuardFunc(func(pattern.Env) (bool, error) {
				return false, fmt.Errorf("boom")
			}))

		_, _, err := p.Match([]string{"quit"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrGuardEvaluation, errors.GetErrorCode(err))
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("guard_panics", func(t *testing.T) {
		p := pattern.New(pattern.Literal("quit"), pattern.Fixed()).
			When(pattern.GuardFunc(func(pattern.Env) (bool, error) {
				panic("bad guard")
			}))

		_, _, err := p.Match([]string{"quit"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrGuardEvaluation, errors.GetErrorCode(err))
		assert.Contains(t, err.Error(), "bad guard")
	})
}

func TestMatch_EnvironmentIsFreshPerAttempt(t *testing.T) {
	p := pattern.New(pattern.Literal("load"), pattern.Fixed(pattern.Binding("filename")))

	first, _, err := p.Match([]string{"load", "a.txt"})
	require.NoError(t, err)
	second, _, err := p.Match([]string{"load", "b.txt"})
	require.NoError(t, err)

	a, _ := first.Token("filename")
	b, _ := second.Token("filename")
	assert.Equal(t, "a.txt", a)
	assert.Equal(t, "b.txt", b)
}

func TestMatch_RestCaptureIsCopied(t *testing.T) {
	tokens := []string{"bye", "x", "y"}
	p := pattern.New(pattern.Literal("bye"), pattern.Rest("rest"))

	env, _, err := p.Match(tokens)
	require.NoError(t, err)
	tokens[1] = "mutated"

	rest, _ := env.Tokens("rest")
	assert.Equal(t, []string{"x", "y"}, rest)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern pattern.Pattern
		wantErr bool
	}{
		{"valid", pattern.New(pattern.Literal("load"), pattern.Fixed(pattern.Binding("f"))), false},
		{"no_head", pattern.Pattern{Tail: pattern.Rest("rest")}, true},
		{"empty_alternation", pattern.New(pattern.Alternation{}, pattern.Fixed()), true},
		{"empty_binding", pattern.New(pattern.Literal("x"), pattern.Fixed(pattern.Binding(""))), true},
		{"empty_rest_name", pattern.New(pattern.Literal("x"), pattern.Rest("")), true},
		{"duplicate_name", pattern.New(pattern.Binding("a"), pattern.Fixed(pattern.Binding("a"))), true},
		{"duplicate_with_rest", pattern.New(pattern.Alt("q").As("a"), pattern.Rest("a")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsCatchAll(t *testing.T) {
	assert.True(t, pattern.New(pattern.Wildcard{}, pattern.Rest("words")).IsCatchAll())
	assert.True(t, pattern.New(pattern.Binding("cmd"), pattern.Rest("args")).IsCatchAll())
	assert.False(t, pattern.New(pattern.Literal("x"), pattern.Rest("args")).IsCatchAll())
	assert.False(t, pattern.New(pattern.Wildcard{}, pattern.Fixed()).IsCatchAll())
	assert.False(t, pattern.New(pattern.Wildcard{}, pattern.Rest("w")).When(pattern.HasAny("w", "x")).IsCatchAll())
}

func TestPatternString(t *testing.T) {
	p := pattern.New(pattern.Alt("quit", "exit", "bye").As("cmd"), pattern.Rest("rest")).
		When(pattern.HasAny("rest", "--force", "-f"))
	assert.Equal(t, "$cmd:quit|exit|bye *rest if has-any(rest, --force -f)", p.String())

	assert.Equal(t, "load $filename", pattern.New(pattern.Literal("load"), pattern.Fixed(pattern.Binding("filename"))).String())
	assert.Equal(t, "_ *words", pattern.New(pattern.Wildcard{}, pattern.Rest("words")).String())
	assert.Equal(t, "reset", pattern.New(pattern.Literal("reset"), pattern.Fixed()).String())
}
