// Test Type: Unit Test
// Description: Tests for first-match-wins dispatch over rule tables

package rules_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/testutil"
	"github.com/arthur-debert/cmdmatch/pkg/tokenize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_LoadBindsFilename(t *testing.T) {
	load := &testutil.Recorder{}
	table := rules.MustTable(
		rules.Rule{
			Name:    "load",
			Pattern: pattern.New(pattern.Literal("load"), pattern.Fixed(pattern.Binding("filename"))),
			Handler: load,
		},
		rules.Rule{Name: "unknown", Pattern: pattern.MustParse("_ *words"), Handler: &testutil.Recorder{}},
	)

	outcome, err := rules.Dispatch(table, []string{"load", "file.txt"})
	require.NoError(t, err)

	assert.True(t, outcome.Matched)
	assert.Equal(t, "load", outcome.Rule)
	assert.Equal(t, 0, outcome.Index)
	require.Len(t, load.Calls(), 1)
	assert.Equal(t, map[string]interface{}{"filename": "file.txt"}, load.Calls()[0].Map())
}

func TestDispatch_GuardedRuleOrdering(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		wantRule  string
		wantForce int
		wantQuit  int
	}{
		{"long_flag_selects_force", []string{"quit", "--force"}, "force-quit", 1, 0},
		{"short_flag_selects_force", []string{"bye", "now", "-f"}, "force-quit", 1, 0},
		{"no_flag_falls_through", []string{"quit"}, "quit", 0, 1},
		{"other_args_fall_through", []string{"exit", "later"}, "quit", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			force := &testutil.Recorder{Result: rules.Terminate}
			quit := &testutil.Recorder{Result: rules.Terminate}
			table := quitTable(force, quit, nil)

			outcome, err := rules.Dispatch(table, tt.tokens)
			require.NoError(t, err)

			assert.True(t, outcome.Matched)
			assert.Equal(t, tt.wantRule, outcome.Rule)
			assert.Equal(t, rules.Terminate, outcome.Result)
			assert.Len(t, force.Calls(), tt.wantForce)
			assert.Len(t, quit.Calls(), tt.wantQuit)
		})
	}
}

func TestDispatch_MisorderedFallbackShadowsGuardedRule(t *testing.T) {
	force := &testutil.Recorder{}
	quit := &testutil.Recorder{}
	head := pattern.Alt("quit", "exit", "bye")
	table := rules.MustTable(
		rules.Rule{Name: "quit", Pattern: pattern.New(head, pattern.Rest("rest")), Handler: quit},
		rules.Rule{
			Name:    "force-quit",
			Pattern: pattern.New(head, pattern.Rest("rest")).When(pattern.HasAny("rest", "--force")),
			Handler: force,
		},
	)

	outcome, err := rules.Dispatch(table, []string{"quit", "--force"})
	require.NoError(t, err)

	assert.Equal(t, "quit", outcome.Rule)
	assert.Empty(t, force.Calls())
	assert.Len(t, quit.Calls(), 1)
}

func TestDispatch_CatchAll(t *testing.T) {
	unknown := &testutil.Recorder{}
	table := rules.MustTable(
		rules.Rule{Name: "load", Pattern: pattern.MustParse("load $filename"), Handler: &testutil.Recorder{}},
		rules.Rule{Name: "unknown", Pattern: pattern.MustParse("$command *args"), Handler: unknown},
	)

	outcome, err := rules.Dispatch(table, []string{"frobnicate", "a", "b"})
	require.NoError(t, err)

	assert.True(t, outcome.Matched)
	assert.Equal(t, "unknown", outcome.Rule)
	assert.Equal(t, []string{"frobnicate", "a", "b"}, outcome.Tokens)
	require.Len(t, unknown.Calls(), 1)

	env := unknown.Calls()[0]
	command, err := env.Token("command")
	require.NoError(t, err)
	args, err := env.Tokens("args")
	require.NoError(t, err)
	assert.Equal(t, []string{"frobnicate", "a", "b"}, append([]string{command}, args...))
}

func TestDispatch_LoadWithWrongArityFallsToCatchAll(t *testing.T) {
	unknown := &testutil.Recorder{}
	table := rules.MustTable(
		rules.Rule{Name: "load", Pattern: pattern.MustParse("load $filename"), Handler: &testutil.Recorder{}},
		rules.Rule{Name: "unknown", Pattern: pattern.MustParse("_ *words"), Handler: unknown},
	)

	for _, tokens := range [][]string{{"load"}, {"load", "a", "b"}} {
		outcome, err := rules.Dispatch(table, tokens)
		require.NoError(t, err)
		assert.Equal(t, "unknown", outcome.Rule, "tokens %v", tokens)
	}
	assert.Len(t, unknown.Calls(), 2)
}

func TestDispatch_MalformedInputNeverReachesDispatch(t *testing.T) {
	_, err := tokenize.Tokenize(`load "unterminated`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedInput))
}

func TestDispatch_EmptyTokens(t *testing.T) {
	t.Run("with_catch_all", func(t *testing.T) {
		unknown := &testutil.Recorder{}
		table := quitTable(&testutil.Recorder{}, &testutil.Recorder{}, unknown)

		outcome, err := rules.Dispatch(table, []string{})
		require.NoError(t, err)
		assert.False(t, outcome.Matched)
		assert.Equal(t, -1, outcome.Index)
		assert.Empty(t, unknown.Calls())
	})

	t.Run("without_catch_all", func(t *testing.T) {
		table := quitTable(&testutil.Recorder{}, &testutil.Recorder{}, nil)

		outcome, err := rules.Dispatch(table, nil)
		require.NoError(t, err)
		assert.False(t, outcome.Matched)
	})
}

func TestDispatch_Unmatched(t *testing.T) {
	table := quitTable(&testutil.Recorder{}, &testutil.Recorder{}, nil)

	outcome, err := rules.Dispatch(table, []string{"load", "x"})
	require.NoError(t, err)

	assert.False(t, outcome.Matched)
	assert.Equal(t, "", outcome.Rule)
	assert.Equal(t, []string{"load", "x"}, outcome.Tokens)
}

func TestDispatch_NilTable(t *testing.T) {
	outcome, err := rules.Dispatch(nil, []string{"quit"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.False(t, outcome.Matched)
	assert.Equal(t, -1, outcome.Index)
	assert.Equal(t, []string{"quit"}, outcome.Tokens)
}

func TestDispatch_OnlyFirstMatchingHandlerRuns(t *testing.T) {
	first := &testutil.Recorder{}
	second := &testutil.Recorder{}
	table := rules.MustTable(
		rules.Rule{Name: "first", Pattern: pattern.MustParse("$cmd *rest"), Handler: first},
		rules.Rule{Name: "second", Pattern: pattern.MustParse("load $filename"), Handler: second},
	)

	_, err := rules.Dispatch(table, []string{"load", "x"})
	require.NoError(t, err)

	assert.Len(t, first.Calls(), 1)
	assert.Empty(t, second.Calls())
}

func TestDispatch_Idempotent(t *testing.T) {
	table := quitTable(&testutil.Recorder{Result: rules.Terminate}, &testutil.Recorder{}, &testutil.Recorder{})

	for _, tokens := range [][]string{{"quit", "-f"}, {"quit"}, {"nope"}, {}} {
		a, errA := rules.Dispatch(table, tokens)
		b, errB := rules.Dispatch(table, tokens)
		require.NoError(t, errA)
		require.NoError(t, errB)

		assert.Equal(t, a.Matched, b.Matched)
		assert.Equal(t, a.Rule, b.Rule)
		assert.Equal(t, a.Result, b.Result)
		assert.Equal(t, a.Env.Map(), b.Env.Map())
	}
}

func TestDispatch_GuardErrorAborts(t *testing.T) {
	later := &testutil.Recorder{}
	table := rules.MustTable(
		rules.Rule{
			Name:    "broken",
			Pattern: pattern.MustParse("quit *rest").When(pattern.HasAny("flags", "--force")),
			Handler: &testutil.Recorder{},
		},
		rules.Rule{Name: "quit", Pattern: pattern.MustParse("quit *rest"), Handler: later},
	)

	outcome, err := rules.Dispatch(table, []string{"quit"})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrGuardEvaluation))
	assert.Equal(t, "broken", errors.GetErrorDetails(err)["rule"])
	assert.False(t, outcome.Matched)
	assert.Empty(t, later.Calls())
}

func TestDispatch_GuardNotReachedWhenStructureFails(t *testing.T) {
	calls := 0
	guard := pattern.GuardFunc(func(pattern.Env) (bool, error) {
		calls++
		return false, fmt.Errorf("boom")
	})
	table := rules.MustTable(
		rules.Rule{Name: "guarded", Pattern: pattern.MustParse("load $filename").When(guard), Handler: &testutil.Recorder{}},
		rules.Rule{Name: "unknown", Pattern: pattern.MustParse("_ *words"), Handler: &testutil.Recorder{}},
	)

	outcome, err := rules.Dispatch(table, []string{"save", "x"})
	require.NoError(t, err)
	assert.Equal(t, "unknown", outcome.Rule)
	assert.Equal(t, 0, calls)
}

func TestDispatch_HandlerErrorPassesThrough(t *testing.T) {
	boom := fmt.Errorf("disk full")
	table := rules.MustTable(
		rules.Rule{Name: "save", Pattern: pattern.MustParse("save $filename"), Handler: &testutil.Recorder{Err: boom}},
	)

	outcome, err := rules.Dispatch(table, []string{"save", "x"})
	assert.Same(t, boom, err)
	assert.True(t, outcome.Matched)
	assert.Equal(t, "save", outcome.Rule)
}

func TestDispatch_ConcurrentReads(t *testing.T) {
	table := quitTable(
		rules.HandlerFunc(func(pattern.Env) (rules.Result, error) { return rules.Terminate, nil }),
		rules.HandlerFunc(func(pattern.Env) (rules.Result, error) { return rules.Continue, nil }),
		rules.HandlerFunc(func(pattern.Env) (rules.Result, error) { return rules.Continue, nil }),
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens := []string{"quit"}
			want := rules.Continue
			if i%2 == 0 {
				tokens = append(tokens, "--force")
				want = rules.Terminate
			}
			outcome, err := rules.Dispatch(table, tokens)
			assert.NoError(t, err)
			assert.Equal(t, want, outcome.Result)
		}(i)
	}
	wg.Wait()
}
