package rules

import (
	"slices"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
)

// Dispatch selects the first rule in table order whose pattern and guard
// both match tokens and invokes its handler.
//
// When no rule applies the outcome has Matched set to false and no handler
// runs. A guard that cannot be evaluated aborts the dispatch with an
// ErrGuardEvaluation error naming the rule. A handler error is returned
// as is, together with the outcome of the match that selected it. A nil
// table is an ErrInvalidInput error.
func Dispatch(table *Table, tokens []string) (Outcome, error) {
	logger := logging.GetLogger("rules.dispatch")
	outcome := Outcome{Index: -1, Tokens: slices.Clone(tokens)}
	if table == nil {
		return outcome, errors.New(errors.ErrInvalidInput, "cannot dispatch without a rule table")
	}

	for i, rule := range table.rules {
		env, result, err := rule.Pattern.Match(tokens)
		if err != nil {
			logger.Error().
				Err(err).
				Str("rule", rule.Name).
				Int("index", i).
				Msg("Guard evaluation failed")
			return outcome, errors.Wrapf(err, errors.ErrGuardEvaluation, "rule %q: guard could not be evaluated", rule.Name).
				WithDetail("rule", rule.Name).
				WithDetail("index", i)
		}

		logger.Trace().
			Str("rule", rule.Name).
			Int("index", i).
			Str("result", result.String()).
			Msg("Tried rule")

		if result != pattern.Matched {
			continue
		}

		logger.Debug().
			Str("rule", rule.Name).
			Strs("tokens", tokens).
			Str("env", env.String()).
			Msg("Rule matched")

		outcome.Matched = true
		outcome.Rule = rule.Name
		outcome.Index = i
		outcome.Env = env

		res, err := rule.Handler.Handle(env)
		outcome.Result = res
		return outcome, err
	}

	logger.Debug().Strs("tokens", tokens).Msg("No rule matched")
	return outcome, nil
}
