// Package console runs the command loop: it reads lines, tokenizes and
// dispatches each one, and reports problems without stopping. The loop ends
// at end of input or when a handler returns rules.Terminate.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/style"
	"github.com/arthur-debert/cmdmatch/pkg/tokenize"
)

// Options configures a Console
type Options struct {
	// Prompt is written before each line when ShowPrompt is set
	Prompt     string
	ShowPrompt bool
}

// Stats summarizes a loop run
type Stats struct {
	Lines      int
	Matched    int
	Unmatched  int
	Errors     int
	Terminated bool
}

// Console dispatches lines from a reader against a rule table
type Console struct {
	table *rules.Table
	in    io.Reader
	out   *style.Printer
	opts  Options
}

// New creates a console reading from in and reporting to out
func New(table *rules.Table, in io.Reader, out *style.Printer, opts Options) *Console {
	return &Console{table: table, in: in, out: out, opts: opts}
}

// Execute tokenizes and dispatches one line. Tokenization errors come back
// before any rule is tried.
func (c *Console) Execute(line string) (rules.Outcome, error) {
	tokens, err := tokenize.Tokenize(line)
	if err != nil {
		return rules.Outcome{Index: -1}, err
	}
	return rules.Dispatch(c.table, tokens)
}

// Run reads lines until end of input or a Terminate result. Malformed
// input, guard failures and handler errors are reported and the loop moves
// on to the next line. Only a failing reader stops the loop with an error.
func (c *Console) Run() (Stats, error) {
	logger := logging.GetLogger("console")
	reader := bufio.NewReader(c.in)
	var stats Stats

	for {
		if c.opts.ShowPrompt {
			fmt.Fprint(c.out.Writer(), c.opts.Prompt)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return stats, errors.Wrap(readErr, errors.ErrInternal, "failed to read input")
		}
		if readErr == io.EOF && line == "" {
			if c.opts.ShowPrompt {
				fmt.Fprintln(c.out.Writer())
			}
			logger.Debug().Int("lines", stats.Lines).Msg("End of input")
			return stats, nil
		}

		stats.Lines++
		line = strings.TrimRight(line, "\r\n")

		outcome, err := c.Execute(line)
		switch {
		case err != nil:
			stats.Errors++
			c.report(line, err)
		case !outcome.Matched:
			stats.Unmatched++
			if len(outcome.Tokens) > 0 {
				c.out.Warn("No rule matched '%s'.", tokenize.Join(outcome.Tokens))
			}
		default:
			stats.Matched++
		}

		if outcome.Matched && outcome.Result == rules.Terminate {
			stats.Terminated = true
			logger.Debug().Str("rule", outcome.Rule).Msg("Terminated by handler")
			return stats, nil
		}

		if readErr == io.EOF {
			logger.Debug().Int("lines", stats.Lines).Msg("End of input")
			return stats, nil
		}
	}
}

func (c *Console) report(line string, err error) {
	logger := logging.GetLogger("console")

	switch {
	case errors.IsErrorCode(err, errors.ErrMalformedInput):
		logger.Debug().Err(err).Str("line", line).Msg("Malformed input")
	case errors.IsErrorCode(err, errors.ErrGuardEvaluation):
		logger.Error().Err(err).Str("line", line).Msg("Rule table defect")
	default:
		logger.Warn().Err(err).Str("line", line).Msg("Handler failed")
	}
	c.out.Error(err)
}
