package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/arthur-debert/cmdmatch/internal/version"
	"github.com/arthur-debert/cmdmatch/pkg/cobrax/topics"
	"github.com/arthur-debert/cmdmatch/pkg/console"
	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/style"
	"github.com/arthur-debert/cmdmatch/pkg/tokenize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		opts    globalOptions
		current *app
	)

	rootCmd := &cobra.Command{
		Use:     "cmdmatch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "completion", "help":
				return nil
			}
			a, err := newApp(cmd.OutOrStdout(), opts)
			if err != nil {
				return err
			}
			current = a
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, current)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)

	rootCmd.AddCommand(newRunCmd(&current))
	rootCmd.AddCommand(newRulesCmd(&current))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := topics.InitializeWithOptions(rootCmd, topicFS(), topics.Options{
		Renderer: topicRenderer(&opts.format),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// runInteractive runs the command loop on the command's input. The prompt
// is only shown when the input is a terminal.
func runInteractive(cmd *cobra.Command, a *app) error {
	in := cmd.InOrStdin()
	showPrompt := false
	if f, ok := in.(*os.File); ok {
		showPrompt = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	c := console.New(a.table, in, a.printer, console.Options{
		Prompt:     style.PromptStyle.Render(a.cfg.Prompt),
		ShowPrompt: showPrompt,
	})
	logger := logging.GetLogger("cli.interactive")
	done := logging.LogOperationStart(logger, "interactive session")
	defer done()

	stats, err := c.Run()
	logger.Info().
		Int("lines", stats.Lines).
		Int("matched", stats.Matched).
		Int("unmatched", stats.Unmatched).
		Int("errors", stats.Errors).
		Bool("terminated", stats.Terminated).
		Msg("Session finished")
	return err
}

func newRunCmd(current **app) *cobra.Command {
	var line string

	cmd := &cobra.Command{
		Use:   "run [-c LINE | -- WORDS...]",
		Short: MsgRunShort,
		Long:  MsgRunLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *current
			lineSet := cmd.Flags().Changed("command")

			var tokens []string
			switch {
			case lineSet && len(args) > 0:
				return errors.New(errors.ErrInvalidInput, MsgBothLines)
			case lineSet:
				var err error
				if tokens, err = tokenize.Tokenize(line); err != nil {
					return err
				}
			case len(args) > 0:
				tokens = args
			default:
				return errors.New(errors.ErrInvalidInput, MsgNoLine)
			}

			defer logging.LogDuration(time.Now(), "run")

			outcome, err := rules.Dispatch(a.table, tokens)
			if err != nil {
				return err
			}
			if !outcome.Matched && len(tokens) > 0 {
				a.printer.Warn(MsgUnmatched, tokenize.Join(tokens))
			}

			logger := logging.WithFields(map[string]interface{}{
				"component": "cli.run",
				"rule":      outcome.Rule,
				"matched":   outcome.Matched,
			})
			logger.Debug().Str("result", outcome.Result.String()).Msg("Line dispatched")
			return nil
		},
	}
	cmd.Flags().StringVarP(&line, "command", "c", "", MsgFlagLine)
	return cmd
}

func newRulesCmd(current **app) *cobra.Command {
	var showDefault bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *current
			if showDefault {
				_, err := cmd.OutOrStdout().Write(rules.DefaultFile())
				return err
			}
			return listRules(a.printer, a.table)
		},
	}
	cmd.Flags().BoolVar(&showDefault, "default", false, MsgFlagDefault)
	return cmd
}

// listRules prints the table in precedence order followed by lint findings
func listRules(p *style.Printer, table *rules.Table) error {
	findings := table.Lint()
	shadowed := map[string]bool{}
	for _, f := range findings {
		if f.Kind == rules.FindingShadowed {
			shadowed[f.Rule] = true
		}
	}

	rows := [][]string{{"#", "Rule", "Pattern", "Guard", "Handler", "Kind"}}
	for i, rule := range table.Rules() {
		kind := style.RuleKindPlain
		switch {
		case shadowed[rule.Name]:
			kind = style.RuleKindShadowed
		case rule.Pattern.IsCatchAll():
			kind = style.RuleKindCatchAll
		case rule.Pattern.Guard != nil:
			kind = style.RuleKindGuarded
		}

		unguarded := rule.Pattern
		unguarded.Guard = nil

		handler := rule.HandlerName
		if handler == "" {
			handler = rule.Name
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			p.Highlight("rule", rule.Name),
			p.Highlight("pattern", unguarded.String()),
			p.Highlight("guard", rule.Pattern.GuardString()),
			handler,
			p.Badge(kind),
		})
	}

	if err := p.Table(rows); err != nil {
		return err
	}
	if p.Format() == style.FormatJSON {
		return nil
	}

	p.Say(MsgRulesSummary, table.Len())
	for _, f := range findings {
		p.Warn(MsgLintFinding, f.String())
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(cmdmatch completion bash)

Zsh:
  $ cmdmatch completion zsh > "${fpath[1]}/_cmdmatch"

Fish:
  $ cmdmatch completion fish | source

PowerShell:
  PS> cmdmatch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
