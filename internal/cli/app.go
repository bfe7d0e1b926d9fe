package cli

import (
	"io"

	"github.com/arthur-debert/cmdmatch/pkg/commands"
	"github.com/arthur-debert/cmdmatch/pkg/config"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/style"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	rulesFile  string
	format     string
}

// app is everything a command needs once flags and config are resolved
type app struct {
	cfg     *config.Config
	printer *style.Printer
	table   *rules.Table
}

func newApp(out io.Writer, opts globalOptions) (*app, error) {
	// Console-only logging until the config says where the file goes
	logging.SetupLoggerWithOptions(logging.Options{Verbosity: opts.verbosity, File: "-"})

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.rulesFile != "" {
		cfg.RulesFile = opts.rulesFile
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity:  opts.verbosity,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	format, err := style.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	printer := style.NewPrinter(out, format)

	table, err := buildTable(printer, cfg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, printer: printer, table: table}, nil
}

// buildTable resolves the rule file named by cfg, or the built-in table,
// against the default command set
func buildTable(printer *style.Printer, cfg *config.Config) (*rules.Table, error) {
	logger := logging.GetLogger("cli.rules")

	var (
		specs []rules.Spec
		err   error
	)
	if cfg.RulesFile != "" {
		specs, err = rules.LoadSpecs(cfg.RulesFile)
	} else {
		specs, err = rules.DefaultSpecs()
	}
	if err != nil {
		return nil, err
	}

	set := commands.NewSet(printer)
	builder, err := rules.NewBuilder(set.Handlers(), cfg.Guards.FlagPosition)
	if err != nil {
		return nil, err
	}
	table, err := builder.Build(specs)
	if err != nil {
		return nil, err
	}
	set.Bind(table)

	for _, finding := range table.Lint() {
		logger.Warn().
			Str("kind", string(finding.Kind)).
			Str("rule", finding.Rule).
			Msg(finding.Message)
	}
	return table, nil
}
