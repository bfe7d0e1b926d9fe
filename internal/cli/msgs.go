package cli

// Command descriptions
const (
	MsgRootShort = "Match command lines against an ordered rule table"
	MsgRootLong  = `cmdmatch reads command lines, splits them into words and runs the first
rule in its table whose pattern matches. Without a subcommand it starts an
interactive loop on standard input that ends at end of input or when a
quit rule runs.

Rules are tried in order, so a rule guarded by a flag check has to come
before the plain rule with the same shape. "cmdmatch rules" shows the
table and warns about rules that can never be reached.`

	MsgRunShort = "Dispatch a single command line"
	MsgRunLong  = `Run dispatches one line and exits. The line is taken from -c, or built
from the remaining arguments:

  cmdmatch run -c 'save "my notes.txt"'
  cmdmatch run -- export high /tmp/video`

	MsgRulesShort      = "List the rule table in precedence order"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/cmdmatch/config.toml)"
	MsgFlagRules   = "Rule table file (.toml, .yaml or .yml)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagLine    = "Command line to dispatch"
	MsgFlagDefault = "Print the built-in rule file instead of the table"
)

// Status messages
const (
	MsgNoLine       = "nothing to run: pass -c LINE or words after --"
	MsgBothLines    = "pass either -c LINE or words, not both"
	MsgUnmatched    = "No rule matched '%s'."
	MsgLintFinding  = "%s"
	MsgRulesSummary = "%d rules, first match wins."
)
