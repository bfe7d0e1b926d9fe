// Package rules holds the ordered rule table and the dispatcher that picks a
// handler for a tokenized command line.
//
// A Rule pairs a pattern.Pattern with a Handler. A Table is an ordered,
// immutable list of rules built once at startup.
//
// # First match wins
//
// Dispatch tries the rules in table order. The first rule whose pattern
// matches structurally and whose guard holds is selected, its handler is
// invoked with the match environment, and no later rule is considered.
// Table order is the only precedence mechanism: there are no scores or
// priorities.
//
// A guarded rule must therefore be listed before its unguarded counterpart.
// If the unguarded rule comes first it matches every input the guarded
// one would, and the guarded rule is never reached:
//
//	quit|exit|bye *rest   if has-any(rest, --force -f)   -> force-quit
//	quit|exit|bye *rest                                  -> quit
//
// Table.Lint reports such shadowed rules.
//
// # Catch-all
//
// Dispatch does not invent a default. When no rule applies the outcome is
// unmatched, so tables are expected to end with a catch-all such as
// "$command *args" or "_ *words".
//
// # Rule files
//
// Tables can be described in TOML or YAML, with handlers and guard kinds
// referenced by name:
//
//	[[rules]]
//	name = "force-quit"
//	pattern = "quit|exit|bye *rest"
//	handler = "force-quit"
//	  [rules.guard]
//	  kind = "has-any"
//	  binding = "rest"
//	  values = ["--force", "-f"]
package rules
