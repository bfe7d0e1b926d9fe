package rules

import (
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
)

// Result tells the caller what to do after a handler ran
type Result int

const (
	// Continue asks the caller to read the next line
	Continue Result = iota
	// Terminate asks the caller to stop and exit
	Terminate
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Handler is the behavior selected by a rule. It receives the environment
// built by the winning match.
type Handler interface {
	Handle(env pattern.Env) (Result, error)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(env pattern.Env) (Result, error)

// Handle calls f(env)
func (f HandlerFunc) Handle(env pattern.Env) (Result, error) {
	return f(env)
}

// Rule pairs a pattern with the handler it selects
type Rule struct {
	// Name identifies the rule in logs, listings and errors
	Name string

	Pattern pattern.Pattern
	Handler Handler

	// HandlerName is the registry name the handler was resolved from, when
	// the rule came from a rule file
	HandlerName string
}

// Outcome describes the result of one dispatch
type Outcome struct {
	// Matched is false when no rule applied
	Matched bool

	// Rule and Index identify the winning rule
	Rule  string
	Index int

	// Env is the environment the handler was invoked with
	Env pattern.Env

	// Result is the handler's result
	Result Result

	// Tokens is the dispatched token sequence
	Tokens []string
}
