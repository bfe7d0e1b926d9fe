// Package commands provides the handlers behind the default rule table.
//
// Each handler reports through a style.Printer and returns rules.Continue,
// except the quit handlers which return rules.Terminate and leave the
// actual exit to the caller. Help and the unknown-command suggestion need
// the table the handlers end up in, so a Set is bound to its table after
// the table is built:
//
//	set := commands.NewSet(printer)
//	builder, _ := rules.NewBuilder(set.Handlers(), rules.FlagsAnywhere)
//	table, _ := builder.Build(specs)
//	set.Bind(table)
package commands

import (
	"sync"

	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/registry"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/style"
)

// Handler names as used in rule files
const (
	CommandLoad      = "load"
	CommandSave      = "save"
	CommandReset     = "reset"
	CommandExport    = "export"
	CommandHelp      = "help"
	CommandForceQuit = "force-quit"
	CommandQuit      = "quit"
	CommandUnknown   = "unknown"
)

// Set is the default command set
type Set struct {
	out *style.Printer

	mu    sync.RWMutex
	table *rules.Table
}

// NewSet creates a command set reporting to out
func NewSet(out *style.Printer) *Set {
	return &Set{out: out}
}

// Bind gives the set the table its handlers were built into
func (s *Set) Bind(table *rules.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
}

func (s *Set) bound() *rules.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Handlers returns a fresh registry holding every handler of the set
func (s *Set) Handlers() registry.Registry[rules.Handler] {
	reg := registry.New[rules.Handler]("handler")
	registry.MustRegister[rules.Handler](reg, CommandLoad, rules.HandlerFunc(s.load))
	registry.MustRegister[rules.Handler](reg, CommandSave, rules.HandlerFunc(s.save))
	registry.MustRegister[rules.Handler](reg, CommandReset, rules.HandlerFunc(s.reset))
	registry.MustRegister[rules.Handler](reg, CommandExport, rules.HandlerFunc(s.export))
	registry.MustRegister[rules.Handler](reg, CommandHelp, rules.HandlerFunc(s.help))
	registry.MustRegister[rules.Handler](reg, CommandForceQuit, rules.HandlerFunc(s.forceQuit))
	registry.MustRegister[rules.Handler](reg, CommandQuit, rules.HandlerFunc(s.quit))
	registry.MustRegister[rules.Handler](reg, CommandUnknown, rules.HandlerFunc(s.unknown))

	logger := logging.GetLogger("commands")
	logger.Trace().Strs("handlers", reg.List()).Msg("Handlers registered")
	return reg
}
