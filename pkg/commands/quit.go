package commands

import (
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
)

func (s *Set) forceQuit(pattern.Env) (rules.Result, error) {
	s.out.Say("Sending SIGTERM to all processes and quitting the program.")
	return rules.Terminate, nil
}

func (s *Set) quit(pattern.Env) (rules.Result, error) {
	s.out.Say("Quitting program.")
	return rules.Terminate, nil
}
