package commands

import (
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
)

func (s *Set) load(env pattern.Env) (rules.Result, error) {
	filename, err := env.Token("filename")
	if err != nil {
		return rules.Continue, err
	}
	s.out.Say("Loading file: [path]%s[/path].", filename)
	return rules.Continue, nil
}

func (s *Set) save(env pattern.Env) (rules.Result, error) {
	filename, err := env.Token("filename")
	if err != nil {
		return rules.Continue, err
	}
	s.out.Say("Saving to file: [path]%s[/path].", filename)
	return rules.Continue, nil
}

func (s *Set) reset(pattern.Env) (rules.Result, error) {
	s.out.Say("Resetting the system.")
	return rules.Continue, nil
}
