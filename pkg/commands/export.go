package commands

import (
	"github.com/arthur-debert/cmdmatch/pkg/exporter"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
)

func (s *Set) export(env pattern.Env) (rules.Result, error) {
	quality, err := env.Token("quality")
	if err != nil {
		return rules.Continue, err
	}
	folder, err := env.Token("folder")
	if err != nil {
		return rules.Continue, err
	}

	logger := logging.GetLogger("commands.export")
	logger.Debug().
		Str("quality", quality).
		Str("folder", folder).
		Msg("Exporting media")

	factory, err := exporter.Lookup(quality)
	if err != nil {
		return rules.Continue, err
	}
	return rules.Continue, factory.New(s.out).Export(folder)
}
