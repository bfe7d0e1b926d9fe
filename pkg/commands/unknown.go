package commands

import (
	"sort"

	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/tokenize"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds the edit distance of a typo suggestion
const maxSuggestDistance = 2

func (s *Set) unknown(env pattern.Env) (rules.Result, error) {
	words := env.Captured()
	s.out.Say("Unknown command: '%s'.", tokenize.Join(words))

	if table := s.bound(); table != nil && len(words) > 0 {
		if guess := Suggest(words[0], table.Keywords()); guess != "" && guess != words[0] {
			s.out.Say("Did you mean [rule]%s[/rule]?", guess)
		}
	}
	return rules.Continue, nil
}

// Suggest returns the keyword closest to word, or "" when nothing is close.
// Keywords containing word as a fuzzy subsequence win; otherwise the
// nearest keyword within a small edit distance is used.
func Suggest(word string, keywords []string) string {
	if word == "" || len(keywords) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(word, keywords)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, kw := range keywords {
		if d := fuzzy.LevenshteinDistance(word, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best
}
