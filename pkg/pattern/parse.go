package pattern

import (
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
)

// DefaultRestName is used for a bare "*" rest capture
const DefaultRestName = "rest"

// Parse builds an unguarded Pattern from its description. See the package
// documentation for the syntax. A leading backslash makes a word a literal,
// so `\_` matches an underscore and `\$x` matches "$x".
func Parse(desc string) (Pattern, error) {
	words := strings.Fields(desc)
	if len(words) == 0 {
		return Pattern{}, errors.New(errors.ErrPatternInvalid, "empty pattern description")
	}

	head, err := parseElement(words[0])
	if err != nil {
		return Pattern{}, describeErr(err, desc)
	}

	var (
		fixed   []Element
		rest    string
		hasRest bool
	)
	for i, word := range words[1:] {
		if strings.HasPrefix(word, "*") {
			if i != len(words)-2 {
				return Pattern{}, errors.Newf(errors.ErrPatternInvalid, "rest capture %q must be the last element", word).
					WithDetail("pattern", desc)
			}
			rest, hasRest = strings.TrimPrefix(word, "*"), true
			if rest == "" {
				rest = DefaultRestName
			}
			continue
		}
		elem, err := parseElement(word)
		if err != nil {
			return Pattern{}, describeErr(err, desc)
		}
		fixed = append(fixed, elem)
	}

	p := Pattern{Head: head, Tail: Tail{fixed: fixed, rest: rest, hasRest: hasRest}}
	if err := p.Validate(); err != nil {
		return Pattern{}, describeErr(err, desc)
	}
	return p, nil
}

// MustParse is like Parse but panics on an invalid description. It is meant
// for tables built from constants.
func MustParse(desc string) Pattern {
	p, err := Parse(desc)
	if err != nil {
		panic(err)
	}
	return p
}

func parseElement(word string) (Element, error) {
	switch {
	case strings.HasPrefix(word, `\`):
		return Literal(word[1:]), nil
	case word == "_":
		return Wildcard{}, nil
	case strings.HasPrefix(word, "*"):
		return nil, errors.Newf(errors.ErrPatternInvalid, "rest capture %q is only allowed at the end of the tail", word)
	case strings.HasPrefix(word, "$"):
		name, alts, isAlt := strings.Cut(word[1:], ":")
		if name == "" {
			return nil, errors.Newf(errors.ErrPatternInvalid, "binding %q has an empty name", word)
		}
		if !isAlt {
			return Binding(name), nil
		}
		values, err := splitAlternatives(word, alts)
		if err != nil {
			return nil, err
		}
		return Alt(values...).As(name), nil
	case strings.Contains(word, "|"):
		values, err := splitAlternatives(word, word)
		if err != nil {
			return nil, err
		}
		return Alt(values...), nil
	default:
		return Literal(word), nil
	}
}

func splitAlternatives(word, alts string) ([]string, error) {
	values := strings.Split(alts, "|")
	for _, v := range values {
		if v == "" {
			return nil, errors.Newf(errors.ErrPatternInvalid, "alternation %q has an empty member", word)
		}
	}
	return values, nil
}

func describeErr(err error, desc string) error {
	var perr *errors.Error
	if e, ok := err.(*errors.Error); ok {
		perr = e
	} else {
		perr = errors.Wrap(err, errors.ErrPatternInvalid, "invalid pattern")
	}
	return perr.WithDetail("pattern", desc)
}
