// Package pattern implements the structural patterns used to select a
// command handler from a tokenized line.
//
// A Pattern is a head Element, matched against the first token, followed by
// a Tail describing every remaining token, and an optional Guard that can
// veto an otherwise successful structural match.
//
// # Elements
//
//   - Literal matches a token equal to its value.
//   - Alternation matches a token from a set of literals, optionally binding
//     the matched token to a name.
//   - Binding matches any token and binds it to a name.
//   - Wildcard matches any token and binds nothing.
//
// # Tails
//
//   - Fixed(elems...) requires exactly len(elems) remaining tokens.
//   - Rest(name) captures every remaining token, zero or more.
//   - FixedRest(name, elems...) requires the fixed elements first and
//     captures whatever follows them.
//
// # Description language
//
// Parse builds a Pattern from a compact description, the format used by
// rule files:
//
//	load $filename            literal head, one bound argument
//	quit|exit|bye *rest       alternation head, rest capture
//	$cmd:quit|exit *rest      alternation that also binds the head
//	_ *words                  catch-all
//
// Matching is a single deterministic pass: there is no backtracking, and a
// guard is only consulted once the structure matched.
package pattern
