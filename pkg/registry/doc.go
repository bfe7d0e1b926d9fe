// Package registry provides a generic, type-safe name registry. It backs
// the handler and guard lookups used when a rule table is built from a
// rule file.
package registry
