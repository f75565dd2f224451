// Package tokenfilter implements the token-filter stage of the analysis
// pipeline: in-place (well, slice-returning) transforms over a token
// vector that keep, drop, rewrite, or merge tokens.
package tokenfilter

import (
	"github.com/japaniel/tokanalyze/pkg/token"
)

// Filter operates on a token slice, returning the (possibly shorter)
// result. It must skip, rather than fail, when a token lacks the details
// the filter needs.
type Filter interface {
	Name() string
	Apply(tokens []token.Token) ([]token.Token, error)
	Clone() Filter
	// RequiresDetails reports whether this filter kind requires the
	// tokenizer to attach feature vectors (used by the analyzer to
	// decide between Tokenize and TokenizeWithDetails).
	RequiresDetails() bool
}

// Constructor builds a Filter from the raw JSON bytes of a filter's
// "args" object.
type Constructor func(args []byte) (Filter, error)

var registry = map[string]Constructor{}

// Register adds a token filter kind to the registry consulted by
// analysis.NewAnalyzer.
func Register(kind string, ctor Constructor) {
	registry[kind] = ctor
}

// New looks up kind in the registry and constructs a Filter from args.
func New(kind string, args []byte) (Filter, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, token.NewError(token.KindDeserialize, "unknown token filter "+kind)
	}
	return ctor(args)
}
