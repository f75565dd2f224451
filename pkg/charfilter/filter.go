// Package charfilter implements the character-filter stage of the
// analysis pipeline: text-to-text transforms that also emit an offset
// map describing how the transform changed byte lengths.
package charfilter

import "github.com/japaniel/tokanalyze/pkg/token"

// Filter normalizes input text and reports, via offsets/diffs, where and
// by how much the output diverges in byte length from the input. An
// empty offsets slice means the filter left every byte position
// unchanged.
type Filter interface {
	Name() string
	Apply(text string) (newText string, offsets []int, diffs []int64, err error)
	Clone() Filter
}

// Constructor builds a Filter from the raw JSON bytes of a filter's
// "args" object.
type Constructor func(args []byte) (Filter, error)

var registry = map[string]Constructor{}

// Register adds a character filter kind to the registry consulted by
// analysis.NewAnalyzer. Filter packages call this from an init() so that the
// analyzer's constructor stays open to new kinds without a central
// switch statement.
func Register(kind string, ctor Constructor) {
	registry[kind] = ctor
}

// New looks up kind in the registry and constructs a Filter from args.
func New(kind string, args []byte) (Filter, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, token.NewError(token.KindDeserialize, "unknown character filter "+kind)
	}
	return ctor(args)
}
