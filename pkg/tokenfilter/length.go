package tokenfilter

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const LengthFilterName = "length"

func init() {
	Register(LengthFilterName, func(args []byte) (Filter, error) {
		var cfg LengthConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "length filter args", err)
		}
		return &LengthFilter{cfg: cfg}, nil
	})
}

// LengthConfig is the "args" object for the length token filter. Min and
// Max are both optional (nil means unbounded) and inclusive.
type LengthConfig struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// LengthFilter retains tokens whose Unicode-scalar count lies within
// [min, max].
type LengthFilter struct {
	cfg LengthConfig
}

func (f *LengthFilter) Name() string          { return LengthFilterName }
func (f *LengthFilter) RequiresDetails() bool { return false }

func (f *LengthFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		n := utf8.RuneCountInString(t.Text)
		if f.cfg.Min != nil && n < *f.cfg.Min {
			continue
		}
		if f.cfg.Max != nil && n > *f.cfg.Max {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *LengthFilter) Clone() Filter {
	clone := *f
	return &clone
}
