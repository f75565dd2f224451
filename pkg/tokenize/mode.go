package tokenize

import (
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japaniel/tokanalyze/pkg/token"
)

// Mode selects how the underlying lattice is searched: Normal picks the
// single best segmentation, Decompose additionally splits compound nouns
// into their constituent morphemes wherever the dictionary's cost model
// allows it.
type Mode string

const (
	ModeNormal    Mode = "normal"
	ModeDecompose Mode = "decompose"
)

// DecomposeOptions tunes ModeDecompose. A positive
// KanjiPenaltyLengthThreshold selects kagome's Extended mode instead of
// Search (Extended additionally emits single-character tokens for unknown
// words); the threshold's numeric value is not otherwise used.
type DecomposeOptions struct {
	KanjiPenaltyLengthThreshold int
}

func (m Mode) kagomeMode(opts DecomposeOptions) tokenizer.TokenizeMode {
	switch m {
	case ModeDecompose:
		if opts.KanjiPenaltyLengthThreshold > 0 {
			return tokenizer.Extended
		}
		return tokenizer.Search
	default:
		return tokenizer.Normal
	}
}

// ParseMode parses the bare-string form of a tokenizer mode ("", "normal",
// or "decompose"). It does not handle the object form that carries
// DecomposeOptions; callers unmarshaling a polymorphic mode field handle
// that case themselves and fall back to ParseMode for the plain string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeNormal:
		return ModeNormal, nil
	case ModeDecompose:
		return ModeDecompose, nil
	default:
		return "", token.NewError(token.KindArgs, "unknown tokenizer mode: "+s)
	}
}
