// Package analysis wires character filters, a tokenizer adapter, and
// token filters into a single Analyzer, and performs the byte-offset
// correction that maps tokens produced from normalized text back onto
// the original input.
package analysis

import (
	"github.com/japaniel/tokanalyze/pkg/charfilter"
	"github.com/japaniel/tokanalyze/pkg/token"
	"github.com/japaniel/tokanalyze/pkg/tokenfilter"
	"github.com/japaniel/tokanalyze/pkg/tokenize"
)

// offsetMapEntry is one character filter's contribution to the
// correction stack: the offset/diff pair it emitted, plus the length of
// the text after that filter ran (needed by CorrectOffset's
// pos==outputLen special case).
type offsetMapEntry struct {
	offsets   []int
	diffs     []int64
	outputLen int
}

// Analyzer runs the full character-filter -> tokenizer -> token-filter
// pipeline. It is immutable after construction; Analyze's offset-map
// stack is local to each call, so a single Analyzer may be shared
// read-only across goroutines, and independent Clones may run
// concurrently (see AnalyzeBatch).
type Analyzer struct {
	charFilters  []charfilter.Filter
	segmenter    tokenize.Segmenter
	tokenFilters []tokenfilter.Filter
	withDetails  bool
}

// NewAnalyzer constructs an Analyzer from a parsed Config, resolving
// every filter kind through the charfilter/tokenfilter registries and
// building the configured tokenizer.
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	charFilters := make([]charfilter.Filter, 0, len(cfg.CharacterFilters))
	for _, fc := range cfg.CharacterFilters {
		f, err := charfilter.New(fc.Kind, fc.Args)
		if err != nil {
			return nil, err
		}
		charFilters = append(charFilters, f)
	}

	tokenFilters := make([]tokenfilter.Filter, 0, len(cfg.TokenFilters))
	withDetails := false
	for _, fc := range cfg.TokenFilters {
		f, err := tokenfilter.New(fc.Kind, fc.Args)
		if err != nil {
			return nil, err
		}
		tokenFilters = append(tokenFilters, f)
		if f.RequiresDetails() {
			withDetails = true
		}
	}

	userDictPath := ""
	if cfg.Tokenizer.UserDictionary != nil {
		userDictPath = cfg.Tokenizer.UserDictionary.Path
	}
	segmenter, err := tokenize.NewKagomeSegmenter(
		cfg.Tokenizer.Dictionary.Kind,
		cfg.Tokenizer.Mode.Mode,
		cfg.Tokenizer.Mode.Options,
		userDictPath,
	)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		charFilters:  charFilters,
		segmenter:    segmenter,
		tokenFilters: tokenFilters,
		withDetails:  withDetails,
	}, nil
}

// Analyze runs text through every character filter, the tokenizer, and
// every token filter, then rewrites each surviving token's ByteStart and
// ByteEnd to refer to the original (pre-filter) input.
func (a *Analyzer) Analyze(text string) ([]token.Token, error) {
	current := text
	var stack []offsetMapEntry

	for _, f := range a.charFilters {
		newText, offsets, diffs, err := f.Apply(current)
		if err != nil {
			return nil, err
		}
		if len(offsets) > 0 {
			stack = append(stack, offsetMapEntry{
				offsets:   offsets,
				diffs:     diffs,
				outputLen: len(newText),
			})
		}
		current = newText
	}

	var tokens []token.Token
	var err error
	if a.withDetails {
		tokens, err = a.segmenter.TokenizeWithDetails(current)
	} else {
		tokens, err = a.segmenter.Tokenize(current)
	}
	if err != nil {
		return nil, err
	}

	for _, f := range a.tokenFilters {
		tokens, err = f.Apply(tokens)
		if err != nil {
			return nil, err
		}
	}

	for i := range tokens {
		tokens[i].ByteStart = correctThroughStack(tokens[i].ByteStart, stack)
		tokens[i].ByteEnd = correctThroughStack(tokens[i].ByteEnd, stack)
	}

	return tokens, nil
}

// correctThroughStack walks the offset-map stack back-to-front (reverse
// of application order), applying charfilter.CorrectOffset at each
// level so a position in the fully-filtered text unwinds step by step to
// a position in the original input.
func correctThroughStack(pos int, stack []offsetMapEntry) int {
	for i := len(stack) - 1; i >= 0; i-- {
		entry := stack[i]
		pos = charfilter.CorrectOffset(pos, entry.offsets, entry.diffs, entry.outputLen)
	}
	return pos
}

// Clone returns an Analyzer with independently-cloned filters and
// segmenter, safe to use concurrently with the original and with other
// clones.
func (a *Analyzer) Clone() *Analyzer {
	charFilters := make([]charfilter.Filter, len(a.charFilters))
	for i, f := range a.charFilters {
		charFilters[i] = f.Clone()
	}
	tokenFilters := make([]tokenfilter.Filter, len(a.tokenFilters))
	for i, f := range a.tokenFilters {
		tokenFilters[i] = f.Clone()
	}
	return &Analyzer{
		charFilters:  charFilters,
		segmenter:    a.segmenter.Clone(),
		tokenFilters: tokenFilters,
		withDetails:  a.withDetails,
	}
}
