package tokenfilter

import (
	"encoding/json"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const (
	JapaneseReadingFormFilterName = "japanese_reading_form"
	KoreanReadingFormFilterName   = "korean_reading_form"
)

func init() {
	Register(JapaneseReadingFormFilterName, func(args []byte) (Filter, error) {
		var cfg ReadingFormConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "japanese_reading_form filter args", err)
		}
		return &readingFormFilter{name: JapaneseReadingFormFilterName, index: cfg.readingIndex(7)}, nil
	})
	Register(KoreanReadingFormFilterName, func(args []byte) (Filter, error) {
		// The Korean reading-form filter takes no configuration: Korean
		// dictionaries carry the reading at detail index 3 (the
		// normalized form), a fixed field rather than a tunable one.
		return &readingFormFilter{name: KoreanReadingFormFilterName, index: 3}, nil
	})
}

// ReadingFormConfig is the "args" object for japanese_reading_form: which
// detail field holds the reading to surface.
type ReadingFormConfig struct {
	KanjiNumericIndex *int `json:"index,omitempty"`
}

func (c ReadingFormConfig) readingIndex(fallback int) int {
	if c.KanjiNumericIndex != nil {
		return *c.KanjiNumericIndex
	}
	return fallback
}

// readingFormFilter replaces a token's surface text with one of its
// detail fields (the reading), skipping tokens that carry no details
// rather than failing.
type readingFormFilter struct {
	name  string
	index int
}

func (f *readingFormFilter) Name() string          { return f.name }
func (f *readingFormFilter) RequiresDetails() bool { return true }

func (f *readingFormFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	for i, t := range tokens {
		if t.Details == nil {
			continue
		}
		if f.index >= len(t.Details) {
			continue
		}
		reading := t.Details[f.index]
		if reading == "" || reading == "*" {
			continue
		}
		tokens[i].Text = reading
	}
	return tokens, nil
}

func (f *readingFormFilter) Clone() Filter {
	clone := *f
	return &clone
}
