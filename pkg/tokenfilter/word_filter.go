package tokenfilter

import (
	"encoding/json"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const (
	KeepWordsFilterName = "keep_words"
	StopWordsFilterName = "stop_words"
)

func init() {
	Register(KeepWordsFilterName, func(args []byte) (Filter, error) {
		cfg, err := parseWordSetConfig(args)
		if err != nil {
			return nil, err
		}
		return &wordFilter{name: KeepWordsFilterName, words: cfg, keep: true}, nil
	})
	Register(StopWordsFilterName, func(args []byte) (Filter, error) {
		cfg, err := parseWordSetConfig(args)
		if err != nil {
			return nil, err
		}
		return &wordFilter{name: StopWordsFilterName, words: cfg, keep: false}, nil
	})
}

type wordSetConfigJSON struct {
	Words []string `json:"words"`
}

func parseWordSetConfig(args []byte) (map[string]struct{}, error) {
	var raw wordSetConfigJSON
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, token.WrapError(token.KindDeserialize, "word filter args", err)
	}
	words := make(map[string]struct{}, len(raw.Words))
	for _, w := range raw.Words {
		words[w] = struct{}{}
	}
	return words, nil
}

// wordFilter implements both keep_words and stop_words, surface-string
// membership tests that are complements of one another.
type wordFilter struct {
	name  string
	words map[string]struct{}
	keep  bool
}

func (f *wordFilter) Name() string          { return f.name }
func (f *wordFilter) RequiresDetails() bool { return false }

func (f *wordFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		_, member := f.words[t.Text]
		if member == f.keep {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *wordFilter) Clone() Filter {
	clone := *f
	return &clone
}
