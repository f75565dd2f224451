package tokenfilter

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const JapaneseKatakanaStemFilterName = "japanese_katakana_stem"

func init() {
	Register(JapaneseKatakanaStemFilterName, func(args []byte) (Filter, error) {
		var cfg KatakanaStemConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "japanese_katakana_stem filter args", err)
		}
		min := 3
		if cfg.Min != nil {
			min = *cfg.Min
		}
		return &katakanaStemFilter{min: min}, nil
	})
}

// KatakanaStemConfig is the "args" object for japanese_katakana_stem. An
// all-katakana surface is eligible for stemming only when its length in
// Unicode scalars is strictly greater than Min; the default of 3 matches
// Lindera's own default.
type KatakanaStemConfig struct {
	Min *int `json:"min"`
}

// katakanaStemFilter strips a trailing long-sound mark (ー, U+30FC) from
// surfaces that are entirely katakana and longer than min runes, e.g. with
// min=3 "サーバー" -> "サーバ", while "キー" (2 runes) is untouched.
type katakanaStemFilter struct {
	min int
}

const longSoundMark = 'ー'

func (f *katakanaStemFilter) Name() string          { return JapaneseKatakanaStemFilterName }
func (f *katakanaStemFilter) RequiresDetails() bool { return false }

func (f *katakanaStemFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	for i, t := range tokens {
		runes := []rune(t.Text)
		if len(runes) <= f.min {
			continue
		}
		if runes[len(runes)-1] != longSoundMark {
			continue
		}
		if !allKatakana(runes) {
			continue
		}
		stripped := string(runes[:len(runes)-1])
		tokens[i].Text = stripped
		tokens[i].ByteEnd -= utf8.RuneLen(longSoundMark)
	}
	return tokens, nil
}

func allKatakana(runes []rune) bool {
	for _, r := range runes {
		if r == longSoundMark {
			continue
		}
		if !isKatakana(r) {
			return false
		}
	}
	return true
}

func isKatakana(r rune) bool {
	return (r >= 0x30A0 && r <= 0x30FF) || (r >= 0xFF66 && r <= 0xFF9D)
}

func (f *katakanaStemFilter) Clone() Filter {
	clone := *f
	return &clone
}
