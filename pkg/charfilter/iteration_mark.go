package charfilter

import (
	"encoding/json"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const JapaneseIterationMarkFilterName = "japanese_iteration_mark"

func init() {
	Register(JapaneseIterationMarkFilterName, func(args []byte) (Filter, error) {
		var cfg JapaneseIterationMarkConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "japanese_iteration_mark filter args", err)
		}
		return NewJapaneseIterationMarkFilter(cfg), nil
	})
}

// JapaneseIterationMarkConfig is the "args" object for the
// japanese_iteration_mark character filter.
type JapaneseIterationMarkConfig struct {
	NormalizeKanji bool `json:"normalize_kanji"`
	NormalizeKana  bool `json:"normalize_kana"`
}

// JapaneseIterationMarkFilter expands the Japanese iteration marks 々, ゝ,
// ゞ, ヽ, ヾ by duplicating the preceding character, with dakuten handling
// for the voiced kana marks ゞ/ヾ.
type JapaneseIterationMarkFilter struct {
	cfg JapaneseIterationMarkConfig
}

func NewJapaneseIterationMarkFilter(cfg JapaneseIterationMarkConfig) *JapaneseIterationMarkFilter {
	return &JapaneseIterationMarkFilter{cfg: cfg}
}

func (f *JapaneseIterationMarkFilter) Name() string { return JapaneseIterationMarkFilterName }

// isKanji reports whether r is a CJK ideograph.
func isKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

// voicedKana maps an unvoiced hiragana/katakana rune to its dakuten
// (voiced) counterpart, where one exists.
var voicedKana = map[rune]rune{
	'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
	'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
	'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
	'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
	'カ': 'ガ', 'キ': 'ギ', 'ク': 'グ', 'ケ': 'ゲ', 'コ': 'ゴ',
	'サ': 'ザ', 'シ': 'ジ', 'ス': 'ズ', 'セ': 'ゼ', 'ソ': 'ゾ',
	'タ': 'ダ', 'チ': 'ヂ', 'ツ': 'ヅ', 'テ': 'デ', 'ト': 'ド',
	'ハ': 'バ', 'ヒ': 'ビ', 'フ': 'ブ', 'ヘ': 'ベ', 'ホ': 'ボ',
}

func (f *JapaneseIterationMarkFilter) Apply(text string) (string, []int, []int64, error) {
	runes := []rune(text)
	var out []rune
	var offsets []int
	var diffs []int64

	outByteLen := 0
	var prev rune
	prevValid := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		var expansion rune
		expand := false

		switch r {
		case '々':
			if f.cfg.NormalizeKanji && prevValid && isKanji(prev) {
				expansion, expand = prev, true
			}
		case 'ゝ':
			if f.cfg.NormalizeKana && prevValid {
				expansion, expand = prev, true
			}
		case 'ヽ':
			if f.cfg.NormalizeKana && prevValid {
				expansion, expand = prev, true
			}
		case 'ゞ':
			if f.cfg.NormalizeKana && prevValid {
				if v, ok := voicedKana[prev]; ok {
					expansion, expand = v, true
				} else {
					expansion, expand = prev, true
				}
			}
		case 'ヾ':
			if f.cfg.NormalizeKana && prevValid {
				if v, ok := voicedKana[prev]; ok {
					expansion, expand = v, true
				} else {
					expansion, expand = prev, true
				}
			}
		}

		if expand {
			markLen := len(string(r))
			expLen := len(string(expansion))

			out = append(out, expansion)
			if diffLen := markLen - expLen; diffLen != 0 {
				prevDiff := int64(0)
				if n := len(diffs); n > 0 {
					prevDiff = diffs[n-1]
				}
				offset := outByteLen + expLen
				diff := prevDiff + int64(diffLen)
				offsets, diffs = AddOffsetDiff(offsets, diffs, offset, diff)
			}

			outByteLen += expLen
			prev = expansion
			prevValid = true
		} else {
			out = append(out, r)
			outByteLen += len(string(r))
			prev = r
			prevValid = true
		}
	}

	return string(out), offsets, diffs, nil
}

func (f *JapaneseIterationMarkFilter) Clone() Filter {
	clone := *f
	return &clone
}
