package tokenize

import (
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japaniel/tokanalyze/pkg/dictkind"
	"github.com/japaniel/tokanalyze/pkg/token"
)

// KagomeSegmenter wraps kagome/v2's lattice tokenizer, the same library
// and construction idiom (ipa.Dict()/tokenizer.New with OmitBosEos) the
// package started from, generalized to cover both of kagome's bundled
// dictionaries and the decompose mode.
type KagomeSegmenter struct {
	t    *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
	kind dictkind.Kind
}

// NewKagomeSegmenter builds a segmenter for the given dictionary kind.
// ko-dic, cc-cedict and user dictionaries are not bundled with kagome and
// are reported as KindDictionaryNotFound rather than silently falling
// back to a different dictionary. userDictPath, if non-empty, is loaded
// as a kagome user dictionary CSV alongside the bundled one.
func NewKagomeSegmenter(kind dictkind.Kind, mode Mode, opts DecomposeOptions, userDictPath string) (*KagomeSegmenter, error) {
	tokOpts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if userDictPath != "" {
		udic, err := tokenizer.NewUserDic(userDictPath)
		if err != nil {
			return nil, token.WrapError(token.KindDictionaryLoad, "loading user dictionary "+userDictPath, err)
		}
		tokOpts = append(tokOpts, tokenizer.UserDict(udic))
	}

	var (
		t   *tokenizer.Tokenizer
		err error
	)
	switch kind {
	case dictkind.IPADIC:
		t, err = tokenizer.New(ipa.Dict(), tokOpts...)
	case dictkind.UniDic:
		t, err = tokenizer.New(uni.Dict(), tokOpts...)
	default:
		return nil, token.NewError(token.KindDictionaryNotFound, "no bundled dictionary for kind "+string(kind))
	}
	if err != nil {
		return nil, token.WrapError(token.KindDictionaryLoad, "constructing kagome tokenizer", err)
	}

	return &KagomeSegmenter{t: t, mode: mode.kagomeMode(opts), kind: kind}, nil
}

func (s *KagomeSegmenter) Tokenize(text string) ([]token.Token, error) {
	return s.tokenize(text, false)
}

func (s *KagomeSegmenter) TokenizeWithDetails(text string) ([]token.Token, error) {
	return s.tokenize(text, true)
}

func (s *KagomeSegmenter) tokenize(text string, withDetails bool) ([]token.Token, error) {
	byteOffsets := runeByteOffsets(text)
	kagomeTokens := s.t.Analyze(text, s.mode)

	out := make([]token.Token, 0, len(kagomeTokens))
	for _, kt := range kagomeTokens {
		if kt.Class == tokenizer.DUMMY {
			continue
		}

		tk := token.Token{
			Text:      kt.Surface,
			ByteStart: byteOffsets[kt.Start],
			ByteEnd:   byteOffsets[kt.End],
		}
		if withDetails {
			tk.Details = kt.Features()
		}
		out = append(out, tk)
	}
	return out, nil
}

func (s *KagomeSegmenter) Clone() Segmenter {
	return &KagomeSegmenter{t: s.t, mode: s.mode, kind: s.kind}
}

// runeByteOffsets returns, for each rune index 0..len(runes) in text
// (inclusive), the byte offset at which that rune begins; index
// len(runes) is the byte length of text. kagome positions tokens by rune
// index, while the rest of the pipeline works in byte offsets.
func runeByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	byteLen := 0
	for _, r := range text {
		offsets = append(offsets, byteLen)
		byteLen += runeByteLen(r)
	}
	offsets = append(offsets, byteLen)
	return offsets
}

func runeByteLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
