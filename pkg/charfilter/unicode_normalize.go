package charfilter

import (
	"encoding/json"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const UnicodeNormalizeFilterName = "unicode_normalize"

func init() {
	Register(UnicodeNormalizeFilterName, func(args []byte) (Filter, error) {
		var cfg UnicodeNormalizeConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "unicode_normalize filter args", err)
		}
		return NewUnicodeNormalizeFilter(cfg)
	})
}

// UnicodeNormalizeConfig is the "args" object for the unicode_normalize
// character filter.
type UnicodeNormalizeConfig struct {
	Kind string `json:"kind"` // "nfc" | "nfd" | "nfkc" | "nfkd"
}

// UnicodeNormalizeFilter applies a Unicode normalization form to each
// grapheme cluster of the input, emitting an offset event at the
// boundary of every cluster whose normalized byte length differs from
// its input length.
type UnicodeNormalizeFilter struct {
	cfg  UnicodeNormalizeConfig
	form norm.Form
}

func NewUnicodeNormalizeFilter(cfg UnicodeNormalizeConfig) (*UnicodeNormalizeFilter, error) {
	var form norm.Form
	switch cfg.Kind {
	case "nfc":
		form = norm.NFC
	case "nfd":
		form = norm.NFD
	case "nfkc":
		form = norm.NFKC
	case "nfkd":
		form = norm.NFKD
	default:
		return nil, token.NewError(token.KindArgs, "unknown unicode_normalize kind "+cfg.Kind)
	}
	return &UnicodeNormalizeFilter{cfg: cfg, form: form}, nil
}

func (f *UnicodeNormalizeFilter) Name() string { return UnicodeNormalizeFilterName }

func (f *UnicodeNormalizeFilter) Apply(text string) (string, []int, []int64, error) {
	var out []byte
	var offsets []int
	var diffs []int64

	outPos := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		normalized := f.form.String(cluster)
		out = append(out, normalized...)

		diffLen := len(cluster) - len(normalized)
		if diffLen != 0 {
			prevDiff := int64(0)
			if n := len(diffs); n > 0 {
				prevDiff = diffs[n-1]
			}
			offset := outPos + len(normalized)
			diff := prevDiff + int64(diffLen)
			offsets, diffs = AddOffsetDiff(offsets, diffs, offset, diff)
		}
		outPos += len(normalized)
	}

	return string(out), offsets, diffs, nil
}

func (f *UnicodeNormalizeFilter) Clone() Filter {
	clone := *f
	return &clone
}
