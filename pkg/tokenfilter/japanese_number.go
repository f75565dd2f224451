package tokenfilter

import (
	"encoding/json"
	"strings"

	"github.com/japaniel/tokanalyze/pkg/dictkind"
	"github.com/japaniel/tokanalyze/pkg/token"
)

const JapaneseNumberFilterName = "japanese_number"

func init() {
	Register(JapaneseNumberFilterName, func(args []byte) (Filter, error) {
		var cfg struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "japanese_number filter args", err)
		}
		kind, err := dictkind.Parse(cfg.Kind)
		if err != nil {
			return nil, err
		}
		return &japaneseNumberFilter{numberTag: kind.NumberTag()}, nil
	})
}

// japaneseNumberFilter rewrites the surface of number-tagged tokens (POS
// "名詞,数,*,*" for IPADIC, "名詞,数詞,*,*" for UniDic) from kanji/fullwidth
// numerals into plain Arabic digits.
type japaneseNumberFilter struct {
	numberTag string
}

func (f *japaneseNumberFilter) Name() string          { return JapaneseNumberFilterName }
func (f *japaneseNumberFilter) RequiresDetails() bool { return true }

func (f *japaneseNumberFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	for i, t := range tokens {
		if t.Details == nil {
			continue
		}
		if tagPrefix(t.Details) != f.numberTag {
			continue
		}
		tokens[i].Text = ToArabicNumerals(t.Text)
	}
	return tokens, nil
}

func (f *japaneseNumberFilter) Clone() Filter {
	clone := *f
	return &clone
}

// adjustDigits left-pads num with leading zeros so that its length
// matches that of base+digit, borrowing the leading bytes of base+digit
// itself as the padding rather than a plain zero-fill.
func adjustDigits(num, base, digit string) string {
	zeroStr := base + digit
	zeroLen := len(zeroStr) - len(num)
	if zeroLen < 0 {
		zeroLen = 0
	}
	return zeroStr[:zeroLen] + num
}

var magnitudeFollowers = map[rune][]rune{
	'十': {'百', '千', '万', '億', '兆', '京', '垓'},
	'拾': {'百', '千', '万', '億', '兆', '京', '垓'},
	'百': {'千', '万', '億', '兆', '京', '垓'},
	'千': {'万', '億', '兆', '京', '垓'},
	'万': {'億', '兆', '京', '垓'},
	'億': {'兆', '京', '垓'},
	'兆': {'京', '垓'},
	'京': {'垓'},
}

func runeIn(r rune, set []rune) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}

// ToArabicNumerals converts a Japanese numeral string (fullwidth digits,
// kanji digits, and kanji/daiji magnitude markers through 垓, 10^20) into
// a plain decimal string, following the classical positional-magnitude
// parse: scan right-to-left, filling in a digit buffer and widening the
// implied zero-template every time a larger magnitude marker is seen.
func ToArabicNumerals(s string) string {
	chars := []rune(s)
	rev := make([]rune, len(chars))
	for i, r := range chars {
		rev[len(chars)-1-i] = r
	}

	var numBuf, digit string

	peekAt := func(i int) (rune, bool) {
		if i+1 < len(rev) {
			return rev[i+1], true
		}
		return 0, false
	}

	leadingOneIfFollowedBy := func(i int, followers []rune) {
		p, ok := peekAt(i)
		if !ok || runeIn(p, followers) {
			numBuf = "1" + numBuf
		}
	}

	for i, c := range rev {
		switch c {
		case '０', '〇', '零':
			numBuf = "0" + numBuf
		case '１', '一', '壱':
			numBuf = "1" + numBuf
		case '２', '二', '弐':
			numBuf = "2" + numBuf
		case '３', '三', '参':
			numBuf = "3" + numBuf
		case '４', '四':
			numBuf = "4" + numBuf
		case '５', '五':
			numBuf = "5" + numBuf
		case '６', '六':
			numBuf = "6" + numBuf
		case '７', '七':
			numBuf = "7" + numBuf
		case '８', '八':
			numBuf = "8" + numBuf
		case '９', '九':
			numBuf = "9" + numBuf
		case '十', '拾':
			numBuf = adjustDigits(numBuf, "0", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['十'])
		case '百':
			numBuf = adjustDigits(numBuf, "00", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['百'])
		case '千':
			numBuf = adjustDigits(numBuf, "000", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['千'])
		case '万':
			digit = "0000"
			numBuf = adjustDigits(numBuf, "", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['万'])
		case '億':
			digit = strings.Repeat("0", 8)
			numBuf = adjustDigits(numBuf, "", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['億'])
		case '兆':
			digit = strings.Repeat("0", 12)
			numBuf = adjustDigits(numBuf, "", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['兆'])
		case '京':
			digit = strings.Repeat("0", 16)
			numBuf = adjustDigits(numBuf, "", digit)
			leadingOneIfFollowedBy(i, magnitudeFollowers['京'])
		case '垓':
			digit = strings.Repeat("0", 20)
			numBuf = adjustDigits(numBuf, "", digit)
			if _, ok := peekAt(i); !ok {
				numBuf = "1" + numBuf
			}
		default:
			continue
		}
	}

	return numBuf
}
