// Package dictkind enumerates the dictionary kinds recognized by the
// tokenizer config and by dictionary-specific token filters
// (japanese_number, whose number tag differs between IPADIC and UniDic,
// and japanese_compound_word, which validates its kind argument).
package dictkind

import "github.com/japaniel/tokanalyze/pkg/token"

// Kind identifies a dictionary implementation.
type Kind string

const (
	IPADIC   Kind = "ipadic"
	UniDic   Kind = "unidic"
	KoDic    Kind = "ko-dic"
	CCCedict Kind = "cc-cedict"
	User     Kind = "user"
)

// Parse validates a JSON "kind" string, returning a deserialize error for
// anything unrecognized.
func Parse(s string) (Kind, error) {
	switch Kind(s) {
	case IPADIC, UniDic, KoDic, CCCedict, User:
		return Kind(s), nil
	default:
		return "", token.NewError(token.KindDeserialize, "unknown dictionary kind "+s)
	}
}

// NumberTag returns the 1-4 field POS prefix the japanese_number filter
// matches against for this dictionary kind, or "" if the kind carries no
// numeral POS tag of its own.
func (k Kind) NumberTag() string {
	switch k {
	case IPADIC:
		return "名詞,数,*,*"
	case UniDic:
		return "名詞,数詞,*,*"
	default:
		return ""
	}
}
