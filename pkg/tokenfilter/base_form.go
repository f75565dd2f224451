package tokenfilter

import (
	"github.com/japaniel/tokanalyze/pkg/token"
)

const JapaneseBaseFormFilterName = "japanese_base_form"

func init() {
	Register(JapaneseBaseFormFilterName, func(args []byte) (Filter, error) {
		return &baseFormFilter{}, nil
	})
}

// baseFormFilter replaces a token's surface with the dictionary base
// form (detail index 6, the IPADIC lemma field), skipped when the base
// form is "*" (no conjugation) or details are absent.
type baseFormFilter struct{}

func (f *baseFormFilter) Name() string          { return JapaneseBaseFormFilterName }
func (f *baseFormFilter) RequiresDetails() bool { return true }

func (f *baseFormFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	const baseFormIndex = 6
	for i, t := range tokens {
		if t.Details == nil || len(t.Details) <= baseFormIndex {
			continue
		}
		base := t.Details[baseFormIndex]
		if base == "" || base == "*" {
			continue
		}
		tokens[i].Text = base
	}
	return tokens, nil
}

func (f *baseFormFilter) Clone() Filter {
	clone := *f
	return &clone
}
