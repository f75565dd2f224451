package tokenfilter

import (
	"strings"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const (
	LowercaseFilterName = "lowercase"
	UppercaseFilterName = "uppercase"
)

func init() {
	Register(LowercaseFilterName, func(args []byte) (Filter, error) {
		return &caseFilter{name: LowercaseFilterName, convert: strings.ToLower}, nil
	})
	Register(UppercaseFilterName, func(args []byte) (Filter, error) {
		return &caseFilter{name: UppercaseFilterName, convert: strings.ToUpper}, nil
	})
}

// caseFilter implements lowercase and uppercase, which take no
// arguments and differ only in which Unicode case mapping they apply.
type caseFilter struct {
	name    string
	convert func(string) string
}

func (f *caseFilter) Name() string          { return f.name }
func (f *caseFilter) RequiresDetails() bool { return false }

func (f *caseFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	for i := range tokens {
		tokens[i].Text = f.convert(tokens[i].Text)
	}
	return tokens, nil
}

func (f *caseFilter) Clone() Filter {
	clone := *f
	return &clone
}
