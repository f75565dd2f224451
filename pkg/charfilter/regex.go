package charfilter

import (
	"encoding/json"
	"regexp"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const RegexFilterName = "regex"

func init() {
	Register(RegexFilterName, func(args []byte) (Filter, error) {
		var cfg RegexConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "regex filter args", err)
		}
		return NewRegexFilter(cfg)
	})
}

// RegexConfig is the "args" object for the regex character filter.
type RegexConfig struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// RegexFilter applies replace-all semantics with a compiled pattern: a
// shorter replacement emits one offset-map event at its trailing edge,
// a longer one emits one event per inserted byte so each maps back to
// the same source position.
type RegexFilter struct {
	cfg RegexConfig
	re  *regexp.Regexp
}

func NewRegexFilter(cfg RegexConfig) (*RegexFilter, error) {
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, token.WrapError(token.KindArgs, "invalid regex pattern", err)
	}
	return &RegexFilter{cfg: cfg, re: re}, nil
}

func (f *RegexFilter) Name() string { return RegexFilterName }

func (f *RegexFilter) Apply(text string) (string, []int, []int64, error) {
	var offsets []int
	var diffs []int64

	for _, loc := range f.re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		offsets, diffs = emitReplacementOffsets(offsets, diffs, start, end-start, len(f.cfg.Replacement))
	}

	newText := f.re.ReplaceAllString(text, f.cfg.Replacement)
	return newText, offsets, diffs, nil
}

func (f *RegexFilter) Clone() Filter {
	clone := *f
	// regexp.Regexp is safe for concurrent read-only use and carries no
	// mutable state once compiled, so sharing the compiled pattern
	// across clones is safe; re-compiling would only waste cycles.
	return &clone
}
