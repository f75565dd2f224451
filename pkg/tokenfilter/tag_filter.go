package tokenfilter

import (
	"encoding/json"
	"strings"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const (
	JapaneseKeepTagsFilterName = "japanese_keep_tags"
	JapaneseStopTagsFilterName = "japanese_stop_tags"
)

func init() {
	Register(JapaneseKeepTagsFilterName, func(args []byte) (Filter, error) {
		cfg, err := parseTagSetConfig(args)
		if err != nil {
			return nil, err
		}
		return &tagFilter{name: JapaneseKeepTagsFilterName, tags: cfg.Tags, keep: true}, nil
	})
	Register(JapaneseStopTagsFilterName, func(args []byte) (Filter, error) {
		cfg, err := parseTagSetConfig(args)
		if err != nil {
			return nil, err
		}
		return &tagFilter{name: JapaneseStopTagsFilterName, tags: cfg.Tags, keep: false}, nil
	})
}

// TagSetConfig is the "args" object shared by japanese_keep_tags and
// japanese_stop_tags: a set of POS prefixes, each 1-4 comma-joined
// fields.
type TagSetConfig struct {
	Tags map[string]struct{} `json:"-"`
}

type tagSetConfigJSON struct {
	Tags []string `json:"tags"`
}

func parseTagSetConfig(args []byte) (TagSetConfig, error) {
	var raw tagSetConfigJSON
	if err := json.Unmarshal(args, &raw); err != nil {
		return TagSetConfig{}, token.WrapError(token.KindDeserialize, "tag filter args", err)
	}
	tags := make(map[string]struct{}, len(raw.Tags))
	for _, t := range raw.Tags {
		tags[t] = struct{}{}
	}
	return TagSetConfig{Tags: tags}, nil
}

// tagPrefix joins the first 1 or 4 detail fields, per spec: when fewer
// than four fields are present, only the single first field is used
// (substituted by "*" if details themselves are shorter); otherwise the
// first four fields are joined, missing ones padded with "*". This
// two-branch rule is preserved verbatim rather than generalized to
// "always join what is available".
func tagPrefix(details []string) string {
	tagsLen := 1
	if len(details) >= 4 {
		tagsLen = 4
	}
	fields := []string{"*", "*", "*", "*"}
	for i := 0; i < tagsLen && i < len(details); i++ {
		fields[i] = details[i]
	}
	return strings.Join(fields[:tagsLen], ",")
}

// tagFilter implements both japanese_keep_tags and japanese_stop_tags,
// which are complements of the same membership test.
type tagFilter struct {
	name string
	tags map[string]struct{}
	keep bool
}

func (f *tagFilter) Name() string            { return f.name }
func (f *tagFilter) RequiresDetails() bool   { return true }

func (f *tagFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		if t.Details == nil {
			continue
		}
		_, member := f.tags[tagPrefix(t.Details)]
		if member == f.keep {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *tagFilter) Clone() Filter {
	clone := *f
	return &clone
}
