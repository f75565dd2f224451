package tokenfilter

import (
	"github.com/japaniel/tokanalyze/pkg/token"
)

const (
	KoreanKeepTagsFilterName = "korean_keep_tags"
	KoreanStopTagsFilterName = "korean_stop_tags"
)

func init() {
	Register(KoreanKeepTagsFilterName, func(args []byte) (Filter, error) {
		cfg, err := parseTagSetConfig(args)
		if err != nil {
			return nil, err
		}
		return &koreanTagFilter{name: KoreanKeepTagsFilterName, tags: cfg.Tags, keep: true}, nil
	})
	Register(KoreanStopTagsFilterName, func(args []byte) (Filter, error) {
		cfg, err := parseTagSetConfig(args)
		if err != nil {
			return nil, err
		}
		return &koreanTagFilter{name: KoreanStopTagsFilterName, tags: cfg.Tags, keep: false}, nil
	})
}

// koreanTagFilter implements korean_keep_tags/korean_stop_tags. Unlike
// the Japanese tag filters, Korean compares only the single first detail
// field (the POS tag, e.g. "NNG"), never a joined 1-4 field prefix.
type koreanTagFilter struct {
	name string
	tags map[string]struct{}
	keep bool
}

func (f *koreanTagFilter) Name() string          { return f.name }
func (f *koreanTagFilter) RequiresDetails() bool { return true }

func (f *koreanTagFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		if t.Details == nil {
			continue
		}
		_, member := f.tags[t.Details[0]]
		if member == f.keep {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *koreanTagFilter) Clone() Filter {
	clone := *f
	return &clone
}
