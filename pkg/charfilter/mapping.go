package charfilter

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/japaniel/tokanalyze/pkg/token"
)

const MappingFilterName = "mapping"

func init() {
	Register(MappingFilterName, func(args []byte) (Filter, error) {
		var cfg MappingConfig
		if err := json.Unmarshal(args, &cfg); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "mapping filter args", err)
		}
		return NewMappingFilter(cfg), nil
	})
}

// MappingConfig is the "args" object for the mapping character filter: a
// literal key -> value substitution table.
type MappingConfig struct {
	Mapping map[string]string `json:"mapping"`
}

// MappingFilter performs longest-match literal substitution, ties broken
// by longest key, using the same per-match offset accounting as the
// regex filter.
type MappingFilter struct {
	cfg  MappingConfig
	keys []string // sorted longest-first, for longest-match-wins
}

func NewMappingFilter(cfg MappingConfig) *MappingFilter {
	keys := make([]string, 0, len(cfg.Mapping))
	for k := range cfg.Mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &MappingFilter{cfg: cfg, keys: keys}
}

func (f *MappingFilter) Name() string { return MappingFilterName }

func (f *MappingFilter) Apply(text string) (string, []int, []int64, error) {
	if len(f.keys) == 0 {
		return text, nil, nil, nil
	}

	var out strings.Builder
	var offsets []int
	var diffs []int64

	outPos := 0
	for pos := 0; pos < len(text); {
		matched := false
		for _, key := range f.keys {
			if strings.HasPrefix(text[pos:], key) {
				replacement := f.cfg.Mapping[key]
				offsets, diffs = emitReplacementOffsets(offsets, diffs, pos, len(key), len(replacement))
				out.WriteString(replacement)
				outPos += len(replacement)
				pos += len(key)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text[pos:])
			out.WriteString(text[pos : pos+size])
			outPos += size
			pos += size
		}
	}

	return out.String(), offsets, diffs, nil
}

func (f *MappingFilter) Clone() Filter {
	clone := *f
	return &clone
}
