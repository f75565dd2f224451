package tokenfilter

import (
	"encoding/json"
	"strings"

	"github.com/japaniel/tokanalyze/pkg/dictkind"
	"github.com/japaniel/tokanalyze/pkg/token"
)

const JapaneseCompoundWordFilterName = "japanese_compound_word"

// defaultCompoundTag is the POS emitted for a synthesized compound token
// when the configuration does not override it with new_tag.
const defaultCompoundTag = "複合語"

func init() {
	Register(JapaneseCompoundWordFilterName, func(args []byte) (Filter, error) {
		var raw compoundWordConfigJSON
		if err := json.Unmarshal(args, &raw); err != nil {
			return nil, token.WrapError(token.KindDeserialize, "japanese_compound_word filter args", err)
		}
		if _, err := dictkind.Parse(raw.Kind); err != nil {
			return nil, err
		}
		tag := defaultCompoundTag
		if raw.NewTag != "" {
			tag = raw.NewTag
		}
		return &compoundWordFilter{tags: raw.Tags, tag: tag}, nil
	})
}

type compoundWordConfigJSON struct {
	Kind   string   `json:"kind"`
	Tags   []string `json:"tags"`
	NewTag string   `json:"new_tag"`
}

// compoundWordFilter coalesces runs of adjacent tokens whose POS matches
// one of the configured tag patterns (each pattern's own field count
// determines how many detail fields are compared, so "名詞,数" and
// "名詞,接尾,助数詞" are both valid patterns side by side) into a single
// token.
type compoundWordFilter struct {
	tags []string
	tag  string
}

func (f *compoundWordFilter) Name() string          { return JapaneseCompoundWordFilterName }
func (f *compoundWordFilter) RequiresDetails() bool { return true }

func (f *compoundWordFilter) matches(details []string) bool {
	for _, tag := range f.tags {
		fields := strings.Split(tag, ",")
		joined := joinDetailFields(details, len(fields))
		if joined == tag {
			return true
		}
	}
	return false
}

// joinDetailFields joins the first n detail fields, padding missing ones
// with "*".
func joinDetailFields(details []string, n int) string {
	fields := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(details) {
			fields[i] = details[i]
		} else {
			fields[i] = "*"
		}
	}
	return strings.Join(fields, ",")
}

func (f *compoundWordFilter) Apply(tokens []token.Token) ([]token.Token, error) {
	var out []token.Token
	i := 0
	for i < len(tokens) {
		if tokens[i].Details != nil && f.matches(tokens[i].Details) {
			j := i + 1
			for j < len(tokens) && tokens[j].Details != nil && f.matches(tokens[j].Details) {
				j++
			}
			out = append(out, f.merge(tokens[i:j]))
			i = j
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out, nil
}

func (f *compoundWordFilter) merge(group []token.Token) token.Token {
	var text strings.Builder
	for _, t := range group {
		text.WriteString(t.Text)
	}
	return token.Token{
		Text:      text.String(),
		ByteStart: group[0].ByteStart,
		ByteEnd:   group[len(group)-1].ByteEnd,
		Details:   []string{f.tag, "*", "*", "*"},
	}
}

func (f *compoundWordFilter) Clone() Filter {
	clone := *f
	clone.tags = append([]string(nil), f.tags...)
	return &clone
}
