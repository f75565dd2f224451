package analysis

import (
	"encoding/json"

	"github.com/japaniel/tokanalyze/pkg/dictkind"
	"github.com/japaniel/tokanalyze/pkg/token"
	"github.com/japaniel/tokanalyze/pkg/tokenize"
)

// Config is the top-level JSON configuration document: an ordered list
// of character filters, a tokenizer, and an ordered list of token
// filters. Filter ordering is significant and preserved exactly as
// written.
type Config struct {
	CharacterFilters []FilterConfig  `json:"character_filters"`
	Tokenizer        TokenizerConfig `json:"tokenizer"`
	TokenFilters     []FilterConfig  `json:"token_filters"`
}

// FilterConfig is one entry of character_filters[] or token_filters[]:
// a kind discriminator plus an opaque args object forwarded verbatim to
// that kind's constructor.
type FilterConfig struct {
	Kind string          `json:"kind"`
	Args json.RawMessage `json:"args"`
}

// TokenizerConfig describes the external segmenter to construct.
type TokenizerConfig struct {
	Dictionary     DictionaryConfig  `json:"dictionary"`
	UserDictionary *DictionaryConfig `json:"user_dictionary,omitempty"`
	Mode           ModeConfig        `json:"mode"`
}

// DictionaryConfig names a dictionary kind and, for user dictionaries,
// the CSV file to load it from.
type DictionaryConfig struct {
	Kind dictkind.Kind `json:"kind"`
	Path string        `json:"path,omitempty"`
}

// ModeConfig accepts either the bare string "normal"/"decompose" or the
// object form {"decompose": {"kanji_penalty_length_threshold": N}}.
type ModeConfig struct {
	Mode    tokenize.Mode
	Options tokenize.DecomposeOptions
}

func (m *ModeConfig) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		mode, err := tokenize.ParseMode(asString)
		if err != nil {
			return token.WrapError(token.KindDeserialize, "tokenizer mode", err)
		}
		m.Mode = mode
		return nil
	}

	var asObject struct {
		Decompose struct {
			KanjiPenaltyLengthThreshold int `json:"kanji_penalty_length_threshold"`
		} `json:"decompose"`
	}
	if err := json.Unmarshal(data, &asObject); err != nil {
		return token.WrapError(token.KindDeserialize, "tokenizer mode", err)
	}
	m.Mode = tokenize.ModeDecompose
	m.Options = tokenize.DecomposeOptions{
		KanjiPenaltyLengthThreshold: asObject.Decompose.KanjiPenaltyLengthThreshold,
	}
	return nil
}

func (m ModeConfig) MarshalJSON() ([]byte, error) {
	if m.Mode != tokenize.ModeDecompose || m.Options.KanjiPenaltyLengthThreshold == 0 {
		return json.Marshal(string(m.Mode))
	}
	return json.Marshal(struct {
		Decompose struct {
			KanjiPenaltyLengthThreshold int `json:"kanji_penalty_length_threshold"`
		} `json:"decompose"`
	}{
		Decompose: struct {
			KanjiPenaltyLengthThreshold int `json:"kanji_penalty_length_threshold"`
		}{KanjiPenaltyLengthThreshold: m.Options.KanjiPenaltyLengthThreshold},
	})
}

// ParseConfig unmarshals a configuration document, surfacing malformed
// JSON as a deserialize error rather than a raw encoding/json error.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, token.WrapError(token.KindDeserialize, "analyzer configuration", err)
	}
	return &cfg, nil
}
