package analysis

import (
	"encoding/json"
	"testing"

	"github.com/japaniel/tokanalyze/pkg/tokenize"
)

func TestModeConfigUnmarshalsBareString(t *testing.T) {
	var m ModeConfig
	if err := json.Unmarshal([]byte(`"decompose"`), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.Mode != tokenize.ModeDecompose {
		t.Fatalf("expected ModeDecompose, got %q", m.Mode)
	}
}

func TestModeConfigUnmarshalsDecomposeObject(t *testing.T) {
	var m ModeConfig
	data := []byte(`{"decompose":{"kanji_penalty_length_threshold":2}}`)
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.Mode != tokenize.ModeDecompose {
		t.Fatalf("expected ModeDecompose, got %q", m.Mode)
	}
	if m.Options.KanjiPenaltyLengthThreshold != 2 {
		t.Fatalf("expected threshold 2, got %d", m.Options.KanjiPenaltyLengthThreshold)
	}
}

func TestModeConfigUnmarshalRejectsUnknownString(t *testing.T) {
	var m ModeConfig
	if err := json.Unmarshal([]byte(`"fast"`), &m); err == nil {
		t.Fatal("expected an error for an unrecognized bare mode string")
	}
}

func TestModeConfigMarshalRoundTripsBareMode(t *testing.T) {
	m := ModeConfig{Mode: tokenize.ModeNormal}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"normal"` {
		t.Fatalf("expected bare string \"normal\", got %s", data)
	}
}

func TestModeConfigMarshalRoundTripsDecomposeObject(t *testing.T) {
	m := ModeConfig{Mode: tokenize.ModeDecompose, Options: tokenize.DecomposeOptions{KanjiPenaltyLengthThreshold: 3}}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var roundTripped ModeConfig
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("Unmarshal of marshaled data: %v", err)
	}
	if roundTripped.Mode != m.Mode || roundTripped.Options.KanjiPenaltyLengthThreshold != m.Options.KanjiPenaltyLengthThreshold {
		t.Fatalf("round trip mismatch: got %+v, want %+v", roundTripped, m)
	}
}

func TestParseConfigRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseConfig([]byte(`{not json`)); err == nil {
		t.Fatal("expected an error for malformed configuration JSON")
	}
}

func TestParseConfigParsesFilterOrder(t *testing.T) {
	data := []byte(`{
		"character_filters": [
			{"kind": "unicode_normalize", "args": {"kind": "nfkc"}},
			{"kind": "mapping", "args": {"mapping": {"a": "b"}}}
		],
		"tokenizer": {"dictionary": {"kind": "ipadic"}, "mode": "normal"},
		"token_filters": [
			{"kind": "japanese_stop_tags", "args": {"tags": ["助詞"]}}
		]
	}`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if len(cfg.CharacterFilters) != 2 {
		t.Fatalf("expected 2 character filters, got %d", len(cfg.CharacterFilters))
	}
	if cfg.CharacterFilters[0].Kind != "unicode_normalize" || cfg.CharacterFilters[1].Kind != "mapping" {
		t.Fatalf("expected filter order preserved, got %+v", cfg.CharacterFilters)
	}
	if cfg.Tokenizer.Dictionary.Kind != "ipadic" {
		t.Fatalf("expected dictionary kind ipadic, got %q", cfg.Tokenizer.Dictionary.Kind)
	}
}
