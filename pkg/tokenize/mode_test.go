package tokenize

import (
	"testing"

	"github.com/ikawaha/kagome/v2/tokenizer"
)

func TestParseModeDefaultsToNormal(t *testing.T) {
	m, err := ParseMode("")
	if err != nil {
		t.Fatalf("ParseMode(\"\"): %v", err)
	}
	if m != ModeNormal {
		t.Fatalf("expected ModeNormal for an empty string, got %q", m)
	}
}

func TestParseModeRejectsUnknown(t *testing.T) {
	if _, err := ParseMode("fast"); err == nil {
		t.Fatal("expected an error for an unrecognized mode")
	}
}

func TestKagomeModeNormal(t *testing.T) {
	if got := ModeNormal.kagomeMode(DecomposeOptions{}); got != tokenizer.Normal {
		t.Fatalf("expected tokenizer.Normal, got %v", got)
	}
}

func TestKagomeModeDecomposeWithoutThreshold(t *testing.T) {
	if got := ModeDecompose.kagomeMode(DecomposeOptions{}); got != tokenizer.Search {
		t.Fatalf("expected tokenizer.Search when no threshold is configured, got %v", got)
	}
}

func TestKagomeModeDecomposeWithThreshold(t *testing.T) {
	opts := DecomposeOptions{KanjiPenaltyLengthThreshold: 2}
	if got := ModeDecompose.kagomeMode(opts); got != tokenizer.Extended {
		t.Fatalf("expected tokenizer.Extended when a threshold is configured, got %v", got)
	}
}
