package tokenfilter

import (
	"strings"
	"testing"

	"github.com/japaniel/tokanalyze/pkg/token"
)

func TestLowercaseFilter(t *testing.T) {
	f := &caseFilter{name: LowercaseFilterName, convert: strings.ToLower}
	out, err := f.Apply([]token.Token{{Text: "HELLO"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "hello" {
		t.Fatalf("expected lowercase, got %q", out[0].Text)
	}
}

func TestUppercaseFilter(t *testing.T) {
	f := &caseFilter{name: UppercaseFilterName, convert: strings.ToUpper}
	out, err := f.Apply([]token.Token{{Text: "straße"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != strings.ToUpper("straße") {
		t.Fatalf("expected strings.ToUpper of the surface, got %q", out[0].Text)
	}
}
