package tokenfilter

import (
	"testing"

	"github.com/japaniel/tokanalyze/pkg/token"
)

func TestCompoundWordMergesMatchingRun(t *testing.T) {
	f := &compoundWordFilter{
		tags: []string{"名詞,数", "名詞,接尾,助数詞"},
		tag:  defaultCompoundTag,
	}
	tokens := []token.Token{
		{Text: "10", ByteStart: 0, ByteEnd: 2, Details: []string{"名詞", "数", "*", "*"}},
		{Text: "ガロン", ByteStart: 2, ByteEnd: 11, Details: []string{"名詞", "接尾", "助数詞", "*"}},
		{Text: "の", ByteStart: 11, ByteEnd: 14, Details: []string{"助詞", "連体化", "*", "*"}},
	}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected the first two tokens to merge into one, got %+v", out)
	}
	if out[0].Text != "10ガロン" {
		t.Fatalf("expected merged surface \"10ガロン\", got %q", out[0].Text)
	}
	if out[0].ByteStart != 0 || out[0].ByteEnd != 11 {
		t.Fatalf("expected byte range [0,11), got [%d,%d)", out[0].ByteStart, out[0].ByteEnd)
	}
	if out[0].Details[0] != defaultCompoundTag {
		t.Fatalf("expected primary tag %q, got %q", defaultCompoundTag, out[0].Details[0])
	}
	if out[1].Text != "の" {
		t.Fatalf("expected the trailing particle untouched, got %+v", out[1])
	}
}

func TestCompoundWordNewTagOverride(t *testing.T) {
	f := &compoundWordFilter{tags: []string{"名詞,数"}, tag: "数量"}
	tokens := []token.Token{
		{Text: "五", ByteStart: 0, ByteEnd: 3, Details: []string{"名詞", "数", "*", "*"}},
	}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Details[0] != "数量" {
		t.Fatalf("expected overridden tag \"数量\", got %q", out[0].Details[0])
	}
}

func TestCompoundWordNoMatchLeavesTokensAlone(t *testing.T) {
	f := &compoundWordFilter{tags: []string{"名詞,数"}, tag: defaultCompoundTag}
	tokens := []token.Token{
		{Text: "走る", Details: []string{"動詞", "自立", "*", "*"}},
	}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(out) != 1 || out[0].Text != "走る" {
		t.Fatalf("expected no merge when no token matches, got %+v", out)
	}
}
