package tokenfilter

import (
	"testing"

	"github.com/japaniel/tokanalyze/pkg/token"
)

func TestBaseFormFilterReplacesConjugatedSurface(t *testing.T) {
	f := &baseFormFilter{}
	tokens := []token.Token{
		{Text: "行っ", Details: []string{"動詞", "自立", "*", "*", "五段・カ行促音便", "連用タ接続", "行く"}},
	}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "行く" {
		t.Fatalf("expected base form 行く, got %q", out[0].Text)
	}
}

func TestBaseFormFilterSkipsWildcard(t *testing.T) {
	f := &baseFormFilter{}
	tokens := []token.Token{
		{Text: "猫", Details: []string{"名詞", "一般", "*", "*", "*", "*", "*"}},
	}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "猫" {
		t.Fatalf("a \"*\" base form must not overwrite the surface, got %q", out[0].Text)
	}
}
