package tokenfilter

import (
	"testing"

	"github.com/japaniel/tokanalyze/pkg/token"
)

func TestJapaneseReadingFormFilter(t *testing.T) {
	f := &readingFormFilter{name: JapaneseReadingFormFilterName, index: 7}
	tokens := []token.Token{
		{Text: "行っ", Details: []string{"動詞", "自立", "*", "*", "五段・カ行促音便", "連用タ接続", "行く", "イッ", "イッ"}},
	}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "イッ" {
		t.Fatalf("expected surface to be replaced with the reading, got %q", out[0].Text)
	}
}

func TestJapaneseReadingFormSkipsDetaillessTokens(t *testing.T) {
	f := &readingFormFilter{name: JapaneseReadingFormFilterName, index: 7}
	out, err := f.Apply([]token.Token{{Text: "unchanged"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "unchanged" {
		t.Fatalf("tokens without details must pass through unchanged, got %q", out[0].Text)
	}
}

func TestKoreanReadingFormUsesFieldThree(t *testing.T) {
	f := &readingFormFilter{name: KoreanReadingFormFilterName, index: 3}
	tokens := []token.Token{{Text: "사과", Details: []string{"NNG", "*", "*", "사과"}}}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "사과" {
		t.Fatalf("expected detail field 3, got %q", out[0].Text)
	}
}

func TestReadingFormSkipsWildcardReading(t *testing.T) {
	f := &readingFormFilter{name: JapaneseReadingFormFilterName, index: 7}
	tokens := []token.Token{{Text: "犬", Details: []string{"名詞", "一般", "*", "*", "*", "*", "犬", "*"}}}
	out, err := f.Apply(tokens)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0].Text != "犬" {
		t.Fatalf("a \"*\" reading field must not overwrite the surface, got %q", out[0].Text)
	}
}
