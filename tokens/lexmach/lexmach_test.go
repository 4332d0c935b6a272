package lexmach

import (
	"reflect"
	"testing"

	"github.com/npillmayer/classes/tokens"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"",
	"a",
	"a b c",
	"  btn \t btn-primary\n",
	"x\r\ny\fz",
	"ünïcödé ok",
}

var tokenCounts = []int{0, 1, 3, 2, 3, 2}

func TestLMSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes.tokens")
	defer teardown()
	//
	sp, err := NewSplitter()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		toks, err := sp.Scan(input)
		if err != nil {
			t.Error(err)
		}
		for _, tok := range toks {
			t.Logf(" %4d | %15s | @%5d", i, tok.Lexeme, tok.Span.From())
			if tok.Span.Of(input) != tok.Lexeme {
				t.Errorf("span %s of token %q does not match input", tok.Span, tok.Lexeme)
			}
		}
		if len(toks) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(toks))
		}
		got, want := sp.Split(input), tokens.WhitespaceSplitter.Split(input)
		if len(want) > 0 && !reflect.DeepEqual(got, want) {
			t.Errorf("Expected lexmachine splitter to agree with whitespace splitter for #%d", i)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes.tokens")
	defer teardown()
	//
	sp, err := NewSplitter()
	if err != nil {
		t.Fatal(err)
	}
	toks, _ := sp.Scan("btn  btn-lg")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(toks))
	}
	if toks[0].Span != (tokens.Span{0, 3}) || toks[1].Span != (tokens.Span{5, 11}) {
		t.Errorf("unexpected spans %s and %s", toks[0].Span, toks[1].Span)
	}
}

func TestLMNormalizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes.tokens")
	defer teardown()
	//
	sp, err := NewSplitter()
	if err != nil {
		t.Fatal(err)
	}
	n := tokens.NewNormalizer(tokens.WithSplitter(sp))
	S := n.Normalize("a b", []string{"c  a", "\x00d"})
	if S.String() != "a b c d" {
		t.Errorf("expected [a b c d], got [%s]", S)
	}
}
