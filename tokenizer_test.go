package isr

import (
	"io"
	"strings"
	"testing"
)

func collectTokens(t *testing.T, text string, stemmer Stemmer) []string {
	t.Helper()
	tok := NewTokenizer(strings.NewReader(text), stemmer)

	var out []string
	for {
		word, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() returned error: %v", err)
		}
		out = append(out, string(word))
	}
	return out
}

func TestTokenizer_BasicSplit(t *testing.T) {
	got := collectTokens(t, "hello world foo", IdentityStemmer{})
	want := []string{"hello", "world", "foo"}
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizer_DropsInteriorNoise(t *testing.T) {
	got := collectTokens(t, "don't self-service a$b", IdentityStemmer{})
	want := []string{"dont", "selfservice", "ab"}
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizer_SkipsLeadingSeparators(t *testing.T) {
	got := collectTokens(t, "   \n\t--$'hello", IdentityStemmer{})
	want := []string{"hello"}
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizer_PunctuationTerminatesAndIsSkipped(t *testing.T) {
	got := collectTokens(t, "hello, world!", IdentityStemmer{})
	want := []string{"hello", "world"}
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizer_EmptyStream(t *testing.T) {
	got := collectTokens(t, "", IdentityStemmer{})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestTokenizer_AppliesStemmer(t *testing.T) {
	got := collectTokens(t, "running jumps", SnowballStemmer{})
	want := []string{"run", "jump"}
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
