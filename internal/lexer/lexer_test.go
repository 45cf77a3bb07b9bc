package lexer

import (
	"testing"

	"github.com/adarshanand67/helix-shell/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeWords(t *testing.T) {
	toks := Tokenize("echo hello world")
	got := kinds(toks)
	want := []token.Kind{token.WORD, token.WORD, token.WORD, token.END}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
	if toks[0].Lexeme != "echo" || toks[1].Lexeme != "hello" || toks[2].Lexeme != "world" {
		t.Fatalf("unexpected lexemes: %+v", toks)
	}
}

func TestTokenizeQuoting(t *testing.T) {
	toks := Tokenize(`echo "a   b" 'c   d'`)
	if toks[1].Lexeme != "a   b" || toks[1].Quoted {
		t.Fatalf("double-quoted word wrong: %+v", toks[1])
	}
	if toks[2].Lexeme != "c   d" || !toks[2].Quoted {
		t.Fatalf("single-quoted word wrong: %+v", toks[2])
	}
}

func TestTokenizeOperators(t *testing.T) {
	toks := Tokenize("a > b >> c < d 2> e 2>> f | g & ; h")
	got := kinds(toks)
	want := []token.Kind{
		token.WORD, token.REDIR_OUT, token.WORD,
		token.REDIR_OUT_APPEND, token.WORD,
		token.REDIR_IN, token.WORD,
		token.REDIR_ERR, token.WORD,
		token.REDIR_ERR_APPEND, token.WORD,
		token.PIPE, token.WORD,
		token.BACKGROUND, token.SEMICOLON, token.WORD,
		token.END,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestTokenizeDigitTwoIsOrdinaryWord(t *testing.T) {
	toks := Tokenize("echo 2")
	if toks[1].Kind != token.WORD || toks[1].Lexeme != "2" {
		t.Fatalf("bare '2' should be a WORD, got %+v", toks[1])
	}
}

func TestTokenizeBackslashEscape(t *testing.T) {
	toks := Tokenize(`a\ b`)
	if len(toks) != 2 || toks[0].Kind != token.WORD || toks[0].Lexeme != "a b" {
		t.Fatalf("backslash-space should join into one word: %+v", toks)
	}
}

func TestTokenizeDoubleQuoteEscapes(t *testing.T) {
	toks := Tokenize(`"a\"b\\c\$d"`)
	if toks[0].Lexeme != `a"b\c$d` {
		t.Fatalf("unexpected double-quote escape result: %q", toks[0].Lexeme)
	}
}

func TestUnterminatedQuote(t *testing.T) {
	toks := Tokenize(`echo "unterminated`)
	if !Unterminated(toks) {
		t.Fatalf("expected unterminated quote to be detected")
	}

	toks = Tokenize(`echo "fine"`)
	if Unterminated(toks) {
		t.Fatalf("did not expect unterminated quote")
	}
}

func TestTokenizeEmptyLine(t *testing.T) {
	toks := Tokenize("")
	if len(toks) != 1 || toks[0].Kind != token.END {
		t.Fatalf("empty line should tokenize to just END, got %+v", toks)
	}
}
