package lexer

import "testing"

func collect(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestLexer_Keywords(t *testing.T) {
	toks := collect("let x = 1; const y = 2;")
	want := []TokenType{LET, IDENT, ASSIGN, NUMBER, SEMI, CONST, IDENT, ASSIGN, NUMBER, SEMI, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	cases := map[string]TokenType{
		"123":   NUMBER,
		"0x1F":  NUMBER,
		"0b101": NUMBER,
		"1.5e3": NUMBER,
		"123n":  BIGINT,
	}
	for src, want := range cases {
		toks := collect(src)
		if toks[0].Type != want || toks[0].Literal != src {
			t.Errorf("%q: got %s(%q), want %s", src, toks[0].Type, toks[0].Literal, want)
		}
	}
}

func TestLexer_RegexVsDivision(t *testing.T) {
	toks := collect("a / b")
	if toks[1].Type != SLASH {
		t.Fatalf("expected division after identifier, got %s", toks[1].Type)
	}

	toks = collect("x = /abc/g")
	var gotRegex bool
	for _, tok := range toks {
		if tok.Type == REGEX {
			gotRegex = true
		}
	}
	if !gotRegex {
		t.Fatalf("expected a regex literal after '=', got %v", toks)
	}
}

func TestLexer_TemplateLiteral(t *testing.T) {
	toks := collect("`hello ${name}!`")
	if toks[0].Type != TEMPLATE {
		t.Fatalf("expected TEMPLATE, got %s", toks[0].Type)
	}
	if toks[0].Literal != "`hello ${name}!`" {
		t.Errorf("unexpected template literal text: %q", toks[0].Literal)
	}
}

func TestLexer_UnicodeColumns(t *testing.T) {
	l := New("var Δ")
	l.NextToken() // var
	tok := l.NextToken()
	if tok.Pos.Column != 5 {
		t.Errorf("expected column 5 for Δ, got %d", tok.Pos.Column)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New("'abc")
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Error("expected an error for unterminated string literal")
	}
}
