package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `grep AND (pipe OR redirect) ANDNOT 'microsoft windows'`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TERM, "grep"},
		{AND, "AND"},
		{PAREN_OPEN, "("},
		{TERM, "pipe"},
		{OR, "OR"},
		{TERM, "redirect"},
		{PAREN_CLOSE, ")"},
		{ANDNOT, "ANDNOT"},
		{STRING, "microsoft windows"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%d, got=%d",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	tokens, err := Tokenize("unix and shell or bash andnot dos")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	expected := []TokenType{TERM, AND, TERM, OR, TERM, ANDNOT, TERM}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d] type = %d, want %d", i, tokens[i].Type, want)
		}
	}
}

func TestIllegalToken(t *testing.T) {
	if _, err := Tokenize("grep & pipe"); err == nil {
		t.Error("expected error for illegal character")
	}
}

func TestTermCharacters(t *testing.T) {
	tokens, err := Tokenize("log4j v1.2_beta-3")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Literal != "log4j" || tokens[1].Literal != "v1.2_beta-3" {
		t.Errorf("unexpected literals: %v", tokens)
	}
}
