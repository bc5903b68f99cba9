package lexer

import "testing"

func tokenTypes(tokens []Token) []TokenType {
	kinds := make([]TokenType, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Type
	}
	return kinds
}

func TestTokenizeBasicProgram(t *testing.T) {
	src := `ALGORITHM T
CONSTANTS
N = 3;
DATA
x: INTEGER;
BEGIN
x := N*N + 1;
PRINT(x)
END`
	l := New(src)
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		t.Fatalf("expected stream to end with exactly one EOF sentinel, got %v", tokens)
	}
	eofCount := 0
	for _, tok := range tokens {
		if tok.Type == EOF {
			eofCount++
		}
		if tok.Type == ILLEGAL {
			t.Fatalf("unexpected ILLEGAL token: %v", tok)
		}
	}
	if eofCount != 1 {
		t.Fatalf("expected exactly one EOF token, got %d", eofCount)
	}
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	variants := []string{"begin", "BEGIN", "Begin", "ΑΡΧΗ", "αρχη"}
	for _, v := range variants {
		l := New(v)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken(%q) error = %v", v, err)
		}
		if tok.Type != BEGIN {
			t.Errorf("NextToken(%q).Type = %v, want BEGIN", v, tok.Type)
		}
	}
}

func TestCompoundKeywordHyphenOrUnderscore(t *testing.T) {
	for _, lit := range []string{"END-IF", "END_IF", "end-if"} {
		l := New(lit)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken(%q) error = %v", lit, err)
		}
		if tok.Type != END_IF {
			t.Errorf("NextToken(%q).Type = %v, want END_IF", lit, tok.Type)
		}
	}
}

func TestIdentifierHyphenBeforeDigitSplits(t *testing.T) {
	// "j-1" must lex as three tokens: identifier j, MINUS, integer 1.
	l := New("j-1")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	got := tokenTypes(tokens)
	want := []TokenType{IDENT, MINUS, NUMBER_INT, EOF}
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token kinds = %v, want %v", got, want)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind TokenType
		lit  string
	}{
		{"123", NUMBER_INT, "123"},
		{"3.14", NUMBER_REAL, "3.14"},
		{"3.", NUMBER_INT, "3"},  // trailing dot with no digit doesn't belong to the number
		{"3..5", NUMBER_INT, "3"}, // ".." is the range operator, terminates the number
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken(%q) error = %v", tt.src, err)
		}
		if tok.Type != tt.kind || tok.Literal != tt.lit {
			t.Errorf("NextToken(%q) = %v %q, want %v %q", tt.src, tok.Type, tok.Literal, tt.kind, tt.lit)
		}
	}
}

func TestRangeOperatorAfterNumber(t *testing.T) {
	l := New("3..5")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	got := tokenTypes(tokens)
	want := []TokenType{NUMBER_INT, RANGE, NUMBER_INT, EOF}
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token kinds = %v, want %v", got, want)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	tests := []struct {
		src  string
		kind TokenType
	}{
		{":=", ASSIGN},
		{"<>", NOT_EQUALS},
		{"<=", LESS_EQUALS},
		{">=", GREATER_EQUALS},
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken(%q) error = %v", tt.src, err)
		}
		if tok.Type != tt.kind {
			t.Errorf("NextToken(%q).Type = %v, want %v", tt.src, tok.Type, tt.kind)
		}
	}
}

func TestStringLiteralNoEscapes(t *testing.T) {
	l := New(`"hello \n world"`)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("NextToken() error = %v", err)
	}
	if tok.Type != STRING || tok.Literal != `hello \n world` {
		t.Fatalf("got %v %q, want STRING %q", tok.Type, tok.Literal, `hello \n world`)
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for unterminated string literal")
	}
}

func TestLineAndBlockComments(t *testing.T) {
	src := "// a comment\n{ a block comment }\nBEGIN"
	l := New(src)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("NextToken() error = %v", err)
	}
	if tok.Type != BEGIN {
		t.Fatalf("got %v, want BEGIN (comments should be skipped)", tok.Type)
	}
}

func TestBooleanLiterals(t *testing.T) {
	for _, lit := range []string{"TRUE", "FALSE", "ΑΛΗΘΗΣ", "ΨΕΥΔΗΣ", "true"} {
		l := New(lit)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken(%q) error = %v", lit, err)
		}
		if tok.Type != BOOLEAN_LITERAL {
			t.Errorf("NextToken(%q).Type = %v, want BOOLEAN_LITERAL", lit, tok.Type)
		}
	}
}

func TestEndOfLineConstantRecognition(t *testing.T) {
	if !IsEndOfLineConstant("eoln") || !IsEndOfLineConstant("ΑΛΛΑΓΗ_ΓΡΑΜΜΗΣ") {
		t.Fatal("expected both spellings of the end-of-line constant to be recognized")
	}
	if IsEndOfLineConstant("x") {
		t.Fatal("ordinary identifier should not be recognized as the end-of-line constant")
	}
}

func TestIllegalByteAbortsLexing(t *testing.T) {
	l := New("BEGIN $ END")
	_, err := l.Tokenize()
	if err == nil {
		t.Fatal("expected an error for the unlexable '$' byte")
	}
	var lexErr *Error
	if !asError(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
	if lexErr.Ch != '$' {
		t.Fatalf("Error.Ch = %q, want '$'", lexErr.Ch)
	}
}

func asError(err error, target **Error) bool {
	if e, ok := err.(*Error); ok {
		*target = e
		return true
	}
	return false
}
