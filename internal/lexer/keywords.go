package lexer

import (
	"strings"

	"github.com/eap-lang/eap/pkg/ident"
)

// keyword pairs a canonical (upper-cased) spelling with its token kind.
// Both the Greek and the English spelling of every reserved word map to the
// same TokenType: the source language's keywords exist in both languages,
// case-insensitively, per spec.md §1 and §4.2.
type keyword struct {
	spelling string
	kind     TokenType
}

// keywordTable is the flat bilingual keyword list. It is deliberately a
// slice of pairs rather than a nested per-language map: a single
// case-insensitive lookup (via ident.Normalize) resolves either spelling to
// the same token kind, matching spec.md's "flat case-insensitive lookup"
// design note (§9).
var keywordTable = []keyword{
	{"ΑΛΓΟΡΙΘΜΟΣ", ALGORITHM}, {"ALGORITHM", ALGORITHM},
	{"ΣΤΑΘΕΡΕΣ", CONSTANTS}, {"CONSTANTS", CONSTANTS},
	{"ΔΕΔΟΜΕΝΑ", DATA}, {"DATA", DATA},
	{"ΑΡΧΗ", BEGIN}, {"BEGIN", BEGIN},
	{"ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ", END}, {"ΤΕΛΟΣ", END}, {"END_PROGRAM", END}, {"END", END},
	{"ΔΙΑΔΙΚΑΣΙΑ", PROCEDURE}, {"PROCEDURE", PROCEDURE},
	{"ΣΥΝΑΡΤΗΣΗ", FUNCTION}, {"FUNCTION", FUNCTION},
	{"ΔΙΕΠΑΦΗ", INTERFACE}, {"INTERFACE", INTERFACE},
	{"ΕΙΣΟΔΟΣ", INPUT_PARAM}, {"INPUT", INPUT_PARAM},
	{"ΕΞΟΔΟΣ", OUTPUT_PARAM}, {"OUTPUT", OUTPUT_PARAM},
	{"ΤΕΛΟΣ_ΣΥΝΑΡΤΗΣΗΣ", END_FUNCTION}, {"END_FUNCTION", END_FUNCTION},
	{"ΤΕΛΟΣ_ΔΙΑΔΙΚΑΣΙΑΣ", END_PROCEDURE}, {"END_PROCEDURE", END_PROCEDURE},

	{"ΑΝ", IF}, {"IF", IF},
	{"ΤΟΤΕ", THEN}, {"THEN", THEN},
	{"ΑΛΛΙΩΣ", ELSE}, {"ELSE", ELSE},
	{"ΤΕΛΟΣ_ΑΝ", END_IF}, {"END_IF", END_IF},
	{"ΓΙΑ", FOR}, {"FOR", FOR},
	{"ΕΩΣ", TO}, {"TO", TO},
	{"ΜΕ_ΒΗΜΑ", STEP}, {"STEP", STEP},
	{"ΕΠΑΝΑΛΑΒΕ", REPEAT}, {"REPEAT", REPEAT},
	{"ΤΕΛΟΣ_ΕΠΑΝΑΛΗΨΗΣ", END_FOR}, {"END_FOR", END_FOR},
	{"ΟΣΟ", WHILE}, {"WHILE", WHILE},
	{"ΤΕΛΟΣ_ΟΣΟ", END_WHILE}, {"END_WHILE", END_WHILE},
	{"ΜΕΧΡΙΣ_ΟΤΟΥ", UNTIL}, {"UNTIL", UNTIL},

	{"ΓΡΑΨΕ", PRINT}, {"PRINT", PRINT},
	{"ΔΙΑΒΑΣΕ", READ}, {"READ", READ},
	{"ΕΚΤΕΛΕΣΕ", CALCULATE}, {"CALCULATE", CALCULATE},

	{"ΑΚΕΡΑΙΑ", INTEGER_TYPE}, {"INTEGER", INTEGER_TYPE},
	{"ΠΡΑΓΜΑΤΙΚΗ", REAL_TYPE}, {"REAL", REAL_TYPE},
	{"ΛΟΓΙΚΗ", BOOLEAN_TYPE}, {"BOOLEAN", BOOLEAN_TYPE},
	{"ΧΑΡΑΚΤΗΡΑΣ", CHAR_TYPE}, {"CHARACTER", CHAR_TYPE},
	{"ΑΛΦΑΡΙΘΜΗΤΙΚΗ", STRING_TYPE}, {"STRING", STRING_TYPE},
	{"ΠΙΝΑΚΑΣ", ARRAY}, {"ARRAY", ARRAY},
	{"ΤΟΥ", OF}, {"OF", OF},

	{"DIV", DIV}, {"ΔΙΑ", DIV},
	{"MOD", MOD}, {"ΥΠΟΛΟΙΠΟ", MOD},
	{"ΚΑΙ", AND}, {"AND", AND},
	{"Η", OR}, {"OR", OR},
	{"ΟΧΙ", NOT}, {"NOT", NOT},
}

// booleanLiterals maps both languages' true/false spellings to their truth
// value. These lex to BOOLEAN_LITERAL rather than IDENT or a keyword kind
// of their own, per spec.md §4.2.
var booleanLiterals = map[string]bool{
	"TRUE": true, "ΑΛΗΘΗΣ": true,
	"FALSE": false, "ΨΕΥΔΗΣ": false,
}

// EndOfLineConstant is the reserved identifier spec.md's glossary calls the
// "end-of-line constant": present in a print argument list it emits a
// newline instead of a value (spec.md §4.4, §9 glossary).
const EndOfLineConstant = "EOLN"

var endOfLineSpellings = []string{"EOLN", "ΑΛΛΑΓΗ_ΓΡΑΜΜΗΣ"}

// IsEndOfLineConstant reports whether name (in either language, any case)
// names the end-of-line sentinel identifier.
func IsEndOfLineConstant(name string) bool {
	return ident.Contains(endOfLineSpellings, name)
}

// lookupKeyword resolves word (any case, either language) to its token
// kind. A hyphen in a compound keyword spelling (END-IF) is treated the
// same as an underscore (END_IF), since the lexer's identifier rule
// accepts embedded hyphens precisely so such compounds lex as one token
// (spec.md §4.2). ok is false for ordinary identifiers.
func lookupKeyword(word string) (TokenType, bool) {
	norm := strings.ReplaceAll(ident.Normalize(word), "-", "_")
	for _, kw := range keywordTable {
		if ident.Normalize(kw.spelling) == norm {
			return kw.kind, true
		}
	}
	return IDENT, false
}

// lookupBoolean resolves word to a boolean literal value, if it is one.
func lookupBoolean(word string) (bool, bool) {
	val, ok := booleanLiterals[ident.Normalize(word)]
	return val, ok
}

// BooleanValue resolves the literal text of a BOOLEAN_LITERAL token to its
// truth value, for consumers outside this package (the parser, building a
// Literal node).
func BooleanValue(word string) (bool, bool) {
	return lookupBoolean(word)
}
