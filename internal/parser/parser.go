// Package parser turns a token stream into a Program AST by recursive
// descent, following the grammar in spec.md §4.3. Precedence climbs
// logical-or, logical-and, comparison, additive, multiplicative (including
// DIV/MOD), unary, then primary, the same layering the teacher's own
// expression parser uses (go-dws's internal/parser), generalized from a
// large operator set down to this language's smaller one.
package parser

import (
	"fmt"

	"github.com/eap-lang/eap/internal/ast"
	cerrors "github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/pkg/ident"
)

// historySize bounds how many preceding tokens a diagnostic reports
// (spec.md §4.3's "short history of preceding tokens").
const historySize = 5

// Parser consumes a pre-scanned token stream and builds an AST.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	source  string
	history []string
}

// New creates a Parser over tokens, a complete token stream ending in a
// single EOF (the contract Lexer.Tokenize guarantees). source is kept only
// to render source-line context in diagnostics.
func New(tokens []lexer.Token, source string) *Parser {
	return &Parser{tokens: tokens, source: source}
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	p.history = append(p.history, t.Literal)
	if len(p.history) > historySize {
		p.history = p.history[len(p.history)-historySize:]
	}
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(kind lexer.TokenType) bool {
	return p.cur().Type == kind
}

func (p *Parser) accept(kind lexer.TokenType) (lexer.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

func (p *Parser) expect(kind lexer.TokenType) (lexer.Token, error) {
	if p.at(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorf("expected %s, found %s %q", kind, p.cur().Type, p.cur().Literal)
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return cerrors.NewSyntaxWithHistory(p.cur().Pos, p.source, p.history, format, args...)
}

// Parse parses the whole token stream into a Program.
func (p *Parser) Parse() (*ast.Program, error) {
	tok, err := p.expect(lexer.ALGORITHM)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	prog := &ast.Program{Token: tok, Name: nameTok.Literal}

	if _, ok := p.accept(lexer.CONSTANTS); ok {
		decls, err := p.parseConstDecls()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decls...)
	}

	if _, ok := p.accept(lexer.DATA); ok {
		decls, err := p.parseVarDecls()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decls...)
	}

	for p.at(lexer.FUNCTION) || p.at(lexer.PROCEDURE) {
		decl, err := p.parseSubroutine()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decl)
	}

	if _, err := p.expect(lexer.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(lexer.END)
	if err != nil {
		return nil, err
	}
	prog.Body = body
	if _, err := p.expect(lexer.END); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) parseConstDecls() ([]ast.Declaration, error) {
	var decls []ast.Declaration
	for p.at(lexer.IDENT) {
		nameTok := p.advance()
		if _, err := p.expect(lexer.EQUALS); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		decls = append(decls, &ast.ConstDecl{Token: nameTok, Name: nameTok.Literal, Value: val})
	}
	return decls, nil
}

func (p *Parser) parseVarDecls() ([]ast.Declaration, error) {
	var decls []ast.Declaration
	for p.at(lexer.IDENT) {
		decl, err := p.parseOneVarDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl...)
	}
	return decls, nil
}

// parseOneVarDecl handles "a, b, c: INTEGER;" by expanding the shared type
// across every listed name.
func (p *Parser) parseOneVarDecl() ([]ast.Declaration, error) {
	var names []lexer.Token
	nameTok := p.advance()
	names = append(names, nameTok)
	for {
		if _, ok := p.accept(lexer.COMMA); !ok {
			break
		}
		tok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, tok)
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}

	var bounds []ast.Bound
	if _, ok := p.accept(lexer.ARRAY); ok {
		if _, err := p.expect(lexer.LEFT_BRACKET); err != nil {
			return nil, err
		}
		for {
			from, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RANGE); err != nil {
				return nil, err
			}
			to, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, ast.Bound{From: from, To: to})
			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
		}
		if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.OF); err != nil {
			return nil, err
		}
	}

	base, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	decls := make([]ast.Declaration, len(names))
	for i, n := range names {
		decls[i] = &ast.VarDecl{Token: n, Name: n.Literal, BaseType: base, Bounds: bounds}
	}
	return decls, nil
}

func (p *Parser) parseBaseType() (ast.BaseType, error) {
	switch p.cur().Type {
	case lexer.INTEGER_TYPE:
		p.advance()
		return ast.Integer, nil
	case lexer.REAL_TYPE:
		p.advance()
		return ast.Real, nil
	case lexer.BOOLEAN_TYPE:
		p.advance()
		return ast.Boolean, nil
	case lexer.CHAR_TYPE:
		p.advance()
		return ast.Character, nil
	case lexer.STRING_TYPE:
		p.advance()
		return ast.StringType, nil
	default:
		return 0, p.errorf("expected a type name, found %s %q", p.cur().Type, p.cur().Literal)
	}
}

func (p *Parser) parseSubroutine() (ast.Declaration, error) {
	if p.at(lexer.FUNCTION) {
		return p.parseFuncDecl()
	}
	return p.parseProcDecl()
}

func (p *Parser) parseFuncDecl() (ast.Declaration, error) {
	tok, _ := p.expect(lexer.FUNCTION)
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.skipParamNameList(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	retType, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}

	params, err := p.parseOptionalInterface()
	if err != nil {
		return nil, err
	}
	locals, err := p.parseOptionalLocalData()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(lexer.END_FUNCTION)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END_FUNCTION); err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Token: tok, Name: nameTok.Literal, ReturnType: retType, Params: params, Locals: locals, Body: body}, nil
}

func (p *Parser) parseProcDecl() (ast.Declaration, error) {
	tok, _ := p.expect(lexer.PROCEDURE)
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.skipParamNameList(); err != nil {
		return nil, err
	}
	params, err := p.parseOptionalInterface()
	if err != nil {
		return nil, err
	}
	locals, err := p.parseOptionalLocalData()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(lexer.END_PROCEDURE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END_PROCEDURE); err != nil {
		return nil, err
	}
	return &ast.ProcDecl{Token: tok, Name: nameTok.Literal, Params: params, Locals: locals, Body: body}, nil
}

// skipParamNameList consumes the header's parenthesized parameter name
// list. The names themselves are ignored: the INTERFACE block that follows
// is the sole authority on parameter names, types, and passing mode
// (spec.md §9's documented header/interface redundancy).
func (p *Parser) skipParamNameList() error {
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return err
	}
	for !p.at(lexer.RIGHT_PAREN) {
		p.advance()
	}
	_, err := p.expect(lexer.RIGHT_PAREN)
	return err
}

func (p *Parser) parseOptionalInterface() ([]ast.Parameter, error) {
	if _, ok := p.accept(lexer.INTERFACE); !ok {
		return nil, nil
	}
	var params []ast.Parameter
	for p.at(lexer.INPUT_PARAM) || p.at(lexer.OUTPUT_PARAM) {
		byRef := p.at(lexer.OUTPUT_PARAM)
		p.advance()
		group, err := p.parseParamGroup(byRef)
		if err != nil {
			return nil, err
		}
		// A name listed under both INPUT and OUTPUT is one by-reference
		// parameter, not two.
		for _, prm := range group {
			merged := false
			for i := range params {
				if ident.Normalize(params[i].Name) == ident.Normalize(prm.Name) {
					params[i].ByRef = params[i].ByRef || prm.ByRef
					merged = true
				}
			}
			if !merged {
				params = append(params, prm)
			}
		}
	}
	return params, nil
}

func (p *Parser) parseParamGroup(byRef bool) ([]ast.Parameter, error) {
	var params []ast.Parameter
	for p.at(lexer.IDENT) {
		var names []string
		names = append(names, p.advance().Literal)
		for {
			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
			tok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			names = append(names, tok.Literal)
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		isArray := false
		if _, ok := p.accept(lexer.ARRAY); ok {
			isArray = true
			if _, err := p.expect(lexer.OF); err != nil {
				return nil, err
			}
		}
		base, err := p.parseBaseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		for _, n := range names {
			params = append(params, ast.Parameter{Name: n, BaseType: base, IsArray: isArray, ByRef: byRef})
		}
	}
	return params, nil
}

func (p *Parser) parseOptionalLocalData() ([]ast.Declaration, error) {
	if _, ok := p.accept(lexer.DATA); !ok {
		return nil, nil
	}
	return p.parseVarDecls()
}

// parseStatements parses zero or more statements until a token in
// terminators is reached (without consuming it).
func (p *Parser) parseStatements(terminators ...lexer.TokenType) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.atAny(terminators...) {
		if p.at(lexer.EOF) {
			return nil, p.errorf("unexpected end of input, expected one of %v", terminators)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) atAny(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.at(k) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.FOR:
		return p.parseFor()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.REPEAT:
		return p.parseRepeat()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.READ:
		return p.parseRead()
	case lexer.CALCULATE:
		p.advance()
		return p.parseCallStatement()
	case lexer.IDENT:
		if p.peek().Type == lexer.LEFT_PAREN {
			return p.parseCallStatement()
		}
		return p.parseAssignment()
	default:
		return nil, p.errorf("unexpected token %s %q at start of statement", p.cur().Type, p.cur().Literal)
	}
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	target, err := p.parseLValue()
	if err != nil {
		return nil, err
	}
	tok, err := p.expect(lexer.ASSIGN)
	if err != nil {
		return nil, err
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: tok, Target: target, Value: val}, nil
}

func (p *Parser) parseLValue() (ast.Expression, error) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(lexer.LEFT_BRACKET); ok {
		var indices []ast.Expression
		for {
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
		}
		if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayAccess{Token: nameTok, Name: nameTok.Literal, Indices: indices}, nil
	}
	return &ast.Identifier{Token: nameTok, Name: nameTok.Literal}, nil
}

func (p *Parser) parseCallStatement() (ast.Statement, error) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if !p.at(lexer.RIGHT_PAREN) {
		for {
			// A leading '%' before an argument is accepted and discarded: it
			// marks a by-reference argument in the source dialect but
			// carries no separate meaning here, since passing mode is
			// determined entirely by the callee's own INTERFACE block.
			p.accept(lexer.PERCENT)
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.CallStatement{Call: &ast.CallExpr{Token: nameTok, Callee: nameTok.Literal, Args: args}}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok, _ := p.expect(lexer.IF)
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.THEN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStatements(lexer.ELSE, lexer.END_IF)
	if err != nil {
		return nil, err
	}
	var elseBody []ast.Statement
	if _, ok := p.accept(lexer.ELSE); ok {
		elseBody, err = p.parseStatements(lexer.END_IF)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.END_IF); err != nil {
		return nil, err
	}
	return &ast.If{Token: tok, Cond: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	tok, _ := p.expect(lexer.FOR)
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TO); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var step ast.Expression
	if _, ok := p.accept(lexer.STEP); ok {
		step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseStatements(lexer.END_FOR)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END_FOR); err != nil {
		return nil, err
	}
	return &ast.For{Token: tok, Var: nameTok.Literal, Start: start, End: end, Step: step, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok, _ := p.expect(lexer.WHILE)
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(lexer.END_WHILE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END_WHILE); err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseRepeat() (ast.Statement, error) {
	tok, _ := p.expect(lexer.REPEAT)
	body, err := p.parseStatements(lexer.UNTIL)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.UNTIL); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Cond: cond, Body: body, IsUntil: true}, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	tok, _ := p.expect(lexer.PRINT)
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if !p.at(lexer.RIGHT_PAREN) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Print{Token: tok, Args: args}, nil
}

func (p *Parser) parseRead() (ast.Statement, error) {
	tok, _ := p.expect(lexer.READ)
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	var targets []ast.Expression
	for {
		t, err := p.parseLValue()
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
		if _, ok := p.accept(lexer.COMMA); !ok {
			break
		}
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Read{Token: tok, Targets: targets}, nil
}

// --- expressions, lowest to highest precedence ---

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.OR) {
		tok := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.AND) {
		tok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left, nil
}

var comparisonOps = []lexer.TokenType{
	lexer.EQUALS, lexer.NOT_EQUALS, lexer.LESS_THAN, lexer.GREATER_THAN,
	lexer.LESS_EQUALS, lexer.GREATER_EQUALS,
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.atAny(comparisonOps...) {
		tok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.PLUS) || p.at(lexer.MINUS) {
		tok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left, nil
}

var multiplicativeOps = []lexer.TokenType{lexer.MULTIPLY, lexer.DIVIDE, lexer.DIV, lexer.MOD}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atAny(multiplicativeOps...) {
		tok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.at(lexer.MINUS) || p.at(lexer.NOT) {
		tok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Token: tok, Op: tok.Type, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur().Type {
	case lexer.NUMBER_INT:
		tok := p.advance()
		var v int64
		fmt.Sscanf(tok.Literal, "%d", &v)
		return &ast.Literal{Token: tok, Value: v, Type: ast.Integer}, nil
	case lexer.NUMBER_REAL:
		tok := p.advance()
		var v float64
		fmt.Sscanf(tok.Literal, "%g", &v)
		return &ast.Literal{Token: tok, Value: v, Type: ast.Real}, nil
	case lexer.STRING:
		tok := p.advance()
		return &ast.Literal{Token: tok, Value: tok.Literal, Type: ast.StringType}, nil
	case lexer.BOOLEAN_LITERAL:
		tok := p.advance()
		v, _ := lexer.BooleanValue(tok.Literal)
		return &ast.Literal{Token: tok, Value: v, Type: ast.Boolean}, nil
	case lexer.LEFT_PAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.IDENT:
		return p.parseIdentOrCallOrIndex()
	default:
		return nil, p.errorf("unexpected token %s %q in expression", p.cur().Type, p.cur().Literal)
	}
}

func (p *Parser) parseIdentOrCallOrIndex() (ast.Expression, error) {
	nameTok := p.advance()
	switch {
	case p.at(lexer.LEFT_PAREN):
		p.advance()
		var args []ast.Expression
		if !p.at(lexer.RIGHT_PAREN) {
			for {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if _, ok := p.accept(lexer.COMMA); !ok {
					break
				}
			}
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return &ast.CallExpr{Token: nameTok, Callee: nameTok.Literal, Args: args}, nil
	case p.at(lexer.LEFT_BRACKET):
		p.advance()
		var indices []ast.Expression
		for {
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
		}
		if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayAccess{Token: nameTok, Name: nameTok.Literal, Indices: indices}, nil
	default:
		return &ast.Identifier{Token: nameTok, Name: nameTok.Literal}, nil
	}
}
