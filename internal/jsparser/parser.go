// Package jsparser implements a recursive-descent, Pratt-style parser that
// turns JavaScript source into the ast package's node tree.
//
// Key patterns (grounded on this toolchain's established parser idiom):
//   - prefixParseFns / infixParseFns maps keyed by token type, dispatched by
//     precedence climbing in parseExpression.
//   - cur/peek two-token lookahead with next() advancing both.
//   - Errors accumulate in p.errors as diagnostics rather than panicking;
//     Parse always returns whatever tree it managed to build alongside them.
package jsparser

import (
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/diagnostics"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	COMMA
	ASSIGN
	CONDITIONAL
	NULLISH
	LOGICAL_OR
	LOGICAL_AND
	BITOR
	BITXOR
	BITAND
	EQUALS
	RELATIONAL
	SHIFT
	SUM
	PRODUCT
	EXPONENT
	PREFIX
	UPDATE
	CALL
	MEMBER
)

var precedences = map[lexer.TokenType]int{
	lexer.COMMA:             COMMA,
	lexer.ASSIGN:            ASSIGN,
	lexer.PLUS_ASSIGN:       ASSIGN,
	lexer.MINUS_ASSIGN:      ASSIGN,
	lexer.STAR_ASSIGN:       ASSIGN,
	lexer.SLASH_ASSIGN:      ASSIGN,
	lexer.PERCENT_ASSIGN:    ASSIGN,
	lexer.POW_ASSIGN:        ASSIGN,
	lexer.AND_ASSIGN:        ASSIGN,
	lexer.OR_ASSIGN:         ASSIGN,
	lexer.COALESCE_ASSIGN:   ASSIGN,
	lexer.BITAND_ASSIGN:     ASSIGN,
	lexer.BITOR_ASSIGN:      ASSIGN,
	lexer.BITXOR_ASSIGN:     ASSIGN,
	lexer.SHL_ASSIGN:        ASSIGN,
	lexer.SHR_ASSIGN:        ASSIGN,
	lexer.USHR_ASSIGN:       ASSIGN,
	lexer.QUESTION:          CONDITIONAL,
	lexer.QUESTION_QUESTION: NULLISH,
	lexer.OR_OR:             LOGICAL_OR,
	lexer.AND_AND:           LOGICAL_AND,
	lexer.BITOR:             BITOR,
	lexer.BITXOR:            BITXOR,
	lexer.BITAND:            BITAND,
	lexer.EQ:                EQUALS,
	lexer.NOT_EQ:            EQUALS,
	lexer.STRICT_EQ:         EQUALS,
	lexer.STRICT_NOT_EQ:     EQUALS,
	lexer.LESS:              RELATIONAL,
	lexer.GREATER:           RELATIONAL,
	lexer.LESS_EQ:           RELATIONAL,
	lexer.GREATER_EQ:        RELATIONAL,
	lexer.IN:                RELATIONAL,
	lexer.INSTANCEOF:        RELATIONAL,
	lexer.INC:               UPDATE,
	lexer.DEC:               UPDATE,
	lexer.SHL:               SHIFT,
	lexer.SHR:               SHIFT,
	lexer.USHR:              SHIFT,
	lexer.PLUS:              SUM,
	lexer.MINUS:             SUM,
	lexer.STAR:              PRODUCT,
	lexer.SLASH:             PRODUCT,
	lexer.PERCENT:           PRODUCT,
	lexer.POW:               EXPONENT,
	lexer.LPAREN:            CALL,
	lexer.LBRACK:            MEMBER,
	lexer.DOT:               MEMBER,
	lexer.QUESTION_DOT:      MEMBER,
	lexer.TEMPLATE:          MEMBER,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser turns a token stream into an *ast.Program, collecting diagnostics
// instead of stopping at the first syntax error where it reasonably can.
type Parser struct {
	l      *lexer.Lexer
	source string
	file   string

	cur  lexer.Token
	peek lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	errors []*diagnostics.Diagnostic
}

// New creates a Parser over source. file is used only to annotate
// diagnostics; pass "" when there is none.
func New(source, file string) *Parser {
	p := &Parser{
		l:      lexer.New(source),
		source: source,
		file:   file,
	}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{}
	p.infixParseFns = map[lexer.TokenType]infixParseFn{}
	p.registerExpressionParsers()

	p.next()
	p.next()
	return p
}

// Parse parses the full source as a Program and returns any diagnostics
// accumulated along the way (an empty slice means a clean parse).
func Parse(source, file string) (*ast.Program, []*diagnostics.Diagnostic) {
	p := New(source, file)
	prog := p.ParseProgram()
	return prog, p.errors
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expect consumes cur if it matches t, else records a diagnostic and leaves
// the cursor in place so the caller's recovery logic decides what happens
// next.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curIs(t) {
		p.next()
		return true
	}
	p.errorf(p.cur.Pos, "expected %s, got %s", t, p.cur.Type)
	return false
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, diagnostics.New(diagnostics.ParseError, pos, msg, p.source, p.file))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

// atLineBreak reports whether a newline separates cur from peek — the
// heuristic this parser uses for automatic semicolon insertion.
func (p *Parser) atLineBreak() bool {
	return p.peek.Pos.Line > p.cur.Pos.Line
}

// parserMark is a full backtracking checkpoint, used to speculatively try
// parsing an arrow function's parameter list before committing to it.
type parserMark struct {
	lexerState lexer.LexerState
	cur, peek  lexer.Token
	errs       int
}

func (p *Parser) snapshot() parserMark {
	return parserMark{lexerState: p.l.SaveState(), cur: p.cur, peek: p.peek, errs: len(p.errors)}
}

func (p *Parser) restore(m parserMark) {
	p.l.RestoreState(m.lexerState)
	p.cur, p.peek = m.cur, m.peek
	p.errors = p.errors[:m.errs]
}

// consumeSemicolon implements ASI: an explicit `;` is always consumed; its
// absence is only tolerated before `}`, EOF, or a line break.
func (p *Parser) consumeSemicolon() {
	if p.curIs(lexer.SEMI) {
		p.next()
		return
	}
	if p.curIs(lexer.RBRACE) || p.curIs(lexer.EOF) || p.atLineBreak() {
		return
	}
	p.errorf(p.cur.Pos, "expected ; before %s", p.cur.Type)
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{SourceType: ast.Script, StartPos: p.cur.Pos}
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	prog.EndPos = p.cur.Pos
	return prog
}
