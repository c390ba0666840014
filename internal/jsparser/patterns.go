package jsparser

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

// parseBindingTarget parses one binding/assignment target: a bare
// identifier, an object or array destructuring pattern, optionally wrapped
// in an AssignmentPattern carrying a `= default`. Patterns double as
// assignment targets (see ast.Pattern), so this is also used to parse the
// left-hand side of a for-in/for-of header and a catch clause's parameter.
func (p *Parser) parseBindingTarget() ast.Pattern {
	var target ast.Pattern
	switch p.cur.Type {
	case lexer.LBRACE:
		target = p.parseObjectPattern()
	case lexer.LBRACK:
		target = p.parseArrayPattern()
	default:
		target = p.parseIdentifier()
	}
	if p.curIs(lexer.ASSIGN) {
		p.next()
		def := p.parseExpression(ASSIGN)
		ap := &ast.AssignmentPattern{Left: target, Right: def}
		ap.SetSpan(target.Pos(), def.End())
		return ap
	}
	return target
}

func (p *Parser) parseObjectPattern() ast.Pattern {
	start := p.cur.Pos
	p.next()
	var props []ast.ObjectPatternProperty
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.ELLIPSIS) {
			p.next()
			rest := p.parseBindingTarget()
			props = append(props, ast.ObjectPatternProperty{Spread: true, Value: rest})
			if p.curIs(lexer.COMMA) {
				p.next()
			}
			continue
		}

		key, computed := p.parsePropertyKey()
		if p.curIs(lexer.COLON) {
			p.next()
			val := p.parseBindingTarget()
			props = append(props, ast.ObjectPatternProperty{Key: key, Value: val, Computed: computed})
		} else if p.curIs(lexer.ASSIGN) {
			p.next()
			def := p.parseExpression(ASSIGN)
			ap := &ast.AssignmentPattern{Left: key, Right: def}
			props = append(props, ast.ObjectPatternProperty{Key: key, Value: ap, Shorthand: true})
		} else {
			props = append(props, ast.ObjectPatternProperty{Key: key, Value: key, Shorthand: true})
		}
		if p.curIs(lexer.COMMA) {
			p.next()
		}
	}
	p.expect(lexer.RBRACE)
	pat := &ast.ObjectPattern{Properties: props}
	pat.SetSpan(start, p.cur.Pos)
	return pat
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	start := p.cur.Pos
	p.next()
	var elements []ast.ArrayPatternElement
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.COMMA) {
			elements = append(elements, ast.ArrayPatternElement{})
			p.next()
			continue
		}
		if p.curIs(lexer.ELLIPSIS) {
			p.next()
			elements = append(elements, ast.ArrayPatternElement{Target: p.parseBindingTarget(), Spread: true})
		} else {
			elements = append(elements, ast.ArrayPatternElement{Target: p.parseBindingTarget()})
		}
		if p.curIs(lexer.COMMA) {
			p.next()
		}
	}
	p.expect(lexer.RBRACK)
	pat := &ast.ArrayPattern{Elements: elements}
	pat.SetSpan(start, p.cur.Pos)
	return pat
}

// parseParamList parses a parenthesized, comma-separated function parameter
// list, including defaulted and rest parameters.
func (p *Parser) parseParamList() []ast.Param {
	p.expect(lexer.LPAREN)
	var params []ast.Param
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.ELLIPSIS) {
			start := p.cur.Pos
			p.next()
			arg := p.parseBindingTarget()
			rest := &ast.RestElement{Argument: arg}
			rest.SetSpan(start, arg.End())
			params = append(params, rest)
		} else {
			params = append(params, p.parseBindingTarget())
		}
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.next()
	}
	p.expect(lexer.RPAREN)
	return params
}

// tryParseArrowParams speculatively parses `(params)` without emitting
// diagnostics on failure, for the arrow-function-vs-parenthesized-expression
// disambiguation in parseParenOrArrow.
func (p *Parser) tryParseArrowParams() (params []ast.Param, ok bool) {
	before := len(p.errors)
	params = p.parseParamList()
	if len(p.errors) > before {
		p.errors = p.errors[:before]
		return nil, false
	}
	return params, true
}
