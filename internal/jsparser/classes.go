package jsparser

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

func (p *Parser) parseClassDeclaration() ast.Statement {
	start := p.cur.Pos
	p.next()
	var name *ast.Identifier
	if p.curIs(lexer.IDENT) {
		name = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
		p.next()
	}
	var super ast.Expression
	if p.curIs(lexer.EXTENDS) {
		p.next()
		super = p.parseExpression(CALL - 1)
	}
	body := p.parseClassBody()
	decl := &ast.ClassDeclaration{Name: name, SuperClass: super, Body: body}
	decl.SetSpan(start, p.cur.Pos)
	return decl
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	p.expect(lexer.LBRACE)
	body := &ast.ClassBody{}
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMI) {
			p.next()
			continue
		}
		body.Members = append(body.Members, p.parseClassMember())
	}
	p.expect(lexer.RBRACE)
	return body
}

func (p *Parser) parseClassMember() ast.ClassMember {
	static, async, generator := false, false, false
	kind := ast.MethodMember

	if p.curIs(lexer.STATIC) && !p.peekIs(lexer.LPAREN) && !p.peekIs(lexer.ASSIGN) {
		static = true
		p.next()
	}
	if p.curIs(lexer.ASYNC) && !p.peekIs(lexer.LPAREN) && !p.peekIs(lexer.ASSIGN) {
		async = true
		p.next()
	}
	if p.curIs(lexer.STAR) {
		generator = true
		p.next()
	}
	if (p.curIs(lexer.GET) || p.curIs(lexer.SET)) && !p.peekIs(lexer.LPAREN) && !p.peekIs(lexer.ASSIGN) && !p.peekIs(lexer.SEMI) {
		if p.curIs(lexer.GET) {
			kind = ast.GetterMember
		} else {
			kind = ast.SetterMember
		}
		p.next()
	}

	key, computed := p.parsePropertyKey()

	if p.curIs(lexer.LPAREN) {
		params := p.parseParamList()
		fnBody := p.parseBlockStatement()
		fn := &ast.FunctionExpression{Params: params, Body: fnBody, Generator: generator, Async: async}
		return ast.ClassMember{Key: key, Computed: computed, Static: static, Kind: kind, Function: fn}
	}

	var value ast.Expression
	if p.curIs(lexer.ASSIGN) {
		p.next()
		value = p.parseExpression(ASSIGN)
	}
	p.consumeSemicolon()
	return ast.ClassMember{Key: key, Computed: computed, Static: static, Kind: ast.FieldMember, Value: value}
}
