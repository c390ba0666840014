package jsparser

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.SEMI:
		start := p.cur.Pos
		p.next()
		s := &ast.EmptyStatement{}
		s.SetSpan(start, p.cur.Pos)
		return s
	case lexer.VAR, lexer.LET, lexer.CONST, lexer.USING:
		decl := p.parseVariableDeclaration()
		p.consumeSemicolon()
		return decl
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration(false)
	case lexer.ASYNC:
		if p.peekIs(lexer.FUNCTION) {
			p.next()
			return p.parseFunctionDeclaration(true)
		}
		return p.parseExpressionStatement()
	case lexer.CLASS:
		return p.parseClassDeclaration()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.DO:
		return p.parseDoWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.SWITCH:
		return p.parseSwitchStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.CONTINUE:
		return p.parseContinueStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.WITH:
		return p.parseWithStatement()
	case lexer.DEBUGGER:
		start := p.cur.Pos
		p.next()
		p.consumeSemicolon()
		s := &ast.DebuggerStatement{}
		s.SetSpan(start, p.cur.Pos)
		return s
	case lexer.IMPORT, lexer.EXPORT:
		return p.parseModuleDeclaration()
	case lexer.IDENT:
		if p.peekIs(lexer.COLON) {
			return p.parseLabeledStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.cur.Pos
	blk := &ast.BlockStatement{}
	p.expect(lexer.LBRACE)
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			blk.Body = append(blk.Body, stmt)
		}
	}
	p.expect(lexer.RBRACE)
	blk.SetSpan(start, p.cur.Pos)
	return blk
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.cur.Pos
	expr := p.parseExpression(LOWEST)
	p.consumeSemicolon()
	s := &ast.ExpressionStatement{Expr: expr}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func declarationKind(t lexer.TokenType) ast.DeclarationKind {
	switch t {
	case lexer.LET:
		return ast.Let
	case lexer.CONST:
		return ast.Const
	case lexer.USING:
		return ast.Using
	default:
		return ast.Var
	}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	start := p.cur.Pos
	kind := declarationKind(p.cur.Type)
	p.next()

	decl := &ast.VariableDeclaration{Kind: kind}
	for {
		target := p.parseBindingTarget()
		var init ast.Expression
		if ap, ok := target.(*ast.AssignmentPattern); ok {
			target, init = ap.Left, ap.Right
		} else if p.curIs(lexer.ASSIGN) {
			p.next()
			init = p.parseExpression(ASSIGN)
		}
		decl.Declarations = append(decl.Declarations, ast.VariableDeclarator{Id: target, Init: init})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.next()
	}
	decl.SetSpan(start, p.cur.Pos)
	return decl
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	p.expect(lexer.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	cons := p.parseStatement()
	var alt ast.Statement
	if p.curIs(lexer.ELSE) {
		p.next()
		alt = p.parseStatement()
	}
	s := &ast.IfStatement{Test: test, Consequent: cons, Alternate: alt}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	p.expect(lexer.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	body := p.parseStatement()
	s := &ast.WhileStatement{Test: test, Body: body}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	body := p.parseStatement()
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	p.consumeSemicolon()
	s := &ast.DoWhileStatement{Body: body, Test: test}
	s.SetSpan(start, p.cur.Pos)
	return s
}

// parseForStatement disambiguates a plain C-style for from for-in/for-of by
// speculatively parsing the header's left side and checking what follows.
func (p *Parser) parseForStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	p.expect(lexer.LPAREN)

	if p.curIs(lexer.SEMI) {
		return p.finishForStatement(start, nil)
	}

	if p.curIs(lexer.VAR) || p.curIs(lexer.LET) || p.curIs(lexer.CONST) || p.curIs(lexer.USING) {
		kind := declarationKind(p.cur.Type)
		declStart := p.cur.Pos
		p.next()
		target := p.parseBindingTarget()

		if p.curIs(lexer.IN) || p.curIs(lexer.OF) {
			isOf := p.curIs(lexer.OF)
			p.next()
			decl := &ast.VariableDeclaration{
				Kind:         kind,
				Declarations: []ast.VariableDeclarator{{Id: target}},
			}
			decl.SetSpan(declStart, target.End())
			left := ast.ForInOfLeft{Decl: decl}
			return p.finishForInOf(start, left, isOf)
		}

		var init ast.Expression
		if ap, ok := target.(*ast.AssignmentPattern); ok {
			target, init = ap.Left, ap.Right
		} else if p.curIs(lexer.ASSIGN) {
			p.next()
			init = p.parseExpression(ASSIGN)
		}
		decl := &ast.VariableDeclaration{
			Kind:         kind,
			Declarations: []ast.VariableDeclarator{{Id: target, Init: init}},
		}
		for p.curIs(lexer.COMMA) {
			p.next()
			t := p.parseBindingTarget()
			var i ast.Expression
			if ap, ok := t.(*ast.AssignmentPattern); ok {
				t, i = ap.Left, ap.Right
			} else if p.curIs(lexer.ASSIGN) {
				p.next()
				i = p.parseExpression(ASSIGN)
			}
			decl.Declarations = append(decl.Declarations, ast.VariableDeclarator{Id: t, Init: i})
		}
		decl.SetSpan(declStart, p.cur.Pos)
		return p.finishForStatement(start, decl)
	}

	first := p.parseExpression(LOWEST)
	if p.curIs(lexer.IN) || p.curIs(lexer.OF) {
		isOf := p.curIs(lexer.OF)
		p.next()
		left := ast.ForInOfLeft{Target: first}
		return p.finishForInOf(start, left, isOf)
	}
	return p.finishForStatement(start, first)
}

func (p *Parser) finishForInOf(start lexer.Position, left ast.ForInOfLeft, isOf bool) ast.Statement {
	right := p.parseExpression(ASSIGN)
	p.expect(lexer.RPAREN)
	body := p.parseStatement()
	if isOf {
		s := &ast.ForOfStatement{Left: left, Right: right, Body: body}
		s.SetSpan(start, p.cur.Pos)
		return s
	}
	s := &ast.ForInStatement{Left: left, Right: right, Body: body}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) finishForStatement(start lexer.Position, init ast.Node) ast.Statement {
	p.expect(lexer.SEMI)
	var test ast.Expression
	if !p.curIs(lexer.SEMI) {
		test = p.parseExpression(LOWEST)
	}
	p.expect(lexer.SEMI)
	var update ast.Expression
	if !p.curIs(lexer.RPAREN) {
		update = p.parseExpression(LOWEST)
	}
	p.expect(lexer.RPAREN)
	body := p.parseStatement()
	s := &ast.ForStatement{
		Head: ast.ForHead{Init: init, Test: test, Update: update},
		Body: body,
	}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	p.expect(lexer.LPAREN)
	disc := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)

	var cases []ast.SwitchCase
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		var test ast.Expression
		if p.curIs(lexer.CASE) {
			p.next()
			test = p.parseExpression(LOWEST)
		} else {
			p.expect(lexer.DEFAULT)
		}
		p.expect(lexer.COLON)
		var body []ast.Statement
		for !p.curIs(lexer.CASE) && !p.curIs(lexer.DEFAULT) && !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, ast.SwitchCase{Test: test, Consequent: body})
	}
	p.expect(lexer.RBRACE)
	s := &ast.SwitchStatement{Discriminant: disc, Cases: cases}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseBreakStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	label := ""
	if p.curIs(lexer.IDENT) && !p.atLineBreak() {
		label = p.cur.Literal
		p.next()
	}
	p.consumeSemicolon()
	s := &ast.BreakStatement{Label: label}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseContinueStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	label := ""
	if p.curIs(lexer.IDENT) && !p.atLineBreak() {
		label = p.cur.Literal
		p.next()
	}
	p.consumeSemicolon()
	s := &ast.ContinueStatement{Label: label}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	var arg ast.Expression
	if !p.curIs(lexer.SEMI) && !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) && !p.atLineBreak() {
		arg = p.parseExpression(LOWEST)
	}
	p.consumeSemicolon()
	s := &ast.ReturnStatement{Argument: arg}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseThrowStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	arg := p.parseExpression(LOWEST)
	p.consumeSemicolon()
	s := &ast.ThrowStatement{Argument: arg}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseTryStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	block := p.parseBlockStatement()

	var handler *ast.CatchClause
	if p.curIs(lexer.CATCH) {
		p.next()
		var param ast.Pattern
		if p.curIs(lexer.LPAREN) {
			p.next()
			param = p.parseBindingTarget()
			p.expect(lexer.RPAREN)
		}
		body := p.parseBlockStatement()
		handler = &ast.CatchClause{Param: param, Body: body}
	}

	var finalizer *ast.BlockStatement
	if p.curIs(lexer.FINALLY) {
		p.next()
		finalizer = p.parseBlockStatement()
	}

	s := &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseWithStatement() ast.Statement {
	start := p.cur.Pos
	p.next()
	p.expect(lexer.LPAREN)
	obj := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	body := p.parseStatement()
	s := &ast.WithStatement{Object: obj, Body: body}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	start := p.cur.Pos
	label := p.cur.Literal
	p.next()
	p.next()
	body := p.parseStatement()
	s := &ast.LabeledStatement{Label: label, Body: body}
	s.SetSpan(start, p.cur.Pos)
	return s
}

// parseModuleDeclaration captures an import/export statement verbatim,
// since rewriting module syntax is out of scope for the lowering core.
func (p *Parser) parseModuleDeclaration() ast.Statement {
	start := p.cur.Pos
	var sb []byte
	depth := 0
	for {
		if p.curIs(lexer.EOF) {
			break
		}
		if depth == 0 && p.curIs(lexer.SEMI) {
			p.next()
			break
		}
		if depth == 0 && p.atLineBreak() && len(sb) > 0 {
			break
		}
		switch p.cur.Type {
		case lexer.LBRACE, lexer.LPAREN:
			depth++
		case lexer.RBRACE, lexer.RPAREN:
			depth--
		}
		if len(sb) > 0 {
			sb = append(sb, ' ')
		}
		sb = append(sb, []byte(p.cur.Literal)...)
		p.next()
	}
	s := &ast.ModuleDeclaration{Raw: string(sb)}
	s.SetSpan(start, p.cur.Pos)
	return s
}

func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
	start := p.cur.Pos
	p.next()
	generator := false
	if p.curIs(lexer.STAR) {
		generator = true
		p.next()
	}
	var name *ast.Identifier
	if p.curIs(lexer.IDENT) {
		name = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
		p.next()
	}
	params := p.parseParamList()
	body := p.parseBlockStatement()
	s := &ast.FunctionDeclaration{
		Name: name, Params: params, Body: body,
		Generator: generator, Async: async,
	}
	s.SetSpan(start, p.cur.Pos)
	return s
}
