package jsparser

import (
	"strconv"
	"strings"

	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

func (p *Parser) registerExpressionParsers() {
	p.prefixParseFns[lexer.IDENT] = p.parseUpdateOrArrowIdent
	p.prefixParseFns[lexer.ASYNC] = p.parseAsyncPrefix
	p.prefixParseFns[lexer.NUMBER] = p.parseNumberLiteral
	p.prefixParseFns[lexer.BIGINT] = p.parseBigIntLiteral
	p.prefixParseFns[lexer.STRING] = p.parseStringLiteral
	p.prefixParseFns[lexer.TEMPLATE] = p.parseTemplateLiteral
	p.prefixParseFns[lexer.REGEX] = p.parseRegexLiteral
	p.prefixParseFns[lexer.TRUE] = p.parseBooleanLiteral
	p.prefixParseFns[lexer.FALSE] = p.parseBooleanLiteral
	p.prefixParseFns[lexer.NULL] = p.parseNullLiteral
	p.prefixParseFns[lexer.UNDEFINED] = p.parseUndefinedLiteral
	p.prefixParseFns[lexer.THIS] = p.parseThisExpression
	p.prefixParseFns[lexer.SUPER] = p.parseSuperExpression
	p.prefixParseFns[lexer.LPAREN] = p.parseParenOrArrow
	p.prefixParseFns[lexer.LBRACK] = p.parseArrayExpression
	p.prefixParseFns[lexer.LBRACE] = p.parseObjectExpression
	p.prefixParseFns[lexer.FUNCTION] = p.parseFunctionExpression
	p.prefixParseFns[lexer.CLASS] = p.parseClassExpression
	p.prefixParseFns[lexer.NEW] = p.parseNewExpression
	p.prefixParseFns[lexer.IMPORT] = p.parseImportExpression

	for _, t := range []lexer.TokenType{
		lexer.PLUS, lexer.MINUS, lexer.BANG, lexer.TILDE,
		lexer.TYPEOF, lexer.VOID, lexer.DELETE,
	} {
		p.prefixParseFns[t] = p.parseUnaryExpression
	}
	p.prefixParseFns[lexer.INC] = p.parseUpdatePrefix
	p.prefixParseFns[lexer.DEC] = p.parseUpdatePrefix
	p.prefixParseFns[lexer.AWAIT] = p.parseAwaitExpression
	p.prefixParseFns[lexer.YIELD] = p.parseYieldExpression

	binOps := []lexer.TokenType{
		lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT, lexer.POW,
		lexer.EQ, lexer.NOT_EQ, lexer.STRICT_EQ, lexer.STRICT_NOT_EQ,
		lexer.LESS, lexer.GREATER, lexer.LESS_EQ, lexer.GREATER_EQ,
		lexer.IN, lexer.INSTANCEOF,
		lexer.SHL, lexer.SHR, lexer.USHR,
		lexer.BITAND, lexer.BITOR, lexer.BITXOR,
	}
	for _, t := range binOps {
		p.infixParseFns[t] = p.parseBinaryExpression
	}
	p.infixParseFns[lexer.AND_AND] = p.parseLogicalExpression
	p.infixParseFns[lexer.OR_OR] = p.parseLogicalExpression
	p.infixParseFns[lexer.QUESTION_QUESTION] = p.parseLogicalExpression

	assignOps := []lexer.TokenType{
		lexer.ASSIGN, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN,
		lexer.SLASH_ASSIGN, lexer.PERCENT_ASSIGN, lexer.POW_ASSIGN,
		lexer.AND_ASSIGN, lexer.OR_ASSIGN, lexer.COALESCE_ASSIGN,
		lexer.BITAND_ASSIGN, lexer.BITOR_ASSIGN, lexer.BITXOR_ASSIGN,
		lexer.SHL_ASSIGN, lexer.SHR_ASSIGN, lexer.USHR_ASSIGN,
	}
	for _, t := range assignOps {
		p.infixParseFns[t] = p.parseAssignmentExpression
	}

	p.infixParseFns[lexer.QUESTION] = p.parseConditionalExpression
	p.infixParseFns[lexer.COMMA] = p.parseSequenceExpression
	p.infixParseFns[lexer.LPAREN] = p.parseCallExpression
	p.infixParseFns[lexer.LBRACK] = p.parseComputedMemberExpression
	p.infixParseFns[lexer.DOT] = p.parseMemberExpression
	p.infixParseFns[lexer.QUESTION_DOT] = p.parseOptionalMemberOrCall
	p.infixParseFns[lexer.INC] = p.parseUpdatePostfix
	p.infixParseFns[lexer.DEC] = p.parseUpdatePostfix
	p.infixParseFns[lexer.TEMPLATE] = p.parseTaggedTemplate
}

// parseExpression is the Pratt-parsing core: parse one prefix expression,
// then keep absorbing infix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.errorf(p.cur.Pos, "unexpected token %s in expression", p.cur.Type)
		p.next()
		return &ast.UndefinedLiteral{}
	}
	left := prefix()

	for !p.atLineBreakBeforeCallOrIndex() && minPrec < p.curPrecedence() {
		infix, ok := p.infixParseFns[p.cur.Type]
		if !ok {
			break
		}
		left = infix(left)
	}
	return left
}

// atLineBreakBeforeCallOrIndex is always false — ASI never interrupts an
// in-progress expression in this parser's simplified model.
func (p *Parser) atLineBreakBeforeCallOrIndex() bool { return false }

func (p *Parser) parseIdentifier() ast.Expression {
	id := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	id.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return id
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	raw := p.cur.Literal
	val, _ := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
	n := &ast.NumberLiteral{Token: p.cur, Value: val, Raw: raw}
	n.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return n
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	b := &ast.BigIntLiteral{Token: p.cur, Raw: p.cur.Literal}
	b.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return b
}

func (p *Parser) parseStringLiteral() ast.Expression {
	s := &ast.StringLiteral{Token: p.cur, Value: p.cur.Literal, Quote: '"'}
	s.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return s
}

func (p *Parser) parseRegexLiteral() ast.Expression {
	raw := p.cur.Literal
	pattern, flags := strings.TrimPrefix(raw, "/"), ""
	if i := strings.LastIndex(raw, "/"); i > 0 {
		pattern, flags = raw[1:i], raw[i+1:]
	}
	r := &ast.RegexLiteral{Token: p.cur, Pattern: pattern, Flags: flags}
	r.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return r
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	b := &ast.BooleanLiteral{Token: p.cur, Value: p.cur.Type == lexer.TRUE}
	b.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return b
}

func (p *Parser) parseNullLiteral() ast.Expression {
	n := &ast.NullLiteral{Token: p.cur}
	n.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return n
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	u := &ast.UndefinedLiteral{Token: p.cur}
	u.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return u
}

func (p *Parser) parseThisExpression() ast.Expression {
	e := &ast.ThisExpression{}
	e.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return e
}

func (p *Parser) parseSuperExpression() ast.Expression {
	e := &ast.SuperExpression{}
	e.SetSpan(p.cur.Pos, p.cur.Pos)
	p.next()
	return e
}

// parseTemplateLiteral parses the whole backtick literal the lexer returned
// as a single TEMPLATE token, splitting its ${...} holes by recursively
// invoking a fresh Parser over each hole's source slice.
func (p *Parser) parseTemplateLiteral() ast.Expression {
	tok := p.cur
	start := tok.Pos
	lit := &ast.TemplateLiteral{}

	raw := strings.TrimSuffix(strings.TrimPrefix(tok.Literal, "`"), "`")
	var exprs []ast.Expression
	var quasis []ast.TemplateElement
	i := 0
	cur := strings.Builder{}
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			depth := 1
			j := i + 2
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth > 0 {
					j++
				}
			}
			exprSrc := raw[i+2 : j]
			quasis = append(quasis, ast.TemplateElement{Raw: cur.String(), Cooked: cur.String()})
			sub := New(exprSrc, p.file)
			exprs = append(exprs, sub.parseExpression(LOWEST))
			cur.Reset()
			i = j + 1
			continue
		}
		cur.WriteByte(raw[i])
		i++
	}
	quasis = append(quasis, ast.TemplateElement{Raw: cur.String(), Cooked: cur.String(), Tail: true})
	lit.Quasis = quasis
	lit.Expressions = exprs
	lit.SetSpan(start, tok.Pos)
	p.next()
	return lit
}

func (p *Parser) parseTaggedTemplate(tag ast.Expression) ast.Expression {
	quasi := p.parseTemplateLiteral().(*ast.TemplateLiteral)
	e := &ast.TaggedTemplateExpression{Tag: tag, Quasi: quasi}
	e.SetSpan(tag.Pos(), quasi.End())
	return e
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	start := p.cur.Pos
	op := ast.UnaryOperator(p.cur.Literal)
	p.next()
	arg := p.parseExpression(PREFIX)
	e := &ast.UnaryExpression{Operator: op, Argument: arg}
	e.SetSpan(start, arg.End())
	return e
}

func (p *Parser) parseUpdatePrefix() ast.Expression {
	start := p.cur.Pos
	op := p.cur.Literal
	p.next()
	arg := p.parseExpression(PREFIX)
	e := &ast.UpdateExpression{Operator: op, Argument: arg, Prefix: true}
	e.SetSpan(start, arg.End())
	return e
}

func (p *Parser) parseUpdatePostfix(left ast.Expression) ast.Expression {
	op := p.cur.Literal
	end := p.cur.Pos
	p.next()
	e := &ast.UpdateExpression{Operator: op, Argument: left, Prefix: false}
	e.SetSpan(left.Pos(), end)
	return e
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	start := p.cur.Pos
	p.next()
	arg := p.parseExpression(PREFIX)
	e := &ast.AwaitExpression{Argument: arg}
	e.SetSpan(start, arg.End())
	return e
}

func (p *Parser) parseYieldExpression() ast.Expression {
	start := p.cur.Pos
	p.next()
	delegate := false
	if p.curIs(lexer.STAR) {
		delegate = true
		p.next()
	}
	var arg ast.Expression
	if !p.curIs(lexer.SEMI) && !p.curIs(lexer.RBRACE) && !p.curIs(lexer.RPAREN) &&
		!p.curIs(lexer.RBRACK) && !p.curIs(lexer.COMMA) && !p.curIs(lexer.EOF) && !p.atLineBreak() {
		arg = p.parseExpression(ASSIGN)
	}
	e := &ast.YieldExpression{Argument: arg, Delegate: delegate}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	op := p.cur.Literal
	prec := p.curPrecedence()
	p.next()
	right := p.parseExpression(prec)
	e := &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	e.SetSpan(left.Pos(), right.End())
	return e
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	op := p.cur.Literal
	prec := p.curPrecedence()
	p.next()
	right := p.parseExpression(prec)
	e := &ast.LogicalExpression{Operator: op, Left: left, Right: right}
	e.SetSpan(left.Pos(), right.End())
	return e
}

func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	p.next()
	cons := p.parseExpression(ASSIGN)
	p.expect(lexer.COLON)
	alt := p.parseExpression(ASSIGN)
	e := &ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}
	e.SetSpan(test.Pos(), alt.End())
	return e
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	op := p.cur.Literal
	p.next()
	right := p.parseExpression(ASSIGN - 1)
	e := &ast.AssignmentExpression{Operator: op, Left: left, Right: right}
	e.SetSpan(left.Pos(), right.End())
	return e
}

func (p *Parser) parseSequenceExpression(first ast.Expression) ast.Expression {
	exprs := []ast.Expression{first}
	for p.curIs(lexer.COMMA) {
		p.next()
		exprs = append(exprs, p.parseExpression(ASSIGN))
	}
	e := &ast.SequenceExpression{Expressions: exprs}
	e.SetSpan(first.Pos(), exprs[len(exprs)-1].End())
	return e
}

func (p *Parser) parseArguments() []ast.Argument {
	p.expect(lexer.LPAREN)
	var args []ast.Argument
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		spread := false
		if p.curIs(lexer.ELLIPSIS) {
			spread = true
			p.next()
		}
		args = append(args, ast.Argument{Expr: p.parseExpression(ASSIGN), Spread: spread})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.next()
	}
	p.expect(lexer.RPAREN)
	return args
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	args := p.parseArguments()
	e := &ast.CallExpression{Callee: callee, Args: args}
	e.SetSpan(callee.Pos(), p.cur.Pos)
	return e
}

func (p *Parser) parseComputedMemberExpression(obj ast.Expression) ast.Expression {
	p.next()
	prop := p.parseExpression(LOWEST)
	p.expect(lexer.RBRACK)
	e := &ast.MemberExpression{Object: obj, Property: prop, Computed: true}
	e.SetSpan(obj.Pos(), p.cur.Pos)
	return e
}

func (p *Parser) parseMemberExpression(obj ast.Expression) ast.Expression {
	p.next()
	var prop ast.Expression
	if strings.HasPrefix(p.cur.Literal, "#") {
		prop = &ast.PrivateName{Token: p.cur, Name: strings.TrimPrefix(p.cur.Literal, "#")}
	} else {
		prop = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	}
	end := p.cur.Pos
	p.next()
	e := &ast.MemberExpression{Object: obj, Property: prop}
	e.SetSpan(obj.Pos(), end)
	return e
}

func (p *Parser) parseOptionalMemberOrCall(obj ast.Expression) ast.Expression {
	p.next()
	if c, ok := obj.(*ast.ChainExpression); ok {
		obj = c.Expr
	}
	if p.curIs(lexer.LPAREN) {
		args := p.parseArguments()
		e := &ast.CallExpression{Callee: obj, Args: args, Optional: true}
		e.SetSpan(obj.Pos(), p.cur.Pos)
		return wrapChain(e)
	}
	if p.curIs(lexer.LBRACK) {
		p.next()
		prop := p.parseExpression(LOWEST)
		p.expect(lexer.RBRACK)
		e := &ast.MemberExpression{Object: obj, Property: prop, Computed: true, Optional: true}
		e.SetSpan(obj.Pos(), p.cur.Pos)
		return wrapChain(e)
	}
	prop := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	end := p.cur.Pos
	p.next()
	e := &ast.MemberExpression{Object: obj, Property: prop, Optional: true}
	e.SetSpan(obj.Pos(), end)
	return wrapChain(e)
}

// wrapChain wraps an optional-chaining link in a ChainExpression unless it
// is already nested inside one (kept flat, not doubly wrapped).
func wrapChain(e ast.Expression) ast.Expression {
	if _, ok := e.(*ast.ChainExpression); ok {
		return e
	}
	c := &ast.ChainExpression{Expr: e}
	c.SetSpan(e.Pos(), e.End())
	return c
}

func (p *Parser) parseNewExpression() ast.Expression {
	start := p.cur.Pos
	p.next()
	if p.curIs(lexer.DOT) {
		p.next()
		prop := p.cur.Literal
		p.next()
		m := &ast.MetaProperty{Meta: "new", Property: prop}
		m.SetSpan(start, p.cur.Pos)
		return m
	}
	// CALL, not MEMBER: the callee absorbs a member-access chain (dots,
	// computed access) but stops short of a call, since that call belongs to
	// this NewExpression's own argument list, not the callee expression.
	callee := p.parseExpression(CALL)
	var args []ast.Argument
	if p.curIs(lexer.LPAREN) {
		args = p.parseArguments()
	}
	e := &ast.NewExpression{Callee: callee, Args: args}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) parseImportExpression() ast.Expression {
	start := p.cur.Pos
	p.next()
	if p.curIs(lexer.DOT) {
		p.next()
		prop := p.cur.Literal
		p.next()
		m := &ast.MetaProperty{Meta: "import", Property: prop}
		m.SetSpan(start, p.cur.Pos)
		return m
	}
	p.expect(lexer.LPAREN)
	src := p.parseExpression(ASSIGN)
	p.expect(lexer.RPAREN)
	e := &ast.ImportExpression{Source: src}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) parseArrayExpression() ast.Expression {
	start := p.cur.Pos
	p.next()
	var elements []ast.ArrayElement
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.COMMA) {
			elements = append(elements, ast.ArrayElement{})
			p.next()
			continue
		}
		spread := false
		if p.curIs(lexer.ELLIPSIS) {
			spread = true
			p.next()
		}
		elements = append(elements, ast.ArrayElement{Expr: p.parseExpression(ASSIGN), Spread: spread})
		if p.curIs(lexer.COMMA) {
			p.next()
		}
	}
	p.expect(lexer.RBRACK)
	e := &ast.ArrayExpression{Elements: elements}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) parsePropertyKey() (key ast.Expression, computed bool) {
	if p.curIs(lexer.LBRACK) {
		p.next()
		key = p.parseExpression(ASSIGN)
		p.expect(lexer.RBRACK)
		return key, true
	}
	if p.curIs(lexer.STRING) {
		s := &ast.StringLiteral{Token: p.cur, Value: p.cur.Literal, Quote: '"'}
		p.next()
		return s, false
	}
	if p.curIs(lexer.NUMBER) {
		return p.parseNumberLiteral(), false
	}
	id := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.next()
	return id, false
}

func (p *Parser) parseObjectExpression() ast.Expression {
	start := p.cur.Pos
	p.next()
	var props []ast.ObjectProperty
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.ELLIPSIS) {
			p.next()
			props = append(props, ast.ObjectProperty{Spread: true, Value: p.parseExpression(ASSIGN)})
			if p.curIs(lexer.COMMA) {
				p.next()
			}
			continue
		}

		async, generator, accessor := false, false, ""
		if p.curIs(lexer.ASYNC) && !p.peekIs(lexer.COLON) && !p.peekIs(lexer.LPAREN) && !p.peekIs(lexer.COMMA) && !p.peekIs(lexer.RBRACE) {
			async = true
			p.next()
		}
		if p.curIs(lexer.STAR) {
			generator = true
			p.next()
		}
		if (p.curIs(lexer.GET) || p.curIs(lexer.SET)) && !p.peekIs(lexer.COLON) && !p.peekIs(lexer.LPAREN) && !p.peekIs(lexer.COMMA) && !p.peekIs(lexer.RBRACE) {
			accessor = p.cur.Literal
			p.next()
		}

		key, computed := p.parsePropertyKey()

		if p.curIs(lexer.LPAREN) {
			params := p.parseParamList()
			body := p.parseBlockStatement()
			fn := &ast.FunctionExpression{Params: params, Body: body, Generator: generator, Async: async}
			props = append(props, ast.ObjectProperty{Key: key, Value: fn, Computed: computed, Method: accessor == ""})
			if p.curIs(lexer.COMMA) {
				p.next()
			}
			continue
		}

		if p.curIs(lexer.COLON) {
			p.next()
			val := p.parseExpression(ASSIGN)
			props = append(props, ast.ObjectProperty{Key: key, Value: val, Computed: computed})
		} else if p.curIs(lexer.ASSIGN) {
			p.next()
			def := p.parseExpression(ASSIGN)
			ap := &ast.AssignmentPattern{Left: key, Right: def}
			props = append(props, ast.ObjectProperty{Key: key, Value: ap, Shorthand: true})
		} else {
			props = append(props, ast.ObjectProperty{Key: key, Value: key, Shorthand: true})
		}
		if p.curIs(lexer.COMMA) {
			p.next()
		}
	}
	p.expect(lexer.RBRACE)
	e := &ast.ObjectExpression{Properties: props}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) parseFunctionExpression() ast.Expression {
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
	e := &ast.FunctionExpression{Name: name, Params: params, Body: body, Generator: generator}
	e.SetSpan(start, p.cur.Pos)
	return e
}

// parseParenOrArrow disambiguates `(expr)` from an arrow function's
// parameter list by speculatively parsing a parenthesized parameter list
// first and backing off to a grouped expression when `=>` doesn't follow.
func (p *Parser) parseParenOrArrow() ast.Expression {
	mark := p.snapshot()
	if params, ok := p.tryParseArrowParams(); ok && p.curIs(lexer.ARROW) {
		return p.finishArrowFunction(params, false)
	}
	p.restore(mark)

	start := p.cur.Pos
	p.next()
	expr := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	e := &ast.ParenthesizedExpression{Expr: expr}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) finishArrowFunction(params []ast.Param, async bool) ast.Expression {
	start := p.cur.Pos
	p.expect(lexer.ARROW)
	var body ast.Node
	if p.curIs(lexer.LBRACE) {
		body = p.parseBlockStatement()
	} else {
		body = p.parseExpression(ASSIGN)
	}
	e := &ast.ArrowFunctionExpression{Params: params, Body: body, Async: async}
	e.SetSpan(start, p.cur.Pos)
	return e
}

func (p *Parser) parseUpdateOrArrowIdent() ast.Expression {
	if p.peekIs(lexer.ARROW) {
		param := p.parseBindingTarget()
		return p.finishArrowFunction([]ast.Param{param}, false)
	}
	return p.parseIdentifier()
}

// parseAsyncPrefix handles `async function...`, `async (x) => ...`, and
// `async x => ...`, falling back to treating `async` as a plain identifier
// when none of those follow.
func (p *Parser) parseAsyncPrefix() ast.Expression {
	if p.peekIs(lexer.FUNCTION) {
		p.next()
		return p.parseFunctionExpression()
	}
	if p.peekIs(lexer.LPAREN) && !p.atLineBreak() {
		mark := p.snapshot()
		p.next()
		if params, ok := p.tryParseArrowParams(); ok && p.curIs(lexer.ARROW) {
			return p.finishArrowFunction(params, true)
		}
		p.restore(mark)
	}
	if p.peekIs(lexer.IDENT) && !p.atLineBreak() {
		mark := p.snapshot()
		p.next()
		param := p.parseBindingTarget()
		if p.curIs(lexer.ARROW) {
			return p.finishArrowFunction([]ast.Param{param}, true)
		}
		p.restore(mark)
	}
	return p.parseIdentifier()
}

func (p *Parser) parseClassExpression() ast.Expression {
	decl := p.parseClassDeclaration().(*ast.ClassDeclaration)
	e := &ast.ClassExpression{Name: decl.Name, SuperClass: decl.SuperClass, Body: decl.Body}
	e.SetSpan(decl.Pos(), decl.End())
	return e
}
