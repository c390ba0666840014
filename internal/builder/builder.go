// Package builder provides small, pure constructor functions for the AST
// shapes the lowering passes synthesize. Keeping construction in one place
// (rather than inlining struct literals across nine passes) is the same
// separation the reference desugaring transforms kept between their passes
// and their shared node-builder helpers.
package builder

import "github.com/zerosugarjs/zerosugar/ast"

func Block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Body: stmts}
}

func ExprStatement(expr ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expr: expr}
}

func Ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func Bool(v bool) *ast.BooleanLiteral {
	return &ast.BooleanLiteral{Value: v}
}

func Number(v float64, raw string) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: v, Raw: raw}
}

func String(v string) *ast.StringLiteral {
	return &ast.StringLiteral{Value: v, Quote: '"'}
}

func Undefined() *ast.UndefinedLiteral {
	return &ast.UndefinedLiteral{}
}

func Null() *ast.NullLiteral {
	return &ast.NullLiteral{}
}

func Array(elements ...ast.Expression) *ast.ArrayExpression {
	els := make([]ast.ArrayElement, len(elements))
	for i, e := range elements {
		els[i] = ast.ArrayElement{Expr: e}
	}
	return &ast.ArrayExpression{Elements: els}
}

func Binary(op string, left, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: op, Left: left, Right: right}
}

func Logical(op string, left, right ast.Expression) *ast.LogicalExpression {
	return &ast.LogicalExpression{Operator: op, Left: left, Right: right}
}

func Unary(op ast.UnaryOperator, arg ast.Expression) *ast.UnaryExpression {
	return &ast.UnaryExpression{Operator: op, Argument: arg}
}

func Assign(left, right ast.Expression) *ast.AssignmentExpression {
	return AssignOp("=", left, right)
}

func AssignOp(op string, left, right ast.Expression) *ast.AssignmentExpression {
	return &ast.AssignmentExpression{Operator: op, Left: left, Right: right}
}

// AssignName builds `name = right` as a statement-level expression.
func AssignName(name string, right ast.Expression) *ast.AssignmentExpression {
	return Assign(Ident(name), right)
}

// AssignMember builds `object.property = right` (non-computed).
func AssignMember(object ast.Expression, property string, right ast.Expression) *ast.AssignmentExpression {
	return Assign(Member(object, property), right)
}

// Member builds a non-computed `object.property` access.
func Member(object ast.Expression, property string) *ast.MemberExpression {
	return &ast.MemberExpression{Object: object, Property: Ident(property)}
}

// MemberComputed builds a computed `object[property]` access.
func MemberComputed(object, property ast.Expression) *ast.MemberExpression {
	return &ast.MemberExpression{Object: object, Property: property, Computed: true}
}

// MemberComputedIdent builds `object[identName]`, i.e. a computed access
// whose key is itself a bare identifier reference rather than a literal.
func MemberComputedIdent(object ast.Expression, identName string) *ast.MemberExpression {
	return MemberComputed(object, Ident(identName))
}

func Call(callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	as := make([]ast.Argument, len(args))
	for i, a := range args {
		as[i] = ast.Argument{Expr: a}
	}
	return &ast.CallExpression{Callee: callee, Args: as}
}

func VariableDeclaration(kind ast.DeclarationKind, name string, init ast.Expression) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Kind:         kind,
		Declarations: []ast.VariableDeclarator{{Id: Ident(name), Init: init}},
	}
}

func Let(name string, init ast.Expression) *ast.VariableDeclaration {
	return VariableDeclaration(ast.Let, name, init)
}

func Const(name string, init ast.Expression) *ast.VariableDeclaration {
	return VariableDeclaration(ast.Const, name, init)
}

// VariableDeclaratorPattern builds a single declarator binding an arbitrary
// pattern (used when normalizing a destructuring declarator into its
// temporary-then-pattern-assignment form).
func VariableDeclaratorPattern(kind ast.DeclarationKind, pattern ast.Pattern, init ast.Expression) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Kind:         kind,
		Declarations: []ast.VariableDeclarator{{Id: pattern, Init: init}},
	}
}

func If(test ast.Expression, consequent ast.Statement, alternate ast.Statement) *ast.IfStatement {
	return &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func While(test ast.Expression, body ast.Statement) *ast.WhileStatement {
	return &ast.WhileStatement{Test: test, Body: body}
}

func Labeled(label string, body ast.Statement) *ast.LabeledStatement {
	return &ast.LabeledStatement{Label: label, Body: body}
}

func Break(label string) *ast.BreakStatement {
	return &ast.BreakStatement{Label: label}
}

func Continue(label string) *ast.ContinueStatement {
	return &ast.ContinueStatement{Label: label}
}

func Return(arg ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Argument: arg}
}

func Throw(arg ast.Expression) *ast.ThrowStatement {
	return &ast.ThrowStatement{Argument: arg}
}

func Try(block *ast.BlockStatement, handler *ast.CatchClause, finalizer *ast.BlockStatement) *ast.TryStatement {
	return &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
}

func Catch(param ast.Pattern, body *ast.BlockStatement) *ast.CatchClause {
	return &ast.CatchClause{Param: param, Body: body}
}

func Empty() *ast.EmptyStatement {
	return &ast.EmptyStatement{}
}

// BindingPattern wraps an identifier binding target; kept as a distinct name
// so pass code reads as "build the binding" rather than "build the value".
func BindingPattern(name string) ast.Pattern {
	return Ident(name)
}
