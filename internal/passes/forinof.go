package passes

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/diagnostics"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// headerBinding is the result of normalizing a for-in/for-of header: the
// single identifier the header now binds, whether it binds via declaration
// (and which kind) or bare assignment, and the statement (if any) that
// reconstructs the original pattern/member target from that identifier.
type headerBinding struct {
	name    string
	isDecl  bool
	kind    ast.DeclarationKind
	prepend ast.Statement
}

// normalizeForHeader implements the header-normalization helper shared by
// the for-in and for-of passes: a destructuring or member-access left-hand
// side is replaced by a single fresh identifier, with a statement prepended
// to the loop body that reconstructs the original target from it. A header
// that already binds a bare identifier is left untouched.
func normalizeForHeader(left *ast.ForInOfLeft, state *mapper.State) headerBinding {
	if left.Decl != nil {
		d := left.Decl.Declarations[0]
		if ident, ok := d.Id.(*ast.Identifier); ok {
			return headerBinding{name: ident.Name, isDecl: true, kind: left.Decl.Kind}
		}
		n := state.Fresh()
		prepend := builder.VariableDeclaratorPattern(left.Decl.Kind, d.Id, builder.Ident(n))
		left.Decl.Declarations[0] = ast.VariableDeclarator{Id: builder.Ident(n)}
		return headerBinding{name: n, isDecl: true, kind: left.Decl.Kind, prepend: prepend}
	}

	if ident, ok := left.Target.(*ast.Identifier); ok {
		return headerBinding{name: ident.Name}
	}
	n := state.Fresh()
	prepend := builder.ExprStatement(builder.Assign(left.Target, builder.Ident(n)))
	left.Target = builder.Ident(n)
	return headerBinding{name: n, prepend: prepend}
}

// buildIterationWhile assembles the common
//
//	{
//	  const $it = helperCall(rhs)
//	  let $n
//	  while ($n = $it.next()) {
//	    if ($n.done === true) break
//	    <binding> = $n.value
//	    <prepend?>
//	    body
//	  }
//	}
//
// shape shared by for-in and for-of lowering.
func buildIterationWhile(helper string, rhs ast.Expression, left *ast.ForInOfLeft, body ast.Statement, state *mapper.State) ast.Statement {
	bind := normalizeForHeader(left, state)

	itName := state.Fresh()
	nName := state.Fresh()

	var bindingAssign ast.Statement
	valueExpr := builder.Member(builder.Ident(nName), "value")
	if bind.isDecl {
		bindingAssign = builder.VariableDeclaration(bind.kind, bind.name, valueExpr)
	} else {
		bindingAssign = builder.ExprStatement(builder.AssignName(bind.name, valueExpr))
	}

	innerBody := []ast.Statement{
		builder.If(
			builder.Binary("===", builder.Member(builder.Ident(nName), "done"), builder.Bool(true)),
			builder.Break(""),
			nil,
		),
		bindingAssign,
	}
	if bind.prepend != nil {
		innerBody = append(innerBody, bind.prepend)
	}
	innerBody = append(innerBody, body)

	loopTest := builder.Assign(
		builder.Ident(nName),
		builder.Call(builder.Member(builder.Ident(itName), "next")),
	)
	whileLoop := builder.While(loopTest, builder.Block(innerBody...))

	return builder.Block(
		builder.Const(itName, builder.Call(builder.Ident(helper), rhs)),
		builder.Let(nName, nil),
		whileLoop,
	)
}

// ForInLowering rewrites `for (left in right) body` into a while loop driven
// by the assumed $forIn(right) runtime helper.
func ForInLowering(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.Before {
		return mapper.Normal, stmt
	}
	n, ok := stmt.(*ast.ForInStatement)
	if !ok {
		return mapper.Normal, stmt
	}
	out := buildIterationWhile("$forIn", n.Right, &n.Left, n.Body, state)
	return mapper.Revisit, out
}

// ForOfLowering rewrites `for (left of right) body` into a while loop driven
// by the assumed $forOf(right) runtime helper. `for await (... of ...)` is
// rejected.
func ForOfLowering(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.Before {
		return mapper.Normal, stmt
	}
	n, ok := stmt.(*ast.ForOfStatement)
	if !ok {
		return mapper.Normal, stmt
	}
	if n.Await {
		state.Fail(diagnostics.New(diagnostics.UnsupportedConstruct, n.Pos(),
			"'for await (... of ...)' is not supported", "", ""))
		return mapper.Normal, stmt
	}
	out := buildIterationWhile("$forOf", n.Right, &n.Left, n.Body, state)
	return mapper.Revisit, out
}
