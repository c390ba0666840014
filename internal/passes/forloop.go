package passes

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/diagnostics"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// ForLowering rewrites C-style `for (init; test; update) body` into
//
//	{ init; while (test) { body; update; } }
//
// dropping the wrapping block entirely when init is absent. A missing test
// becomes the literal `true`. `using` declarations in the init position are
// rejected outright (see Non-goals).
//
// Runs on After, not Before: ContinueElimination must see and label the
// original, unmerged body first, or a continue rewritten to a labeled break
// would jump past update instead of just past body. Merging here, once the
// body already carries whatever label it needs, keeps that label scoped to
// body alone.
func ForLowering(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.After {
		return mapper.Normal, stmt
	}
	n, ok := stmt.(*ast.ForStatement)
	if !ok {
		return mapper.Normal, stmt
	}

	if decl, ok := n.Head.Init.(*ast.VariableDeclaration); ok && decl.Kind == ast.Using {
		state.Fail(diagnostics.New(diagnostics.UnsupportedConstruct, decl.Pos(),
			"'using' declarations are not supported in for-loop headers", "", ""))
		return mapper.Normal, stmt
	}

	test := n.Head.Test
	if test == nil {
		test = builder.Bool(true)
	}

	bodyStmts := []ast.Statement{n.Body}
	if n.Head.Update != nil {
		bodyStmts = append(bodyStmts, builder.ExprStatement(n.Head.Update))
	}
	loop := builder.While(test, builder.Block(bodyStmts...))

	if n.Head.Init == nil {
		return mapper.Revisit, loop
	}

	var initStmt ast.Statement
	switch init := n.Head.Init.(type) {
	case *ast.VariableDeclaration:
		initStmt = init
	case ast.Expression:
		initStmt = builder.ExprStatement(init)
	}
	return mapper.Revisit, builder.Block(initStmt, loop)
}
