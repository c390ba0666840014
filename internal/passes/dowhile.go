package passes

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// DoWhileLowering rewrites `do body while (t)` into
//
//	{ let $s = true; while ($s) { body; $s = t; } }
//
// where $s is a fresh boolean sentinel seeded true so the loop always runs
// its first iteration before the test is ever consulted.
//
// Runs on After, not Before: ContinueElimination must see and label the
// original, unmerged body first, or a continue rewritten to a labeled break
// would jump past the sentinel reassignment instead of just past body,
// leaving $s stuck and the loop spinning forever on a continued iteration.
func DoWhileLowering(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.After {
		return mapper.Normal, stmt
	}
	n, ok := stmt.(*ast.DoWhileStatement)
	if !ok {
		return mapper.Normal, stmt
	}

	sentinel := state.Fresh()
	loop := builder.While(
		builder.Ident(sentinel),
		builder.Block(n.Body, builder.ExprStatement(builder.AssignName(sentinel, n.Test))),
	)
	out := builder.Block(builder.Let(sentinel, builder.Bool(true)), loop)
	return mapper.Revisit, out
}
