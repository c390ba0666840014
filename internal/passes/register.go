// Package passes implements the nine lowering passes that eliminate
// do-while, for, for-in/for-of, switch, continue, and try/finally, and that
// normalize variable declarations, wired together on a single mapper.Mapper.
package passes

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// New builds a Mapper with every lowering pass registered in the order
// their interactions require.
//
// ForIn/ForOf/Switch/TryFinally each fire Revisit on Before, the instant
// they see their own node type, replacing it wholesale with a while loop or
// an equivalent block before ContinueElimination's Before case ever runs
// against the original node — exactly as before this pass was introduced,
// their registration order relative to ContinueElimination doesn't matter,
// and the continue pass only ever sees (and labels) the *replacement*
// while loop once it comes back around through descent.
//
// ForLowering and DoWhileLowering are different: they still combine body
// with a second statement (the update expression, or the sentinel
// reassignment), and that merge must happen strictly after body has
// already been labeled — or a continue-turned-labeled-break ends up
// jumping past the merged statement instead of just past body. So
// ContinueElimination is registered immediately before them and both now
// fire their Revisit on After, once ContinueElimination's own After case
// has already run on the same (still pre-merge) node and wrapped body in
// a label if one was needed. See DESIGN.md for the full argument.
func New() (*mapper.Mapper, *mapper.State) {
	state := mapper.NewState()
	m := mapper.New(state)

	m.AddStatementVisitor(ForInLowering)
	m.AddStatementVisitor(ForOfLowering)
	m.AddStatementVisitor(SwitchLowering)
	m.AddStatementVisitor(TryFinallyLowering)
	m.AddStatementVisitor(ContinueElimination)
	m.AddStatementVisitor(DoWhileLowering)
	m.AddStatementVisitor(ForLowering)
	m.AddStatementVisitor(VarDeclNormalization)

	m.SetTopLevelNormalizer(func(stmts []ast.Statement, s *mapper.State) []ast.Statement {
		out, _ := NormalizeBlockBody(stmts, s)
		return out
	})

	return m, state
}
