package passes

import (
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// rewriteUnlabeledBreak rewrites an unlabeled `break;` targeting the
// enclosing switch into `break L;`, stopping at any statement that
// introduces its own break/continue scope (loops, labels, nested switches,
// function bodies) so inner breaks are left alone.
func rewriteUnlabeledBreak(stmt ast.Statement, label string) ast.Statement {
	switch n := stmt.(type) {
	case *ast.BreakStatement:
		if n.Label == "" {
			return builder.Break(label)
		}
		return n
	case *ast.BlockStatement:
		n.Body = rewriteUnlabeledBreaks(n.Body, label)
		return n
	case *ast.IfStatement:
		n.Consequent = rewriteUnlabeledBreak(n.Consequent, label)
		if n.Alternate != nil {
			n.Alternate = rewriteUnlabeledBreak(n.Alternate, label)
		}
		return n
	case *ast.TryStatement:
		n.Block.Body = rewriteUnlabeledBreaks(n.Block.Body, label)
		if n.Handler != nil {
			n.Handler.Body.Body = rewriteUnlabeledBreaks(n.Handler.Body.Body, label)
		}
		if n.Finalizer != nil {
			n.Finalizer.Body = rewriteUnlabeledBreaks(n.Finalizer.Body, label)
		}
		return n
	case *ast.WithStatement:
		n.Body = rewriteUnlabeledBreak(n.Body, label)
		return n
	default:
		// WhileStatement, DoWhileStatement, ForStatement, ForInStatement,
		// ForOfStatement, SwitchStatement, LabeledStatement, function and
		// class declarations: break/continue boundaries, left untouched.
		return stmt
	}
}

func rewriteUnlabeledBreaks(stmts []ast.Statement, label string) []ast.Statement {
	for i, s := range stmts {
		stmts[i] = rewriteUnlabeledBreak(s, label)
	}
	return stmts
}

// hoistCaseDeclarations converts each top-level `let`/`const name = init;`
// declaration directly inside a case consequent into a plain assignment,
// recording name so the caller can emit a predeclaration at the switch
// head. Declarators that do not bind a single identifier (multi-declarator
// or destructuring) are left in place inside the case's own if-branch block
// — they keep their own scope there rather than being hoisted.
func hoistCaseDeclarations(stmts []ast.Statement, hoisted *[]string) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		decl, ok := s.(*ast.VariableDeclaration)
		if !ok || (decl.Kind != ast.Let && decl.Kind != ast.Const) || len(decl.Declarations) != 1 {
			out = append(out, s)
			continue
		}
		d := decl.Declarations[0]
		ident, ok := d.Id.(*ast.Identifier)
		if !ok {
			out = append(out, s)
			continue
		}
		*hoisted = append(*hoisted, ident.Name)
		if d.Init == nil {
			continue
		}
		out = append(out, builder.ExprStatement(builder.AssignName(ident.Name, d.Init)))
	}
	return out
}

// SwitchLowering rewrites `switch` into a labeled block holding a two-phase
// if-chain: one chain selecting a numeric case index into $r, a second
// chain running every case whose index is >= the selected one (preserving
// fall-through), matching SPEC_FULL.md's switch semantics.
func SwitchLowering(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.Before {
		return mapper.Normal, stmt
	}
	n, ok := stmt.(*ast.SwitchStatement)
	if !ok {
		return mapper.Normal, stmt
	}

	if len(n.Cases) == 0 {
		return mapper.Revisit, builder.ExprStatement(n.Discriminant)
	}

	label := state.Fresh()
	numCases := len(n.Cases)
	defaultIndex := numCases
	for i, c := range n.Cases {
		if c.Test == nil {
			defaultIndex = i
		}
	}
	hasDefault := defaultIndex < numCases

	var hoisted []string
	for i := range n.Cases {
		n.Cases[i].Consequent = rewriteUnlabeledBreaks(n.Cases[i].Consequent, label)
		n.Cases[i].Consequent = hoistCaseDeclarations(n.Cases[i].Consequent, &hoisted)
	}

	rName := state.Fresh()
	dName := state.Fresh()

	var testChain ast.Statement
	if hasDefault {
		testChain = builder.ExprStatement(builder.AssignName(rName, builder.Number(float64(defaultIndex), fmt.Sprint(defaultIndex))))
	}
	for i := numCases - 1; i >= 0; i-- {
		c := n.Cases[i]
		if c.Test == nil {
			continue
		}
		then := builder.ExprStatement(builder.AssignName(rName, builder.Number(float64(i), fmt.Sprint(i))))
		testChain = builder.If(builder.Binary("===", builder.Ident(dName), c.Test), then, testChain)
	}

	blockStmts := make([]ast.Statement, 0, len(hoisted)+numCases+4)
	for _, name := range hoisted {
		blockStmts = append(blockStmts, builder.Let(name, nil))
	}
	blockStmts = append(blockStmts, builder.Const(dName, n.Discriminant))
	blockStmts = append(blockStmts, builder.Let(rName, builder.Number(float64(numCases), fmt.Sprint(numCases))))
	if testChain != nil {
		blockStmts = append(blockStmts, testChain)
	}
	for i, c := range n.Cases {
		cond := builder.Binary("<=", builder.Ident(rName), builder.Number(float64(i), fmt.Sprint(i)))
		blockStmts = append(blockStmts, builder.If(cond, builder.Block(c.Consequent...), nil))
	}

	return mapper.Revisit, builder.Labeled(label, builder.Block(blockStmts...))
}
