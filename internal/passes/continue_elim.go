package passes

import (
	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// isLoopStatement reports whether stmt is one of the five loop shapes the
// continue pass tracks on the loop/label stack.
func isLoopStatement(stmt ast.Statement) bool {
	switch stmt.(type) {
	case *ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement,
		*ast.ForInStatement, *ast.ForOfStatement:
		return true
	default:
		return false
	}
}

func loopBody(stmt ast.Statement) ast.Statement {
	switch n := stmt.(type) {
	case *ast.WhileStatement:
		return n.Body
	case *ast.DoWhileStatement:
		return n.Body
	case *ast.ForStatement:
		return n.Body
	case *ast.ForInStatement:
		return n.Body
	case *ast.ForOfStatement:
		return n.Body
	}
	return nil
}

func setLoopBody(stmt ast.Statement, body ast.Statement) {
	switch n := stmt.(type) {
	case *ast.WhileStatement:
		n.Body = body
	case *ast.DoWhileStatement:
		n.Body = body
	case *ast.ForStatement:
		n.Body = body
	case *ast.ForInStatement:
		n.Body = body
	case *ast.ForOfStatement:
		n.Body = body
	}
}

// ContinueElimination rewrites `continue [label]` into a labeled `break`,
// wrapping the target loop's body in a generated LabeledStatement the first
// time one of its continues needs a target to break to.
func ContinueElimination(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	switch phase {
	case mapper.Before:
		switch n := stmt.(type) {
		case *ast.LabeledStatement:
			state.PushLoop(n.Label)
		default:
			if isLoopStatement(stmt) {
				state.PushLoop(string(mapper.LoopSentinelContinue))
			}
		}

		if cont, ok := stmt.(*ast.ContinueStatement); ok {
			fromTop, ok := state.FindLoop(cont.Label)
			if !ok {
				return mapper.Normal, stmt
			}
			entry := state.EntryAt(fromTop)
			// Walk up from a label entry to the loop it actually labels:
			// a continue may name any of several stacked labels on one loop.
			for entry.Name != string(mapper.LoopSentinelContinue) && fromTop > 0 {
				fromTop--
				entry = state.EntryAt(fromTop)
			}
			if entry.GeneratedLabel == "" {
				entry.GeneratedLabel = state.Fresh()
			}
			return mapper.Revisit, builder.Break(entry.GeneratedLabel)
		}
		return mapper.Normal, stmt

	case mapper.After:
		switch n := stmt.(type) {
		case *ast.LabeledStatement:
			state.PopLoop()
			return mapper.Normal, n
		default:
			if isLoopStatement(stmt) {
				entry := state.PopLoop()
				if entry.GeneratedLabel != "" {
					setLoopBody(stmt, builder.Labeled(entry.GeneratedLabel, loopBody(stmt)))
				}
			}
			return mapper.Normal, stmt
		}
	}
	return mapper.Normal, stmt
}
