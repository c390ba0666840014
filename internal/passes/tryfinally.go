package passes

import (
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// escapeTargets assigns a stable, first-seen-order index to each distinct
// break target ("" for an unlabeled break, or a label name) encountered
// while rewriting a try/finally's protected regions.
type escapeTargets struct {
	order []string
	index map[string]int
}

func newEscapeTargets() *escapeTargets {
	return &escapeTargets{index: map[string]int{}}
}

func (e *escapeTargets) indexFor(key string) int {
	if idx, ok := e.index[key]; ok {
		return idx
	}
	idx := len(e.order)
	e.order = append(e.order, key)
	e.index[key] = idx
	return idx
}

// rewriteAbrupt rewrites `return` and `break` so they record their outcome
// in the shared state variables and break out to the labeled try, instead
// of completing abruptly past a `finally` that must still run.
//
// An unlabeled break inside a loop or switch targets that loop/switch
// itself, not the try, so it's left alone — but control still recurses
// into the loop/switch body, because a *labeled* break down there can name
// a label declared outside both the loop and the try, and that one still
// has to run the finally on its way out. localLabels tracks which labels
// are declared inside the try (and so are still a local, non-escaping
// target); inLoop tracks whether an unlabeled break is currently shadowed
// by an enclosing loop/switch. Function/class bodies are never recursed
// into — they start a new scope a break/return can't reach across. A
// nested try/catch with no finally is transparent to abrupt completion and
// is recursed into; one with its own finally lowers independently and owns
// its own breaks/returns.
func rewriteAbrupt(stmt ast.Statement, targets *escapeTargets, actionName, valueName, tryLabel string, inLoop bool, localLabels map[string]bool) ast.Statement {
	switch n := stmt.(type) {
	case *ast.BreakStatement:
		if n.Label != "" {
			if localLabels[n.Label] {
				return n
			}
		} else if inLoop {
			return n
		}
		idx := targets.indexFor(n.Label)
		return builder.Block(
			builder.ExprStatement(builder.AssignName(actionName, builder.Number(float64(3+idx), fmt.Sprint(3+idx)))),
			builder.Break(tryLabel),
		)

	case *ast.ReturnStatement:
		value := ast.Expression(builder.Undefined())
		if n.Argument != nil {
			value = n.Argument
		}
		return builder.Block(
			builder.ExprStatement(builder.AssignName(actionName, builder.Number(2, "2"))),
			builder.ExprStatement(builder.AssignName(valueName, value)),
			builder.Break(tryLabel),
		)

	case *ast.BlockStatement:
		n.Body = rewriteAbruptList(n.Body, targets, actionName, valueName, tryLabel, inLoop, localLabels)
		return n

	case *ast.IfStatement:
		n.Consequent = rewriteAbrupt(n.Consequent, targets, actionName, valueName, tryLabel, inLoop, localLabels)
		if n.Alternate != nil {
			n.Alternate = rewriteAbrupt(n.Alternate, targets, actionName, valueName, tryLabel, inLoop, localLabels)
		}
		return n

	case *ast.WithStatement:
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, inLoop, localLabels)
		return n

	case *ast.LabeledStatement:
		nested := make(map[string]bool, len(localLabels)+1)
		for label := range localLabels {
			nested[label] = true
		}
		nested[n.Label] = true
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, inLoop, nested)
		return n

	case *ast.WhileStatement:
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, true, localLabels)
		return n

	case *ast.DoWhileStatement:
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, true, localLabels)
		return n

	case *ast.ForStatement:
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, true, localLabels)
		return n

	case *ast.ForInStatement:
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, true, localLabels)
		return n

	case *ast.ForOfStatement:
		n.Body = rewriteAbrupt(n.Body, targets, actionName, valueName, tryLabel, true, localLabels)
		return n

	case *ast.SwitchStatement:
		for i := range n.Cases {
			n.Cases[i].Consequent = rewriteAbruptList(n.Cases[i].Consequent, targets, actionName, valueName, tryLabel, true, localLabels)
		}
		return n

	case *ast.TryStatement:
		if n.Finalizer != nil {
			return n
		}
		n.Block.Body = rewriteAbruptList(n.Block.Body, targets, actionName, valueName, tryLabel, inLoop, localLabels)
		if n.Handler != nil {
			n.Handler.Body.Body = rewriteAbruptList(n.Handler.Body.Body, targets, actionName, valueName, tryLabel, inLoop, localLabels)
		}
		return n

	default:
		return stmt
	}
}

func rewriteAbruptList(stmts []ast.Statement, targets *escapeTargets, actionName, valueName, tryLabel string, inLoop bool, localLabels map[string]bool) []ast.Statement {
	for i, s := range stmts {
		stmts[i] = rewriteAbrupt(s, targets, actionName, valueName, tryLabel, inLoop, localLabels)
	}
	return stmts
}

func stateCaptureCatch(actionName, valueName string, state *mapper.State) *ast.CatchClause {
	e := state.Fresh()
	return builder.Catch(builder.Ident(e), builder.Block(
		builder.ExprStatement(builder.AssignName(actionName, builder.Number(1, "1"))),
		builder.ExprStatement(builder.AssignName(valueName, builder.Ident(e))),
	))
}

// TryFinallyLowering eliminates `finally` by wrapping the protected region
// (and, if present, the user's own catch) in a catch that captures abrupt
// completions into state variables, running the original finally body, and
// dispatching on the recorded outcome afterward.
func TryFinallyLowering(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.Before {
		return mapper.Normal, stmt
	}
	n, ok := stmt.(*ast.TryStatement)
	if !ok || n.Finalizer == nil {
		return mapper.Normal, stmt
	}

	actionName := state.Fresh()
	valueName := state.Fresh()
	tryLabel := state.Fresh()
	targets := newEscapeTargets()

	n.Block.Body = rewriteAbruptList(n.Block.Body, targets, actionName, valueName, tryLabel, false, nil)

	var newHandler *ast.CatchClause
	if n.Handler == nil {
		newHandler = stateCaptureCatch(actionName, valueName, state)
	} else {
		n.Handler.Body.Body = rewriteAbruptList(n.Handler.Body.Body, targets, actionName, valueName, tryLabel, false, nil)
		inner := builder.Try(n.Handler.Body, stateCaptureCatch(actionName, valueName, state), nil)
		newHandler = builder.Catch(n.Handler.Param, builder.Block(inner))
	}

	labeledTry := builder.Labeled(tryLabel, builder.Try(n.Block, newHandler, nil))

	stmts := []ast.Statement{
		builder.Let(actionName, builder.Number(0, "0")),
		builder.Let(valueName, builder.Undefined()),
		labeledTry,
	}
	stmts = append(stmts, n.Finalizer.Body...)
	stmts = append(stmts,
		builder.If(builder.Binary("===", builder.Ident(actionName), builder.Number(1, "1")), builder.Throw(builder.Ident(valueName)), nil),
		builder.If(builder.Binary("===", builder.Ident(actionName), builder.Number(2, "2")), builder.Return(builder.Ident(valueName)), nil),
	)
	for i, key := range targets.order {
		idx := 3 + i
		cond := builder.Binary("===", builder.Ident(actionName), builder.Number(float64(idx), fmt.Sprint(idx)))
		stmts = append(stmts, builder.If(cond, builder.Break(key), nil))
	}

	return mapper.Revisit, builder.Block(stmts...)
}
