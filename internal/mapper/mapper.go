// Package mapper implements the generic pre/post-order AST rewriting
// traversal that every lowering pass is built on, plus the transformation
// state (fresh-name counter, loop/label stack) passes share.
package mapper

import (
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
)

// Action is a visitor's instruction to the traversal.
type Action int

const (
	// Normal continues with the remaining visitors for this phase; on
	// Before, the traversal descends into children once all Before
	// visitors have run.
	Normal Action = iota
	// Skip continues with the remaining visitors for this phase but does
	// not descend into children. Meaningful on Before only.
	Skip
	// Revisit stops running visitors for this phase, does not descend,
	// and restarts the whole enter/descend/exit cycle on the returned
	// node. This is the mechanism by which a pass that lowers construct X
	// into a tree containing construct Y guarantees Y is itself lowered.
	Revisit
)

// Phase is when a visitor runs relative to descent into children.
type Phase int

const (
	Before Phase = iota
	After
)

// LoopSentinel names the two special, deliberately-distinct loop_stack
// entry kinds used by different passes. See SPEC_FULL.md §9: an
// implementation must not confuse them during lookup.
type LoopSentinel string

const (
	// LoopSentinelContinue is the continue pass's placeholder name for an
	// unlabeled loop entry.
	LoopSentinelContinue LoopSentinel = "#loop"
	// LoopSentinelEscape is the try/finally pass's placeholder name for an
	// unlabeled break target that escapes to an enclosing loop.
	LoopSentinelEscape LoopSentinel = "#looped"
)

// LoopEntry is one entry of the loop/label stack: a loop or LabeledStatement
// currently being walked, plus its lazily-generated break/continue label.
type LoopEntry struct {
	Name           string // a real label name, or one of the LoopSentinel values
	GeneratedLabel string // "" until something actually needs one
}

// State is the mutable, shared transformation state a single Transform call
// owns: the monotone fresh-name counter and the loop/label stack. It is not
// safe for concurrent use — each transformation constructs and owns exactly
// one State for its lifetime (see SPEC_FULL.md §5).
type State struct {
	nextID    uint64
	loopStack []LoopEntry
	err       error
}

// Fail records a fatal error from within a visitor. Once set, the Mapper
// aborts the remaining traversal and returns this error from Run. Only the
// first call takes effect.
func (s *State) Fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first error recorded by Fail, or nil.
func (s *State) Err() error { return s.err }

// NewState returns a fresh, empty State.
func NewState() *State { return &State{} }

// FreshNamePrefix is the reserved identifier namespace for generated names.
const FreshNamePrefix = "$zeroSugar"

// Fresh returns a new identifier name guaranteed not to collide with any
// other name this State has generated, and increments the counter.
func (s *State) Fresh() string {
	name := fmt.Sprintf("%s%d", FreshNamePrefix, s.nextID)
	s.nextID++
	return name
}

// PushLoop pushes a loop/label entry onto the stack.
func (s *State) PushLoop(name string) {
	s.loopStack = append(s.loopStack, LoopEntry{Name: name})
}

// PopLoop pops the top loop/label entry and returns it.
func (s *State) PopLoop() LoopEntry {
	n := len(s.loopStack)
	entry := s.loopStack[n-1]
	s.loopStack = s.loopStack[:n-1]
	return entry
}

// Top returns a pointer to the top-of-stack entry so its GeneratedLabel can
// be populated lazily in place.
func (s *State) Top() *LoopEntry {
	if len(s.loopStack) == 0 {
		return nil
	}
	return &s.loopStack[len(s.loopStack)-1]
}

// Depth returns the current loop/label stack depth.
func (s *State) Depth() int { return len(s.loopStack) }

// EntryAt returns a pointer to the stack entry at the given depth-from-top
// index (0 = top), or nil if out of range.
func (s *State) EntryAt(fromTop int) *LoopEntry {
	idx := len(s.loopStack) - 1 - fromTop
	if idx < 0 || idx >= len(s.loopStack) {
		return nil
	}
	return &s.loopStack[idx]
}

// FindLoop searches the loop stack from the top for an entry matching name
// (or, if name == "", the first loop-sentinel entry encountered — the
// "nearest enclosing loop" lookup used by unlabeled continue/break). It
// returns the index from the top (0 = top) and whether a match was found.
func (s *State) FindLoop(name string) (fromTop int, ok bool) {
	for i := len(s.loopStack) - 1; i >= 0; i-- {
		entry := s.loopStack[i]
		if name == "" {
			if entry.Name == string(LoopSentinelContinue) || entry.Name == string(LoopSentinelEscape) {
				return len(s.loopStack) - 1 - i, true
			}
			continue
		}
		if entry.Name == name {
			return len(s.loopStack) - 1 - i, true
		}
	}
	return 0, false
}

// StatementVisitor inspects/rewrites a statement at a given phase.
type StatementVisitor func(stmt ast.Statement, phase Phase, state *State) (Action, ast.Statement)

// ExpressionVisitor inspects/rewrites an expression at a given phase.
type ExpressionVisitor func(expr ast.Expression, phase Phase, state *State) (Action, ast.Expression)

// UnsupportedConstructError reports a construct the core refuses to lower.
type UnsupportedConstructError struct {
	Kind string
	Pos  interface{ String() string }
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct %s at %s", e.Kind, e.Pos.String())
}

// Mapper walks a Program invoking every registered visitor on every
// statement and expression, both before and after descending into
// children, replacing nodes with whatever the visitors return.
type Mapper struct {
	stmtVisitors []StatementVisitor
	exprVisitors []ExpressionVisitor
	state        *State
	// revisitBudget bounds the number of times a single node may be
	// revisited before the traversal gives up and reports an internal
	// error, catching an accidental oscillation between passes (see
	// SPEC_FULL.md §9).
	revisitBudget int
	// normalizeTopLevel mirrors the BlockStatement-scoped var-decl
	// normalization pass at the Program root, which the traversal never
	// visits as a Statement in its own right (see SPEC_FULL.md §4.2: "the
	// program's body is treated as if wrapped in a synthetic block").
	normalizeTopLevel func([]ast.Statement, *State) []ast.Statement
}

// SetTopLevelNormalizer registers the hook Run applies to program.Statements
// before per-statement traversal begins, so a program-root declaration gets
// the exact same treatment a same-shaped declaration would get inside any
// nested block.
func (m *Mapper) SetTopLevelNormalizer(fn func([]ast.Statement, *State) []ast.Statement) {
	m.normalizeTopLevel = fn
}

// New creates a Mapper sharing the given State.
func New(state *State) *Mapper {
	return &Mapper{state: state, revisitBudget: 10000}
}

// AddStatementVisitor registers a statement visitor, run in registration
// order within each phase.
func (m *Mapper) AddStatementVisitor(v StatementVisitor) { m.stmtVisitors = append(m.stmtVisitors, v) }

// AddExpressionVisitor registers an expression visitor, run in registration
// order within each phase.
func (m *Mapper) AddExpressionVisitor(v ExpressionVisitor) {
	m.exprVisitors = append(m.exprVisitors, v)
}

// State returns the Mapper's shared transformation state.
func (m *Mapper) State() *State { return m.state }

// Run walks program once, replacing its Statements wholesale with the
// lowered result.
func (m *Mapper) Run(program *ast.Program) error {
	if m.normalizeTopLevel != nil {
		program.Statements = m.normalizeTopLevel(program.Statements, m.state)
	}

	var walkErr error
	wrapped := make([]ast.Statement, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		out, err := m.visitStatement(stmt)
		if err != nil {
			walkErr = err
			break
		}
		wrapped = append(wrapped, out)
	}
	if walkErr != nil {
		return walkErr
	}
	program.Statements = wrapped
	return nil
}

func (m *Mapper) runStmtPhase(s ast.Statement, phase Phase) (Action, ast.Statement) {
	action := Normal
	for _, v := range m.stmtVisitors {
		a, ns := v(s, phase, m.state)
		s = ns
		if m.state.Err() != nil {
			return Normal, s
		}
		if a == Revisit {
			return Revisit, s
		}
		if a == Skip {
			action = Skip
		}
	}
	return action, s
}

func (m *Mapper) runExprPhase(e ast.Expression, phase Phase) (Action, ast.Expression) {
	action := Normal
	for _, v := range m.exprVisitors {
		a, ne := v(e, phase, m.state)
		e = ne
		if m.state.Err() != nil {
			return Normal, e
		}
		if a == Revisit {
			return Revisit, e
		}
		if a == Skip {
			action = Skip
		}
	}
	return action, e
}

// visitStatement runs the enter->descend->exit state machine on a single
// statement, honoring Revisit/Skip, and returns the lowered replacement.
func (m *Mapper) visitStatement(s ast.Statement) (ast.Statement, error) {
	visits := 0
	for {
		visits++
		if visits > m.revisitBudget {
			return nil, fmt.Errorf("mapper: revisit budget exceeded on %T (possible pass oscillation)", s)
		}

		action, next := m.runStmtPhase(s, Before)
		s = next
		if err := m.state.Err(); err != nil {
			return nil, err
		}
		if action == Revisit {
			continue
		}
		if action != Skip {
			descended, err := m.descendStatement(s)
			if err != nil {
				return nil, err
			}
			s = descended
		}

		action, next = m.runStmtPhase(s, After)
		s = next
		if err := m.state.Err(); err != nil {
			return nil, err
		}
		if action == Revisit {
			continue
		}
		return s, nil
	}
}

// visitExpression is the expression analogue of visitStatement.
func (m *Mapper) visitExpression(e ast.Expression) (ast.Expression, error) {
	visits := 0
	for {
		visits++
		if visits > m.revisitBudget {
			return nil, fmt.Errorf("mapper: revisit budget exceeded on %T (possible pass oscillation)", e)
		}

		action, next := m.runExprPhase(e, Before)
		e = next
		if err := m.state.Err(); err != nil {
			return nil, err
		}
		if action == Revisit {
			continue
		}
		if action != Skip {
			descended, err := m.descendExpression(e)
			if err != nil {
				return nil, err
			}
			e = descended
		}

		action, next = m.runExprPhase(e, After)
		e = next
		if err := m.state.Err(); err != nil {
			return nil, err
		}
		if action == Revisit {
			continue
		}
		return e, nil
	}
}
