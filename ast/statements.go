package ast

import (
	"bytes"
	"strings"
)

// BlockStatement is `{ stmts... }`.
type BlockStatement struct {
	base
	Body []Statement
}

func (s *BlockStatement) statementNode()      {}
func (s *BlockStatement) TokenLiteral() string { return "{" }
func (s *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range s.Body {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ base }

func (s *EmptyStatement) statementNode()      {}
func (s *EmptyStatement) TokenLiteral() string { return ";" }
func (s *EmptyStatement) String() string       { return ";" }

// ExpressionStatement is `expr;`.
type ExpressionStatement struct {
	base
	Expr Expression
}

func (s *ExpressionStatement) statementNode()      {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExpressionStatement) String() string       { return s.Expr.String() + ";" }

// DeclarationKind enumerates `var`/`let`/`const`/`using`.
type DeclarationKind string

const (
	Var   DeclarationKind = "var"
	Let   DeclarationKind = "let"
	Const DeclarationKind = "const"
	Using DeclarationKind = "using"
)

// VariableDeclarator is one `binding = init` entry of a declaration.
type VariableDeclarator struct {
	Id   Pattern
	Init Expression // nil if omitted in source
}

// VariableDeclaration is `kind declarator, declarator, ...;`. After the
// var-decl normalization pass every declaration produced by this core
// carries exactly one declarator with a single-identifier binding and a
// non-nil initializer.
type VariableDeclaration struct {
	base
	Kind         DeclarationKind
	Declarations []VariableDeclarator
}

func (s *VariableDeclaration) statementNode()      {}
func (s *VariableDeclaration) TokenLiteral() string { return string(s.Kind) }
func (s *VariableDeclaration) String() string {
	parts := make([]string, len(s.Declarations))
	for i, d := range s.Declarations {
		if d.Init != nil {
			parts[i] = d.Id.String() + " = " + d.Init.String()
		} else {
			parts[i] = d.Id.String()
		}
	}
	return string(s.Kind) + " " + strings.Join(parts, ", ") + ";"
}

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	base
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else
}

func (s *IfStatement) statementNode()      {}
func (s *IfStatement) TokenLiteral() string { return "if" }
func (s *IfStatement) String() string {
	out := "if (" + s.Test.String() + ") " + s.Consequent.String()
	if s.Alternate != nil {
		out += " else " + s.Alternate.String()
	}
	return out
}

// LabeledStatement is `label: body`.
type LabeledStatement struct {
	base
	Label string
	Body  Statement
}

func (s *LabeledStatement) statementNode()      {}
func (s *LabeledStatement) TokenLiteral() string { return s.Label }
func (s *LabeledStatement) String() string       { return s.Label + ": " + s.Body.String() }

// BreakStatement is `break [label];`.
type BreakStatement struct {
	base
	Label string // "" if unlabeled
}

func (s *BreakStatement) statementNode()      {}
func (s *BreakStatement) TokenLiteral() string { return "break" }
func (s *BreakStatement) String() string {
	if s.Label == "" {
		return "break;"
	}
	return "break " + s.Label + ";"
}

// ContinueStatement is `continue [label];`.
type ContinueStatement struct {
	base
	Label string // "" if unlabeled
}

func (s *ContinueStatement) statementNode()      {}
func (s *ContinueStatement) TokenLiteral() string { return "continue" }
func (s *ContinueStatement) String() string {
	if s.Label == "" {
		return "continue;"
	}
	return "continue " + s.Label + ";"
}

// ReturnStatement is `return [argument];`.
type ReturnStatement struct {
	base
	Argument Expression // nil for bare `return;`
}

func (s *ReturnStatement) statementNode()      {}
func (s *ReturnStatement) TokenLiteral() string { return "return" }
func (s *ReturnStatement) String() string {
	if s.Argument == nil {
		return "return;"
	}
	return "return " + s.Argument.String() + ";"
}

// ThrowStatement is `throw argument;`.
type ThrowStatement struct {
	base
	Argument Expression
}

func (s *ThrowStatement) statementNode()      {}
func (s *ThrowStatement) TokenLiteral() string { return "throw" }
func (s *ThrowStatement) String() string       { return "throw " + s.Argument.String() + ";" }

// CatchClause is `catch (param) body` (param may be nil for a parameterless
// catch).
type CatchClause struct {
	Param Pattern
	Body  *BlockStatement
}

// TryStatement is `try block [catch(param) handler] [finally finalizer]`.
// After the try/finally elimination pass, Finalizer is always nil.
type TryStatement struct {
	base
	Block     *BlockStatement
	Handler   *CatchClause // nil if no catch
	Finalizer *BlockStatement
}

func (s *TryStatement) statementNode()      {}
func (s *TryStatement) TokenLiteral() string { return "try" }
func (s *TryStatement) String() string {
	out := "try " + s.Block.String()
	if s.Handler != nil {
		if s.Handler.Param != nil {
			out += " catch (" + s.Handler.Param.String() + ") " + s.Handler.Body.String()
		} else {
			out += " catch " + s.Handler.Body.String()
		}
	}
	if s.Finalizer != nil {
		out += " finally " + s.Finalizer.String()
	}
	return out
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	base
	Test Expression
	Body Statement
}

func (s *WhileStatement) statementNode()      {}
func (s *WhileStatement) TokenLiteral() string { return "while" }
func (s *WhileStatement) String() string       { return "while (" + s.Test.String() + ") " + s.Body.String() }

// DoWhileStatement is `do body while (test);`. Eliminated by the do-while
// pass before reaching later passes.
type DoWhileStatement struct {
	base
	Body Statement
	Test Expression
}

func (s *DoWhileStatement) statementNode()      {}
func (s *DoWhileStatement) TokenLiteral() string { return "do" }
func (s *DoWhileStatement) String() string {
	return "do " + s.Body.String() + " while (" + s.Test.String() + ");"
}

// ForHead is the init/test/update header of a C-style for-statement; Init
// may be a VariableDeclaration or an Expression (or nil).
type ForHead struct {
	Init   Node // *VariableDeclaration, Expression, or nil
	Test   Expression // nil means "always true"
	Update Expression // nil means "no update"
}

// ForStatement is `for (init; test; update) body`. Eliminated by the for-N
// pass before reaching later passes.
type ForStatement struct {
	base
	Head ForHead
	Body Statement
}

func (s *ForStatement) statementNode()      {}
func (s *ForStatement) TokenLiteral() string { return "for" }
func (s *ForStatement) String() string       { return "for (...) " + s.Body.String() }

// ForInOfLeft is the left-hand side of a for-in/for-of header: either a
// VariableDeclaration with exactly one declarator (no initializer), or a
// bare AssignmentTarget (Pattern).
type ForInOfLeft struct {
	Decl *VariableDeclaration // non-nil for `for (let x in/of ...)`
	Target Pattern            // non-nil for `for (x in/of ...)`
}

// ForInStatement is `for (left in right) body`. Eliminated by the for-in
// pass.
type ForInStatement struct {
	base
	Left  ForInOfLeft
	Right Expression
	Body  Statement
}

func (s *ForInStatement) statementNode()      {}
func (s *ForInStatement) TokenLiteral() string { return "for" }
func (s *ForInStatement) String() string       { return "for (... in ...) " + s.Body.String() }

// ForOfStatement is `for (left of right) body`. Eliminated by the for-of
// pass. `await` for-of is rejected at parse time (see Non-goals).
type ForOfStatement struct {
	base
	Left  ForInOfLeft
	Right Expression
	Body  Statement
	Await bool
}

func (s *ForOfStatement) statementNode()      {}
func (s *ForOfStatement) TokenLiteral() string { return "for" }
func (s *ForOfStatement) String() string       { return "for (... of ...) " + s.Body.String() }

// SwitchCase is one `case test:` (Test == nil for `default:`) plus its
// consequent statement list.
type SwitchCase struct {
	Test       Expression
	Consequent []Statement
}

// SwitchStatement is `switch (discriminant) { cases... }`. Eliminated by
// the switch pass.
type SwitchStatement struct {
	base
	Discriminant Expression
	Cases        []SwitchCase
}

func (s *SwitchStatement) statementNode()      {}
func (s *SwitchStatement) TokenLiteral() string { return "switch" }
func (s *SwitchStatement) String() string {
	return "switch (" + s.Discriminant.String() + ") { ... }"
}

// WithStatement is `with (object) body` (legacy, non-strict only — carried
// through unmodified by every pass).
type WithStatement struct {
	base
	Object Expression
	Body   Statement
}

func (s *WithStatement) statementNode()      {}
func (s *WithStatement) TokenLiteral() string { return "with" }
func (s *WithStatement) String() string {
	return "with (" + s.Object.String() + ") " + s.Body.String()
}

// DebuggerStatement is the `debugger;` statement.
type DebuggerStatement struct{ base }

func (s *DebuggerStatement) statementNode()      {}
func (s *DebuggerStatement) TokenLiteral() string { return "debugger" }
func (s *DebuggerStatement) String() string       { return "debugger;" }

// ModuleDeclaration is a minimal `import`/`export` statement; the core does
// not rewrite module declarations (out of scope), only threads them through
// unchanged.
type ModuleDeclaration struct {
	base
	Raw string // best-effort printed form captured verbatim by the parser
}

func (s *ModuleDeclaration) statementNode()      {}
func (s *ModuleDeclaration) TokenLiteral() string { return s.Raw }
func (s *ModuleDeclaration) String() string       { return s.Raw }
