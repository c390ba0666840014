package ast

import "strings"

// Param is one function parameter: a binding pattern, optionally with a
// default (carried as an AssignmentPattern) or a trailing rest (carried as
// a RestElement).
type Param = Pattern

// FunctionDeclaration is `function name(params) body`.
type FunctionDeclaration struct {
	base
	Name      *Identifier // nil for a default-exported anonymous function
	Params    []Param
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (s *FunctionDeclaration) statementNode()      {}
func (s *FunctionDeclaration) TokenLiteral() string { return "function" }
func (s *FunctionDeclaration) String() string {
	name := ""
	if s.Name != nil {
		name = s.Name.Name
	}
	return "function " + name + "(...) " + s.Body.String()
}

// FunctionExpression is a `function` expression, possibly named.
type FunctionExpression struct {
	base
	Name      *Identifier
	Params    []Param
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (e *FunctionExpression) expressionNode()      {}
func (e *FunctionExpression) TokenLiteral() string { return "function" }
func (e *FunctionExpression) String() string       { return "function(...) " + e.Body.String() }

// ArrowFunctionExpression is `(params) => body`; Body is either a
// *BlockStatement or a bare Expression (for concise-body arrows).
type ArrowFunctionExpression struct {
	base
	Params []Param
	Body   Node // *BlockStatement or Expression
	Async  bool
}

func (e *ArrowFunctionExpression) expressionNode()      {}
func (e *ArrowFunctionExpression) TokenLiteral() string { return "=>" }
func (e *ArrowFunctionExpression) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") => " + e.Body.String()
}
