package ast

import "strings"

// ClassMemberKind distinguishes method/getter/setter/field class members.
type ClassMemberKind int

const (
	MethodMember ClassMemberKind = iota
	GetterMember
	SetterMember
	FieldMember
)

// ClassMember is one member of a class body.
type ClassMember struct {
	Key      Expression // Identifier (non-computed), PrivateName, or any Expression (computed)
	Computed bool
	Static   bool
	Kind     ClassMemberKind
	// Function holds the method/getter/setter implementation; nil for
	// FieldMember.
	Function *FunctionExpression
	// Value holds a field initializer; nil if the field has none.
	Value Expression
}

// ClassBody is the ordered member list of a class.
type ClassBody struct {
	Members []ClassMember
}

func (b *ClassBody) String() string {
	parts := make([]string, len(b.Members))
	for i, m := range b.Members {
		parts[i] = m.Key.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// ClassDeclaration is `class Name [extends Super] { body }`.
type ClassDeclaration struct {
	base
	Name       *Identifier // nil for a default-exported anonymous class
	SuperClass Expression  // nil if no `extends`
	Body       *ClassBody
}

func (s *ClassDeclaration) statementNode()      {}
func (s *ClassDeclaration) TokenLiteral() string { return "class" }
func (s *ClassDeclaration) String() string {
	name := ""
	if s.Name != nil {
		name = s.Name.Name
	}
	return "class " + name + " " + s.Body.String()
}

// ClassExpression is a `class` expression, possibly named.
type ClassExpression struct {
	base
	Name       *Identifier
	SuperClass Expression
	Body       *ClassBody
}

func (e *ClassExpression) expressionNode()      {}
func (e *ClassExpression) TokenLiteral() string { return "class" }
func (e *ClassExpression) String() string       { return "class " + e.Body.String() }
