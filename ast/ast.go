// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the mapper and printer.
package ast

import (
	"bytes"

	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token most closely
	// associated with this node — used for debugging and error messages.
	TokenLiteral() string
	// String returns a debug representation (not a pretty-printer; see
	// internal/printer for faithful code generation).
	String() string
	// Pos returns the node's starting source position.
	Pos() lexer.Position
	// End returns the node's ending source position.
	End() lexer.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// SourceType distinguishes module-parsed input (import/export allowed) from
// script-parsed input.
type SourceType int

const (
	Script SourceType = iota
	Module
)

// Program is the root node: an ordered sequence of statements plus
// source-type metadata. Its Statements slice is rebuilt wholesale by the
// mapper; the Program value itself is otherwise immutable.
type Program struct {
	Statements []Statement
	SourceType SourceType
	StartPos   lexer.Position
	EndPos     lexer.Position
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position { return p.StartPos }
func (p *Program) End() lexer.Position { return p.EndPos }

// base embeds the source span every node carries; concrete node types embed
// it and only need to define TokenLiteral/String themselves.
type base struct {
	StartPos lexer.Position
	EndPos   lexer.Position
}

func (b base) Pos() lexer.Position { return b.StartPos }
func (b base) End() lexer.Position { return b.EndPos }

// SetSpan records a node's source span. The parser calls this once a node's
// extent is known; nodes synthesized by the lowering passes never call it
// and simply carry a zero-value span.
func (b *base) SetSpan(start, end lexer.Position) {
	b.StartPos = start
	b.EndPos = end
}

// Identifier is a bare name reference. It doubles as the simplest
// BindingPattern and AssignmentTarget shape — this module does not carry
// separate wrapper types for those roles.
type Identifier struct {
	base
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Name }

// PrivateName is a `#name` class-private reference (member access only).
type PrivateName struct {
	base
	Token lexer.Token
	Name  string
}

func (p *PrivateName) expressionNode()      {}
func (p *PrivateName) TokenLiteral() string { return p.Token.Literal }
func (p *PrivateName) String() string       { return "#" + p.Name }
