package ast

import "strings"

// Pattern is the structural union used both as a BindingPattern (in
// declarations) and as an AssignmentTarget (on the left of `=`). The source
// spec keeps these as two distinct unions; this port keeps one Expression
// hierarchy for both roles (Identifier, MemberExpression, ObjectPattern,
// ArrayPattern, AssignmentPattern all implement Expression) and lets each
// pass's own logic decide which shapes are legal in which position.
type Pattern = Expression

// ObjectPatternProperty is one property of a destructuring object pattern:
// `key: value` (value may itself be an AssignmentPattern carrying a
// default), a computed `[key]: value`, a shorthand `key` (possibly with a
// default, carried as an AssignmentPattern value), or `...rest`.
type ObjectPatternProperty struct {
	Key      Expression
	Value    Pattern
	Computed bool
	Shorthand bool
	Spread   bool
}

// ObjectPattern is `{a, b: c, [k]: d, ...rest}` used as a binding or
// assignment target.
type ObjectPattern struct {
	base
	Properties []ObjectPatternProperty
}

func (p *ObjectPattern) expressionNode()      {}
func (p *ObjectPattern) TokenLiteral() string { return "{" }
func (p *ObjectPattern) String() string {
	parts := make([]string, len(p.Properties))
	for i, prop := range p.Properties {
		switch {
		case prop.Spread:
			parts[i] = "..." + prop.Value.String()
		case prop.Computed:
			parts[i] = "[" + prop.Key.String() + "]: " + prop.Value.String()
		case prop.Shorthand:
			parts[i] = prop.Value.String()
		default:
			parts[i] = prop.Key.String() + ": " + prop.Value.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ArrayPatternElement is one slot of a destructuring array pattern; a nil
// Target represents an elided hole.
type ArrayPatternElement struct {
	Target Pattern
	Spread bool
}

// ArrayPattern is `[a, , b = d, ...rest]` used as a binding or assignment
// target.
type ArrayPattern struct {
	base
	Elements []ArrayPatternElement
}

func (p *ArrayPattern) expressionNode()      {}
func (p *ArrayPattern) TokenLiteral() string { return "[" }
func (p *ArrayPattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, el := range p.Elements {
		if el.Target == nil {
			continue
		}
		if el.Spread {
			parts[i] = "..." + el.Target.String()
		} else {
			parts[i] = el.Target.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// AssignmentPattern wraps another pattern with a default expression:
// `pattern = default`.
type AssignmentPattern struct {
	base
	Left  Pattern
	Right Expression
}

func (p *AssignmentPattern) expressionNode()      {}
func (p *AssignmentPattern) TokenLiteral() string { return "=" }
func (p *AssignmentPattern) String() string       { return p.Left.String() + " = " + p.Right.String() }

// RestElement wraps a pattern occurring in `...pattern` position (function
// parameter lists and pattern rests both use it).
type RestElement struct {
	base
	Argument Pattern
}

func (p *RestElement) expressionNode()      {}
func (p *RestElement) TokenLiteral() string { return "..." }
func (p *RestElement) String() string       { return "..." + p.Argument.String() }
