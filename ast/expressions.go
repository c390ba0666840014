package ast

import (
	"bytes"
	"strings"

	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

// BooleanLiteral is `true` / `false`.
type BooleanLiteral struct {
	base
	Token lexer.Token
	Value bool
}

func (l *BooleanLiteral) expressionNode()      {}
func (l *BooleanLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BooleanLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

// NullLiteral is `null`.
type NullLiteral struct {
	base
	Token lexer.Token
}

func (l *NullLiteral) expressionNode()      {}
func (l *NullLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *NullLiteral) String() string       { return "null" }

// UndefinedLiteral is the `undefined` identifier used as a literal (e.g. the
// synthesized initializer for a declarator that had none).
type UndefinedLiteral struct {
	base
	Token lexer.Token
}

func (l *UndefinedLiteral) expressionNode()      {}
func (l *UndefinedLiteral) TokenLiteral() string { return "undefined" }
func (l *UndefinedLiteral) String() string       { return "undefined" }

// NumberLiteral is a numeric literal.
type NumberLiteral struct {
	base
	Token lexer.Token
	Value float64
	Raw   string
}

func (l *NumberLiteral) expressionNode()      {}
func (l *NumberLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *NumberLiteral) String() string       { return l.Raw }

// BigIntLiteral is a `123n` literal.
type BigIntLiteral struct {
	base
	Token lexer.Token
	Raw   string // includes trailing "n"
}

func (l *BigIntLiteral) expressionNode()      {}
func (l *BigIntLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BigIntLiteral) String() string       { return l.Raw }

// StringLiteral is a single/double-quoted string literal.
type StringLiteral struct {
	base
	Token lexer.Token
	Value string
	Quote byte // '\'' or '"'
}

func (l *StringLiteral) expressionNode()      {}
func (l *StringLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *StringLiteral) String() string       { return string(l.Quote) + l.Value + string(l.Quote) }

// RegexLiteral is `/pattern/flags`.
type RegexLiteral struct {
	base
	Token   lexer.Token
	Pattern string
	Flags   string
}

func (l *RegexLiteral) expressionNode()      {}
func (l *RegexLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *RegexLiteral) String() string       { return "/" + l.Pattern + "/" + l.Flags }

// TemplateElement is one literal run between placeholders in a template
// literal.
type TemplateElement struct {
	Raw    string
	Cooked string
	Tail   bool
}

// TemplateLiteral is a backtick-quoted template literal, possibly with
// interpolated expressions.
type TemplateLiteral struct {
	base
	Quasis      []TemplateElement
	Expressions []Expression
}

func (l *TemplateLiteral) expressionNode()      {}
func (l *TemplateLiteral) TokenLiteral() string { return "`" }
func (l *TemplateLiteral) String() string {
	var out bytes.Buffer
	out.WriteByte('`')
	for i, q := range l.Quasis {
		out.WriteString(q.Raw)
		if i < len(l.Expressions) {
			out.WriteString("${")
			out.WriteString(l.Expressions[i].String())
			out.WriteByte('}')
		}
	}
	out.WriteByte('`')
	return out.String()
}

// TaggedTemplateExpression is `` tag`...` ``.
type TaggedTemplateExpression struct {
	base
	Tag   Expression
	Quasi *TemplateLiteral
}

func (e *TaggedTemplateExpression) expressionNode()      {}
func (e *TaggedTemplateExpression) TokenLiteral() string { return e.Tag.TokenLiteral() }
func (e *TaggedTemplateExpression) String() string       { return e.Tag.String() + e.Quasi.String() }

// ThisExpression is `this`.
type ThisExpression struct{ base }

func (e *ThisExpression) expressionNode()      {}
func (e *ThisExpression) TokenLiteral() string { return "this" }
func (e *ThisExpression) String() string       { return "this" }

// SuperExpression is `super` (only valid as a call/member callee).
type SuperExpression struct{ base }

func (e *SuperExpression) expressionNode()      {}
func (e *SuperExpression) TokenLiteral() string { return "super" }
func (e *SuperExpression) String() string       { return "super" }

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	base
	Meta     string
	Property string
}

func (e *MetaProperty) expressionNode()      {}
func (e *MetaProperty) TokenLiteral() string { return e.Meta }
func (e *MetaProperty) String() string       { return e.Meta + "." + e.Property }

// ParenthesizedExpression preserves an explicit `(expr)` grouping.
type ParenthesizedExpression struct {
	base
	Expr Expression
}

func (e *ParenthesizedExpression) expressionNode()      {}
func (e *ParenthesizedExpression) TokenLiteral() string { return "(" }
func (e *ParenthesizedExpression) String() string       { return "(" + e.Expr.String() + ")" }

// ArrayElement is one slot in an ArrayExpression: nil Expr represents an
// elided (`,,`) slot.
type ArrayElement struct {
	Expr   Expression
	Spread bool
}

// ArrayExpression is `[a, , b, ...c]`.
type ArrayExpression struct {
	base
	Elements []ArrayElement
}

func (e *ArrayExpression) expressionNode()      {}
func (e *ArrayExpression) TokenLiteral() string { return "[" }
func (e *ArrayExpression) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		if el.Expr == nil {
			parts[i] = ""
			continue
		}
		if el.Spread {
			parts[i] = "..." + el.Expr.String()
		} else {
			parts[i] = el.Expr.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectProperty is one `key: value`, shorthand, method, or `...spread`
// entry of an ObjectExpression.
type ObjectProperty struct {
	Key      Expression // Identifier for non-computed; any Expression if Computed
	Value    Expression
	Computed bool
	Shorthand bool
	Spread   bool
	Method   bool
}

// ObjectExpression is `{a, b: c, [k]: d, ...rest}`.
type ObjectExpression struct {
	base
	Properties []ObjectProperty
}

func (e *ObjectExpression) expressionNode()      {}
func (e *ObjectExpression) TokenLiteral() string { return "{" }
func (e *ObjectExpression) String() string {
	parts := make([]string, len(e.Properties))
	for i, p := range e.Properties {
		switch {
		case p.Spread:
			parts[i] = "..." + p.Value.String()
		case p.Shorthand:
			parts[i] = p.Key.String()
		case p.Computed:
			parts[i] = "[" + p.Key.String() + "]: " + p.Value.String()
		default:
			parts[i] = p.Key.String() + ": " + p.Value.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// UnaryOperator enumerates prefix unary operators.
type UnaryOperator string

const (
	UnaryPlus    UnaryOperator = "+"
	UnaryMinus   UnaryOperator = "-"
	UnaryNot     UnaryOperator = "!"
	UnaryBitNot  UnaryOperator = "~"
	UnaryTypeof  UnaryOperator = "typeof"
	UnaryVoid    UnaryOperator = "void"
	UnaryDelete  UnaryOperator = "delete"
)

// UnaryExpression is a prefix unary operation.
type UnaryExpression struct {
	base
	Operator UnaryOperator
	Argument Expression
}

func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) TokenLiteral() string { return string(e.Operator) }
func (e *UnaryExpression) String() string       { return string(e.Operator) + " " + e.Argument.String() }

// UpdateExpression is `++x`, `x++`, `--x`, `x--`.
type UpdateExpression struct {
	base
	Operator string // "++" or "--"
	Argument Expression
	Prefix   bool
}

func (e *UpdateExpression) expressionNode()      {}
func (e *UpdateExpression) TokenLiteral() string { return e.Operator }
func (e *UpdateExpression) String() string {
	if e.Prefix {
		return e.Operator + e.Argument.String()
	}
	return e.Argument.String() + e.Operator
}

// BinaryExpression is a binary arithmetic/relational/bitwise operation.
type BinaryExpression struct {
	base
	Operator string
	Left     Expression
	Right    Expression
}

func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) TokenLiteral() string { return e.Operator }
func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// LogicalExpression is `&&`, `||`, or `??`.
type LogicalExpression struct {
	base
	Operator string
	Left     Expression
	Right    Expression
}

func (e *LogicalExpression) expressionNode()      {}
func (e *LogicalExpression) TokenLiteral() string { return e.Operator }
func (e *LogicalExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// ConditionalExpression is `test ? consequent : alternate`.
type ConditionalExpression struct {
	base
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (e *ConditionalExpression) expressionNode()      {}
func (e *ConditionalExpression) TokenLiteral() string { return "?" }
func (e *ConditionalExpression) String() string {
	return "(" + e.Test.String() + " ? " + e.Consequent.String() + " : " + e.Alternate.String() + ")"
}

// AssignmentExpression is `lhs op rhs` (op includes compound forms).
type AssignmentExpression struct {
	base
	Operator string // "=", "+=", ...
	Left     Expression
	Right    Expression
}

func (e *AssignmentExpression) expressionNode()      {}
func (e *AssignmentExpression) TokenLiteral() string { return e.Operator }
func (e *AssignmentExpression) String() string {
	return e.Left.String() + " " + e.Operator + " " + e.Right.String()
}

// SequenceExpression is the comma operator `a, b, c`.
type SequenceExpression struct {
	base
	Expressions []Expression
}

func (e *SequenceExpression) expressionNode()      {}
func (e *SequenceExpression) TokenLiteral() string { return "," }
func (e *SequenceExpression) String() string {
	parts := make([]string, len(e.Expressions))
	for i, x := range e.Expressions {
		parts[i] = x.String()
	}
	return strings.Join(parts, ", ")
}

// YieldExpression is `yield x` or `yield* x`.
type YieldExpression struct {
	base
	Argument Expression // nil for bare `yield`
	Delegate bool
}

func (e *YieldExpression) expressionNode()      {}
func (e *YieldExpression) TokenLiteral() string { return "yield" }
func (e *YieldExpression) String() string {
	if e.Delegate {
		return "yield* " + e.Argument.String()
	}
	if e.Argument == nil {
		return "yield"
	}
	return "yield " + e.Argument.String()
}

// AwaitExpression is `await x`.
type AwaitExpression struct {
	base
	Argument Expression
}

func (e *AwaitExpression) expressionNode()      {}
func (e *AwaitExpression) TokenLiteral() string { return "await" }
func (e *AwaitExpression) String() string       { return "await " + e.Argument.String() }

// Argument is one call/new argument, possibly spread.
type Argument struct {
	Expr   Expression
	Spread bool
}

// CallExpression is `callee(args)` or, with Optional set, `callee?.(args)`.
type CallExpression struct {
	base
	Callee   Expression
	Args     []Argument
	Optional bool
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return "(" }
func (e *CallExpression) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		if a.Spread {
			parts[i] = "..." + a.Expr.String()
		} else {
			parts[i] = a.Expr.String()
		}
	}
	dot := "("
	if e.Optional {
		dot = "?.("
	}
	return e.Callee.String() + dot + strings.Join(parts, ", ") + ")"
}

// NewExpression is `new callee(args)`.
type NewExpression struct {
	base
	Callee Expression
	Args   []Argument
}

func (e *NewExpression) expressionNode()      {}
func (e *NewExpression) TokenLiteral() string { return "new" }
func (e *NewExpression) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.Expr.String()
	}
	return "new " + e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// MemberExpression is `obj.prop`, `obj[prop]`, `obj?.prop`, or a private
// field access `obj.#prop`.
type MemberExpression struct {
	base
	Object   Expression
	Property Expression // Identifier (non-computed), PrivateName, or any Expression (computed)
	Computed bool
	Optional bool
}

func (e *MemberExpression) expressionNode()      {}
func (e *MemberExpression) TokenLiteral() string { return "." }
func (e *MemberExpression) String() string {
	if e.Computed {
		op := "["
		if e.Optional {
			op = "?.["
		}
		return e.Object.String() + op + e.Property.String() + "]"
	}
	op := "."
	if e.Optional {
		op = "?."
	}
	return e.Object.String() + op + e.Property.String()
}

// ChainExpression wraps an optional-chaining member/call expression tree so
// short-circuiting is scoped to exactly this chain.
type ChainExpression struct {
	base
	Expr Expression
}

func (e *ChainExpression) expressionNode()      {}
func (e *ChainExpression) TokenLiteral() string { return e.Expr.TokenLiteral() }
func (e *ChainExpression) String() string       { return e.Expr.String() }

// ImportExpression is a dynamic `import(specifier)`.
type ImportExpression struct {
	base
	Source Expression
}

func (e *ImportExpression) expressionNode()      {}
func (e *ImportExpression) TokenLiteral() string { return "import" }
func (e *ImportExpression) String() string       { return "import(" + e.Source.String() + ")" }
