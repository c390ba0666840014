package mapper

import (
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
)

// descendStatement recurses into a statement's child statements and
// expressions, replacing each with its own lowered form. Property keys and
// member names that are non-computed identifiers are never walked as
// expressions — they are not value-producing positions.
func (m *Mapper) descendStatement(s ast.Statement) (ast.Statement, error) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		for i, stmt := range n.Body {
			out, err := m.visitStatement(stmt)
			if err != nil {
				return nil, err
			}
			n.Body[i] = out
		}
		return n, nil

	case *ast.EmptyStatement, *ast.DebuggerStatement, *ast.ModuleDeclaration:
		return n, nil

	case *ast.ExpressionStatement:
		out, err := m.visitExpression(n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = out
		return n, nil

	case *ast.VariableDeclaration:
		for i, d := range n.Declarations {
			id, err := m.visitPattern(d.Id)
			if err != nil {
				return nil, err
			}
			n.Declarations[i].Id = id
			if d.Init != nil {
				init, err := m.visitExpression(d.Init)
				if err != nil {
					return nil, err
				}
				n.Declarations[i].Init = init
			}
		}
		return n, nil

	case *ast.IfStatement:
		test, err := m.visitExpression(n.Test)
		if err != nil {
			return nil, err
		}
		n.Test = test
		cons, err := m.visitStatement(n.Consequent)
		if err != nil {
			return nil, err
		}
		n.Consequent = cons
		if n.Alternate != nil {
			alt, err := m.visitStatement(n.Alternate)
			if err != nil {
				return nil, err
			}
			n.Alternate = alt
		}
		return n, nil

	case *ast.LabeledStatement:
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil

	case *ast.BreakStatement, *ast.ContinueStatement:
		return n, nil

	case *ast.ReturnStatement:
		if n.Argument != nil {
			arg, err := m.visitExpression(n.Argument)
			if err != nil {
				return nil, err
			}
			n.Argument = arg
		}
		return n, nil

	case *ast.ThrowStatement:
		arg, err := m.visitExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		n.Argument = arg
		return n, nil

	case *ast.TryStatement:
		block, err := m.visitStatement(n.Block)
		if err != nil {
			return nil, err
		}
		n.Block = block.(*ast.BlockStatement)
		if n.Handler != nil {
			if n.Handler.Param != nil {
				p, err := m.visitPattern(n.Handler.Param)
				if err != nil {
					return nil, err
				}
				n.Handler.Param = p
			}
			body, err := m.visitStatement(n.Handler.Body)
			if err != nil {
				return nil, err
			}
			n.Handler.Body = body.(*ast.BlockStatement)
		}
		if n.Finalizer != nil {
			fin, err := m.visitStatement(n.Finalizer)
			if err != nil {
				return nil, err
			}
			n.Finalizer = fin.(*ast.BlockStatement)
		}
		return n, nil

	case *ast.WhileStatement:
		test, err := m.visitExpression(n.Test)
		if err != nil {
			return nil, err
		}
		n.Test = test
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil

	case *ast.DoWhileStatement:
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		test, err := m.visitExpression(n.Test)
		if err != nil {
			return nil, err
		}
		n.Test = test
		return n, nil

	case *ast.ForStatement:
		if n.Head.Init != nil {
			switch init := n.Head.Init.(type) {
			case *ast.VariableDeclaration:
				out, err := m.visitStatement(init)
				if err != nil {
					return nil, err
				}
				n.Head.Init = out
			case ast.Expression:
				out, err := m.visitExpression(init)
				if err != nil {
					return nil, err
				}
				n.Head.Init = out
			}
		}
		if n.Head.Test != nil {
			test, err := m.visitExpression(n.Head.Test)
			if err != nil {
				return nil, err
			}
			n.Head.Test = test
		}
		if n.Head.Update != nil {
			upd, err := m.visitExpression(n.Head.Update)
			if err != nil {
				return nil, err
			}
			n.Head.Update = upd
		}
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil

	case *ast.ForInStatement:
		if err := m.descendForInOfLeft(&n.Left); err != nil {
			return nil, err
		}
		right, err := m.visitExpression(n.Right)
		if err != nil {
			return nil, err
		}
		n.Right = right
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil

	case *ast.ForOfStatement:
		if err := m.descendForInOfLeft(&n.Left); err != nil {
			return nil, err
		}
		right, err := m.visitExpression(n.Right)
		if err != nil {
			return nil, err
		}
		n.Right = right
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil

	case *ast.SwitchStatement:
		disc, err := m.visitExpression(n.Discriminant)
		if err != nil {
			return nil, err
		}
		n.Discriminant = disc
		for ci, c := range n.Cases {
			if c.Test != nil {
				test, err := m.visitExpression(c.Test)
				if err != nil {
					return nil, err
				}
				n.Cases[ci].Test = test
			}
			for si, stmt := range c.Consequent {
				out, err := m.visitStatement(stmt)
				if err != nil {
					return nil, err
				}
				n.Cases[ci].Consequent[si] = out
			}
		}
		return n, nil

	case *ast.WithStatement:
		obj, err := m.visitExpression(n.Object)
		if err != nil {
			return nil, err
		}
		n.Object = obj
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil

	case *ast.FunctionDeclaration:
		for i, p := range n.Params {
			out, err := m.visitPattern(p)
			if err != nil {
				return nil, err
			}
			n.Params[i] = out
		}
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body.(*ast.BlockStatement)
		return n, nil

	case *ast.ClassDeclaration:
		if n.SuperClass != nil {
			sup, err := m.visitExpression(n.SuperClass)
			if err != nil {
				return nil, err
			}
			n.SuperClass = sup
		}
		if err := m.descendClassBody(n.Body); err != nil {
			return nil, err
		}
		return n, nil

	default:
		return nil, fmt.Errorf("mapper: descendStatement: unhandled statement type %T", s)
	}
}

func (m *Mapper) descendForInOfLeft(left *ast.ForInOfLeft) error {
	if left.Decl != nil {
		out, err := m.visitStatement(left.Decl)
		if err != nil {
			return err
		}
		left.Decl = out.(*ast.VariableDeclaration)
		return nil
	}
	out, err := m.visitPattern(left.Target)
	if err != nil {
		return err
	}
	left.Target = out
	return nil
}

func (m *Mapper) descendClassBody(body *ast.ClassBody) error {
	for i, mem := range body.Members {
		if mem.Computed {
			key, err := m.visitExpression(mem.Key)
			if err != nil {
				return err
			}
			body.Members[i].Key = key
		}
		if mem.Function != nil {
			out, err := m.visitExpression(mem.Function)
			if err != nil {
				return err
			}
			body.Members[i].Function = out.(*ast.FunctionExpression)
		}
		if mem.Value != nil {
			out, err := m.visitExpression(mem.Value)
			if err != nil {
				return err
			}
			body.Members[i].Value = out
		}
	}
	return nil
}

// visitPattern walks a Pattern. Since Pattern is a type alias for Expression,
// this is visitExpression under another name, kept distinct so passes and
// call sites read clearly about which role a node plays.
func (m *Mapper) visitPattern(p ast.Pattern) (ast.Pattern, error) {
	return m.visitExpression(p)
}

// descendExpression recurses into an expression's children.
func (m *Mapper) descendExpression(e ast.Expression) (ast.Expression, error) {
	switch n := e.(type) {
	case *ast.BooleanLiteral, *ast.NullLiteral, *ast.UndefinedLiteral,
		*ast.NumberLiteral, *ast.BigIntLiteral, *ast.StringLiteral,
		*ast.RegexLiteral, *ast.ThisExpression, *ast.SuperExpression,
		*ast.MetaProperty, *ast.Identifier, *ast.PrivateName:
		return n, nil

	case *ast.TemplateLiteral:
		for i, expr := range n.Expressions {
			out, err := m.visitExpression(expr)
			if err != nil {
				return nil, err
			}
			n.Expressions[i] = out
		}
		return n, nil

	case *ast.TaggedTemplateExpression:
		tag, err := m.visitExpression(n.Tag)
		if err != nil {
			return nil, err
		}
		n.Tag = tag
		quasi, err := m.visitExpression(n.Quasi)
		if err != nil {
			return nil, err
		}
		n.Quasi = quasi.(*ast.TemplateLiteral)
		return n, nil

	case *ast.ParenthesizedExpression:
		inner, err := m.visitExpression(n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = inner
		return n, nil

	case *ast.ArrayExpression:
		for i, el := range n.Elements {
			if el.Expr == nil {
				continue
			}
			out, err := m.visitExpression(el.Expr)
			if err != nil {
				return nil, err
			}
			n.Elements[i].Expr = out
		}
		return n, nil

	case *ast.ObjectExpression:
		for i, p := range n.Properties {
			if p.Computed {
				key, err := m.visitExpression(p.Key)
				if err != nil {
					return nil, err
				}
				n.Properties[i].Key = key
			}
			if p.Value != nil {
				val, err := m.visitExpression(p.Value)
				if err != nil {
					return nil, err
				}
				n.Properties[i].Value = val
			}
		}
		return n, nil

	case *ast.UnaryExpression:
		arg, err := m.visitExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		n.Argument = arg
		return n, nil

	case *ast.UpdateExpression:
		arg, err := m.visitExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		n.Argument = arg
		return n, nil

	case *ast.BinaryExpression:
		l, err := m.visitExpression(n.Left)
		if err != nil {
			return nil, err
		}
		n.Left = l
		r, err := m.visitExpression(n.Right)
		if err != nil {
			return nil, err
		}
		n.Right = r
		return n, nil

	case *ast.LogicalExpression:
		l, err := m.visitExpression(n.Left)
		if err != nil {
			return nil, err
		}
		n.Left = l
		r, err := m.visitExpression(n.Right)
		if err != nil {
			return nil, err
		}
		n.Right = r
		return n, nil

	case *ast.ConditionalExpression:
		t, err := m.visitExpression(n.Test)
		if err != nil {
			return nil, err
		}
		n.Test = t
		c, err := m.visitExpression(n.Consequent)
		if err != nil {
			return nil, err
		}
		n.Consequent = c
		a, err := m.visitExpression(n.Alternate)
		if err != nil {
			return nil, err
		}
		n.Alternate = a
		return n, nil

	case *ast.AssignmentExpression:
		l, err := m.visitPattern(n.Left)
		if err != nil {
			return nil, err
		}
		n.Left = l
		r, err := m.visitExpression(n.Right)
		if err != nil {
			return nil, err
		}
		n.Right = r
		return n, nil

	case *ast.SequenceExpression:
		for i, x := range n.Expressions {
			out, err := m.visitExpression(x)
			if err != nil {
				return nil, err
			}
			n.Expressions[i] = out
		}
		return n, nil

	case *ast.YieldExpression:
		if n.Argument != nil {
			out, err := m.visitExpression(n.Argument)
			if err != nil {
				return nil, err
			}
			n.Argument = out
		}
		return n, nil

	case *ast.AwaitExpression:
		out, err := m.visitExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		n.Argument = out
		return n, nil

	case *ast.CallExpression:
		callee, err := m.visitExpression(n.Callee)
		if err != nil {
			return nil, err
		}
		n.Callee = callee
		for i, a := range n.Args {
			out, err := m.visitExpression(a.Expr)
			if err != nil {
				return nil, err
			}
			n.Args[i].Expr = out
		}
		return n, nil

	case *ast.NewExpression:
		callee, err := m.visitExpression(n.Callee)
		if err != nil {
			return nil, err
		}
		n.Callee = callee
		for i, a := range n.Args {
			out, err := m.visitExpression(a.Expr)
			if err != nil {
				return nil, err
			}
			n.Args[i].Expr = out
		}
		return n, nil

	case *ast.MemberExpression:
		obj, err := m.visitExpression(n.Object)
		if err != nil {
			return nil, err
		}
		n.Object = obj
		if n.Computed {
			prop, err := m.visitExpression(n.Property)
			if err != nil {
				return nil, err
			}
			n.Property = prop
		}
		return n, nil

	case *ast.ChainExpression:
		inner, err := m.visitExpression(n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = inner
		return n, nil

	case *ast.ImportExpression:
		src, err := m.visitExpression(n.Source)
		if err != nil {
			return nil, err
		}
		n.Source = src
		return n, nil

	case *ast.FunctionExpression:
		for i, p := range n.Params {
			out, err := m.visitPattern(p)
			if err != nil {
				return nil, err
			}
			n.Params[i] = out
		}
		body, err := m.visitStatement(n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body.(*ast.BlockStatement)
		return n, nil

	case *ast.ArrowFunctionExpression:
		for i, p := range n.Params {
			out, err := m.visitPattern(p)
			if err != nil {
				return nil, err
			}
			n.Params[i] = out
		}
		switch body := n.Body.(type) {
		case *ast.BlockStatement:
			out, err := m.visitStatement(body)
			if err != nil {
				return nil, err
			}
			n.Body = out
		case ast.Expression:
			out, err := m.visitExpression(body)
			if err != nil {
				return nil, err
			}
			n.Body = out
		}
		return n, nil

	case *ast.ClassExpression:
		if n.SuperClass != nil {
			sup, err := m.visitExpression(n.SuperClass)
			if err != nil {
				return nil, err
			}
			n.SuperClass = sup
		}
		if err := m.descendClassBody(n.Body); err != nil {
			return nil, err
		}
		return n, nil

	// Pattern shapes (Pattern == Expression): visited via visitPattern by
	// callers, but descended here since the traversal machinery is shared.
	case *ast.ObjectPattern:
		for i, p := range n.Properties {
			if p.Computed {
				key, err := m.visitExpression(p.Key)
				if err != nil {
					return nil, err
				}
				n.Properties[i].Key = key
			}
			out, err := m.visitPattern(p.Value)
			if err != nil {
				return nil, err
			}
			n.Properties[i].Value = out
		}
		return n, nil

	case *ast.ArrayPattern:
		for i, el := range n.Elements {
			if el.Target == nil {
				continue
			}
			out, err := m.visitPattern(el.Target)
			if err != nil {
				return nil, err
			}
			n.Elements[i].Target = out
		}
		return n, nil

	case *ast.AssignmentPattern:
		l, err := m.visitPattern(n.Left)
		if err != nil {
			return nil, err
		}
		n.Left = l
		r, err := m.visitExpression(n.Right)
		if err != nil {
			return nil, err
		}
		n.Right = r
		return n, nil

	case *ast.RestElement:
		arg, err := m.visitPattern(n.Argument)
		if err != nil {
			return nil, err
		}
		n.Argument = arg
		return n, nil

	default:
		return nil, fmt.Errorf("mapper: descendExpression: unhandled expression type %T", e)
	}
}
