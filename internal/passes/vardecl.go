package passes

import (
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/builder"
	"github.com/zerosugarjs/zerosugar/internal/mapper"
)

// staticKeyName returns the source-level name a non-computed property key
// denotes, whether written as a bare identifier or (rare but legal for
// object patterns) a literal.
func staticKeyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	case *ast.NumberLiteral:
		return k.Raw
	default:
		return ""
	}
}

// expandBindingTarget lowers one binding target (used for an object
// property's value, or an array element) against an already-evaluated
// source expression, handling a bare identifier, a default-valued
// AssignmentPattern, and recursively nested object/array patterns.
func expandBindingTarget(kind ast.DeclarationKind, target ast.Pattern, src ast.Expression, state *mapper.State) []ast.Statement {
	switch t := target.(type) {
	case *ast.Identifier:
		return []ast.Statement{builder.VariableDeclaration(kind, t.Name, src)}

	case *ast.AssignmentPattern:
		if ident, ok := t.Left.(*ast.Identifier); ok {
			return []ast.Statement{
				builder.VariableDeclaration(kind, ident.Name, src),
				builder.If(
					builder.Binary("===", builder.Ident(ident.Name), builder.Undefined()),
					builder.ExprStatement(builder.AssignName(ident.Name, t.Right)),
					nil,
				),
			}
		}
		tmp := state.Fresh()
		stmts := []ast.Statement{
			builder.VariableDeclaration(kind, tmp, src),
			builder.If(
				builder.Binary("===", builder.Ident(tmp), builder.Undefined()),
				builder.ExprStatement(builder.AssignName(tmp, t.Right)),
				nil,
			),
		}
		return append(stmts, expandBindingTarget(kind, t.Left, builder.Ident(tmp), state)...)

	case *ast.ObjectPattern, *ast.ArrayPattern:
		return normalizeDeclarator(kind, target, src, state)

	default:
		return []ast.Statement{builder.VariableDeclaratorPattern(kind, target, src)}
	}
}

// asIdentRHS returns id as-is if it is already a bare identifier reference,
// or binds it to a fresh temporary first and returns that — the RHS-aliasing
// discipline every destructuring declarator needs so the source expression
// is evaluated exactly once.
func asIdentRHS(kind ast.DeclarationKind, init ast.Expression, state *mapper.State) (*ast.Identifier, []ast.Statement) {
	if ident, ok := init.(*ast.Identifier); ok {
		return ident, nil
	}
	tmp := state.Fresh()
	return builder.Ident(tmp), []ast.Statement{builder.VariableDeclaration(kind, tmp, init)}
}

// normalizeDeclarator expands one declarator's binding pattern against its
// initializer into the single-identifier, always-initialized declaration
// shape the core requires.
func normalizeDeclarator(kind ast.DeclarationKind, id ast.Pattern, init ast.Expression, state *mapper.State) []ast.Statement {
	switch pat := id.(type) {
	case *ast.Identifier:
		if init == nil {
			init = builder.Undefined()
		}
		return []ast.Statement{builder.VariableDeclaration(kind, pat.Name, init)}

	case *ast.ObjectPattern:
		if init == nil {
			init = builder.Undefined()
		}
		rhs, stmts := asIdentRHS(kind, init, state)

		var consumedKeys []ast.Expression
		for _, prop := range pat.Properties {
			if prop.Spread {
				continue
			}
			var src ast.Expression
			var restKey ast.Expression
			if prop.Computed {
				keyExpr := prop.Key
				if _, ok := keyExpr.(*ast.Identifier); !ok {
					kTmp := state.Fresh()
					stmts = append(stmts, builder.Const(kTmp, prop.Key))
					keyExpr = builder.Ident(kTmp)
				}
				src = builder.MemberComputed(rhs, keyExpr)
				restKey = keyExpr
			} else {
				name := staticKeyName(prop.Key)
				src = builder.Member(rhs, name)
				restKey = builder.String(name)
			}
			consumedKeys = append(consumedKeys, restKey)
			stmts = append(stmts, expandBindingTarget(kind, prop.Value, src, state)...)
		}

		for _, prop := range pat.Properties {
			if !prop.Spread {
				continue
			}
			restCall := builder.Call(builder.Ident("$rest"), rhs, builder.Array(consumedKeys...))
			if ident, ok := prop.Value.(*ast.Identifier); ok {
				stmts = append(stmts, builder.VariableDeclaration(kind, ident.Name, restCall))
			} else {
				stmts = append(stmts, expandBindingTarget(kind, prop.Value, restCall, state)...)
			}
		}
		return stmts

	case *ast.ArrayPattern:
		if init == nil {
			init = builder.Undefined()
		}
		rhs, stmts := asIdentRHS(kind, init, state)

		index := 0
		for _, el := range pat.Elements {
			if el.Spread {
				sliceExpr := builder.Call(
					builder.Member(rhs, "slice"),
					builder.Number(float64(index), fmt.Sprint(index)),
				)
				if el.Target == nil {
					continue
				}
				if ident, ok := el.Target.(*ast.Identifier); ok {
					stmts = append(stmts, builder.VariableDeclaration(kind, ident.Name, sliceExpr))
				} else {
					stmts = append(stmts, expandBindingTarget(kind, el.Target, sliceExpr, state)...)
				}
				continue
			}
			if el.Target == nil {
				index++
				continue
			}
			src := builder.MemberComputed(rhs, builder.Number(float64(index), fmt.Sprint(index)))
			stmts = append(stmts, expandBindingTarget(kind, el.Target, src, state)...)
			index++
		}
		return stmts

	default:
		if init == nil {
			init = builder.Undefined()
		}
		return []ast.Statement{builder.VariableDeclaratorPattern(kind, id, init)}
	}
}

// expandDeclaration lowers one VariableDeclaration statement (possibly
// multi-declarator) into its fully split, single-identifier-initialized
// replacement statements.
func expandDeclaration(decl *ast.VariableDeclaration, state *mapper.State) []ast.Statement {
	var out []ast.Statement
	for _, d := range decl.Declarations {
		out = append(out, normalizeDeclarator(decl.Kind, d.Id, d.Init, state)...)
	}
	return out
}

// isNormalizedDeclaration reports whether decl already satisfies the
// core's output invariant: one declarator, a single-identifier binding, a
// present initializer.
func isNormalizedDeclaration(decl *ast.VariableDeclaration) bool {
	if len(decl.Declarations) != 1 {
		return false
	}
	d := decl.Declarations[0]
	if _, ok := d.Id.(*ast.Identifier); !ok {
		return false
	}
	return d.Init != nil
}

// NormalizeBlockBody expands every variable declaration directly in stmts
// (not recursing into nested blocks — the mapper's own traversal handles
// those independently) into the core's single-identifier-initialized form.
// It reports whether anything changed.
func NormalizeBlockBody(stmts []ast.Statement, state *mapper.State) ([]ast.Statement, bool) {
	changed := false
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		decl, ok := s.(*ast.VariableDeclaration)
		if !ok || isNormalizedDeclaration(decl) {
			out = append(out, s)
			continue
		}
		changed = true
		out = append(out, expandDeclaration(decl, state)...)
	}
	return out, changed
}

// VarDeclNormalization is the mapper visitor wiring NormalizeBlockBody into
// every block encountered during traversal.
func VarDeclNormalization(stmt ast.Statement, phase mapper.Phase, state *mapper.State) (mapper.Action, ast.Statement) {
	if phase != mapper.Before {
		return mapper.Normal, stmt
	}
	block, ok := stmt.(*ast.BlockStatement)
	if !ok {
		return mapper.Normal, stmt
	}
	out, changed := NormalizeBlockBody(block.Body, state)
	if !changed {
		return mapper.Normal, stmt
	}
	block.Body = out
	return mapper.Revisit, block
}
