package ast

import "testing"

func TestProgram_String(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&VariableDeclaration{
				Kind: Let,
				Declarations: []VariableDeclarator{
					{Id: &Identifier{Name: "x"}, Init: &NumberLiteral{Value: 1, Raw: "1"}},
				},
			},
		},
	}
	got := prog.String()
	want := "let x = 1;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPattern_IsExpression(t *testing.T) {
	var _ Pattern = &Identifier{}
	var _ Pattern = &ObjectPattern{}
	var _ Pattern = &ArrayPattern{}
	var _ Pattern = &AssignmentPattern{}
}

func TestArrayExpression_ElidedSlot(t *testing.T) {
	arr := &ArrayExpression{Elements: []ArrayElement{
		{Expr: &Identifier{Name: "a"}},
		{Expr: nil},
		{Expr: &Identifier{Name: "b"}},
	}}
	got := arr.String()
	want := "[a, , b]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
