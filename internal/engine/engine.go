// Package engine wires the parser, the lowering mapper, and the printer
// into the single Parse/Transform facade the CLI and WASM surfaces call.
package engine

import (
	"errors"
	"fmt"

	"github.com/zerosugarjs/zerosugar/ast"
	"github.com/zerosugarjs/zerosugar/internal/diagnostics"
	"github.com/zerosugarjs/zerosugar/internal/jsparser"
	"github.com/zerosugarjs/zerosugar/internal/lexer"
	"github.com/zerosugarjs/zerosugar/internal/passes"
	"github.com/zerosugarjs/zerosugar/internal/printer"
)

// Stage names a pipeline phase a TransformError originated in.
type Stage string

const (
	StageParsing Stage = "parsing"
	StageLowering Stage = "lowering"
	StageCodegen Stage = "codegen"
)

// TransformError aggregates one or more diagnostics from a single pipeline
// stage. It carries no AST: Engine.Parse returns the parser's partial tree
// alongside a parsing-stage error, while Engine.Transform returns no result
// for any failed stage.
type TransformError struct {
	Stage  Stage
	Errors []*diagnostics.Diagnostic
}

func (e *TransformError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %s", e.Stage, e.Errors[0].Error())
	}
	return fmt.Sprintf("%s: %d errors\n%s", e.Stage, len(e.Errors), diagnostics.Join(e.Errors, false))
}

// Engine holds no mutable state once constructed; every Parse/Transform call
// builds its own mapper.State, so one Engine may be shared across
// goroutines while no single Transform call's state may.
type Engine struct{}

// New constructs an Engine. It never fails today but returns an error to
// leave room for future validation (option parsing, etc.) without breaking
// callers.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Parse runs syntax analysis only, returning whatever AST the parser
// managed to build even when diagnostics were reported (mirrors a
// best-effort parse: tree is non-nil whenever the input is not Catastrophically
// malformed).
func (e *Engine) Parse(source string) (*ast.Program, error) {
	prog, diags := jsparser.Parse(source, "")
	if len(diags) > 0 {
		return prog, &TransformError{Stage: StageParsing, Errors: diags}
	}
	return prog, nil
}

// Result is the outcome of a full Parse -> Map -> Codegen pipeline run.
type Result struct {
	TransformedCode string
	TransformedAST  string
	HadError        bool
	ErrorMessage    string
}

// Transform runs the full pipeline: parse, lower to the minimal statement
// core, print back to JavaScript. An internal invariant violation panicking
// mid-lowering is recovered here and reported as an ordinary error, so a bug
// in the core never crashes the host process (see SPEC_FULL.md §7).
func (e *Engine) Transform(source string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TransformError{
				Stage: StageLowering,
				Errors: []*diagnostics.Diagnostic{
					diagnostics.New(diagnostics.InvariantViolation, lexer.Position{}, fmt.Sprintf("%v", r), source, ""),
				},
			}
			result = nil
		}
	}()

	prog, diags := jsparser.Parse(source, "")
	if len(diags) > 0 {
		return nil, &TransformError{Stage: StageParsing, Errors: diags}
	}

	m, state := passes.New()
	if err := m.Run(prog); err != nil {
		var d *diagnostics.Diagnostic
		if errors.As(err, &d) {
			return nil, &TransformError{Stage: StageLowering, Errors: []*diagnostics.Diagnostic{d}}
		}
		return nil, &TransformError{
			Stage: StageLowering,
			Errors: []*diagnostics.Diagnostic{
				diagnostics.New(diagnostics.InvariantViolation, lexer.Position{}, err.Error(), source, ""),
			},
		}
	}
	_ = state

	code := printer.Print(prog)
	return &Result{TransformedCode: code}, nil
}

// Transform is the package-level convenience entry point most callers use:
// construct a throwaway Engine and run its full pipeline once.
func Transform(source string) (*Result, error) {
	e, err := New()
	if err != nil {
		return nil, err
	}
	res, err := e.Transform(source)
	if err != nil {
		if te, ok := err.(*TransformError); ok {
			return &Result{HadError: true, ErrorMessage: te.Error()}, te
		}
		return &Result{HadError: true, ErrorMessage: err.Error()}, err
	}
	return res, nil
}
