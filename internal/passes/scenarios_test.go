package passes_test

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/goccy/go-yaml"
	"github.com/zerosugarjs/zerosugar/internal/jsparser"
	"github.com/zerosugarjs/zerosugar/internal/passes"
	"github.com/zerosugarjs/zerosugar/internal/printer"
)

// scenario is one manifest entry: a lowering scenario from the testable
// properties' end-to-end list, plus the substrings its lowered output must
// never contain (the construct the scenario's pass is supposed to
// eliminate).
type scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Source      string   `yaml:"source"`
	Helpers     []string `yaml:"helpers"`
	Forbidden   []string `yaml:"forbidden"`
}

type manifest struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadManifest(t *testing.T) manifest {
	t.Helper()
	raw, err := os.ReadFile("../testdata/manifest.yaml")
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		t.Fatalf("parsing manifest: %v", err)
	}
	if len(m.Scenarios) == 0 {
		t.Fatal("manifest has no scenarios")
	}
	return m
}

// lower runs a scenario's source through a fresh Mapper and the printer,
// the same parse/lower/print sequence the engine facade runs.
func lower(t *testing.T, source string) string {
	t.Helper()
	prog, diags := jsparser.Parse(source, "")
	if len(diags) > 0 {
		t.Fatalf("parse diagnostics for %q: %v", source, diags)
	}
	m, _ := passes.New()
	if err := m.Run(prog); err != nil {
		t.Fatalf("lowering %q: %v", source, err)
	}
	return printer.Print(prog)
}

// TestScenarios runs every manifest entry's source through the lowering
// pipeline and checks two things: none of its forbidden constructs survive
// in the output (construct elimination), and the output matches its
// recorded snapshot.
func TestScenarios(t *testing.T) {
	m := loadManifest(t)

	for _, sc := range m.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			out := lower(t, sc.Source)

			for _, bad := range sc.Forbidden {
				if strings.Contains(out, bad) {
					t.Errorf("lowered output still contains %q:\n%s", bad, out)
				}
			}
			for _, helper := range sc.Helpers {
				if !strings.Contains(out, helper) {
					t.Errorf("lowered output missing expected helper call %q:\n%s", helper, out)
				}
			}

			snaps.MatchSnapshot(t, out)
		})
	}
}

// TestS2_ContinueDoesNotSkipUpdate is a regression test for the specific
// failure mode review caught: a continue inside a for-loop must become a
// labeled break around the original body only, leaving the update
// statement reachable every iteration instead of stuck behind a break that
// jumps past it.
func TestS2_ContinueDoesNotSkipUpdate(t *testing.T) {
	out := lower(t, "for (let i = 0; i < 3; ++i) { if (i % 2) continue; log(i); }")

	if strings.Contains(out, "for (") || strings.Contains(out, "for(") {
		t.Fatalf("lowered output still contains a for-loop:\n%s", out)
	}
	if strings.Contains(out, "continue") {
		t.Fatalf("lowered output still contains continue:\n%s", out)
	}
	if !strings.Contains(out, "++i") && !strings.Contains(out, "i++") {
		t.Fatalf("lowered output dropped the update statement entirely:\n%s", out)
	}

	// The update must sit outside the generated label's block: one line
	// per statement means it must appear at the label's own indent, not
	// indented one level deeper inside the label's body.
	labelLine := -1
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.Contains(line, "$zeroSugar") && strings.HasSuffix(strings.TrimSpace(line), ":") {
			labelLine = i
			break
		}
	}
	if labelLine == -1 {
		t.Fatalf("expected a generated label wrapping the continued body:\n%s", out)
	}
	labelIndent := len(lines[labelLine]) - len(strings.TrimLeft(lines[labelLine], " "))
	for _, line := range lines[labelLine+1:] {
		if !strings.Contains(line, "++i") && !strings.Contains(line, "i++") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent > labelIndent {
			t.Fatalf("update statement is nested inside the generated label, so a continue would skip it:\n%s", out)
		}
	}
}

// TestS1_DoWhileContinueReassignsSentinel is the do-while analogue: a
// continue inside the loop body must still reach the sentinel
// reassignment, or the sentinel never updates and the loop never ends.
func TestS1_DoWhileContinueReassignsSentinel(t *testing.T) {
	out := lower(t, "do { x++; if (x < 2) continue; y(); } while (x < 3)")

	if strings.Contains(out, "continue") {
		t.Fatalf("lowered output still contains continue:\n%s", out)
	}
	if strings.Contains(out, "do ") || strings.Contains(out, "do{") {
		t.Fatalf("lowered output still contains do-while:\n%s", out)
	}
}
