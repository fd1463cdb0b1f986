package digraph

import (
	"fmt"

	"github.com/pterm/pterm"
	"golang.org/x/exp/slices"
)

// TestCase is one explored leaf's outcome: either a concrete model
// (name -> integer, rendered as a string), or one of the two
// sentinels AnyInput ("true"/"any input satisfies") or Infeasible
// ("false"/the path is unsatisfiable).
type TestCase struct {
	Model      map[string]int
	AnyInput   bool
	Infeasible bool
}

// PrintReport renders the collected test cases as a console table,
// one row per explored leaf, in discovery order.
func PrintReport(cases []TestCase) {
	rows := pterm.TableData{{"#", "Outcome"}}
	for i, tc := range cases {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), describe(tc)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		tracer().Errorf("rendering test case table failed: %v", err)
	}
}

func describe(tc TestCase) string {
	switch {
	case tc.Infeasible:
		return "False (path unsatisfiable)"
	case tc.AnyInput:
		return "True (any input)"
	default:
		s := ""
		first := true
		for _, name := range sortedKeys(tc.Model) {
			if !first {
				s += ", "
			}
			first = false
			s += fmt.Sprintf("%s=%d", name, tc.Model[name])
		}
		return s
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) bool { return a < b })
	return keys
}
