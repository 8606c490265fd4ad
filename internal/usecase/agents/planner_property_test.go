package agents

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: SplitSteps never returns an empty or whitespace-only step, for
// any reply text.
func TestSplitSteps_NoBlankSteps(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("no blank steps", prop.ForAll(
		func(reply string) bool {
			for _, step := range SplitSteps(reply) {
				if strings.TrimSpace(step) == "" || step != strings.TrimSpace(step) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Property: the relative order of non-blank lines is preserved.
func TestSplitSteps_PreservesOrder(t *testing.T) {
	properties := gopter.NewProperties(nil)

	genLines := gen.SliceOf(gen.RegexMatch(`[a-z]{1,8}`))

	properties.Property("order preserved", prop.ForAll(
		func(lines []string) bool {
			reply := strings.Join(lines, "\n\n")
			steps := SplitSteps(reply)
			if len(steps) != len(lines) {
				return false
			}
			for i := range lines {
				if steps[i] != lines[i] {
					return false
				}
			}
			return true
		},
		genLines,
	))

	properties.TestingRun(t)
}
