package router

import (
	"strings"
	"testing"

	"agentic-workflow/internal/domain/entity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: classification is case-insensitive for any step text.
func TestClassify_CaseInsensitive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("upper and lower classify identically", prop.ForAll(
		func(step string) bool {
			return Classify(strings.ToUpper(step)) == Classify(strings.ToLower(step))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// Property: any step containing "user story" goes to the Product Manager,
// regardless of surrounding text.
func TestClassify_UserStoryAlwaysProductManager(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("user story wins", prop.ForAll(
		func(prefix, suffix string) bool {
			step := prefix + " user story " + suffix
			return Classify(step) == entity.AgentTypeProductManager
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
