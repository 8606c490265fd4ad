package entity

import "strings"

// EvaluationResult is the outcome of one EvaluationAgent run. When the
// iteration budget runs out without acceptance, the last attempt is returned
// as-is with Iterations equal to the budget; there is no explicit failure
// flag, callers check Accepted.
type EvaluationResult struct {
	FinalResponse string
	Evaluation    string
	Iterations    int
}

// Accepted reports whether the evaluation verdict approved the response.
// The verdict is accepted when it starts with the word "yes",
// case-insensitively, after leading whitespace is stripped.
func (r *EvaluationResult) Accepted() bool {
	return IsAcceptedVerdict(r.Evaluation)
}

func IsAcceptedVerdict(verdict string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(verdict)), "yes")
}
