package prompting

import (
	"context"
	"fmt"
	"strings"
)

// Extractor reduces a raw completion to a comparable final answer.
type Extractor func(output string) string

// LastLine is the default extractor: the last non-empty line of the output,
// trimmed.
func LastLine(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// Vote is one candidate answer with its tally.
type Vote struct {
	Answer string
	Count  int
}

// SelfConsistency issues the same prompt n times sequentially, extracts a
// final answer from each completion, and returns the majority answer. The
// calls are deliberately sequential repetition, not parallel fan-out; each
// one is independent. Ties go to the answer seen first. Sampling temperature
// should be above zero for the technique to mean anything, but the
// parameters are forwarded as configured either way.
func (e *Engine) SelfConsistency(ctx context.Context, question string, n int, extract Extractor) (string, []Vote, error) {
	if n <= 0 {
		return "", nil, fmt.Errorf("self-consistency requires at least one sample, got %d", n)
	}
	if extract == nil {
		extract = LastLine
	}

	counts := make(map[string]int)
	var order []string

	for i := 0; i < n; i++ {
		out, err := e.client.Completion(ctx, question, e.params)
		if err != nil {
			return "", nil, err
		}

		answer := extract(out)
		if _, seen := counts[answer]; !seen {
			order = append(order, answer)
		}
		counts[answer]++
	}

	votes := make([]Vote, 0, len(order))
	for _, answer := range order {
		votes = append(votes, Vote{Answer: answer, Count: counts[answer]})
	}

	best := votes[0]
	for _, v := range votes[1:] {
		if v.Count > best.Count {
			best = v
		}
	}

	e.logger.Debug("self-consistency vote complete",
		"samples", n,
		"distinct", len(votes),
		"winner", best.Answer,
	)
	return best.Answer, votes, nil
}
