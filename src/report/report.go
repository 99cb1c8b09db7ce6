package report

import (
	"errors"
	"fmt"
	"slices"

	"github.com/eriklarko/exprtree/src/exprtree"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

const (
	FailureMalformed         = "malformed expression"
	FailureUnrecognizedToken = "unrecognized token"
	FailureDivisionByZero    = "division by zero"
	FailureOther             = "other"
)

// Report collects the outcome of evaluating a batch of expressions. An
// expression seen more than once is only recorded once.
type Report struct {
	Values map[string]int

	// Failures maps a failure kind to the expressions that failed that way
	Failures map[string][]string
}

// RecordValue records that expression evaluated to value
func (r *Report) RecordValue(expression string, value int) {
	if r.Values == nil {
		r.Values = make(map[string]int)
	}
	r.Values[expression] = value
}

// RecordFailure records that expression could not be parsed or evaluated
func (r *Report) RecordFailure(expression string, err error) {
	if r.Failures == nil {
		r.Failures = make(map[string][]string)
	}
	kind := failureKind(err)
	if !lo.Contains(r.Failures[kind], expression) {
		r.Failures[kind] = append(r.Failures[kind], expression)
	}
}

func failureKind(err error) string {
	var errMalformed *exprtree.MalformedExpressionError
	var errUnrecognized *exprtree.UnrecognizedTokenError
	switch {
	case errors.As(err, &errMalformed):
		return FailureMalformed
	case errors.As(err, &errUnrecognized):
		return FailureUnrecognizedToken
	case errors.Is(err, exprtree.ErrDivisionByZero):
		return FailureDivisionByZero
	}
	return FailureOther
}

func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}

// FailureKinds returns the kinds of failures recorded, sorted
func (r *Report) FailureKinds() []string {
	kinds := lo.Keys(r.Failures)
	slices.Sort(kinds)
	return kinds
}

type Summary struct {
	Evaluated int
	Failed    int

	// only set when Evaluated > 0
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

func (s Summary) String() string {
	if s.Evaluated == 0 {
		return fmt.Sprintf("0 evaluated, %d failed", s.Failed)
	}
	return fmt.Sprintf("%d evaluated, %d failed; min %g, max %g, mean %.2f, median %g",
		s.Evaluated, s.Failed, s.Min, s.Max, s.Mean, s.Median)
}

// Summary describes the distribution of the recorded values
func (r *Report) Summary() (Summary, error) {
	summary := Summary{
		Evaluated: len(r.Values),
		Failed: lo.SumBy(lo.Values(r.Failures), func(expressions []string) int {
			return len(expressions)
		}),
	}
	if summary.Evaluated == 0 {
		return summary, nil
	}

	data := stats.Float64Data(lo.Map(lo.Values(r.Values), func(value int, _ int) float64 {
		return float64(value)
	}))

	var err error
	if summary.Min, err = data.Min(); err != nil {
		return summary, fmt.Errorf("failed to calculate min: %w", err)
	}
	if summary.Max, err = data.Max(); err != nil {
		return summary, fmt.Errorf("failed to calculate max: %w", err)
	}
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, fmt.Errorf("failed to calculate mean: %w", err)
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, fmt.Errorf("failed to calculate median: %w", err)
	}
	return summary, nil
}
