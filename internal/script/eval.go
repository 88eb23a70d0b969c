package script

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aatomu/fraction/fraction"
)

// DefaultParallel is used when an Evaluator is created with parallel < 1.
const DefaultParallel = 8

// Result is the outcome of one statement.
type Result struct {
	Statement Statement
	Value     fraction.Fraction
	Err       error
}

// Evaluator runs statements concurrently.
type Evaluator struct {
	parallel int
}

func NewEvaluator(parallel int) *Evaluator {
	if parallel < 1 {
		parallel = DefaultParallel
	}
	return &Evaluator{parallel: parallel}
}

// Parallel returns the maximum number of statements evaluated at once.
func (e *Evaluator) Parallel() int {
	return e.parallel
}

// Run evaluates stmts with at most Parallel in flight. results[i] belongs to
// stmts[i]. Once ctx is done no more statements are started; the rest get
// ctx.Err().
func (e *Evaluator) Run(ctx context.Context, stmts []Statement) []Result {
	results := make([]Result, len(stmts))
	session := make(chan struct{}, e.parallel)
	var wg sync.WaitGroup

	for i, st := range stmts {
		results[i].Statement = st

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case session <- struct{}{}:
		}

		wg.Add(1)
		go func(r *Result) {
			defer func() {
				<-session
				wg.Done()
			}()
			r.Value, r.Err = Evaluate(r.Statement)
		}(&results[i])
	}
	wg.Wait()

	return results
}

// Format selects how values are rendered.
type Format string

const (
	FormatMixed Format = "mixed" // (1+(1/2)), see fraction.Fraction.String
	FormatRatio Format = "ratio" // 3/2
	FormatFloat Format = "float" // 1.5
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMixed, FormatRatio, FormatFloat:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want mixed, ratio or float)", s)
}

// Render formats v. Unknown formats fall back to mixed.
func Render(v fraction.Fraction, format Format) string {
	switch format {
	case FormatRatio:
		return v.RatString()
	case FormatFloat:
		return fmt.Sprintf("%g", v)
	}
	return v.String()
}

// Render formats the result as "L<line>: <text> = <value>", or with the
// error in place of the value.
func (r Result) Render(format Format) string {
	if r.Err != nil {
		return fmt.Sprintf("L%d: %s: error: %v", r.Statement.Line, r.Statement.Text, r.Err)
	}
	return fmt.Sprintf("L%d: %s = %s", r.Statement.Line, r.Statement.Text, Render(r.Value, format))
}
