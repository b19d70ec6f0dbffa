package ffsuite

import (
	"github.com/itchio/ffts/ffts"
	"github.com/itchio/ffts/ffts/ffutil"
	"github.com/pkg/errors"
)

// Runner evaluates suites with an engine and compares against a reference
type Runner struct {
	Logf ffts.LogFunc

	// Engine is the engine under test. When nil, the suite's engine is
	// used, falling back to naive.
	Engine ffts.Engine

	// Reference defaults to ffts.Reference()
	Reference ffts.Engine
}

// Result is the outcome of a single case
type Result struct {
	Case      Case
	Got       bool
	Reference bool
}

// Failed tells if the engine missed the case's expectation or, for cases
// without one, disagreed with the reference
func (r Result) Failed() bool {
	if r.Case.Expect == nil {
		return r.Diverged()
	}
	return *r.Case.Expect != r.Got
}

// Diverged tells if the engine disagrees with the reference engine
func (r Result) Diverged() bool {
	return r.Got != r.Reference
}

// Report sums up a suite run
type Report struct {
	Suite     string
	Engine    string
	Reference string
	Results   []Result

	Passed   int
	Failed   int
	Diverged int
}

// Run evaluates every case of a suite
func (r *Runner) Run(suite *Suite) (*Report, error) {
	logf := r.Logf
	if logf == nil {
		logf = ffts.NoLogf
	}

	engine := r.Engine
	if engine == nil {
		name := suite.Engine
		if name == "" {
			name = ffts.EngineNaive
		}

		var err error
		engine, err = ffts.LookupEngine(name)
		if err != nil {
			return nil, errors.Wrapf(err, "in suite %s", suite.Name)
		}
	}

	reference := r.Reference
	if reference == nil {
		reference = ffts.Reference()
	}

	report := &Report{
		Suite:     suite.Name,
		Engine:    engine.Name(),
		Reference: reference.Name(),
	}

	for _, c := range suite.Cases {
		res := Result{
			Case:      c,
			Got:       engine.Contains(c.Target, c.Pattern),
			Reference: reference.Contains(c.Target, c.Pattern),
		}

		logf("| %s: contains(\"%s\", \"%s\") = %v (%s says %v)", c.Name,
			ffutil.Escape(c.Target), ffutil.Escape(c.Pattern),
			res.Got, reference.Name(), res.Reference)

		if res.Diverged() {
			report.Diverged++
		}
		if res.Failed() {
			report.Failed++
		} else {
			report.Passed++
		}

		report.Results = append(report.Results, res)
	}

	return report, nil
}
