package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/itchio/ffts/ffts"
	"github.com/itchio/ffts/ffts/ffsuite"
	"github.com/itchio/ffts/ffts/ffutil"
	"github.com/pkg/errors"
)

func doCheck() (bool, error) {
	suite, err := ffsuite.LoadFile(*checkArgs.suite)
	if err != nil {
		return false, errors.WithStack(err)
	}

	runner := &ffsuite.Runner{
		Logf: logf(),
	}

	if *checkArgs.engine != "" {
		runner.Engine, err = ffts.LookupEngine(*checkArgs.engine)
		if err != nil {
			return false, errors.WithStack(err)
		}
	}

	report, err := runner.Run(suite)
	if err != nil {
		return false, errors.WithStack(err)
	}

	bad := color.New(color.FgRed)
	odd := color.New(color.FgYellow)

	for _, res := range report.Results {
		c := res.Case
		switch {
		case res.Failed():
			bad.Printf("FAIL %s: contains(\"%s\", \"%s\") = %v\n", c.Name, ffutil.Escape(c.Target), ffutil.Escape(c.Pattern), res.Got)
		case res.Diverged():
			odd.Printf("DIVERGED %s: contains(\"%s\", \"%s\") = %v, %s says %v\n", c.Name, ffutil.Escape(c.Target), ffutil.Escape(c.Pattern), res.Got, report.Reference, res.Reference)
		}
	}

	fmt.Printf("%s (%s): %d passed, %d failed, %d diverged from %s\n",
		report.Suite, report.Engine, report.Passed, report.Failed, report.Diverged, report.Reference)

	return report.Failed == 0, nil
}
