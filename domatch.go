package main

import (
	"github.com/fatih/color"
	"github.com/itchio/ffts/ffts"
	"github.com/itchio/ffts/ffts/ffutil"
	"github.com/pkg/errors"
)

func doMatch() (bool, error) {
	Logf := logf()

	engine, err := ffts.LookupEngine(*matchArgs.engine)
	if err != nil {
		return false, errors.WithStack(err)
	}

	pattern, err := ffutil.Unescape(*matchArgs.pattern)
	if err != nil {
		return false, errors.Wrap(err, "in pattern")
	}

	var target []byte
	if *matchArgs.file {
		target, err = ffutil.ReadTarget(*matchArgs.target, *matchArgs.limit)
		if err != nil {
			return false, errors.WithStack(err)
		}
		Logf("read %d bytes from %s", len(target), *matchArgs.target)
	} else {
		target, err = ffutil.Unescape(*matchArgs.target)
		if err != nil {
			return false, errors.Wrap(err, "in target")
		}
	}

	found := engine.Contains(target, pattern)
	Logf("%s: looked for \"%s\" in %d bytes", engine.Name(), ffutil.Escape(pattern), len(target))

	if found {
		color.Green("true")
	} else {
		color.Red("false")
	}

	return found, nil
}
