package main

import (
	"os"

	"github.com/itchio/ffts/ffts"
	"github.com/itchio/ffts/ffts/ffbench"
	"github.com/itchio/ffts/ffts/ffutil"
	"github.com/pkg/errors"
)

func doBench() error {
	pattern, err := ffutil.Unescape(*benchArgs.pattern)
	if err != nil {
		return errors.Wrap(err, "in pattern")
	}

	size := *benchArgs.size
	if size < len(pattern) {
		return errors.Errorf("size %d is smaller than the pattern (%d bytes)", size, len(pattern))
	}

	opts := ffbench.CorpusOptions{
		Size:     size,
		Alphabet: *benchArgs.alphabet,
		Pattern:  pattern,
		Seed:     *benchArgs.seed,
	}

	var corpora []*ffbench.Corpus
	for _, plant := range []int{ffbench.NoPlant, 0, size / 2, size - len(pattern)} {
		opts.Plant = plant
		corpora = append(corpora, ffbench.GenerateCorpus(opts))
	}

	h := &ffbench.Harness{
		Logf:       logf(),
		Iterations: *benchArgs.iterations,
	}

	ms := h.MeasureAll(ffts.Engines(), corpora)
	ffbench.Render(os.Stdout, ms)

	return nil
}
