package ffbench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/itchio/ffts/ffts"
	"github.com/stretchr/testify/assert"
)

func Test_GenerateCorpus(t *testing.T) {
	opts := CorpusOptions{
		Size:    256,
		Pattern: []byte("abba"),
		Seed:    7,
		Plant:   NoPlant,
	}

	a := GenerateCorpus(opts)
	b := GenerateCorpus(opts)
	assert.EqualValues(t, a.Target, b.Target, "same seed, same target")
	assert.Len(t, a.Target, 256)
	assert.False(t, a.Planted)
	for _, c := range a.Target {
		assert.True(t, c == 'a' || c == 'b')
	}

	opts.Plant = 100
	planted := GenerateCorpus(opts)
	assert.True(t, planted.Planted)
	assert.EqualValues(t, "abba", string(planted.Target[100:104]))
	assert.Contains(t, planted.Name, "planted at 100")

	// doesn't fit
	opts.Plant = 254
	assert.False(t, GenerateCorpus(opts).Planted)

	opts.Plant = NoPlant
	opts.Alphabet = "xyz"
	xyz := GenerateCorpus(opts)
	assert.False(t, bytes.ContainsAny(xyz.Target, "ab"))
}

type countingEngine struct {
	calls int
}

func (ce *countingEngine) Name() string { return "counting" }

func (ce *countingEngine) Contains(target []byte, pattern []byte) bool {
	ce.calls++
	return bytes.Contains(target, pattern)
}

func Test_Measure(t *testing.T) {
	corpus := GenerateCorpus(CorpusOptions{
		Size:    64,
		Pattern: []byte("zz"),
		Plant:   10,
	})

	ce := &countingEngine{}
	h := &Harness{Iterations: 25}
	m := h.Measure(ce, corpus)
	assert.EqualValues(t, 25, ce.calls)
	assert.EqualValues(t, "counting", m.Engine)
	assert.EqualValues(t, corpus.Name, m.Corpus)
	assert.True(t, m.Found)

	ce.calls = 0
	h = &Harness{}
	m = h.Measure(ce, corpus)
	assert.EqualValues(t, DefaultIterations, ce.calls)
	assert.EqualValues(t, DefaultIterations, m.Iterations)
}

func Test_MeasureAllAndRender(t *testing.T) {
	var corpora []*Corpus
	for _, plant := range []int{NoPlant, 0} {
		corpora = append(corpora, GenerateCorpus(CorpusOptions{
			Size:     128,
			Alphabet: "xy",
			Pattern:  []byte("needle"),
			Plant:    plant,
		}))
	}

	var logged int
	h := &Harness{
		Iterations: 3,
		Logf: func(format string, args ...interface{}) {
			logged++
		},
	}
	ms := h.MeasureAll(ffts.Engines(), corpora)
	assert.Len(t, ms, 2*len(ffts.Engines()))
	assert.EqualValues(t, len(ms), logged)

	for _, m := range ms {
		// "needle" can't show up in x's and y's unless planted
		if m.Corpus == corpora[0].Name {
			assert.False(t, m.Found, m.Engine)
		} else {
			assert.True(t, m.Found, m.Engine)
		}
	}

	var buf bytes.Buffer
	Render(&buf, ms)
	out := buf.String()
	assert.True(t, strings.Contains(strings.ToUpper(out), "ENGINE"))
	for _, name := range ffts.EngineNames() {
		assert.Contains(t, out, name)
	}
}

func Test_NsPerOp(t *testing.T) {
	m := Measurement{Iterations: 4, Total: 400 * time.Nanosecond}
	assert.EqualValues(t, 100, m.NsPerOp())
	assert.EqualValues(t, 0, Measurement{}.NsPerOp())
}
