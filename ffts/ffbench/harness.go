package ffbench

import (
	"fmt"
	"io"
	"time"

	"github.com/itchio/ffts/ffts"
	"github.com/olekukonko/tablewriter"
)

// DefaultIterations is used when a Harness has none set
const DefaultIterations = 1000

// Harness times engines over corpora
type Harness struct {
	Logf       ffts.LogFunc
	Iterations int
}

// Measurement is what one engine did over one corpus
type Measurement struct {
	Engine     string
	Corpus     string
	Iterations int
	Total      time.Duration
	Found      bool
}

// NsPerOp is the average time of a single Contains call
func (m Measurement) NsPerOp() int64 {
	if m.Iterations == 0 {
		return 0
	}
	return m.Total.Nanoseconds() / int64(m.Iterations)
}

// Measure runs engine over corpus Iterations times
func (h *Harness) Measure(engine ffts.Engine, corpus *Corpus) Measurement {
	logf := h.Logf
	if logf == nil {
		logf = ffts.NoLogf
	}

	iterations := h.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	found := false
	start := time.Now()
	for i := 0; i < iterations; i++ {
		found = engine.Contains(corpus.Target, corpus.Pattern)
	}
	total := time.Since(start)

	m := Measurement{
		Engine:     engine.Name(),
		Corpus:     corpus.Name,
		Iterations: iterations,
		Total:      total,
		Found:      found,
	}
	logf("%s over %s: %d ns/op, found = %v", m.Engine, m.Corpus, m.NsPerOp(), m.Found)
	return m
}

// MeasureAll runs every engine over every corpus
func (h *Harness) MeasureAll(engines []ffts.Engine, corpora []*Corpus) []Measurement {
	var ms []Measurement
	for _, corpus := range corpora {
		for _, engine := range engines {
			ms = append(ms, h.Measure(engine, corpus))
		}
	}
	return ms
}

// Render writes measurements as a table
func Render(w io.Writer, ms []Measurement) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Corpus", "Engine", "Iterations", "ns/op", "Found"})
	for _, m := range ms {
		table.Append([]string{
			m.Corpus,
			m.Engine,
			fmt.Sprintf("%d", m.Iterations),
			fmt.Sprintf("%d", m.NsPerOp()),
			fmt.Sprintf("%v", m.Found),
		})
	}
	table.Render()
}
