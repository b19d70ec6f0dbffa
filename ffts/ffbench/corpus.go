package ffbench

import (
	"fmt"
	"math/rand"
)

// DefaultAlphabet is small on purpose, so patterns overlap with themselves a lot
const DefaultAlphabet = "ab"

// NoPlant means the pattern is not written into the target on purpose
const NoPlant = -1

// CorpusOptions describes a synthetic target
type CorpusOptions struct {
	Size     int
	Alphabet string
	Pattern  []byte
	Seed     int64
	// Plant is where the pattern is copied into the target, or NoPlant
	Plant int
}

// Corpus is a generated target and the pattern to look for in it
type Corpus struct {
	Name    string
	Target  []byte
	Pattern []byte
	Planted bool
}

// GenerateCorpus makes a deterministic target out of opts
func GenerateCorpus(opts CorpusOptions) *Corpus {
	alphabet := opts.Alphabet
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	target := make([]byte, opts.Size)
	for i := range target {
		target[i] = alphabet[rng.Intn(len(alphabet))]
	}

	planted := false
	if opts.Plant >= 0 && opts.Plant+len(opts.Pattern) <= len(target) {
		copy(target[opts.Plant:], opts.Pattern)
		planted = true
	}

	name := fmt.Sprintf("%d bytes of [%s]", opts.Size, alphabet)
	if planted {
		name += fmt.Sprintf(", planted at %d", opts.Plant)
	}

	return &Corpus{
		Name:    name,
		Target:  target,
		Pattern: append([]byte(nil), opts.Pattern...),
		Planted: planted,
	}
}
