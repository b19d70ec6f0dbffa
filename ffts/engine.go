package ffts

import (
	"bytes"

	"github.com/cloudflare/ahocorasick"
	"github.com/pkg/errors"
)

// ErrUnknownEngine is returned by LookupEngine for names that aren't registered
var ErrUnknownEngine = errors.New("unknown engine")

// Engine is one way of telling whether pattern occurs in target
type Engine interface {
	Name() string
	Contains(target []byte, pattern []byte) bool
}

const (
	// EngineNaive is the single-scan prefix tracker of Contains
	EngineNaive = "naive"
	// EngineFinder is the Boyer-Moore StringFinder
	EngineFinder = "finder"
	// EngineStdlib defers to bytes.Contains
	EngineStdlib = "stdlib"
	// EngineAhoCorasick builds a one-pattern Aho-Corasick automaton
	EngineAhoCorasick = "ahocorasick"
)

type naiveEngine struct{}

func (naiveEngine) Name() string { return EngineNaive }

func (naiveEngine) Contains(target []byte, pattern []byte) bool {
	return Contains(target, pattern)
}

type finderEngine struct{}

func (finderEngine) Name() string { return EngineFinder }

func (finderEngine) Contains(target []byte, pattern []byte) bool {
	return Index(target, pattern) >= 0
}

type stdlibEngine struct{}

func (stdlibEngine) Name() string { return EngineStdlib }

func (stdlibEngine) Contains(target []byte, pattern []byte) bool {
	return bytes.Contains(target, pattern)
}

type ahoCorasickEngine struct{}

func (ahoCorasickEngine) Name() string { return EngineAhoCorasick }

func (ahoCorasickEngine) Contains(target []byte, pattern []byte) bool {
	if len(pattern) == 0 {
		// the automaton has no state for the empty word
		return true
	}

	// matchers keep counters while matching, so they're not shared
	m := ahocorasick.NewMatcher([][]byte{pattern})
	return m.Contains(target)
}

var engines = []Engine{
	naiveEngine{},
	finderEngine{},
	stdlibEngine{},
	ahoCorasickEngine{},
}

// Engines returns every registered engine, naive first
func Engines() []Engine {
	return append([]Engine(nil), engines...)
}

// EngineNames lists the registered engine names in registration order
func EngineNames() []string {
	var names []string
	for _, e := range engines {
		names = append(names, e.Name())
	}
	return names
}

// LookupEngine finds a registered engine by name
func LookupEngine(name string) (Engine, error) {
	for _, e := range engines {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEngine, "%q (known: %v)", name, EngineNames())
}

// Reference returns the engine other engines are checked against
func Reference() Engine {
	return stdlibEngine{}
}
