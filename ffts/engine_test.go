package ffts

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LookupEngine(t *testing.T) {
	assert.EqualValues(t, []string{"naive", "finder", "stdlib", "ahocorasick"}, EngineNames())

	for _, name := range EngineNames() {
		e, err := LookupEngine(name)
		require.NoError(t, err)
		assert.EqualValues(t, name, e.Name())
	}

	_, err := LookupEngine("grep")
	assert.Error(t, err)
	assert.EqualValues(t, ErrUnknownEngine, errors.Cause(err))

	assert.EqualValues(t, EngineStdlib, Reference().Name())
}

func Test_EnginesAgree(t *testing.T) {
	type pair struct {
		target  string
		pattern string
	}

	pairs := []pair{
		{"hello world", "world"},
		{"hello", "world"},
		{"abc", "abcd"},
		{"aaab", "ab"},
		{"aabaaab", "aaab"},
		{"", ""},
		{"abc", ""},
		{"\x00\x01\x02", "\x01"},
		{"mississippi", "ppi"},
		{"mississippi", "issipi"},
	}

	for _, p := range pairs {
		want := bytes.Contains([]byte(p.target), []byte(p.pattern))
		for _, e := range Engines() {
			got := e.Contains([]byte(p.target), []byte(p.pattern))
			assert.EqualValues(t, want, got, "%s: %q in %q", e.Name(), p.pattern, p.target)
		}
	}
}

func Test_OnlyNaiveMissesOverlaps(t *testing.T) {
	misses := [][2]string{
		{"aaab", "aab"},
		{"mississippi", "issip"},
		{"mississippi", "ssipp"},
	}

	for _, m := range misses {
		target := []byte(m[0])
		pattern := []byte(m[1])

		for _, e := range Engines() {
			got := e.Contains(target, pattern)
			if e.Name() == EngineNaive {
				assert.False(t, got, "%q in %q", pattern, target)
			} else {
				assert.True(t, got, "%s: %q in %q", e.Name(), pattern, target)
			}
		}
	}
}

func Test_EnginesReturnsCopy(t *testing.T) {
	es := Engines()
	es[0] = nil
	assert.NotNil(t, Engines()[0])
}
