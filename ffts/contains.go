package ffts

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrMissingElement is returned by ContainsStrings when a collection has no element 0
var ErrMissingElement = errors.New("collection has no element 0")

// Contains reports whether pattern occurs as a contiguous run of bytes in target.
//
// It runs a single left-to-right scan that tracks how many leading bytes of
// pattern matched so far. On a mismatch the tracker restarts from pattern[0]
// without testing the mismatching byte again, so some self-overlapping
// patterns are missed: Contains([]byte("aaab"), []byte("aab")) is false.
// Use Index or one of the reference engines for plain substring semantics.
//
// An empty pattern matches any target. The original C routine compared
// against the pattern's NUL terminator instead and never matched a
// longer target.
func Contains(target []byte, pattern []byte) bool {
	targetSize := len(target)
	patternSize := len(pattern)

	if targetSize < patternSize {
		return false
	}

	if targetSize == patternSize {
		return bytes.Equal(target, pattern)
	}

	if patternSize == 0 {
		return true
	}

	expected := pattern[0]
	matched := 0

	for j := 0; j < targetSize; j++ {
		if target[j] == expected {
			matched++
			if matched == patternSize {
				return true
			}
			expected = pattern[matched]
		} else {
			// restart, target[j] is not looked at again
			expected = pattern[0]
			matched = 0
		}
	}

	return false
}

// ContainsStrings is Contains for hosts that box scalars into
// one-element collections: only element 0 of each is used.
func ContainsStrings(target []string, pattern []string) (bool, error) {
	if len(target) == 0 {
		return false, errors.Wrap(ErrMissingElement, "target")
	}
	if len(pattern) == 0 {
		return false, errors.Wrap(ErrMissingElement, "pattern")
	}

	return Contains([]byte(target[0]), []byte(pattern[0])), nil
}
