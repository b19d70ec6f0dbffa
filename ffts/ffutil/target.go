package ffutil

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// ReadTarget reads the file at path. When limit is positive, only the
// first limit bytes are read, and a shorter file is fine. The stat size
// isn't trusted: pipes and /proc files report 0.
func ReadTarget(path string, limit int64) ([]byte, error) {
	targetReader, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening target")
	}

	defer targetReader.Close()

	var r io.Reader = targetReader
	if limit > 0 {
		r = io.LimitReader(targetReader, limit)
	}

	targetSlice, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading target")
	}

	return targetSlice, nil
}
