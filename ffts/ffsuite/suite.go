package ffsuite

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/itchio/ffts/ffts/ffutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Suite is a named list of cases, optionally tied to an engine
type Suite struct {
	Name   string
	Engine string
	Cases  []Case
}

// Case is a single target/pattern pair. Expect is nil when the case
// only needs to agree with the reference engine.
type Case struct {
	Name    string
	Target  []byte
	Pattern []byte
	Expect  *bool
}

type suiteFile struct {
	Name   string     `yaml:"name"`
	Engine string     `yaml:"engine"`
	Cases  []caseFile `yaml:"cases"`
}

type caseFile struct {
	Name    string `yaml:"name"`
	Target  string `yaml:"target"`
	Pattern string `yaml:"pattern"`
	Expect  *bool  `yaml:"expect"`
}

// Load reads a YAML suite, decoding escapes in targets and patterns
func Load(r io.Reader) (*Suite, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading suite")
	}

	var sf suiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(err, "parsing suite")
	}

	suite := &Suite{
		Name:   sf.Name,
		Engine: sf.Engine,
	}

	for i, cf := range sf.Cases {
		if cf.Name == "" {
			return nil, errors.Errorf("case #%d has no name", i)
		}

		target, err := ffutil.Unescape(cf.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "in target of case %s", cf.Name)
		}

		pattern, err := ffutil.Unescape(cf.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "in pattern of case %s", cf.Name)
		}

		suite.Cases = append(suite.Cases, Case{
			Name:    cf.Name,
			Target:  target,
			Pattern: pattern,
			Expect:  cf.Expect,
		})
	}

	return suite, nil
}

// LoadFile opens and loads the suite at path
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening suite")
	}

	defer f.Close()

	suite, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return suite, nil
}
