package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/itchio/ffts/ffts"
	"github.com/itchio/ffts/ffts/ffbench"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("ffts", "Fixed-text substring search")
)

var appArgs = struct {
	debug   *bool
	noColor *bool
}{
	app.Flag("debug", "Print what the engines and runners are doing").Short('d').Bool(),
	app.Flag("no-color", "Never color output").Bool(),
}

var matchCmd = app.Command("match", "Tell whether a pattern occurs in a target")

var matchArgs = struct {
	target  *string
	pattern *string
	file    *bool
	limit   *int64
	engine  *string
}{
	matchCmd.Arg("target", "Target bytes, or a path with --file").Required().String(),
	matchCmd.Arg("pattern", "Pattern bytes, backslash escapes allowed").Required().String(),
	matchCmd.Flag("file", "Read the target from a file").Short('f').Bool(),
	matchCmd.Flag("limit", "Only read that many bytes of the target file").Default("0").Int64(),
	matchCmd.Flag("engine", "Engine to use").Default(ffts.EngineNaive).Enum(ffts.EngineNames()...),
}

var checkCmd = app.Command("check", "Run a YAML suite of cases")

var checkArgs = struct {
	suite  *string
	engine *string
}{
	checkCmd.Arg("suite", "Path to the suite").Required().ExistingFile(),
	checkCmd.Flag("engine", "Engine to use, overrides the suite's").Enum(ffts.EngineNames()...),
}

var benchCmd = app.Command("bench", "Time every engine over generated targets")

var benchArgs = struct {
	size       *int
	iterations *int
	seed       *int64
	pattern    *string
	alphabet   *string
}{
	benchCmd.Flag("size", "Size of generated targets, in bytes").Default("65536").Int(),
	benchCmd.Flag("iterations", "Calls per engine and target").Default(fmt.Sprintf("%d", ffbench.DefaultIterations)).Int(),
	benchCmd.Flag("seed", "Random seed for targets").Default("1").Int64(),
	benchCmd.Flag("pattern", "Pattern to look for, backslash escapes allowed").Default("aab").String(),
	benchCmd.Flag("alphabet", "Bytes targets are made of").Default(ffbench.DefaultAlphabet).String(),
}

func main() {
	app.HelpFlag.Short('h')

	fullCmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	code, err := dispatch(fullCmd)
	app.FatalIfError(err, "%s", fullCmd)
	os.Exit(code)
}

// dispatch runs a parsed command and returns the process exit code:
// 1 when match finds nothing or a check suite has failures
func dispatch(fullCmd string) (int, error) {
	if *appArgs.noColor {
		color.NoColor = true
	}

	switch fullCmd {
	case matchCmd.FullCommand():
		found, err := doMatch()
		if err != nil {
			return 1, err
		}
		if !found {
			return 1, nil
		}
	case checkCmd.FullCommand():
		ok, err := doCheck()
		if err != nil {
			return 1, err
		}
		if !ok {
			return 1, nil
		}
	case benchCmd.FullCommand():
		if err := doBench(); err != nil {
			return 1, err
		}
	}

	return 0, nil
}

func logf() ffts.LogFunc {
	if !*appArgs.debug {
		return ffts.NoLogf
	}

	return func(format string, args ...interface{}) {
		fmt.Println(fmt.Sprintf(format, args...))
	}
}
