package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/scry-study/internal/extract"
)

type mode string

const (
	modeMCQ        mode = "mcq"
	modeFlashcards mode = "flashcards"
)

func parseMode(s string) (mode, error) {
	switch m := mode(strings.ToLower(strings.TrimSpace(s))); m {
	case modeMCQ, modeFlashcards:
		return m, nil
	case "":
		return "", fmt.Errorf("%w: -mode is required", errUsage)
	default:
		return "", fmt.Errorf("%w: unknown mode %q", errUsage, s)
	}
}

// commonFlags are the flags every subcommand accepts.
type commonFlags struct {
	mode  string
	input string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.mode, "mode", "", "item kind: mcq or flashcards")
	fs.StringVar(&f.input, "input", "", "markdown file to read, - for stdin")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// readInput returns the raw markdown named by path.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: -input is required", errUsage)
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return string(data), nil
}

func (a *app) extractorOptions() []extract.Option {
	return []extract.Option{
		extract.WithLogger(a.logger),
		extract.WithIDPolicy(a.idPolicy),
	}
}
