package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/scry-study/internal/extract"
	"gopkg.in/yaml.v3"
)

type skippedBlock struct {
	Block  int    `json:"block"  yaml:"block"`
	Reason string `json:"reason" yaml:"reason"`
}

type reportOutput struct {
	Offered int            `json:"offered"           yaml:"offered"`
	Parsed  int            `json:"parsed"            yaml:"parsed"`
	Skipped []skippedBlock `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

type parseOutput[T any] struct {
	Mode   mode         `json:"mode"   yaml:"mode"`
	Items  []T          `json:"items"  yaml:"items"`
	Report reportOutput `json:"report" yaml:"report"`
}

func newReportOutput(r *extract.Report) reportOutput {
	out := reportOutput{Offered: r.Offered, Parsed: r.Parsed}
	for _, s := range r.Skipped {
		out.Skipped = append(out.Skipped, skippedBlock{Block: s.Index, Reason: s.Reason.Error()})
	}
	return out
}

// runParse extracts items and prints them with the extraction report. The
// report is printed even when nothing could be parsed.
func (a *app) runParse(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		common commonFlags
		format string
	)
	fs := newFlagSet("parse", os.Stderr)
	common.register(fs)
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	m, err := parseMode(common.mode)
	if err != nil {
		return err
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("%w: unknown format %q", errUsage, format)
	}
	raw, err := readInput(common.input, stdin)
	if err != nil {
		return err
	}

	switch m {
	case modeMCQ:
		items, report, extractErr := extract.NewMCQExtractor(a.extractorOptions()...).ParseWithReport(raw)
		return writeParseOutput(stdout, format, m, items, report, extractErr)
	default:
		items, report, extractErr := extract.NewFlashcardExtractor(a.extractorOptions()...).ParseWithReport(raw)
		return writeParseOutput(stdout, format, m, items, report, extractErr)
	}
}

func writeParseOutput[T any](
	w io.Writer,
	format string,
	m mode,
	items []T,
	report *extract.Report,
	extractErr error,
) error {
	out := parseOutput[T]{Mode: m, Items: items, Report: newReportOutput(report)}
	if err := encode(w, format, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return extractErr
}

func encode(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
