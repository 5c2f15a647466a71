// Package main implements the scry-study command, which extracts study items
// from generated markdown and runs terminal study sessions over them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/scry-study/internal/config"
	"github.com/phrazzld/scry-study/internal/extract"
	"github.com/phrazzld/scry-study/internal/platform/logger"
)

const usage = `usage:
  scry-study parse -mode mcq|flashcards -input FILE [-format json|yaml]
  scry-study study -mode mcq|flashcards -input FILE

Use -input - to read from stdin.`

var errUsage = errors.New("invalid usage")

// app carries the dependencies shared by all subcommands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	idPolicy extract.IDPolicy
}

func main() {
	a, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scry-study: %v\n", err)
		os.Exit(1)
	}

	if err := a.run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "scry-study: %v\n\n%s\n", err, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "scry-study: %v\n", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return newApp(cfg, l)
}

func newApp(cfg *config.Config, l *slog.Logger) (*app, error) {
	policy, err := extract.ParseIDPolicy(cfg.Study.IDPolicy)
	if err != nil {
		return nil, err
	}

	l.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"id_policy", string(policy))

	return &app{cfg: cfg, logger: l, idPolicy: policy}, nil
}

// run dispatches args to a subcommand.
func (a *app) run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	switch args[0] {
	case "parse":
		return a.runParse(args[1:], stdin, stdout)
	case "study":
		return a.runStudy(args[1:], stdin, stdout)
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(stdout, usage)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}
