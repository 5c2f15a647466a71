package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/events"
	"github.com/phrazzld/scry-study/internal/extract"
	"github.com/phrazzld/scry-study/internal/score"
	"github.com/phrazzld/scry-study/internal/session"
)

const studyHelp = "commands: A-D answer, f flip, n next, p previous, r reset, q quit"

// runStudy extracts items and drives an interactive session over them,
// reading one command per line from stdin.
func (a *app) runStudy(args []string, stdin io.Reader, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("study", os.Stderr)
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	m, err := parseMode(common.mode)
	if err != nil {
		return err
	}

	// When the items come from stdin, commands cannot come from it too.
	if common.input == "-" {
		return fmt.Errorf("%w: study needs a file for -input, stdin carries commands", errUsage)
	}
	raw, err := readInput(common.input, stdin)
	if err != nil {
		return err
	}

	emitter := events.NewInMemoryEventEmitter(a.logger)

	switch m {
	case modeMCQ:
		questions, err := extract.NewMCQExtractor(a.extractorOptions()...).Parse(raw)
		if err != nil {
			return err
		}
		ctrl := session.NewQuiz(
			session.WithLogger(a.logger),
			session.WithEmitter(emitter),
			session.WithRequireAnswerToAdvance(a.cfg.Study.QuizRequireAnswer))
		t := &terminal[domain.Question]{
			ctrl:   ctrl,
			out:    stdout,
			render: renderQuestion,
			finish: func() { printScore(stdout, score.Summarize(ctrl)) },
		}
		return t.run(emitter, questions, stdin)
	default:
		cards, err := extract.NewFlashcardExtractor(a.extractorOptions()...).Parse(raw)
		if err != nil {
			return err
		}
		ctrl := session.NewDeck(
			session.WithLogger(a.logger),
			session.WithEmitter(emitter),
			session.WithRequireAnswerToAdvance(a.cfg.Study.DeckRequireAnswer))
		t := &terminal[domain.Flashcard]{
			ctrl:   ctrl,
			out:    stdout,
			render: renderCard,
			finish: func() {
				p := ctrl.Progress()
				fmt.Fprintf(stdout, "Reviewed %d of %d cards.\n", p.RevealedCount, p.Total)
			},
		}
		return t.run(emitter, cards, stdin)
	}
}

// terminal renders a session on a line-oriented terminal. It redraws from
// session events, so every successful operation is rendered exactly once.
type terminal[T domain.Item] struct {
	ctrl   *session.Controller[T]
	out    io.Writer
	render func(io.Writer, session.Snapshot[T])
	finish func()
}

func (t *terminal[T]) run(emitter *events.InMemoryEventEmitter, items []T, stdin io.Reader) error {
	emitter.RegisterHandler(events.HandlerFunc(t.handleEvent))

	fmt.Fprintln(t.out, studyHelp)
	if err := t.ctrl.Load(items); err != nil {
		return err
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}
		if strings.EqualFold(cmd, "q") {
			break
		}
		if err := t.apply(cmd); err != nil {
			fmt.Fprintf(t.out, "! %s\n", describe(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	if t.ctrl.Phase() != session.PhaseCompleted {
		fmt.Fprintln(t.out, "Session ended early.")
		t.finish()
	}
	return nil
}

func (t *terminal[T]) handleEvent(event *events.SessionEvent) error {
	if event.Type == events.TypeCompleted {
		fmt.Fprintln(t.out, "Session complete.")
		t.finish()
		return nil
	}
	t.render(t.out, t.ctrl.Snapshot())
	return nil
}

// apply maps one command line onto a controller operation. Single letters
// A to D select an answer; anything else must be a known command.
func (t *terminal[T]) apply(cmd string) error {
	switch strings.ToLower(cmd) {
	case "f":
		return t.ctrl.Flip()
	case "n":
		return t.ctrl.Advance()
	case "p":
		return t.ctrl.Retreat()
	case "r":
		return t.ctrl.Reset()
	case "?", "h", "help":
		fmt.Fprintln(t.out, studyHelp)
		return nil
	}

	letter, err := domain.ParseOptionLetter(cmd)
	if err != nil {
		return fmt.Errorf("unknown command %q", cmd)
	}
	return t.ctrl.SelectAnswer(letter)
}

// describe turns a controller error into a short message for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrAnswerRequired):
		return "answer the current item before moving on"
	case errors.Is(err, session.ErrInvalidOption):
		return "that option does not exist for this question"
	default:
		return err.Error()
	}
}

func renderQuestion(w io.Writer, s session.Snapshot[domain.Question]) {
	q := s.Current
	fmt.Fprintf(w, "\n[%d/%d] %s\n", s.Index+1, s.Total, q.Prompt)
	for _, l := range domain.OptionLetters() {
		marker := " "
		if s.Answer == l {
			marker = ">"
		}
		fmt.Fprintf(w, " %s (%s) %s\n", marker, l, q.Options[l])
	}

	if s.Answer == "" {
		return
	}
	if q.IsCorrect(s.Answer) {
		fmt.Fprintln(w, "Correct!")
	} else {
		fmt.Fprintf(w, "Incorrect. The answer is (%s).\n", q.CorrectOption)
	}
	if q.Explanation != "" {
		fmt.Fprintln(w, q.Explanation)
	}
}

func renderCard(w io.Writer, s session.Snapshot[domain.Flashcard]) {
	c := s.Current
	fmt.Fprintf(w, "\n[%d/%d] %s\n", s.Index+1, s.Total, c.Front)
	if c.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", c.Category)
	}
	if !s.ShowingBack {
		return
	}
	if c.HasBack() {
		fmt.Fprintln(w, c.Back)
	} else {
		fmt.Fprintln(w, "(no answer provided)")
	}
}

func printScore(w io.Writer, r score.Result) {
	fmt.Fprintf(w, "Score: %d/%d (%d%%)\n", r.Correct, r.Total, r.Percentage)
}
