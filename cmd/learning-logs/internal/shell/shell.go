// Package shell implements the interactive learning-logs menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/learninglogs/learninglogs"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/printer"
	"github.com/learninglogs/learninglogs/model"
)

// ErrEmptyName is returned by AddTopic for a blank name.
var ErrEmptyName = errors.New("topic name cannot be empty")

// Journal is the subset of learninglogs.Journal the shell drives.
type Journal interface {
	AddTopic(ctx context.Context, name string) (model.Topic, error)
	ListTopics(ctx context.Context) ([]model.Topic, error)
}

// Menu choices.
const (
	choiceAdd  = "1"
	choiceList = "2"
	choiceExit = "3"
)

// Shell reads menu choices line by line and prints results.
type Shell struct {
	journal Journal
	in      io.Reader
	p       *printer.Printer
}

// New creates a Shell reading from in and writing through p.
func New(journal Journal, in io.Reader, p *printer.Printer) *Shell {
	return &Shell{journal: journal, in: in, p: p}
}

// Run shows the menu until the user exits, the input ends or ctx is done.
// Operation failures are reported and the loop carries on.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, s.in)

	s.printBanner()

	for {
		s.printMenu()

		choice, ok, err := next(ctx, lines)
		if err != nil {
			return err
		}
		if !ok {
			s.p.Newline()
			s.farewell()
			return nil
		}

		switch strings.TrimSpace(choice) {
		case choiceAdd:
			s.p.Prompt("Enter topic name: ")
			name, ok, err := next(ctx, lines)
			if err != nil {
				return err
			}
			if !ok {
				s.p.Newline()
				s.farewell()
				return nil
			}
			_ = s.AddTopic(ctx, name)
			s.p.Newline()
		case choiceList:
			_ = s.ListTopics(ctx)
		case choiceExit:
			s.p.Newline()
			s.farewell()
			return nil
		default:
			s.p.Warnf("Invalid option. Please choose 1-3.")
			s.p.Newline()
		}
	}
}

// AddTopic stores a topic and reports the outcome. A blank name is
// rejected here and never reaches the journal.
func (s *Shell) AddTopic(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		s.p.Warnf("Topic name cannot be empty!")
		return ErrEmptyName
	}

	topic, err := s.journal.AddTopic(ctx, name)
	if err != nil {
		if learninglogs.IsValidation(err) {
			s.p.Warnf("Topic name must be at most %d characters.", model.MaxTopicNameLength)
		} else {
			s.p.Warnf("Failed to add topic.")
		}
		return err
	}

	s.p.Successf("Topic added: %s", topic.Name)
	return nil
}

// ListTopics prints every stored topic followed by a total. A failed read
// is reported differently from an empty table.
func (s *Shell) ListTopics(ctx context.Context) error {
	topics, err := s.journal.ListTopics(ctx)
	if err != nil {
		s.p.Warnf("Could not load topics. Check the database connection and try again.")
		s.p.Newline()
		return err
	}

	if len(topics) == 0 {
		s.p.Infof("No topics yet. Add your first topic!")
		s.p.Newline()
		return nil
	}

	s.p.Newline()
	s.p.Section("Your Topics")
	for _, topic := range topics {
		s.p.Printf("  %s", topic)
	}
	s.p.Printf("  Total: %d topic(s)", len(topics))
	s.p.Newline()
	return nil
}

func (s *Shell) printBanner() {
	s.p.Section("Welcome to Learning Logs Terminal")
	s.p.Infof("Now with Database Storage!")
	s.p.Newline()
}

func (s *Shell) printMenu() {
	s.p.Section("MAIN MENU")
	s.p.Printf("  1. Add a new Topic")
	s.p.Printf("  2. View all Topics")
	s.p.Printf("  3. Exit")
	s.p.Prompt("Choose an option (1-3): ")
}

func (s *Shell) farewell() {
	s.p.Successf("Happy Learning! See you next time.")
}

// readLines streams lines from r until EOF or until ctx is done. The
// goroutine lets a blocked read be abandoned when the context is cancelled.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// next returns the next line, ok=false at end of input, or ctx.Err().
func next(ctx context.Context, lines <-chan string) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-lines:
		return line, ok, nil
	}
}
