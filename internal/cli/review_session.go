package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/vocabrecall/vocabrecall/internal/card"
	"github.com/vocabrecall/vocabrecall/internal/srs"
)

// ReviewSession drives one interactive study round over a deck's due
// cards.
type ReviewSession struct {
	cards card.CardRepository
	in    *bufio.Reader
	out   io.Writer
	now   func() time.Time
}

// NewReviewSession creates a ReviewSession reading grades from in and
// writing prompts to out.
func NewReviewSession(cards card.CardRepository, in io.Reader, out io.Writer) *ReviewSession {
	return &ReviewSession{
		cards: cards,
		in:    bufio.NewReader(in),
		out:   out,
		now:   time.Now,
	}
}

// Run fetches up to limit due cards and reviews each one: show the
// front, wait for the user, reveal the back, then read a 0-5 grade and
// persist the updated schedule. Entering "q" ends the session early.
func (s *ReviewSession) Run(ctx context.Context, deckID int64, limit int) error {
	dueCards, err := s.cards.DueCards(ctx, deckID, s.now(), limit)
	if err != nil {
		return fmt.Errorf("cards.DueCards > %w", err)
	}
	if len(dueCards) == 0 {
		fmt.Fprintln(s.out, "No cards are due for review.")
		return nil
	}

	var passed, lapsed int
	for index, c := range dueCards {
		fmt.Fprintf(s.out, "\n[%d/%d] %s\n", index+1, len(dueCards), color.New(color.Bold).Sprint(c.DisplayFront()))
		fmt.Fprint(s.out, "Press enter to show the answer (q to quit): ")

		line, err := s.readLine()
		if err != nil {
			return err
		}
		if line == "q" {
			break
		}

		if c.Back != "" {
			fmt.Fprintln(s.out, c.Back)
		}
		if c.ExampleSentence != "" {
			fmt.Fprintf(s.out, "Example: %s\n", c.ExampleSentence)
		}

		quality, quit, err := s.readQuality()
		if err != nil {
			return err
		}
		if quit {
			break
		}

		newState, logEntry, err := srs.RecordReview(c.ID, c.State(), quality, s.now())
		if err != nil {
			return fmt.Errorf("srs.RecordReview > %w", err)
		}
		c.ApplyState(newState)
		if err := s.cards.SaveReview(ctx, c, logEntry); err != nil {
			return fmt.Errorf("cards.SaveReview > %w", err)
		}

		if quality >= srs.PassingQuality {
			passed++
			color.Green("Next review in %d day(s)", newState.Interval)
		} else {
			lapsed++
			color.Red("Back to tomorrow")
		}
	}

	fmt.Fprintf(s.out, "\nSession finished: %d passed, %d lapsed\n", passed, lapsed)
	return nil
}

// readQuality prompts until the user enters a valid 0-5 grade or quits.
func (s *ReviewSession) readQuality() (int, bool, error) {
	for {
		fmt.Fprint(s.out, "Grade your recall 0-5 (q to quit): ")
		line, err := s.readLine()
		if err != nil {
			return 0, false, err
		}
		if line == "q" {
			return 0, true, nil
		}

		quality, err := strconv.Atoi(line)
		if err != nil || quality < 0 || quality > srs.MaxQuality {
			fmt.Fprintln(s.out, "Please enter a number between 0 and 5.")
			continue
		}
		return quality, false, nil
	}
}

func (s *ReviewSession) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if err != nil && line == "" {
		// Treat end of input as quitting the session.
		return "q", nil
	}
	return strings.TrimSpace(line), nil
}
