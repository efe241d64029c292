package cli

import (
	"fmt"
	"io"

	"github.com/vocabrecall/vocabrecall/internal/card"
)

// WriteDeckStats renders a deck's progress counters.
func WriteDeckStats(out io.Writer, deckName string, stats card.DeckStats) {
	fmt.Fprintf(out, "Deck: %s\n", deckName)
	fmt.Fprintf(out, "  Total:    %d\n", stats.Total)
	fmt.Fprintf(out, "  Due:      %d\n", stats.Due)
	fmt.Fprintf(out, "  Mastered: %d\n", stats.Mastered)
	fmt.Fprintf(out, "  Learning: %d\n", stats.Learning)
}
