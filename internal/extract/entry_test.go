package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_DisplayFront(t *testing.T) {
	assert.Equal(t, "der Hund", Entry{Word: "Hund", Article: "der"}.DisplayFront())
	assert.Equal(t, "laufen", Entry{Word: "laufen"}.DisplayFront())
}

func TestCollapseExample(t *testing.T) {
	assert.Equal(t, "Der Hund läuft.", collapseExample("  Der \n Hund\t läuft.  "))

	long := strings.Repeat("ä", 400)
	collapsed := collapseExample(long)
	assert.Equal(t, maxExampleLen, len([]rune(collapsed)))
}

func TestAccumulator_Finalize(t *testing.T) {
	acc := newAccumulator()
	seed := func(word string, category Category) func() Entry {
		return func() Entry {
			return Entry{Word: word, Lemma: strings.ToLower(word), Category: category}
		}
	}

	acc.add(Key{Category: CategoryVerb, Lemma: "zeigen"}, seed("zeigen", CategoryVerb))
	acc.add(Key{Category: CategoryNoun, Lemma: "zug"}, seed("Zug", CategoryNoun))
	acc.add(Key{Category: CategoryNoun, Lemma: "apfel"}, seed("Apfel", CategoryNoun))
	acc.add(Key{Category: CategoryAdjective, Lemma: "ruhig"}, seed("ruhig", CategoryAdjective))
	acc.add(Key{Category: CategoryNoun, Lemma: "apfel"}, seed("APFEL", CategoryNoun))

	entries := acc.finalize(1)
	lemmas := make([]string, len(entries))
	for i, e := range entries {
		lemmas[i] = e.Lemma
	}
	assert.Equal(t, []string{"apfel", "zug", "zeigen", "ruhig"}, lemmas)

	// First occurrence wins for display metadata, frequency accumulates.
	assert.Equal(t, "Apfel", entries[0].Word)
	assert.Equal(t, 2, entries[0].Frequency)

	// minFreq below one behaves like one.
	assert.Len(t, acc.finalize(0), 4)
	// Higher thresholds drop singletons.
	assert.Len(t, acc.finalize(2), 1)
}
