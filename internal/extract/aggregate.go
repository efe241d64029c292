package extract

import (
	"sort"
	"strings"
)

// accumulator counts occurrences per (category, lemma) key and keeps the
// metadata of the first occurrence. Both classifier paths feed one of
// these; chunked runs merge their accumulators before finalizing.
type accumulator struct {
	freq    map[Key]int
	entries map[Key]Entry
}

func newAccumulator() *accumulator {
	return &accumulator{
		freq:    make(map[Key]int),
		entries: make(map[Key]Entry),
	}
}

// add records one occurrence of key. seed is only called for the first
// occurrence, so building the example sentence can stay lazy.
func (a *accumulator) add(key Key, seed func() Entry) {
	a.freq[key]++
	if _, ok := a.entries[key]; !ok {
		a.entries[key] = seed()
	}
}

// merge folds other into a, summing counts. First-seen metadata of a
// wins for keys present in both.
func (a *accumulator) merge(other *accumulator) {
	for key, count := range other.freq {
		a.freq[key] += count
		if _, ok := a.entries[key]; !ok {
			a.entries[key] = other.entries[key]
		}
	}
}

// finalize drops keys below minFreq and returns the surviving entries
// sorted by category (noun, verb, adjective) then lemma, case-insensitive.
// The ordering is a contract: consumers render lists assuming it.
func (a *accumulator) finalize(minFreq int) []Entry {
	if minFreq < 1 {
		minFreq = 1
	}

	results := make([]Entry, 0, len(a.entries))
	for key, entry := range a.entries {
		count := a.freq[key]
		if count < minFreq {
			continue
		}
		entry.Frequency = count
		results = append(results, entry)
	}

	sort.Slice(results, func(i, j int) bool {
		ri, rj := categoryRank[results[i].Category], categoryRank[results[j].Category]
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(results[i].Lemma) < strings.ToLower(results[j].Lemma)
	})
	return results
}
