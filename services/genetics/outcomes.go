package genetics

import (
	"sort"
)

// OutcomesFromMap converts a plain genotype -> count map. Map iteration order
// is random, so keys are ordered lexicographically to keep results stable.
func OutcomesFromMap(counts map[string]int) Outcomes {
	keys := make([]string, 0, len(counts))
	for genotype := range counts {
		keys = append(keys, genotype)
	}
	sort.Strings(keys)

	outcomes := make(Outcomes, 0, len(keys))
	for _, genotype := range keys {
		outcomes = append(outcomes, Outcome{Genotype: genotype, Count: counts[genotype]})
	}
	return outcomes
}

// tally accumulates counts under a key and remembers when the key was first seen
type tally struct {
	key   string
	count int
	first int
}

type tallies struct {
	items []tally
	index map[string]int
}

func newTallies() *tallies {
	return &tallies{index: map[string]int{}}
}

func (t *tallies) add(key string, count int) {
	if i, ok := t.index[key]; ok {
		t.items[i].count += count
		return
	}
	t.index[key] = len(t.items)
	t.items = append(t.items, tally{key: key, count: count, first: len(t.items)})
}
