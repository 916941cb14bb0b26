package corrector

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is a vocabulary word with its normalized frequency.
type Entry struct {
	Word      string  `json:"word"`
	Frequency float64 `json:"frequency"`
}

// Vocabulary is an insertion-ordered word -> frequency table.
// It is never mutated after construction, so concurrent reads are safe.
type Vocabulary struct {
	words *orderedmap.OrderedMap[string, float64]
}

// BuildVocabulary counts tokens, normalizes the counts and folds capitalized
// forms into their lowercase twin when that twin was observed as a token.
func BuildVocabulary(tokens []string) *Vocabulary {
	raw := relativeFrequencies(tokens)
	words := orderedmap.New[string, float64]()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if lw := strings.ToLower(pair.Key); lw != pair.Key {
			if _, seen := raw.Get(lw); seen {
				key = lw
			}
		}
		prev, _ := words.Get(key)
		words.Set(key, prev+pair.Value)
	}
	return &Vocabulary{words: words}
}

// NewVocabulary restores a vocabulary from an ordered snapshot as is.
func NewVocabulary(entries []Entry) *Vocabulary {
	words := orderedmap.New[string, float64]()
	for _, e := range entries {
		words.Set(e.Word, e.Frequency)
	}
	return &Vocabulary{words: words}
}

// relativeFrequencies returns count/total per exact token, most frequent first,
// ties in order of first occurrence.
func relativeFrequencies(tokens []string) *orderedmap.OrderedMap[string, float64] {
	counts := make(map[string]int)
	var order []string
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	out := orderedmap.New[string, float64]()
	total := float64(len(tokens))
	for _, t := range order {
		out.Set(t, float64(counts[t])/total)
	}
	return out
}

func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words.Get(word)
	return ok
}

func (v *Vocabulary) Frequency(word string) (float64, bool) {
	return v.words.Get(word)
}

func (v *Vocabulary) Len() int {
	return v.words.Len()
}

// Entries returns the words in insertion order.
func (v *Vocabulary) Entries() []Entry {
	out := make([]Entry, 0, v.words.Len())
	for pair := v.words.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Word: pair.Key, Frequency: pair.Value})
	}
	return out
}
