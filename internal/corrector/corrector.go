package corrector

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"hyspell/pkg/options"
)

// Corrector proposes ranked corrections for words missing from its vocabulary.
// It holds no mutable state, so one instance may serve concurrent callers.
type Corrector struct {
	opts    options.CorrectorOptions
	vocab   *Vocabulary
	entries []Entry
	scorer  *Scorer
	digest  string
}

func New(vocab *Vocabulary, opts ...options.Options) *Corrector {
	o := options.Resolve(opts...)
	if vocab == nil {
		vocab = BuildVocabulary(nil)
	}
	entries := vocab.Entries()
	return &Corrector{
		opts:    o,
		vocab:   vocab,
		entries: entries,
		scorer:  NewScorer(o),
		digest:  fingerprint(o, entries),
	}
}

func (c *Corrector) Vocabulary() *Vocabulary { return c.vocab }

// Fingerprint identifies everything a result depends on: the thresholds,
// the weights and the ordered vocabulary. Workers does not change results
// and is left out.
func (c *Corrector) Fingerprint() string { return c.digest }

func fingerprint(o options.CorrectorOptions, entries []Entry) string {
	d := xxhash.New()
	var buf []byte
	for _, n := range []int{o.MaxTranspositions, o.MaxAdditions, o.MaxDeletions, o.MaxSubstitutions} {
		buf = strconv.AppendInt(buf, int64(n), 10)
		buf = append(buf, '|')
	}
	for _, f := range []float64{
		o.SimilarityThreshold, o.FreqWeight, o.TranspositionWeight,
		o.DeletionWeight, o.AdditionWeight, o.LetterGroupBonus,
	} {
		buf = strconv.AppendUint(buf, math.Float64bits(f), 16)
		buf = append(buf, '|')
	}
	_, _ = d.Write(buf)
	for _, e := range entries {
		buf = append(buf[:0], e.Word...)
		buf = append(buf, 0)
		buf = strconv.AppendUint(buf, math.Float64bits(e.Frequency), 16)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// Correct classifies word and ranks candidates for it.
func (c *Corrector) Correct(word string) Result {
	if c.vocab.Contains(word) {
		return Result{Status: AlreadyCorrect}
	}
	return c.rank(c.scan([]rune(word), c.entries))
}

// CorrectContext is Correct with the vocabulary scan split across the
// configured number of workers. It stops early when ctx is done.
func (c *Corrector) CorrectContext(ctx context.Context, word string) (Result, error) {
	if c.vocab.Contains(word) {
		return Result{Status: AlreadyCorrect}, nil
	}
	query := []rune(word)
	chunks := split(c.entries, c.opts.Workers)
	found := make([][]Candidate, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found[i] = c.scan(query, chunk)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// части склеиваются в порядке словаря, чтобы равные оценки шли как при последовательном обходе
	var all []Candidate
	for _, f := range found {
		all = append(all, f...)
	}
	return c.rank(all), nil
}

func (c *Corrector) scan(query []rune, entries []Entry) []Candidate {
	var out []Candidate
	q := string(query)
	for _, e := range entries {
		w := []rune(e.Word)
		ec := countEdits(query, w)
		if ec.transpositions > c.opts.MaxTranspositions ||
			ec.additions > c.opts.MaxAdditions ||
			ec.deletions > c.opts.MaxDeletions ||
			ec.substitutions > c.opts.MaxSubstitutions {
			continue
		}
		sim := similarity(q, e.Word)
		if sim <= c.opts.SimilarityThreshold {
			continue
		}
		score := round2(c.scorer.rawScore(query, w, e.Frequency, sim, ec.transpositions, ec.deletions, ec.additions))
		out = append(out, Candidate{Word: e.Word, Score: score})
	}
	return out
}

func (c *Corrector) rank(found []Candidate) Result {
	if len(found) == 0 {
		return Result{Status: NoSuggestion}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Score > found[j].Score })
	return Result{Status: Suggestions, Candidates: found}
}

func split(entries []Entry, n int) [][]Entry {
	if n < 1 {
		n = 1
	}
	size := (len(entries) + n - 1) / n
	if size == 0 {
		return nil
	}
	var out [][]Entry
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		out = append(out, entries[start:end])
	}
	return out
}
