package corrector

import "hyspell/pkg/options"

// Scorer ranks a vocabulary word as a correction for a misspelled word.
type Scorer struct {
	opts      options.CorrectorOptions
	proximity ProximityMatrix
}

func NewScorer(opts options.CorrectorOptions) *Scorer {
	return &Scorer{opts: opts, proximity: BuildProximityMatrix()}
}

// Score returns the rounded rank score of candidate for misspelled. similarity is
// the normalized edit similarity; the counts come from the coarse filter.
// Letters outside the Armenian alphabet are skipped by the keyboard term.
func (s *Scorer) Score(misspelled, candidate string, freq, similarity float64, transpositions, deletions, additions int) float64 {
	return round2(s.rawScore([]rune(misspelled), []rune(candidate), freq, similarity, transpositions, deletions, additions))
}

func (s *Scorer) rawScore(misspelled, candidate []rune, freq, similarity float64, transpositions, deletions, additions int) float64 {
	score := similarity + s.opts.FreqWeight*freq
	if alignedMismatches(misspelled, candidate) > 0 {
		return score + s.proximityScore(misspelled, candidate) + s.letterGroupScore(misspelled, candidate)
	}
	return score +
		s.opts.TranspositionWeight*float64(transpositions) +
		s.opts.DeletionWeight*float64(deletions) +
		s.opts.AdditionWeight*float64(additions)
}

// proximityScore dampens the summed key distance of aligned letters into (0,1].
func (s *Scorer) proximityScore(misspelled, candidate []rune) float64 {
	sum := 0
	n := min(len(misspelled), len(candidate))
	for i := 0; i < n; i++ {
		if d, ok := s.proximity.Distance(misspelled[i], candidate[i]); ok {
			sum += d
		}
	}
	if sum == 0 {
		return 0
	}
	return 1 / (1 + float64(sum))
}

func (s *Scorer) letterGroupScore(misspelled, candidate []rune) float64 {
	score := 0.0
	n := min(len(misspelled), len(candidate))
	for i := 0; i < n; i++ {
		if confusable(misspelled[i], candidate[i]) {
			score += s.opts.LetterGroupBonus
		}
	}
	return score
}

func alignedMismatches(a, b []rune) int {
	n := 0
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
