package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hyspell/pkg/options"
)

func TestScore(t *testing.T) {
	s := NewScorer(options.DefaultOptions)

	tests := []struct {
		name                                 string
		misspelled, candidate                string
		freq, sim                            float64
		transpositions, deletions, additions int
		want                                 float64
	}{
		// 0.125 от клавиатуры + 0.5 за группу, 0.625 округляется к чётному
		{"confusion group", "բար", "պար", 0, 0, 1, 0, 0, 0.62},
		{"keyboard only", "ասոմ", "ասում", 0.75, 0.8, 1, -1, 1, 8.63},
		{"case folded proximity", "Բերում", "բերում", 1.0 / 3, 1 - 1.0/6, 1, 0, 0, 4.17},
		{"missing letter", "ասու", "ասում", 0.75, 0.8, 0, -1, 1, 7.9},
		{"extra letter", "ասումը", "ասում", 0.75, 1 - 1.0/6, 0, 1, -1, 8.73},
		{"outside alphabet", "abc", "abd", 0.1, 0.6, 1, 0, 0, 1.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.misspelled, tt.candidate, tt.freq, tt.sim, tt.transpositions, tt.deletions, tt.additions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.62, round2(0.625))
	assert.Equal(t, 8.63, round2(8.3+1.0/3))
	assert.Equal(t, 2.67, round2(2.675)) // в двоичном виде 2.67499...
}
