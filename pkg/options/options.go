package options

// DefaultOptions mirrors the thresholds and weights the scoring model was tuned with.
var DefaultOptions = CorrectorOptions{
	MaxTranspositions:   1,
	MaxAdditions:        1,
	MaxDeletions:        1,
	MaxSubstitutions:    2,
	SimilarityThreshold: 0.5,
	FreqWeight:          10,
	TranspositionWeight: 0.2,
	DeletionWeight:      0.5,
	AdditionWeight:      0.1,
	LetterGroupBonus:    0.5,
	Workers:             1,
}

type CorrectorOptions struct {
	MaxTranspositions   int
	MaxAdditions        int
	MaxDeletions        int
	MaxSubstitutions    int
	SimilarityThreshold float64 // кандидат проходит только при similarity строго больше порога
	FreqWeight          float64
	TranspositionWeight float64
	DeletionWeight      float64
	AdditionWeight      float64
	LetterGroupBonus    float64
	Workers             int // число параллельных частей при обходе словаря
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(&o)
		}
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

func WithMaxTranspositions(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxTranspositions = n
	})
}

func WithMaxAdditions(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxAdditions = n
	})
}

func WithMaxDeletions(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxDeletions = n
	})
}

func WithMaxSubstitutions(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxSubstitutions = n
	})
}

func WithSimilarityThreshold(threshold float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.SimilarityThreshold = threshold
	})
}

func WithFreqWeight(weight float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.FreqWeight = weight
	})
}

// Веса для ветки без позиционных замен

func WithTranspositionWeight(weight float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.TranspositionWeight = weight
	})
}

func WithDeletionWeight(weight float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.DeletionWeight = weight
	})
}

func WithAdditionWeight(weight float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.AdditionWeight = weight
	})
}

func WithLetterGroupBonus(bonus float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.LetterGroupBonus = bonus
	})
}

// WithWorkers splits the vocabulary scan into n chunks scored concurrently.
func WithWorkers(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Workers = n
	})
}
