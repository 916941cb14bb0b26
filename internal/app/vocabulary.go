package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hyspell/internal/config"
	"hyspell/internal/corpus"
	"hyspell/internal/corrector"
	"hyspell/internal/preprocess"
	"hyspell/internal/repository"
)

// VocabularyStore persists a built vocabulary between runs.
type VocabularyStore interface {
	Save(ctx context.Context, entries []corrector.Entry) error
	Load(ctx context.Context) ([]corrector.Entry, error)
}

// BuildFromCorpus loads the configured corpus and learns a vocabulary from it.
func BuildFromCorpus(cfg config.CorpusConfig, logger *slog.Logger) (*corrector.Vocabulary, error) {
	start := time.Now()
	text, err := corpus.Load(cfg.Groups, cfg.TextPaths)
	if err != nil {
		return nil, err
	}
	tokens := preprocess.Tokens(text)
	vocab := corrector.BuildVocabulary(tokens)
	logger.Info("vocabulary built",
		slog.Int("tokens", len(tokens)),
		slog.Int("words", vocab.Len()),
		slog.Duration("took", time.Since(start)),
	)
	return vocab, nil
}

// LoadVocabulary restores the vocabulary from store unless a rebuild is requested
// or nothing is stored yet; a freshly built vocabulary is saved back to store.
// store may be nil.
func LoadVocabulary(ctx context.Context, cfg *config.Config, store VocabularyStore, logger *slog.Logger) (*corrector.Vocabulary, error) {
	if store != nil && !cfg.Store.Rebuild {
		entries, err := store.Load(ctx)
		switch {
		case err == nil:
			logger.Info("vocabulary restored from store", slog.Int("words", len(entries)))
			return corrector.NewVocabulary(entries), nil
		case errors.Is(err, repository.ErrNoSnapshot):
			logger.Info("vocabulary store is empty, building from corpus")
		default:
			return nil, fmt.Errorf("app: load vocabulary: %w", err)
		}
	}

	if !cfg.Corpus.HasCorpus() {
		return nil, fmt.Errorf("app: no vocabulary stored and no corpus configured")
	}
	vocab, err := BuildFromCorpus(cfg.Corpus, logger)
	if err != nil {
		return nil, err
	}
	if store != nil {
		if err := store.Save(ctx, vocab.Entries()); err != nil {
			return nil, fmt.Errorf("app: save vocabulary: %w", err)
		}
	}
	return vocab, nil
}
