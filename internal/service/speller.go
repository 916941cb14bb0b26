// Package service exposes the corrector behind an optional result cache.
package service

import (
	"context"
	"errors"
	"log/slog"

	"hyspell/internal/corrector"
	"hyspell/internal/preprocess"
	"hyspell/internal/suggestcache"
)

// Cache stores correction results per word.
type Cache interface {
	Get(ctx context.Context, word string) (corrector.Result, error)
	Set(ctx context.Context, word string, res corrector.Result) error
}

type Speller struct {
	corrector *corrector.Corrector
	cache     Cache
	log       *slog.Logger
}

// NewSpeller wires the corrector with an optional cache (nil disables caching).
func NewSpeller(c *corrector.Corrector, cache Cache, logger *slog.Logger) *Speller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Speller{corrector: c, cache: cache, log: logger}
}

// Check corrects a single word. Cache failures are logged and bypassed.
func (s *Speller) Check(ctx context.Context, word string) (corrector.Result, error) {
	if s.cache != nil {
		res, err := s.cache.Get(ctx, word)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, suggestcache.ErrMiss) {
			s.log.WarnContext(ctx, "suggestion cache read failed", slog.String("word", word), slog.Any("error", err))
		}
	}

	res, err := s.corrector.CorrectContext(ctx, word)
	if err != nil {
		return corrector.Result{}, err
	}
	s.log.DebugContext(ctx, "word checked",
		slog.String("word", word),
		slog.String("status", res.Status.String()),
		slog.Int("candidates", len(res.Candidates)),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, word, res); err != nil {
			s.log.WarnContext(ctx, "suggestion cache write failed", slog.String("word", word), slog.Any("error", err))
		}
	}
	return res, nil
}

// CheckText tokenizes text and checks every token independently.
func (s *Speller) CheckText(ctx context.Context, text string) ([]corrector.TokenResult, error) {
	tokens := preprocess.Tokens(text)
	out := make([]corrector.TokenResult, 0, len(tokens))
	for i, t := range tokens {
		res, err := s.Check(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, corrector.TokenResult{Position: i, Token: t, Result: res})
	}
	return out, nil
}

// VocabularySize reports how many words the corrector knows.
func (s *Speller) VocabularySize() int {
	return s.corrector.Vocabulary().Len()
}
