package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyspell/internal/config"
	"hyspell/internal/corpus"
	"hyspell/internal/corrector"
	"hyspell/internal/repository"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	train := filepath.Join(dir, "train.csv")
	require.NoError(t, os.WriteFile(train, []byte("target\n\"Ասում է, որ ասում է\"\nգնում\n"), 0o644))
	return &config.Config{
		Corpus: config.CorpusConfig{Groups: []corpus.Group{{Paths: []string{train}, Columns: []string{"target"}}}},
	}
}

func newStore(t *testing.T) *repository.VocabRepository {
	t.Helper()
	vr, err := repository.NewVocabRepository("", discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = vr.Close() })
	return vr
}

func TestBuildFromCorpus(t *testing.T) {
	vocab, err := BuildFromCorpus(testConfig(t).Corpus, discard)
	require.NoError(t, err)

	// Ասում свёрнуто в ասում: 1/6 + 1/6
	f, ok := vocab.Frequency("ասում")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, f, 1e-12)
	assert.False(t, vocab.Contains("Ասում"))
	assert.Equal(t, 4, vocab.Len())
}

func TestLoadVocabularyWithoutStore(t *testing.T) {
	vocab, err := LoadVocabulary(context.Background(), testConfig(t), nil, discard)
	require.NoError(t, err)
	assert.True(t, vocab.Contains("գնում"))
}

func TestLoadVocabularySavesThenRestores(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	cfg := testConfig(t)

	built, err := LoadVocabulary(ctx, cfg, store, discard)
	require.NoError(t, err)

	// корпус больше не нужен: словарь берётся из хранилища
	cfg.Corpus = config.CorpusConfig{}
	restored, err := LoadVocabulary(ctx, cfg, store, discard)
	require.NoError(t, err)
	assert.Equal(t, built.Entries(), restored.Entries())
}

func TestLoadVocabularyRebuild(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Save(ctx, []corrector.Entry{{Word: "հին", Frequency: 1}}))

	cfg := testConfig(t)
	cfg.Store.Rebuild = true
	vocab, err := LoadVocabulary(ctx, cfg, store, discard)
	require.NoError(t, err)
	assert.False(t, vocab.Contains("հին"))

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, vocab.Entries(), saved)
}

func TestLoadVocabularyNothingToLoad(t *testing.T) {
	_, err := LoadVocabulary(context.Background(), &config.Config{}, newStore(t), discard)
	assert.Error(t, err)
}
