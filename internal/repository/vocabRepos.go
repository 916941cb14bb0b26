package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v3"

	"hyspell/internal/corrector"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("repository: no vocabulary snapshot")

const vocabPrefix = "vocab:"

// VocabRepository persists the built vocabulary so a restart does not need the corpus.
type VocabRepository struct {
	DB  *badger.DB
	log *slog.Logger
}

// NewVocabRepository opens badger at path; an empty path keeps everything in memory.
func NewVocabRepository(path string, logger *slog.Logger) (*VocabRepository, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("repository: open %q: %w", path, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabRepository{DB: db, log: logger}, nil
}

// Save replaces the stored snapshot with entries, keeping their order.
func (vr *VocabRepository) Save(ctx context.Context, entries []corrector.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stale, err := vr.keysFrom(len(entries))
	if err != nil {
		return err
	}

	wb := vr.DB.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range stale {
		if err := wb.Delete(k); err != nil {
			return fmt.Errorf("repository: drop %s: %w", k, err)
		}
	}
	for i, e := range entries {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if err := wb.Set(vocabKey(i), data); err != nil {
			return fmt.Errorf("repository: write %q: %w", e.Word, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("repository: flush snapshot: %w", err)
	}
	vr.log.Info("vocabulary snapshot saved", slog.Int("words", len(entries)))
	return nil
}

// Load returns the stored entries in the order they were saved.
func (vr *VocabRepository) Load(ctx context.Context) ([]corrector.Entry, error) {
	var out []corrector.Entry
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(vocabPrefix)

	err := vr.DB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var e corrector.Entry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				return fmt.Errorf("repository: decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoSnapshot
	}
	return out, nil
}

// keysFrom lists stored snapshot keys at position n and beyond.
func (vr *VocabRepository) keysFrom(n int) ([][]byte, error) {
	var keys [][]byte
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(vocabPrefix)
	opts.PrefetchValues = false

	err := vr.DB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(vocabKey(n)); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

func (vr *VocabRepository) Close() error {
	return vr.DB.Close()
}

// ключи с нулями слева: лексикографический порядок badger совпадает с порядком словаря
func vocabKey(i int) []byte {
	return fmt.Appendf(nil, "%s%010d", vocabPrefix, i)
}
