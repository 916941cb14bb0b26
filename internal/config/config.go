package config

import (
	"time"

	"hyspell/internal/corpus"
	"hyspell/pkg/options"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Corrector CorrectorConfig `yaml:"corrector"`
	Cache     CacheConfig     `yaml:"cache"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"SERVER_REQUEST_TIMEOUT"  env-default:"5s"`
}

// CorpusConfig lists where the vocabulary is learned from.
// Groups come from YAML only; TextPaths may also be set as a comma-separated env list.
type CorpusConfig struct {
	Groups    []corpus.Group `yaml:"groups"`
	TextPaths []string       `yaml:"text_paths" env:"CORPUS_TEXT_PATHS" env-separator:","`
}

// CorrectorConfig holds the candidate filter thresholds and scoring weights.
// Zero is a meaningful value for most of them, so defaults are seeded by
// Load before reading rather than set through env-default.
type CorrectorConfig struct {
	MaxTranspositions   int     `yaml:"max_transpositions"   env:"CORRECTOR_MAX_TRANSPOSITIONS"`
	MaxAdditions        int     `yaml:"max_additions"        env:"CORRECTOR_MAX_ADDITIONS"`
	MaxDeletions        int     `yaml:"max_deletions"        env:"CORRECTOR_MAX_DELETIONS"`
	MaxSubstitutions    int     `yaml:"max_substitutions"    env:"CORRECTOR_MAX_SUBSTITUTIONS"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"CORRECTOR_SIMILARITY_THRESHOLD"`
	FreqWeight          float64 `yaml:"freq_weight"          env:"CORRECTOR_FREQ_WEIGHT"`
	TranspositionWeight float64 `yaml:"transposition_weight" env:"CORRECTOR_TRANSPOSITION_WEIGHT"`
	DeletionWeight      float64 `yaml:"deletion_weight"      env:"CORRECTOR_DELETION_WEIGHT"`
	AdditionWeight      float64 `yaml:"addition_weight"      env:"CORRECTOR_ADDITION_WEIGHT"`
	LetterGroupBonus    float64 `yaml:"letter_group_bonus"   env:"CORRECTOR_LETTER_GROUP_BONUS"`
	Workers             int     `yaml:"workers"              env:"CORRECTOR_WORKERS"`
}

// CacheConfig holds Redis settings for the suggestion cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"CACHE_ENABLED"  env-default:"false"`
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"24h"`
}

// StoreConfig holds the badger vocabulary snapshot settings.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled" env:"STORE_ENABLED" env-default:"false"`
	Path    string `yaml:"path"    env:"STORE_PATH"    env-default:"./data/vocab"`
	Rebuild bool   `yaml:"rebuild" env:"STORE_REBUILD" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DefaultCorrectorConfig mirrors options.DefaultOptions, except that the
// server scans the vocabulary with 4 workers.
func DefaultCorrectorConfig() CorrectorConfig {
	d := options.DefaultOptions
	return CorrectorConfig{
		MaxTranspositions:   d.MaxTranspositions,
		MaxAdditions:        d.MaxAdditions,
		MaxDeletions:        d.MaxDeletions,
		MaxSubstitutions:    d.MaxSubstitutions,
		SimilarityThreshold: d.SimilarityThreshold,
		FreqWeight:          d.FreqWeight,
		TranspositionWeight: d.TranspositionWeight,
		DeletionWeight:      d.DeletionWeight,
		AdditionWeight:      d.AdditionWeight,
		LetterGroupBonus:    d.LetterGroupBonus,
		Workers:             4,
	}
}

// Options converts the corrector section into corrector options.
func (c CorrectorConfig) Options() []options.Options {
	return []options.Options{
		options.WithMaxTranspositions(c.MaxTranspositions),
		options.WithMaxAdditions(c.MaxAdditions),
		options.WithMaxDeletions(c.MaxDeletions),
		options.WithMaxSubstitutions(c.MaxSubstitutions),
		options.WithSimilarityThreshold(c.SimilarityThreshold),
		options.WithFreqWeight(c.FreqWeight),
		options.WithTranspositionWeight(c.TranspositionWeight),
		options.WithDeletionWeight(c.DeletionWeight),
		options.WithAdditionWeight(c.AdditionWeight),
		options.WithLetterGroupBonus(c.LetterGroupBonus),
		options.WithWorkers(c.Workers),
	}
}

// HasCorpus reports whether any corpus source is configured.
func (c CorpusConfig) HasCorpus() bool {
	for _, g := range c.Groups {
		if len(g.Paths) > 0 && len(g.Columns) > 0 {
			return true
		}
	}
	return len(c.TextPaths) > 0
}
