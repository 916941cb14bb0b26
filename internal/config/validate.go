package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if !c.Corpus.HasCorpus() && !c.Store.Enabled {
		return fmt.Errorf("corpus: no sources configured and no vocabulary store enabled")
	}
	if c.Store.Rebuild && !c.Corpus.HasCorpus() {
		return fmt.Errorf("store.rebuild requires a corpus")
	}

	if err := c.Corrector.validate(); err != nil {
		return fmt.Errorf("corrector: %w", err)
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required when the cache is enabled")
	}

	return nil
}

func (c *CorrectorConfig) validate() error {
	for name, v := range map[string]int{
		"max_transpositions": c.MaxTranspositions,
		"max_additions":      c.MaxAdditions,
		"max_deletions":      c.MaxDeletions,
		"max_substitutions":  c.MaxSubstitutions,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1) (got %v)", c.SimilarityThreshold)
	}
	if c.FreqWeight < 0 {
		return fmt.Errorf("freq_weight must be >= 0 (got %v)", c.FreqWeight)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", c.Workers)
	}
	return nil
}
