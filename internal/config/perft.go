package config

import "runtime"

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Workers is the number of goroutines sharing the root moves
	Workers int `yaml:"workers"`

	// MaxDepth caps the depth accepted from interactive input
	MaxDepth int `yaml:"max_depth"`

	// CacheSize bounds the subtree count table; 0 disables it
	CacheSize int `yaml:"cache_size"`
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:   runtime.NumCPU(),
		MaxDepth:  6,
		CacheSize: 1 << 20,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return invalidf("perft workers %d, need at least 1", p.Workers)
	}
	if p.MaxDepth < 1 {
		return invalidf("perft max depth %d, need at least 1", p.MaxDepth)
	}
	if p.CacheSize < 0 {
		return invalidf("perft cache size %d is negative", p.CacheSize)
	}
	return nil
}
