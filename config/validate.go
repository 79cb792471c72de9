package config

import (
	"fmt"
	"slices"
	"time"
)

var (
	formats    = []string{"text", "json", "yaml"}
	severities = []string{"error", "warning", "information", "hint"}
)

const minPollInterval = 100 * time.Millisecond

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Batch.validate(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if !slices.Contains(severities, c.LSP.IncompleteSeverity) {
		return fmt.Errorf("lsp: incomplete_severity must be one of %v (got %q)", severities, c.LSP.IncompleteSeverity)
	}
	return nil
}

func (b *BatchConfig) validate() error {
	if b.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", b.Workers)
	}
	if b.HintSlot == "" {
		return fmt.Errorf("hint_slot must not be empty")
	}
	if !slices.Contains(formats, b.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", formats, b.Format)
	}
	if b.PollInterval < minPollInterval {
		return fmt.Errorf("poll_interval must be at least %v (got %v)", minPollInterval, b.PollInterval)
	}
	return nil
}
