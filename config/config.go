// Package config loads labeldecode settings from a YAML file, the
// environment and built-in defaults.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Batch BatchConfig `yaml:"batch"`
	LSP   LSPConfig   `yaml:"lsp"`
}

// LogConfig holds logging settings. Verbosity follows commonlog: -4 is
// silent, 0 logs notices, 2 and above logs debug messages.
type LogConfig struct {
	Verbosity int    `yaml:"verbosity" env:"LABELDECODE_LOG_VERBOSITY" env-default:"0"`
	Path      string `yaml:"path"      env:"LABELDECODE_LOG_PATH"`
}

// BatchConfig holds submission decoding settings.
type BatchConfig struct {
	Workers      int           `yaml:"workers"       env:"LABELDECODE_BATCH_WORKERS"       env-default:"4"`
	HintSlot     string        `yaml:"hint_slot"     env:"LABELDECODE_BATCH_HINT_SLOT"     env-default:"cpu"`
	Format       string        `yaml:"format"        env:"LABELDECODE_BATCH_FORMAT"        env-default:"text"`
	PollInterval time.Duration `yaml:"poll_interval" env:"LABELDECODE_BATCH_POLL_INTERVAL" env-default:"1s"`
}

// LSPConfig holds language server settings.
type LSPConfig struct {
	// IncompleteSeverity is the diagnostic severity for labels that do not
	// decode yet but may once more text is typed.
	IncompleteSeverity string `yaml:"incomplete_severity" env:"LABELDECODE_LSP_INCOMPLETE_SEVERITY" env-default:"information"`
}

// LogPath returns the log file path, or nil for standard error.
func (c *LogConfig) LogPath() *string {
	if c.Path == "" {
		return nil
	}
	return &c.Path
}
