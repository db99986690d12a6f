// Package engineconfig holds the runtime configuration for a subdivision
// engine instance: worker count, whether UVs are refined, and logging.
package engineconfig

// Config is the top-level configuration, loaded from and saved to YAML.
type Config struct {
	// Workers is the worker pool size. 0 means GOMAXPROCS, matching
	// WorkerPool's own default.
	Workers int `yaml:"workers"`

	// EnableUVs controls whether RefineVertexUvs runs as part of the
	// full refinement pipelines. Ignored (treated as false) for cages
	// built without uvs.
	EnableUVs bool `yaml:"enable_uvs"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger ccsubdiv.SetLogger installs.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error". Empty disables
	// logging (the nop logger stays installed).
	Level string `yaml:"level"`

	// File is the log file path. Empty logs to stderr.
	File string `yaml:"file"`

	// MaxSizeMB, MaxBackups and MaxAgeDays configure lumberjack rotation
	// when File is set.
	MaxSizeMB  int `yaml:"max_size_mb"`
	MaxBackups int `yaml:"max_backups"`
	MaxAgeDays int `yaml:"max_age_days"`
}

// Default returns the configuration used when no file is found: an
// auto-sized worker pool, uvs enabled, logging off.
func Default() *Config {
	return &Config{
		Workers:   0,
		EnableUVs: true,
		Logging: LoggingConfig{
			Level:      "",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
