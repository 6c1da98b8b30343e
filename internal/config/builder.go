package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSON = enabled
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithRules sets the rule pipeline by name.
func (b *ConfigBuilder) WithRules(names ...string) *ConfigBuilder {
	b.cfg.Rules = names
	return b
}

// WithProgress enables the progress spinner.
func (b *ConfigBuilder) WithProgress(enabled bool) *ConfigBuilder {
	b.cfg.Progress = enabled
	return b
}

// WithCPUProfile sets the CPU profile directory.
func (b *ConfigBuilder) WithCPUProfile(dir string) *ConfigBuilder {
	b.cfg.CPUProfile = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.Log = w
	return b
}
