// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // "console" or "json"
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`

	// File rotation; logging stays console-only when LogFile is empty.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// AnalysisConfig holds settings for one repository analysis run.
type AnalysisConfig struct {
	DownstreamRef string `mapstructure:"downstream_ref" yaml:"downstream_ref"`
	UpstreamRef   string `mapstructure:"upstream_ref" yaml:"upstream_ref"`
	// Threshold is the shortlog edit distance below which an outstanding
	// downstream patch counts as likely merged upstream.
	Threshold int `mapstructure:"threshold" yaml:"threshold"`
	// AuthorDomains are email domain suffixes identifying downstream
	// contributors, e.g. "@example.com".
	AuthorDomains []string `mapstructure:"author_domains" yaml:"author_domains"`
	// SetAreas are manual "sha:Area" classifications, checked before
	// anything else.
	SetAreas []string `mapstructure:"set_areas" yaml:"set_areas"`
	// SetPrefixes are manual "prefix:Area" classifications, checked
	// after SetAreas and before the built-in catalog.
	SetPrefixes []string `mapstructure:"set_prefixes" yaml:"set_prefixes"`
}

// ReportConfig holds output settings.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	// Output is a file path; empty or "stdout" writes to stdout.
	Output string `mapstructure:"output" yaml:"output"`
	// CommitURLBase prefixes commit hashes to form links in markdown
	// output, e.g. "https://github.com/org/repo/commit/".
	CommitURLBase string `mapstructure:"commit_url_base" yaml:"commit_url_base"`
}

// SetDefaults registers every default value on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "forkdrift")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("analysis.downstream_ref", "fork/main")
	v.SetDefault("analysis.upstream_ref", "upstream/main")
	v.SetDefault("analysis.threshold", 3)

	v.SetDefault("report.format", "text")
	v.SetDefault("report.output", "")
}

// ParseAreaSpec splits a "key:Area" override argument. The split is on
// the last colon so shortlog prefixes containing colons stay intact.
func ParseAreaSpec(spec string) (key, area string, err error) {
	i := strings.LastIndex(spec, ":")
	if i <= 0 || i == len(spec)-1 {
		return "", "", fmt.Errorf("malformed area override %q, want key:Area", spec)
	}
	return spec[:i], spec[i+1:], nil
}
