// Package config loads run configuration with defaults, an optional YAML
// file, and CLASSLENS_-prefixed environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete run configuration.
type Config struct {
	InputFile  string          `mapstructure:"input_file"`
	OutputDir  string          `mapstructure:"output_dir"`
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
	Stats      StatsConfig     `mapstructure:"stats"`
	Charts     ChartsConfig    `mapstructure:"charts"`
	Report     ReportConfig    `mapstructure:"report"`
}

// ThresholdConfig holds the score cut-offs for derived fields.
type ThresholdConfig struct {
	// PassScore is the minimum final score counted as a pass
	PassScore float64 `mapstructure:"pass_score"`
	// HighScore is the minimum final score in the High band
	HighScore float64 `mapstructure:"high_score"`
}

// StatsConfig controls the hypothesis test.
type StatsConfig struct {
	// Alpha is the significance threshold for test verdicts
	Alpha float64 `mapstructure:"alpha"`
	// Welch selects the unpooled-variance t-test variant
	Welch bool `mapstructure:"welch"`
}

// ChartsConfig controls figure generation.
type ChartsConfig struct {
	// Enabled turns chart rendering on or off
	Enabled bool `mapstructure:"enabled"`
}

// ReportConfig controls the text report.
type ReportConfig struct {
	// Enabled turns report writing on or off
	Enabled bool `mapstructure:"enabled"`
	// Filename is the report file name inside the output directory
	Filename string `mapstructure:"filename"`
	// Styled renders the console report with terminal colors
	Styled bool `mapstructure:"styled"`
}

// Load reads configuration from defaults, an optional config file, and
// environment variables. An empty path means defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CLASSLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Thresholds.PassScore < 0 || c.Thresholds.PassScore > 100 {
		return fmt.Errorf("thresholds.pass_score %v outside [0, 100]", c.Thresholds.PassScore)
	}
	if c.Thresholds.HighScore < c.Thresholds.PassScore || c.Thresholds.HighScore > 100 {
		return fmt.Errorf("thresholds.high_score %v must be in [pass_score, 100]", c.Thresholds.HighScore)
	}
	if c.Stats.Alpha <= 0 || c.Stats.Alpha >= 1 {
		return fmt.Errorf("stats.alpha %v outside (0, 1)", c.Stats.Alpha)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input_file", "ai_impact_student_performance_dataset.csv")
	v.SetDefault("output_dir", "outputs")
	v.SetDefault("thresholds.pass_score", 40.0)
	v.SetDefault("thresholds.high_score", 70.0)
	v.SetDefault("stats.alpha", 0.05)
	v.SetDefault("stats.welch", false)
	v.SetDefault("charts.enabled", true)
	v.SetDefault("report.enabled", true)
	v.SetDefault("report.filename", "summary_report.txt")
	v.SetDefault("report.styled", true)
}
