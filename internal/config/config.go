package config

import (
	"fmt"
)

// Config represents the complete configuration for the masklasso application.
// Refinement settings form an immutable value object passed through the
// pipeline; output and batch settings only affect the CLI surface.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Contour snapping and post-filtering.
	Refine RefineConfig `mapstructure:"refine" yaml:"refine" json:"refine"`

	// Mask quality scoring.
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`

	// Output configuration.
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Batch processing configuration.
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// RefineConfig carries the contour-snapping parameters.
type RefineConfig struct {
	// Half-width of the per-point search window.
	SearchRadius int `mapstructure:"search_radius" yaml:"search_radius" json:"search_radius"`
	// Weight of the per-step smoothness cost during neighbor relaxation.
	LambdaSmooth float64 `mapstructure:"lambda_smooth" yaml:"lambda_smooth" json:"lambda_smooth"`
	// Weight of the distance-to-original-point heuristic.
	LambdaProx float64 `mapstructure:"lambda_prox" yaml:"lambda_prox" json:"lambda_prox"`
	// Douglas-Peucker tolerance as a fraction of the contour perimeter.
	SimplifyEpsilonRatio float64 `mapstructure:"simplify_epsilon_ratio" yaml:"simplify_epsilon_ratio" json:"simplify_epsilon_ratio"`
	// Edge-preserving post-filter selection and parameters.
	GuidedFilterEnabled bool    `mapstructure:"guided_filter_enabled" yaml:"guided_filter_enabled" json:"guided_filter_enabled"`
	GuidedFilterRadius  int     `mapstructure:"guided_filter_radius" yaml:"guided_filter_radius" json:"guided_filter_radius"`
	GuidedFilterEps     float64 `mapstructure:"guided_filter_eps" yaml:"guided_filter_eps" json:"guided_filter_eps"`
}

// MetricsConfig carries the quality-scoring parameters.
type MetricsConfig struct {
	// Edge-map intensity above which a pixel counts as a strong edge.
	EdgeThreshold int `mapstructure:"edge_threshold" yaml:"edge_threshold" json:"edge_threshold"`
}

// OutputConfig contains output settings for the CLI.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	// Number of concurrent refinements (0 = number of CPUs).
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`
}

// DefaultConfig returns the configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Refine: RefineConfig{
			SearchRadius:         10,
			LambdaSmooth:         0.5,
			LambdaProx:           0.2,
			SimplifyEpsilonRatio: 0.01,
			GuidedFilterEnabled:  true,
			GuidedFilterRadius:   5,
			GuidedFilterEps:      0.1,
		},
		Metrics: MetricsConfig{
			EdgeThreshold: 50,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Batch: BatchConfig{
			Workers: 0,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.Refine.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, yaml)", c.Output.Format)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid batch workers: %d (must be >= 0)", c.Batch.Workers)
	}
	return nil
}

// Validate checks the refinement parameters.
func (c *RefineConfig) Validate() error {
	if c.SearchRadius <= 0 {
		return fmt.Errorf("invalid search_radius: %d (must be positive)", c.SearchRadius)
	}
	if c.LambdaSmooth < 0 {
		return fmt.Errorf("invalid lambda_smooth: %g (must be >= 0)", c.LambdaSmooth)
	}
	if c.LambdaProx < 0 {
		return fmt.Errorf("invalid lambda_prox: %g (must be >= 0)", c.LambdaProx)
	}
	if c.SimplifyEpsilonRatio < 0 {
		return fmt.Errorf("invalid simplify_epsilon_ratio: %g (must be >= 0)", c.SimplifyEpsilonRatio)
	}
	if c.GuidedFilterRadius <= 0 {
		return fmt.Errorf("invalid guided_filter_radius: %d (must be positive)", c.GuidedFilterRadius)
	}
	if c.GuidedFilterEps <= 0 {
		return fmt.Errorf("invalid guided_filter_eps: %g (must be positive)", c.GuidedFilterEps)
	}
	return nil
}

// Validate checks the metrics parameters.
func (c *MetricsConfig) Validate() error {
	if c.EdgeThreshold < 0 || c.EdgeThreshold > 255 {
		return fmt.Errorf("invalid edge_threshold: %d (must be in [0,255])", c.EdgeThreshold)
	}
	return nil
}
