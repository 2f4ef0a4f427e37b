package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .patternlens.yaml.
type ProjectConfig struct {
	ExcludePaths    []string          `yaml:"exclude_paths"    json:"exclude_paths,omitempty"`
	ExtraExtensions []string          `yaml:"extra_extensions" json:"extra_extensions,omitempty"`
	Weights         *DeductionWeights `yaml:"weights"          json:"weights,omitempty"`
	MaxFileSize     int64             `yaml:"max_file_size"    json:"max_file_size,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectiveWeights returns configured deduction weights, falling back to the
// defaults for a config without a weights block.
func (c ProjectConfig) EffectiveWeights() DeductionWeights {
	if c.Weights == nil {
		return DefaultWeights()
	}
	return *c.Weights
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Weights != nil {
		fields := map[string]int{
			"issue":      c.Weights.Issue,
			"warning":    c.Weights.Warning,
			"suggestion": c.Weights.Suggestion,
		}
		for name, v := range fields {
			if v < 0 || v > 100 {
				return fmt.Errorf("weights.%s = %d (must be between 0 and 100)", name, v)
			}
		}
	}

	for i, ext := range c.ExtraExtensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("extra_extensions[%d] = %q (must start with a dot)", i, ext)
		}
	}

	if c.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0 (got %d)", c.MaxFileSize)
	}

	return nil
}
