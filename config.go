package newsprint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable knobs of the content block locator. The
// zero value is not usable; start from DefaultConfig.
type Config struct {
	// MinTextBlocks is the minimum number of text-bearing block
	// descendants a node needs to be considered as a content block
	// candidate.
	MinTextBlocks int `yaml:"min_text_blocks"`

	// MinTextLength is the minimum visible text length, in runes, of a
	// content block candidate.
	MinTextLength int `yaml:"min_text_length"`

	// MinBlockScore is the score the best candidate must reach. Below
	// it the locator falls back to the largest text-bearing node and
	// flags the result as low confidence.
	MinBlockScore float64 `yaml:"min_block_score"`

	// LinkDensityPenalty scales the penalty applied for text that sits
	// inside anchors.
	LinkDensityPenalty float64 `yaml:"link_density_penalty"`

	// LinkDensityUpperBound marks list and division subtrees whose
	// link density exceeds it as navigation; their text is excluded
	// from the collected segments.
	LinkDensityUpperBound float64 `yaml:"link_density_upper_bound"`

	// BoilerplatePenalty scales the penalty for candidates whose class
	// or role matches a boilerplate pattern.
	BoilerplatePenalty float64 `yaml:"boilerplate_penalty"`

	// SemanticBonus scales the bonus for semantic containers such as
	// article, main, or role=main.
	SemanticBonus float64 `yaml:"semantic_bonus"`

	// BlockCoverageRatio is the share of the block's text the collected
	// segments must cover before the segment walk stops widening the
	// set of tags it collects from.
	BlockCoverageRatio float64 `yaml:"block_coverage_ratio"`

	// BoilerplatePatterns are substrings matched against class and role
	// attributes when scoring candidates.
	BoilerplatePatterns []string `yaml:"boilerplate_patterns"`

	// BoilerplatePhrases are phrases that disqualify a whole text
	// segment when the segment consists of nothing else.
	BoilerplatePhrases []string `yaml:"boilerplate_phrases"`

	// FilterPromotionalTrailers drops trailing segments that match the
	// boilerplate phrases even when they carry extra text. Off by
	// default: short promotional sentences inside the content block are
	// kept as article text.
	FilterPromotionalTrailers bool `yaml:"filter_promotional_trailers"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		MinTextBlocks:         1,
		MinTextLength:         25,
		MinBlockScore:         100,
		LinkDensityPenalty:    1.0,
		LinkDensityUpperBound: 0.75,
		BoilerplatePenalty:    0.8,
		SemanticBonus:         0.25,
		BlockCoverageRatio:    0.1,
		BoilerplatePatterns: []string{
			"nav", "menu", "footer", "header", "sidebar", "aside",
			"comment", "advert", "promo", "related", "share", "social",
			"breadcrumb", "cookie", "newsletter", "subscribe", "paywall",
		},
		BoilerplatePhrases: []string{
			"advertisement",
			"share this article",
			"follow us on",
			"all rights reserved",
			"read more",
		},
	}
}

// LoadConfig reads a YAML configuration file, overlaying it on the
// defaults so that omitted keys keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, Errorf(EINVALID, "Invalid config file %q: %s.", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns EINVALID if the configuration values are out of
// range.
func (c Config) Validate() error {
	if c.MinTextBlocks < 1 {
		return Errorf(EINVALID, "min_text_blocks must be at least 1.")
	}
	if c.MinTextLength < 0 {
		return Errorf(EINVALID, "min_text_length must not be negative.")
	}
	if c.LinkDensityUpperBound <= 0 || c.LinkDensityUpperBound > 1 {
		return Errorf(EINVALID, "link_density_upper_bound must be in (0, 1].")
	}
	if c.BlockCoverageRatio <= 0 || c.BlockCoverageRatio > 1 {
		return Errorf(EINVALID, "block_coverage_ratio must be in (0, 1].")
	}
	if c.LinkDensityPenalty < 0 || c.BoilerplatePenalty < 0 || c.SemanticBonus < 0 {
		return Errorf(EINVALID, "Score weights must not be negative.")
	}
	return nil
}
