// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultDataFile is the bundled results export loaded when the config omits one.
	DefaultDataFile = "data/mbe_results.csv"
	// defaultHumanPlatform is the platform label for the human test-taker pool.
	defaultHumanPlatform = "Human"
)

// Config represents the top-level application configuration. Every reference
// constant shown on a chart lives here rather than in the views, so divergent
// exports can carry their own baselines.
type Config struct {
	DataFile        string            `json:"dataFile,omitempty"`
	LogFile         string            `json:"logFile,omitempty"`
	Debug           bool              `json:"debug"`
	HumanPlatform   string            `json:"humanPlatform,omitempty"`
	Columns         Columns           `json:"columns,omitempty"`
	Baselines       Baselines         `json:"baselines,omitempty"`
	CategoryAliases map[string]string `json:"categoryAliases,omitempty"`
	Palette         map[string]string `json:"palette,omitempty"`
	ConfigPath      string            `json:"-"`
}

// Columns remaps the logical dataset columns onto the header names used by a
// particular export. Platform takes a list because two schema variants exist.
type Columns struct {
	Question string   `json:"question,omitempty"`
	Category string   `json:"category,omitempty"`
	Platform []string `json:"platform,omitempty"`
	Model    string   `json:"model,omitempty"`
	Correct  string   `json:"correct,omitempty"`
	Cost     string   `json:"cost,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

// Baselines holds the published human reference values rendered alongside
// the model series.
type Baselines struct {
	HumanAveragePct float64 `json:"humanAveragePct,omitempty"`
	PassBandLowPct  float64 `json:"passBandLowPct,omitempty"`
	PassBandHighPct float64 `json:"passBandHighPct,omitempty"`
	HumanRawScore   float64 `json:"humanRawScore,omitempty"`
	MaxRawScore     float64 `json:"maxRawScore,omitempty"`
	PassBandLowRaw  float64 `json:"passBandLowRaw,omitempty"`
	PassBandHighRaw float64 `json:"passBandHighRaw,omitempty"`
}

// defaultBaselines are the constants from the published study.
func defaultBaselines() Baselines {
	return Baselines{
		HumanAveragePct: 70.9,
		PassBandLowPct:  58,
		PassBandHighPct: 67,
		HumanRawScore:   149,
		MaxRawScore:     210,
		PassBandLowRaw:  121,
		PassBandHighRaw: 140,
	}
}

// defaultPalette is the fixed platform color mapping from the study.
func defaultPalette() map[string]string {
	return map[string]string{
		"Human":    "#AB63FA",
		"Claude":   "#636EFA",
		"Gemini":   "#EF553B",
		"ChatGPT":  "#00CC96",
		"Llama":    "#FFA15A",
		"DeepSeek": "#19D3F3",
		"Alibaba":  "#FF6692",
		"Grok":     "#B6E880",
	}
}

// defaultAliases maps retired category labels onto their canonical form.
func defaultAliases() map[string]string {
	return map[string]string{
		"Criminal Law/Prosecution": "Criminal Law and Procedure",
	}
}

// DataFilePath returns the dataset path, applying the default if unset.
func (c Config) DataFilePath() string {
	if path := strings.TrimSpace(c.DataFile); path != "" {
		return path
	}
	return DefaultDataFile
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return "mbebench.log"
}

// HumanPlatformLabel returns the platform label marking human test-takers.
func (c Config) HumanPlatformLabel() string {
	if label := strings.TrimSpace(c.HumanPlatform); label != "" {
		return label
	}
	return defaultHumanPlatform
}

// Schema returns the dataset column mapping with defaults filled in for any
// column the config leaves unmapped.
func (c Config) Schema() dataset.Schema {
	schema := dataset.DefaultSchema()
	if c.Columns.Question != "" {
		schema.Question = c.Columns.Question
	}
	if c.Columns.Category != "" {
		schema.Category = c.Columns.Category
	}
	if len(c.Columns.Platform) > 0 {
		schema.Platform = c.Columns.Platform
	}
	if c.Columns.Model != "" {
		schema.Model = c.Columns.Model
	}
	if c.Columns.Correct != "" {
		schema.Correct = c.Columns.Correct
	}
	if c.Columns.Cost != "" {
		schema.Cost = c.Columns.Cost
	}
	if c.Columns.Duration != "" {
		schema.Duration = c.Columns.Duration
	}
	return schema
}

// Aliases returns the category alias table, defaults merged under any
// user-supplied entries.
func (c Config) Aliases() map[string]string {
	merged := defaultAliases()
	for alias, canonical := range c.CategoryAliases {
		merged[alias] = canonical
	}
	return merged
}

// PaletteColor returns the hex color assigned to a platform, or a neutral
// gray for platforms outside the palette.
func (c Config) PaletteColor(platform string) string {
	if color, ok := c.Palette[platform]; ok {
		return color
	}
	if color, ok := defaultPalette()[platform]; ok {
		return color
	}
	return "#888888"
}

// Load reads the application configuration from the specified path. A missing
// file is not an error: the defaults describe the bundled dataset. A present
// but invalid file is fatal.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := withDefaults(Config{})
			cfg.ConfigPath = path
			return cfg, nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := validate(raw); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}

	cfg = withDefaults(cfg)
	cfg.ConfigPath = path
	return cfg, nil
}

// withDefaults fills any omitted blocks so callers never see zero baselines
// or an empty palette.
func withDefaults(cfg Config) Config {
	if cfg.Baselines == (Baselines{}) {
		cfg.Baselines = defaultBaselines()
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = defaultPalette()
	}
	return cfg
}
