// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"dataFile": "exports/run7.csv",
		"debug": true,
		"humanPlatform": "Humans",
		"baselines": {"humanAveragePct": 72.5},
		"palette": {"Claude": "#102030"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DataFilePath() != "exports/run7.csv" {
		t.Errorf("unexpected data file: %q", cfg.DataFilePath())
	}
	if !cfg.Debug {
		t.Error("expected debug enabled")
	}
	if cfg.HumanPlatformLabel() != "Humans" {
		t.Errorf("unexpected human platform: %q", cfg.HumanPlatformLabel())
	}
	if cfg.Baselines.HumanAveragePct != 72.5 {
		t.Errorf("unexpected human average baseline: %v", cfg.Baselines.HumanAveragePct)
	}
	if cfg.PaletteColor("Claude") != "#102030" {
		t.Errorf("palette override not applied: %q", cfg.PaletteColor("Claude"))
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load() of a missing file should apply defaults, got error: %v", err)
	}
	if cfg.DataFilePath() != DefaultDataFile {
		t.Errorf("unexpected data file default: %q", cfg.DataFilePath())
	}
	if cfg.LogFilePath() != "mbebench.log" {
		t.Errorf("unexpected log file default: %q", cfg.LogFilePath())
	}
	if cfg.HumanPlatformLabel() != "Human" {
		t.Errorf("unexpected human platform default: %q", cfg.HumanPlatformLabel())
	}
	if cfg.Baselines.HumanAveragePct != 70.9 {
		t.Errorf("missing file should carry default baselines, got %v", cfg.Baselines.HumanAveragePct)
	}
	if cfg.PaletteColor("Gemini") != "#EF553B" {
		t.Errorf("missing file should carry default palette, got %q", cfg.PaletteColor("Gemini"))
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"dataFile": `)
	if _, err := Load(path); err == nil {
		t.Fatal("expected malformed JSON to fail the load")
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, `{"dataFiel": "typo.csv"}`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected unknown field to fail validation")
	}
	if !strings.Contains(err.Error(), "dataFiel") {
		t.Errorf("error should name the offending field, got: %v", err)
	}
}

func TestLoadRejectsBadPaletteColor(t *testing.T) {
	path := writeConfig(t, `{"palette": {"Claude": "blue"}}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected non-hex palette entry to fail validation")
	}
}

func TestSchemaAppliesColumnOverrides(t *testing.T) {
	cfg := Config{Columns: Columns{
		Question: "Q",
		Platform: []string{"Vendor"},
		Cost:     "usd",
	}}
	schema := cfg.Schema()
	if schema.Question != "Q" {
		t.Errorf("question column override lost: %q", schema.Question)
	}
	if len(schema.Platform) != 1 || schema.Platform[0] != "Vendor" {
		t.Errorf("platform column override lost: %v", schema.Platform)
	}
	if schema.Cost != "usd" {
		t.Errorf("cost column override lost: %q", schema.Cost)
	}
	// Unmapped columns keep the published defaults.
	if schema.Category != "Law Category" || schema.Correct != "Correct" {
		t.Errorf("unmapped columns lost defaults: %+v", schema)
	}
}

func TestAliasesMergeUnderUserEntries(t *testing.T) {
	cfg := Config{CategoryAliases: map[string]string{
		"Crim":                     "Criminal Law and Procedure",
		"Criminal Law/Prosecution": "Crimes",
	}}
	aliases := cfg.Aliases()
	if aliases["Crim"] != "Criminal Law and Procedure" {
		t.Errorf("user alias missing: %v", aliases)
	}
	if aliases["Criminal Law/Prosecution"] != "Crimes" {
		t.Errorf("user alias should override the default: %v", aliases)
	}

	if (Config{}).Aliases()["Criminal Law/Prosecution"] != "Criminal Law and Procedure" {
		t.Error("default alias missing when no aliases are configured")
	}
}

func TestPaletteColorFallsBackToGray(t *testing.T) {
	if got := (Config{}).PaletteColor("Unheard-of"); got != "#888888" {
		t.Errorf("unknown platform should map to gray, got %q", got)
	}
}
