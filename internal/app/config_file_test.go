package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "certcheck.yaml")
	content := "input: ./docs\noutput: ./results\nknowledge:\n  equipment: kb/equipment.json\n  requirements: kb/requirements.json\nverbose: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Input != "./docs" || fc.Knowledge.Equipment != "kb/equipment.json" || !fc.Verbose {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestLoadConfigFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "certcheck.json")
	content := `{"input": "./docs", "knowledge": {"standards": "kb/standards.yaml"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Input != "./docs" || fc.Knowledge.Standards != "kb/standards.yaml" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfigFlagsWin(t *testing.T) {
	cfg := Config{InputDir: "./from-flag"}
	var fc FileConfig
	fc.Input = "./from-file"
	fc.Output = "./results"
	ApplyFileConfig(&cfg, fc)
	if cfg.InputDir != "./from-flag" {
		t.Fatalf("explicit flag overridden: %+v", cfg)
	}
	if cfg.OutputDir != "./results" {
		t.Fatalf("file value not applied: %+v", cfg)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
