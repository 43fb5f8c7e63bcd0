package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "abc", "-scale", "4", "-hud=false", "-cell", "6"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != "abc" || cfg.Scale != 4 || cfg.HUD || cfg.CellSize != 6 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TPS != NewConfig().TPS {
		t.Fatalf("unset flag changed tps to %d", cfg.TPS)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"seed": "x", "scale": "3", "tps": "-1", "overlay": "true", "hud": "nope"})
	if cfg.Seed != "x" || cfg.Scale != 3 || !cfg.Overlay {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TPS != NewConfig().TPS {
		t.Fatal("invalid tps should keep the default")
	}
	if !cfg.HUD {
		t.Fatal("unparseable bool should keep the default")
	}
	if *FromMap(nil) != *NewConfig() {
		t.Fatal("nil map should give defaults")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fonsters.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "seed: from file\nscale: 0\noverlay: true\ncell_size: 20\n")
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Seed != "from file" || !cfg.Overlay || cfg.CellSize != 20 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Scale != NewConfig().Scale {
		t.Fatalf("zero scale should be reset to the default, got %d", cfg.Scale)
	}
	if !cfg.HUD {
		t.Fatal("keys missing from the file should keep their values")
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := cfg.LoadFile(writeConfig(t, "scale: [1, 2\n")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestApplyFileKeepsExplicitFlags(t *testing.T) {
	path := writeConfig(t, "seed: from file\nscale: 7\n")
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "from flag"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.ApplyFile(fs, path); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	if cfg.Seed != "from flag" {
		t.Fatalf("explicit flag lost to file: %q", cfg.Seed)
	}
	if cfg.Scale != 7 {
		t.Fatalf("file value not applied: scale %d", cfg.Scale)
	}
}

func TestStepSeed(t *testing.T) {
	cases := []struct {
		seed  string
		delta int
		want  string
	}{
		{"fonster-41", 1, "fonster-42"},
		{"fonster-09", 1, "fonster-10"},
		{"fonster-007", -1, "fonster-006"},
		{"fonster-0", -1, "fonster-0"},
		{"fonster", 1, "fonster1"},
		{"fonster", -1, "fonster0"},
		{"", 1, "1"},
		{"99", 1, "100"},
	}
	for _, tc := range cases {
		if got := StepSeed(tc.seed, tc.delta); got != tc.want {
			t.Fatalf("StepSeed(%q, %d) = %q, want %q", tc.seed, tc.delta, got, tc.want)
		}
	}
}
