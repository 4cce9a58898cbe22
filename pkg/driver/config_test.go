package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ziria-eval.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture config: %v", err)
	}
	return path
}

func TestLoadConfigValidRoundTrip(t *testing.T) {
	path := writeConfig(t, `
branch_limit: 100
depth_limit: 50
stdlib_paths:
  - ./stdlib
  - ./vendor/stdlib
sources:
  numerics:
    git: https://example.com/ziria/numerics.git
    branch: main
  comms:
    git: https://example.com/ziria/comms.git
    tag: v1.2.0
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BranchLimit != 100 || cfg.DepthLimit != 50 {
		t.Fatalf("expected limits 100/50, got %d/%d", cfg.BranchLimit, cfg.DepthLimit)
	}
	if len(cfg.StdlibPaths) != 2 || cfg.StdlibPaths[0] != "./stdlib" {
		t.Fatalf("expected two stdlib paths in order, got %v", cfg.StdlibPaths)
	}
	if len(cfg.SourceOrder) != 2 || cfg.SourceOrder[0] != "numerics" || cfg.SourceOrder[1] != "comms" {
		t.Fatalf("expected source order to match file order, got %v", cfg.SourceOrder)
	}
	numerics, ok := cfg.FindSource("numerics")
	if !ok || numerics.Branch != "main" {
		t.Fatalf("expected numerics source with branch main, got %#v", numerics)
	}
	comms, ok := cfg.FindSource("comms")
	if !ok || comms.Tag != "v1.2.0" {
		t.Fatalf("expected comms source with tag v1.2.0, got %#v", comms)
	}
}

func TestLoadConfigMissingFileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ziria-eval.yml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error loading an empty config file: %v", err)
	}
	if cfg.BranchLimit != 0 || cfg.DepthLimit != 0 || len(cfg.Sources) != 0 {
		t.Fatalf("expected an empty file to fall back to DefaultConfig, got %#v", cfg)
	}
}

func TestLoadConfigNegativeLimitsRejected(t *testing.T) {
	path := writeConfig(t, `
branch_limit: -1
depth_limit: 5
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected negative branch_limit to be rejected")
	} else if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestLoadConfigMissingGitURLRejected(t *testing.T) {
	path := writeConfig(t, `
sources:
  numerics:
    branch: main
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected a source without a git URL to be rejected")
	}
}

func TestLoadConfigMultipleRefsRejected(t *testing.T) {
	path := writeConfig(t, `
sources:
  numerics:
    git: https://example.com/ziria/numerics.git
    branch: main
    tag: v1.0.0
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected specifying both branch and tag to be rejected")
	}
}

func TestLoadConfigStdlibPathsAcceptsBareScalar(t *testing.T) {
	path := writeConfig(t, `
stdlib_paths: ./stdlib
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.StdlibPaths) != 1 || cfg.StdlibPaths[0] != "./stdlib" {
		t.Fatalf("expected a bare scalar to decode as a single-element list, got %v", cfg.StdlibPaths)
	}
}

func TestLoadConfigEmptyKeyRejected(t *testing.T) {
	path := writeConfig(t, `
sources:
  "":
    git: https://example.com/ziria/numerics.git
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected an empty source key to be rejected")
	}
}

func TestDefaultConfigIsEmpty(t *testing.T) {
	cfg := DefaultConfig("/nonexistent/ziria-eval.yml")
	if cfg.BranchLimit != 0 || cfg.DepthLimit != 0 || len(cfg.Sources) != 0 {
		t.Fatalf("expected DefaultConfig to have no limits or sources, got %#v", cfg)
	}
	if _, ok := cfg.FindSource("anything"); ok {
		t.Fatalf("expected FindSource to miss on a default config")
	}
}
