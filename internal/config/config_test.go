package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSec != 1 {
		t.Errorf("interval: got %d, want 1", cfg.IntervalSec)
	}
	if cfg.ProcPath != "/proc" {
		t.Errorf("proc path: got %q, want /proc", cfg.ProcPath)
	}
	if cfg.KVMDebugPath != "/sys/kernel/debug/kvm" {
		t.Errorf("kvm debug path: got %q, want /sys/kernel/debug/kvm", cfg.KVMDebugPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level: got %q, want info", cfg.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "virt-stat.yaml")
	yaml := "interval: 5\nproc_path: /fake/proc\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"-config", path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSec != 5 {
		t.Errorf("interval: got %d, want 5", cfg.IntervalSec)
	}
	if cfg.ProcPath != "/fake/proc" {
		t.Errorf("proc path: got %q, want /fake/proc", cfg.ProcPath)
	}
	// Not set in the file: default survives.
	if cfg.KVMDebugPath != "/sys/kernel/debug/kvm" {
		t.Errorf("kvm debug path: got %q, want default", cfg.KVMDebugPath)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VIRTSTAT_INTERVAL", "30")
	t.Setenv("VIRTSTAT_PROC", "/env/proc")

	cfg, err := Load([]string{"-interval", "7"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSec != 7 {
		t.Errorf("interval: got %d, want the flag value 7", cfg.IntervalSec)
	}
	if cfg.ProcPath != "/env/proc" {
		t.Errorf("proc path: got %q, want the env value /env/proc", cfg.ProcPath)
	}
}

func TestLoadClampsInterval(t *testing.T) {
	cfg, err := Load([]string{"-interval", "0"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSec != 1 {
		t.Errorf("interval: got %d, want clamped to 1", cfg.IntervalSec)
	}
}
