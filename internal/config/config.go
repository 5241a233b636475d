package config

import (
	"flag"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the sampler configuration.
type Config struct {
	// IntervalSec is the number of seconds to sleep between cycles.
	IntervalSec int `yaml:"interval"`
	// ProcPath is the root of the proc pseudo-filesystem.
	ProcPath string `yaml:"proc_path"`
	// KVMDebugPath is the kvm debugfs counter directory.
	KVMDebugPath string `yaml:"kvm_debug_path"`
	// LogLevel controls diagnostic verbosity: debug|info|warn|error.
	LogLevel string `yaml:"log_level"`

	// Parsed from command line (not YAML)
	ConfigPath string `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		IntervalSec:  1,
		ProcPath:     "/proc",
		KVMDebugPath: "/sys/kernel/debug/kvm",
		LogLevel:     "info",
		ConfigPath:   "virt-stat.yaml",
	}
}

// Load reads configuration with priority: defaults < config file < env
// vars < flags. args is the command line without the program name.
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()

	// 1) Pre-scan for -config so we know which file to read before the
	// real flag parse.
	fsPre := flag.NewFlagSet("virt-stat-pre", flag.ContinueOnError)
	fsPre.SetOutput(io.Discard)
	configPath := fsPre.String("config", cfg.ConfigPath, "")
	fsPre.String("interval", "", "")
	fsPre.String("proc", "", "")
	fsPre.String("kvm-debug", "", "")
	fsPre.String("log-level", "", "")
	_ = fsPre.Parse(args)

	// 2) Config file, optional.
	if data, err := os.ReadFile(*configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ConfigPath = *configPath

	// 3) Environment variables override the file.
	if v := os.Getenv("VIRTSTAT_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IntervalSec = n
		}
	}
	if v := os.Getenv("VIRTSTAT_PROC"); v != "" {
		cfg.ProcPath = v
	}
	if v := os.Getenv("VIRTSTAT_KVM_DEBUG"); v != "" {
		cfg.KVMDebugPath = v
	}
	if v := os.Getenv("VIRTSTAT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// 4) Flags override everything.
	fs := flag.NewFlagSet("virt-stat", flag.ContinueOnError)
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Path to config file")
	fs.IntVar(&cfg.IntervalSec, "interval", cfg.IntervalSec, "Seconds between samples")
	fs.StringVar(&cfg.ProcPath, "proc", cfg.ProcPath, "proc filesystem root")
	fs.StringVar(&cfg.KVMDebugPath, "kvm-debug", cfg.KVMDebugPath, "kvm debugfs counter directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.IntervalSec < 1 {
		cfg.IntervalSec = 1
	}
	return cfg, nil
}
