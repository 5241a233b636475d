// virt-stat samples monotonic host and hypervisor counters from the
// Linux pseudo-filesystems once per interval, diffs consecutive
// snapshots, and prints the counters that increased. On interrupt it
// prints a final diff covering the whole run.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"go.uber.org/zap"

	"github.com/tgrabiec/virt-stat/internal/config"
	"github.com/tgrabiec/virt-stat/internal/logger"
	"github.com/tgrabiec/virt-stat/internal/model"
	"github.com/tgrabiec/virt-stat/internal/probe"
	"github.com/tgrabiec/virt-stat/internal/report"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "virt-stat: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "virt-stat: invalid log level %q: %v\n", cfg.LogLevel, err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printHostBanner(ctx, log)

	registry := probe.NewRegistry(log)
	registry.Register(probe.NewStatProbe(filepath.Join(cfg.ProcPath, "stat")))
	registry.Register(probe.NewVMStatProbe(filepath.Join(cfg.ProcPath, "vmstat")))
	registry.Register(probe.NewKVMProbe(cfg.KVMDebugPath))
	registry.Register(probe.NewDiskStatsProbe(filepath.Join(cfg.ProcPath, "diskstats")))
	registry.Register(probe.NewNetDevProbe(filepath.Join(cfg.ProcPath, "net", "dev")))

	for _, p := range registry.Probes() {
		log.Info("probe", zap.String("id", p.ID()), zap.String("source", p.Description()))
	}

	interval := time.Duration(cfg.IntervalSec) * time.Second
	if err := run(ctx, log, registry, interval, os.Stdout); err != nil {
		log.Error("sampling failed", zap.Error(err))
		os.Exit(1)
	}
}

// printHostBanner logs where we are running. virt-stat is a host-side
// tool: seeing it inside a guest usually means the kvm counters will
// be missing.
func printHostBanner(ctx context.Context, log *zap.Logger) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		log.Warn("host info unavailable", zap.Error(err))
		return
	}
	log.Info("virt-stat starting",
		zap.String("version", version),
		zap.String("hostname", info.Hostname),
		zap.String("kernel", info.KernelVersion),
		zap.Uint64("uptime_sec", info.Uptime),
		zap.String("virtualization", info.VirtualizationSystem),
		zap.String("role", info.VirtualizationRole),
	)
	if info.VirtualizationRole == "guest" {
		log.Warn("running inside a guest; hypervisor counters are likely unavailable")
	}
}

// run is the sampling loop: one cycle in flight at a time, each cycle
// diffed against the previous one. The first snapshot is retained for
// the whole run so the final report can cover everything since start.
func run(ctx context.Context, log *zap.Logger, registry *probe.Registry, interval time.Duration, out io.Writer) error {
	first, err := registry.ProbeAll(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	log.Info("first snapshot taken",
		zap.Int("samples", len(first)),
		zap.Duration("interval", interval))

	prev := first
	prevAt := start
	cycle := 0

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// The signal context is spent; the final snapshot gets a
			// fresh one.
			final, err := registry.ProbeAll(context.Background())
			if err != nil {
				return err
			}
			deltas, vanished := model.Diff(first, final)
			logVanished(log, vanished)
			report.WriteHeader(out, "since start", time.Since(start))
			report.Write(out, deltas)
			log.Info("done", zap.Int("cycles", cycle))
			return nil

		case <-ticker.C:
			cur, err := registry.ProbeAll(ctx)
			if err != nil {
				return err
			}
			cycle++
			deltas, vanished := model.Diff(prev, cur)
			logVanished(log, vanished)
			report.WriteHeader(out, fmt.Sprintf("cycle %d", cycle), time.Since(prevAt))
			report.Write(out, deltas)
			prev = cur
			prevAt = time.Now()
		}
	}
}

func logVanished(log *zap.Logger, vanished []model.Subject) {
	for _, subj := range vanished {
		log.Warn("counter source vanished between snapshots",
			zap.Stringer("subject", subj))
	}
}
