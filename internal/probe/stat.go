package probe

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tgrabiec/virt-stat/internal/model"
)

// StatProbe reads kernel counters from /proc/stat: the host-wide intr
// and ctxt totals plus the per-CPU tick columns.
type StatProbe struct {
	path string
}

// NewStatProbe creates a probe over the given stat file.
func NewStatProbe(path string) *StatProbe { return &StatProbe{path: path} }

func (p *StatProbe) ID() string          { return "stat" }
func (p *StatProbe) Description() string { return "Kernel counters: interrupts, context switches, per-CPU ticks" }

func (p *StatProbe) Probe(ctx context.Context) ([]model.Sample, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	now := time.Now()
	host := model.NewSource()
	var samples []model.Sample

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch {
		case fields[0] == "intr":
			if v, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				samples = append(samples, model.Sample{
					Subject: model.Subject{Source: host, Measurable: Interrupts},
					Time:    now, Value: v,
				})
			}
		case fields[0] == "ctxt":
			if v, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				samples = append(samples, model.Sample{
					Subject: model.Subject{Source: host, Measurable: ContextSwitches},
					Time:    now, Value: v,
				})
			}
		case strings.HasPrefix(fields[0], "cpu"):
			// cpu lines: name user nice system idle iowait ...
			if len(fields) < 6 {
				continue
			}
			src := model.NewSource("cpu", fields[0])
			cols := []struct {
				m     *model.Measurable
				field string
			}{
				{CPUNice, fields[2]},
				{CPUSystem, fields[3]},
				{CPUIdle, fields[4]},
				{CPUIOWait, fields[5]},
			}
			for _, c := range cols {
				v, err := strconv.ParseInt(c.field, 10, 64)
				if err != nil {
					continue
				}
				samples = append(samples, model.Sample{
					Subject: model.Subject{Source: src, Measurable: c.m},
					Time:    now, Value: v,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
