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

// VMStatProbe reads the pgfault counter from /proc/vmstat.
type VMStatProbe struct {
	path string
}

// NewVMStatProbe creates a probe over the given vmstat file.
func NewVMStatProbe(path string) *VMStatProbe { return &VMStatProbe{path: path} }

func (p *VMStatProbe) ID() string          { return "vmstat" }
func (p *VMStatProbe) Description() string { return "Virtual memory counters: page faults" }

func (p *VMStatProbe) Probe(ctx context.Context) ([]model.Sample, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	now := time.Now()
	var samples []model.Sample

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 || fields[0] != "pgfault" {
			continue
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		samples = append(samples, model.Sample{
			Subject: model.Subject{Source: model.NewSource(), Measurable: PageFaults},
			Time:    now, Value: v,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
