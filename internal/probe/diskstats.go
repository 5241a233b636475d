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

// DiskStatsProbe reads sector counters for whole-disk devices from
// /proc/diskstats. Partition lines (minor number other than 0) are
// skipped so a disk's traffic is not counted twice.
type DiskStatsProbe struct {
	path string
}

// NewDiskStatsProbe creates a probe over the given diskstats file.
func NewDiskStatsProbe(path string) *DiskStatsProbe { return &DiskStatsProbe{path: path} }

func (p *DiskStatsProbe) ID() string          { return "diskstats" }
func (p *DiskStatsProbe) Description() string { return "Per-disk sectors read and written" }

func (p *DiskStatsProbe) Probe(ctx context.Context) ([]model.Sample, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	now := time.Now()
	var samples []model.Sample

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// major minor name reads reads_merged sectors_read ms_reading
		// writes writes_merged sectors_written ...
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 || fields[1] != "0" {
			continue
		}
		src := model.NewSource("disks", fields[2])
		read, err1 := strconv.ParseInt(fields[5], 10, 64)
		written, err2 := strconv.ParseInt(fields[9], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		samples = append(samples,
			model.Sample{Subject: model.Subject{Source: src, Measurable: DiskSectorsRead}, Time: now, Value: read},
			model.Sample{Subject: model.Subject{Source: src, Measurable: DiskSectorsWritten}, Time: now, Value: written},
		)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
