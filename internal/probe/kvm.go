package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tgrabiec/virt-stat/internal/model"
)

// KVMProbe reads the hypervisor counters exposed as one-integer files
// under the kvm debugfs directory (usually /sys/kernel/debug/kvm).
type KVMProbe struct {
	dir string
}

// NewKVMProbe creates a probe over the given kvm debug directory.
func NewKVMProbe(dir string) *KVMProbe { return &KVMProbe{dir: dir} }

func (p *KVMProbe) ID() string          { return "kvm" }
func (p *KVMProbe) Description() string { return "KVM exit, MMU, TLB, paging and emulation counters" }

func (p *KVMProbe) Probe(ctx context.Context) ([]model.Sample, error) {
	if _, err := os.Stat(p.dir); err != nil {
		return nil, fmt.Errorf("kvm debug directory: %w", err)
	}

	now := time.Now()
	src := model.NewSource("kvm")
	var samples []model.Sample

	for _, m := range kvmCounters {
		data, err := os.ReadFile(filepath.Join(p.dir, m.Name()))
		if errors.Is(err, fs.ErrNotExist) {
			// Not every kernel exposes every counter.
			continue
		}
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if err != nil {
			continue
		}
		samples = append(samples, model.Sample{
			Subject: model.Subject{Source: src, Measurable: m},
			Time:    now, Value: v,
		})
	}
	return samples, nil
}
