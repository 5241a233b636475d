package probe

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tgrabiec/virt-stat/internal/model"
)

// Registry holds probes in registration order. Snapshot assembly walks
// the probes in that fixed order so consecutive snapshots are
// reproducible; order within one probe's output is whatever its source
// format yields.
type Registry struct {
	probes []Probe
	log    *zap.Logger
}

// NewRegistry creates an empty probe registry.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{log: log}
}

// Register appends a probe. Registration happens once at startup; the
// registry is read-only afterwards.
func (r *Registry) Register(p Probe) {
	r.probes = append(r.probes, p)
	r.log.Debug("registered probe", zap.String("probe", p.ID()))
}

// Probes returns the registered probes in registration order.
func (r *Registry) Probes() []Probe { return r.probes }

// ProbeAll invokes every probe once, in order, and concatenates their
// samples into a materialized snapshot. The first probe error aborts
// the snapshot and is returned to the caller.
func (r *Registry) ProbeAll(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot
	for _, p := range r.probes {
		samples, err := p.Probe(ctx)
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", p.ID(), err)
		}
		r.log.Debug("probed", zap.String("probe", p.ID()), zap.Int("samples", len(samples)))
		snap = append(snap, samples...)
	}
	return snap, nil
}
