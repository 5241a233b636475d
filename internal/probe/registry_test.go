package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tgrabiec/virt-stat/internal/model"
)

func TestRegistryProbeAllPreservesOrder(t *testing.T) {
	t.Parallel()
	now := time.Unix(42, 0)
	a := model.Sample{Subject: model.Subject{Measurable: Interrupts}, Time: now, Value: 1}
	b := model.Sample{Subject: model.Subject{Measurable: ContextSwitches}, Time: now, Value: 2}
	c := model.Sample{Subject: model.Subject{Measurable: PageFaults}, Time: now, Value: 3}

	r := NewRegistry(zap.NewNop())
	r.Register(&fakeProbe{id: "first", samples: []model.Sample{a, b}})
	r.Register(&fakeProbe{id: "second", samples: []model.Sample{c}})

	snap, err := r.ProbeAll(context.Background())
	if err != nil {
		t.Fatalf("ProbeAll: %v", err)
	}
	if len(snap) != 3 {
		t.Fatalf("snapshot length: got %d, want 3", len(snap))
	}
	if snap[0] != a || snap[1] != b || snap[2] != c {
		t.Errorf("snapshot order: got %v, want probes concatenated in registration order", snap)
	}
}

func TestRegistryProbeAllPropagatesErrors(t *testing.T) {
	t.Parallel()
	probeErr := errors.New("permission denied")

	r := NewRegistry(zap.NewNop())
	r.Register(&fakeProbe{id: "ok", samples: []model.Sample{{}}})
	r.Register(&fakeProbe{id: "broken", err: probeErr})

	snap, err := r.ProbeAll(context.Background())
	if !errors.Is(err, probeErr) {
		t.Fatalf("ProbeAll error: got %v, want wrapped %v", err, probeErr)
	}
	if snap != nil {
		t.Errorf("a failed cycle must not return a partial snapshot, got %v", snap)
	}
}
