package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tgrabiec/virt-stat/internal/model"
	"github.com/tgrabiec/virt-stat/internal/probe"
)

// steppingProbe returns a larger counter value on every invocation.
type steppingProbe struct {
	m     *model.Measurable
	value int64
	step  int64
}

func (p *steppingProbe) ID() string          { return "stepping" }
func (p *steppingProbe) Description() string { return "test counter" }
func (p *steppingProbe) Probe(context.Context) ([]model.Sample, error) {
	p.value += p.step
	return []model.Sample{{
		Subject: model.Subject{Measurable: p.m},
		Time:    time.Now(),
		Value:   p.value,
	}}, nil
}

func TestRunEmitsFinalReportOnCancel(t *testing.T) {
	t.Parallel()
	registry := probe.NewRegistry(zap.NewNop())
	registry.Register(&steppingProbe{
		m:    model.NewCounter("test_events", "Test events"),
		step: 42,
	})

	// Already-cancelled context: run takes the first snapshot, then
	// goes straight to the final since-start report.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	if err := run(ctx, zap.NewNop(), registry, time.Hour, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "since start") {
		t.Errorf("output missing the since-start banner: %q", got)
	}
	if !strings.Contains(got, "Test events: 42") {
		t.Errorf("output missing the final delta line: %q", got)
	}
}
