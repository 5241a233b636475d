package probe

import (
	"context"

	"github.com/tgrabiec/virt-stat/internal/model"
)

// Probe reads one data source and turns it into samples.
type Probe interface {
	// ID returns the unique identifier for this probe.
	ID() string
	// Description returns a description of the data source.
	Description() string
	// Probe reads the source once and returns the samples observed,
	// each timestamped with the observation instant. I/O failures are
	// returned to the caller, never swallowed: a stats source that
	// cannot be read leaves the whole cycle without a meaningful
	// result.
	Probe(ctx context.Context) ([]model.Sample, error)
}
