package model

import "sort"

// Measurable is a named class of quantity ("cpu_idle", "net_rx_bytes")
// with a human-readable description and a set of free-form tags.
//
// Identity is by pointer: construct each Measurable once at startup and
// share the same *Measurable everywhere it applies. Description and tag
// changes never affect identity.
type Measurable struct {
	name        string
	description string
	tags        map[string]struct{}
	monotonic   bool
}

// NewMeasurable creates a point-in-time quantity.
func NewMeasurable(name, description string, tags ...string) *Measurable {
	m := &Measurable{
		name:        name,
		description: description,
		tags:        make(map[string]struct{}, len(tags)),
	}
	for _, t := range tags {
		m.tags[t] = struct{}{}
	}
	return m
}

// NewCounter creates a Measurable whose value is expected to be
// monotonically non-decreasing over the lifetime of the source it
// describes. Monotonicity is a contract of the data source, not
// enforced here; it is what makes diffing two samples meaningful.
func NewCounter(name, description string, tags ...string) *Measurable {
	m := NewMeasurable(name, description, tags...)
	m.monotonic = true
	return m
}

// Name returns the unique name of the quantity.
func (m *Measurable) Name() string { return m.name }

// Description returns the human-readable description.
func (m *Measurable) Description() string { return m.description }

// Monotonic reports whether the quantity is a counter.
func (m *Measurable) Monotonic() bool { return m.monotonic }

// AddTag inserts a tag; adding an existing tag is a no-op. Tags are
// setup-time metadata only and never participate in identity.
func (m *Measurable) AddTag(tag string) {
	m.tags[tag] = struct{}{}
}

// HasTag reports whether the measurable carries the given tag.
func (m *Measurable) HasTag(tag string) bool {
	_, ok := m.tags[tag]
	return ok
}

// Tags returns a sorted copy of the tag set.
func (m *Measurable) Tags() []string {
	out := make([]string, 0, len(m.tags))
	for t := range m.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (m *Measurable) String() string { return m.name }
