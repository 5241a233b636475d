package model

import (
	"fmt"
	"time"
)

// Subject is the pair (Source, Measurable): this kind of quantity, at
// this location. It is the key for correlating observations across
// time and is comparable (usable directly as a map key).
type Subject struct {
	Source     Source
	Measurable *Measurable
}

func (s Subject) String() string {
	return fmt.Sprintf("(%s, %s)", s.Source, s.Measurable)
}

// Sample is one observation: a Subject, the instant it was read, and
// the value read. Samples are never mutated after creation.
type Sample struct {
	Subject Subject
	Time    time.Time
	Value   int64
}

// Reading is the observation half of a Sample, used when indexing a
// snapshot by Subject.
type Reading struct {
	Time  time.Time
	Value int64
}

// Split decomposes the sample into its key and its reading.
func (s Sample) Split() (Subject, Reading) {
	return s.Subject, Reading{Time: s.Time, Value: s.Value}
}

// Snapshot is an ordered sequence of Samples gathered at approximately
// one instant across all probes. It is fully materialized so two
// snapshots can be held and diffed.
type Snapshot []Sample

// IndexBySubject builds the Subject → Reading map for a snapshot.
// If a Subject occurs more than once the later sample wins; duplicate
// subjects within one snapshot are a data-source bug, not something
// the index tries to repair.
func IndexBySubject(snap Snapshot) map[Subject]Reading {
	idx := make(map[Subject]Reading, len(snap))
	for _, s := range snap {
		k, r := s.Split()
		idx[k] = r
	}
	return idx
}
