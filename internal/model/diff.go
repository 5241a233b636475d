package model

import (
	"sort"
	"time"
)

// Delta is the change in a Subject between two snapshots: the elapsed
// time between the two observations and the raw value difference.
// The subtraction is plain int64 arithmetic; kernel counters that wrap
// produce a negative value here and are filtered out at reporting time.
type Delta struct {
	Elapsed time.Duration
	Value   int64
}

// Diff computes per-Subject deltas between two snapshots.
//
// Only Subjects present in both snapshots are diffed. Subjects that
// appear only in newer (a hot-plugged disk or interface) are silently
// ignored: with no older reading there is no delta to report. Subjects
// that appear only in older (a device vanished between samples) are
// excluded from the result and returned separately, sorted by their
// string form, so the caller can surface the discrepancy.
func Diff(older, newer Snapshot) (map[Subject]Delta, []Subject) {
	oldIdx := IndexBySubject(older)
	newIdx := IndexBySubject(newer)

	deltas := make(map[Subject]Delta, len(oldIdx))
	var vanished []Subject
	for subj, prev := range oldIdx {
		cur, ok := newIdx[subj]
		if !ok {
			vanished = append(vanished, subj)
			continue
		}
		deltas[subj] = Delta{
			Elapsed: cur.Time.Sub(prev.Time),
			Value:   cur.Value - prev.Value,
		}
	}
	sort.Slice(vanished, func(i, j int) bool {
		return vanished[i].String() < vanished[j].String()
	})
	return deltas, vanished
}
