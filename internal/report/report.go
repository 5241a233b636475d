// Package report renders snapshot diffs for the console. Only counters
// that actually increased are printed; zero deltas are uninteresting
// and negative ones are counter resets or wraps, noise either way.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tgrabiec/virt-stat/internal/model"
)

// WriteHeader prints the banner for one report block.
func WriteHeader(w io.Writer, label string, elapsed time.Duration) {
	fmt.Fprintf(w, "=== %s (%s) ===\n", label, elapsed.Round(time.Millisecond))
}

// Write prints one line per positive delta, sorted by subject so the
// output is deterministic: the measurable's description, the change
// with thousands separators, and the source path in parentheses when
// the source is not host-wide.
func Write(w io.Writer, deltas map[model.Subject]model.Delta) {
	subjects := make([]model.Subject, 0, len(deltas))
	for subj := range deltas {
		subjects = append(subjects, subj)
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].String() < subjects[j].String()
	})

	for _, subj := range subjects {
		d := deltas[subj]
		if d.Value <= 0 {
			continue
		}
		if subj.Source.IsZero() {
			fmt.Fprintf(w, "%s: %s\n", subj.Measurable.Description(), humanize.Comma(d.Value))
		} else {
			fmt.Fprintf(w, "%s (%s): %s\n", subj.Measurable.Description(), subj.Source, humanize.Comma(d.Value))
		}
	}
}
