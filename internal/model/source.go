package model

import "strings"

// Source identifies where a value was measured as a hierarchical path,
// e.g. cpu/cpu0 or disks/sda. The zero value is the host-wide source.
//
// Source is a comparable value type: two Sources built from the same
// segment sequence compare equal with == and hash identically as map
// keys. Segments must not contain "/".
type Source struct {
	path string
}

// NewSource builds a Source from ordered path segments.
func NewSource(segments ...string) Source {
	return Source{path: strings.Join(segments, "/")}
}

// String returns the slash-joined path, empty for the host-wide source.
func (s Source) String() string { return s.path }

// Segments returns the path segments, nil for the host-wide source.
func (s Source) Segments() []string {
	if s.path == "" {
		return nil
	}
	return strings.Split(s.path, "/")
}

// IsZero reports whether the source has no segments (host-wide).
func (s Source) IsZero() bool { return s.path == "" }
