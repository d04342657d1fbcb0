package operator

import "sort"

// Space is a set of local Hilbert-space factor labels. The empty set is
// the trivial space. Spaces are immutable values; labels are kept sorted
// and deduplicated, so LocalFactors enumerates a composite space's modes
// in canonical order.
type Space struct {
	labels []string
}

// Trivial returns the trivial (scalar) space.
func Trivial() Space { return Space{} }

// Local returns the space of a single named local factor.
func Local(label string) Space { return Space{labels: []string{label}} }

// Union merges two spaces into their composite.
func (s Space) Union(t Space) Space {
	if len(t.labels) == 0 {
		return s
	}
	if len(s.labels) == 0 {
		return t
	}
	seen := make(map[string]struct{}, len(s.labels)+len(t.labels))
	merged := make([]string, 0, len(s.labels)+len(t.labels))
	for _, set := range [][]string{s.labels, t.labels} {
		for _, l := range set {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				merged = append(merged, l)
			}
		}
	}
	sort.Strings(merged)

	return Space{labels: merged}
}

// LocalFactors returns the sorted local factor labels (a fresh copy).
func (s Space) LocalFactors() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)

	return out
}

// IsTrivial reports whether the space has no local factors.
func (s Space) IsTrivial() bool { return len(s.labels) == 0 }
