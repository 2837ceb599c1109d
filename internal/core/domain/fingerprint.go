package domain

// Fingerprint summarizes the elements of one phase as a (count, hash-sum) pair.
// Sum wraps around modulo 2^64, so the order of additions does not matter.
type Fingerprint struct {
	Count uint64
	Sum   uint64
}

// Add accounts for one element whose hash is h.
func (f *Fingerprint) Add(h uint64) {
	f.Sum += h
	f.Count++
}

// Merge folds another fingerprint into f.
func (f *Fingerprint) Merge(o Fingerprint) {
	f.Sum += o.Sum
	f.Count += o.Count
}

// Equal reports whether two fingerprints are equal.
func (f Fingerprint) Equal(o Fingerprint) bool {
	return f.Count == o.Count && f.Sum == o.Sum
}

// Phase names the side of the permutation a fingerprint belongs to.
type Phase uint8

const (
	// PhasePre covers the input as observed before permuting.
	PhasePre Phase = iota + 1

	// PhasePost covers the output as observed after permuting.
	PhasePost
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhasePre:
		return "pre"
	case PhasePost:
		return "post"
	default:
		return "unknown"
	}
}
