package model

const (
	historySize   = 5
	stagnantDepth = 3
)

// History stores recent grid hashes for cycle detection
type History struct {
	hashes []string
}

// Record adds a hash and keeps only the most recent entries
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three recorded
// states: a still life or an oscillator with period up to 3.
func (h *History) IsStagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-stagnantDepth; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}
