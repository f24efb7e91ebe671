package input

// Ring is a fixed-capacity ring buffer of float64 samples.
type Ring struct {
	data []float64
	pos  int
	full bool
}

// NewRing creates a Ring holding at most capacity samples.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Push adds a sample, overwriting the oldest one when full.
func (r *Ring) Push(v float64) {
	r.data[r.pos] = v
	r.pos++
	if r.pos >= len(r.data) {
		r.pos = 0
		r.full = true
	}
}

// Len returns the number of samples held.
func (r *Ring) Len() int {
	if r.full {
		return len(r.data)
	}
	return r.pos
}

// Mean returns the average of the held samples, or 0 when empty.
func (r *Ring) Mean() float64 {
	n := r.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range r.data[:n] {
		sum += v
	}
	return sum / float64(n)
}

// Reset discards every sample.
func (r *Ring) Reset() {
	r.pos = 0
	r.full = false
}
