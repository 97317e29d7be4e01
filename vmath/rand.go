package vmath

// Source is the randomness consumed by gameplay code
// Implementations must return Float64 in [0, 1) and Intn in [0, n)
type Source interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) * (1.0 / (1 << 53))
}

// Range returns a uniform value in [lo, lo+span)
func Range(src Source, lo, span float64) float64 {
	return lo + src.Float64()*span
}
