package shield

// Source supplies randomness for ball respawns and power-up spawns.
// Tests substitute a fixed sequence to make sessions fully predictable.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// Low LCG bits cycle quickly; take the high ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the internal state, used for snapshot hashing.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
