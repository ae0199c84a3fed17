package model

// Rng is a Marsaglia xorshift generator with 32 bits of state and a
// full period across all non-zero states. The simulation owns one per
// round so tests can replay exact wall layouts and drop sequences.
type Rng struct {
	state uint32
}

// Seed sets the state, forcing it non-zero.
func (r *Rng) Seed(s uint32) {
	if s == 0 {
		s = 0x40
	}
	r.state = s
}

// Draw advances the state and returns its low 16 bits.
func (r *Rng) Draw() uint16 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return uint16(r.state)
}
