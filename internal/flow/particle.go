package flow

// Animation tunables. Tilt acts as gravity on the water mass; drag and
// bounce damping bleed energy so the mass settles instead of oscillating
// forever.
const (
	Sensitivity   = 0.2  // tilt G to velocity gain per tick
	Drag          = 0.98 // per-tick velocity retention
	MaxVelocity   = 1.0  // pixels per tick
	BounceDamping = 0.85 // velocity retention on an edge bounce

	// Kept strictly inside the strip after an upper-edge bounce so the
	// same boundary branch cannot retrigger on the next tick.
	edgeInset = 0.001
)

// Particle is the water mass: a damped point bouncing inside [0, Length).
type Particle struct {
	Length int
	Pos    float64
	Vel    float64
}

// NewParticle starts the mass at rest in the middle of the strip.
func NewParticle(length int) *Particle {
	return &Particle{Length: length, Pos: float64(length) / 2}
}

// Step advances one tick under the given tilt, in G. Velocity stays within
// [-MaxVelocity, MaxVelocity] and position within [0, Length) afterwards.
func (p *Particle) Step(tilt float64) {
	p.Vel += tilt * Sensitivity
	p.Vel *= Drag
	if p.Vel > MaxVelocity {
		p.Vel = MaxVelocity
	} else if p.Vel < -MaxVelocity {
		p.Vel = -MaxVelocity
	}
	p.Pos += p.Vel

	if p.Pos < 0 {
		p.Pos = 0
		p.Vel = -p.Vel * BounceDamping
	} else if p.Pos >= float64(p.Length) {
		p.Pos = float64(p.Length) - edgeInset
		p.Vel = -p.Vel * BounceDamping
	}
}
