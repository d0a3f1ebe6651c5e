package component

import (
	"math"

	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/vmath"
)

// Particle is a purely visual explosion fragment, velocity in units per second
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Seconds remaining
	MaxLife float64
}

// Alpha returns the remaining life fraction for fading
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return vmath.Clamp(p.Life/p.MaxLife, 0, 1)
}

// EmitParticles appends a radial burst centred on (x, y)
func EmitParticles(dst []Particle, x, y float64, rng *vmath.FastRand) []Particle {
	n := parameter.EnemyParticleMin + rng.Intn(parameter.EnemyParticleSpan)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Range(parameter.EnemyParticleSpeedMin, parameter.EnemyParticleSpeedMax)
		life := rng.Range(parameter.EnemyParticleLifeMin, parameter.EnemyParticleLifeMax)
		dst = append(dst, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
		})
	}
	return dst
}

// UpdateParticles advances one tick and compacts out expired particles
func UpdateParticles(ps []Particle) []Particle {
	n := 0
	for i := range ps {
		p := ps[i]
		p.X += p.VX * tickSeconds
		p.Y += p.VY * tickSeconds
		p.VY += parameter.EnemyParticleGravity * tickSeconds
		p.Life -= tickSeconds
		if p.Life > 0 {
			ps[n] = p
			n++
		}
	}
	return ps[:n]
}
