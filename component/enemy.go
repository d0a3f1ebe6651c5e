package component

import (
	"math"

	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/vmath"
)

// tickSeconds converts per-second rates to a single tick
const tickSeconds = 1.0 / parameter.TicksPerSecond

// EnemyKind is the closed set of combat enemy variants
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyElite
	enemyKindCount
)

func (k EnemyKind) String() string {
	if k < enemyKindCount {
		return EnemyVariants[k].Name
	}
	return "unknown"
}

// MoveFunc advances one enemy by one tick of its movement pattern
type MoveFunc func(e *Enemy, rng *vmath.FastRand)

// EnemyVariant holds the per-kind constants and behavior
type EnemyVariant struct {
	Name         string
	Speed        float64
	Size         float64
	Score        int
	HitPoints    int
	FlashTicks   int
	RadiusFactor float64 // Collision radius = Size / Z * RadiusFactor
	Move         MoveFunc
}

// EnemyVariants is indexed by EnemyKind
var EnemyVariants = [enemyKindCount]EnemyVariant{
	EnemyBasic: {
		Name:         "basic",
		Speed:        parameter.EnemyBasicSpeed,
		Size:         parameter.EnemyBasicSize,
		Score:        parameter.EnemyBasicScore,
		HitPoints:    parameter.EnemyBasicHP,
		RadiusFactor: 0.5,
		Move:         moveBasic,
	},
	EnemyFast: {
		Name:         "fast",
		Speed:        parameter.EnemyFastSpeed,
		Size:         parameter.EnemyFastSize,
		Score:        parameter.EnemyFastScore,
		HitPoints:    parameter.EnemyFastHP,
		RadiusFactor: 0.8,
		Move:         moveFast,
	},
	EnemyElite: {
		Name:         "elite",
		Speed:        parameter.EnemyEliteSpeed,
		Size:         parameter.EnemyEliteSize,
		Score:        parameter.EnemyEliteScore,
		HitPoints:    parameter.EnemyEliteHP,
		FlashTicks:   parameter.EnemyEliteFlashTicks,
		RadiusFactor: 0.5,
		Move:         moveElite,
	},
}

// Enemy is a combat target in world space with a depth coordinate
// Position is relative to the world; screen position adds the camera offset
type Enemy struct {
	Kind    EnemyKind
	X, Y, Z float64

	Speed        float64
	Size         float64
	RadiusFactor float64
	HitPoints    int
	ScoreValue   int
	FlashTicks   int

	// Lifecycle
	Exploding      bool
	Destroyed      bool
	ExplosionTimer int
	Particles      []Particle
	HitFlash       int

	// Weapon
	FireTimer int

	// Reinforcement marks a Basic released by a dead Elite, outside the wave count
	Reinforcement bool

	// Pattern state, all initialized at construction
	MoveTime    float64 // Seconds of pattern time
	PatternTick int
	OffsetX     float64
	OffsetY     float64
	StrafeX     float64
	StrafeY     float64
	StrafeTicks int
	AdjustX     float64
	AdjustY     float64
	AdjustTicks int
}

// NewEnemy creates an enemy of the given kind with its variant constants applied
func NewEnemy(kind EnemyKind, x, y, z float64, fireDelay int) *Enemy {
	v := &EnemyVariants[kind]
	return &Enemy{
		Kind:         kind,
		X:            x,
		Y:            y,
		Z:            z,
		Speed:        v.Speed,
		Size:         v.Size,
		RadiusFactor: v.RadiusFactor,
		HitPoints:    v.HitPoints,
		ScoreValue:   v.Score,
		FlashTicks:   v.FlashTicks,
		FireTimer:    fireDelay,
	}
}

// Active reports whether the enemy is alive and not exploding
func (e *Enemy) Active() bool {
	return !e.Exploding && !e.Destroyed
}

// CollisionRadius is the depth-scaled hit radius
func (e *Enemy) CollisionRadius() float64 {
	return e.Size / e.Z * e.RadiusFactor
}

// Hit applies one damage point, returns true when this hit killed the enemy
func (e *Enemy) Hit(rng *vmath.FastRand) bool {
	if !e.Active() {
		return false
	}
	e.HitPoints--
	e.HitFlash = e.FlashTicks
	if e.HitPoints <= 0 {
		e.Explode(rng)
		return true
	}
	return false
}

// Explode enters the explosion phase; removal happens once the timer elapses
func (e *Enemy) Explode(rng *vmath.FastRand) {
	if e.Exploding || e.Destroyed {
		return
	}
	e.Exploding = true
	e.ExplosionTimer = 0
	e.Particles = EmitParticles(e.Particles[:0], e.X, e.Y, rng)
}

// Update advances movement or the explosion by one tick
func (e *Enemy) Update(rng *vmath.FastRand) {
	if e.Destroyed {
		return
	}
	if e.Exploding {
		e.ExplosionTimer++
		e.Particles = UpdateParticles(e.Particles)
		if e.ExplosionTimer >= parameter.EnemyExplosionTicks {
			e.Destroyed = true
			e.Particles = e.Particles[:0]
		}
		return
	}

	if e.HitFlash > 0 {
		e.HitFlash--
	}

	e.MoveTime += tickSeconds
	e.PatternTick++
	EnemyVariants[e.Kind].Move(e, rng)
	e.Constrain()
}

// Constrain keeps the enemy within firing range of the crosshair and the depth range
func (e *Enemy) Constrain() {
	half := e.Size / 2
	e.X = vmath.Clamp(e.X,
		parameter.ScreenCX-parameter.CombatEnvelopeHalfW+half,
		parameter.ScreenCX+parameter.CombatEnvelopeHalfW-half)
	e.Y = vmath.Clamp(e.Y,
		parameter.ScreenCY-parameter.CombatEnvelopeHalfH+half,
		parameter.ScreenCY+parameter.CombatEnvelopeHalfH-half)
	e.Z = vmath.Clamp(e.Z, parameter.CombatDepthMin, parameter.CombatDepthMax)
}

func moveBasic(e *Enemy, rng *vmath.FastRand) {
	speed := e.Speed * 2
	e.X += math.Sin(e.MoveTime*1.5) * speed
	e.Y += math.Cos(e.MoveTime*1.2) * speed * 0.8

	if e.PatternTick%parameter.EnemyBasicOffsetTicks == 0 {
		e.OffsetX = rng.Signed(parameter.EnemyBasicOffsetX / 2)
		e.OffsetY = rng.Signed(parameter.EnemyBasicOffsetY / 2)
	}
	e.X += e.OffsetX * tickSeconds * 0.5
	e.Y += e.OffsetY * tickSeconds * 0.5

	e.Z += math.Sin(e.MoveTime*0.8) * 1.2 * tickSeconds
}

func moveFast(e *Enemy, rng *vmath.FastRand) {
	e.X += math.Sin(e.MoveTime*4) * e.Speed
	e.Y += math.Cos(e.MoveTime*3.2) * e.Speed

	if e.PatternTick%parameter.EnemyFastStrafeTicks == 0 {
		e.StrafeX = rng.Signed(parameter.EnemyFastStrafeX / 2)
		e.StrafeY = rng.Signed(parameter.EnemyFastStrafeY / 2)
		e.StrafeTicks = parameter.EnemyFastStrafeTicks
	}
	if e.StrafeTicks > 0 {
		e.StrafeTicks--
		e.X += e.StrafeX * tickSeconds * 2
		e.Y += e.StrafeY * tickSeconds * 2
	}

	e.Z += math.Sin(e.MoveTime*2.5) * 1.8 * tickSeconds
}

func moveElite(e *Enemy, rng *vmath.FastRand) {
	base := e.Speed * 1.5
	phase := int(math.Floor(e.MoveTime*parameter.EnemyElitePhaseRate)) % 4

	switch phase {
	case 0: // Orbit
		e.X += math.Cos(e.MoveTime*1.5) * parameter.EnemyEliteOrbitRadius * tickSeconds
		e.Y += math.Sin(e.MoveTime*1.5) * parameter.EnemyEliteOrbitRadius * tickSeconds
	case 1: // Hunt
		e.X += math.Sin(e.MoveTime*0.8) * base
		e.Y += math.Cos(e.MoveTime*0.6) * base * 0.7
	case 2: // Evade
		e.X += math.Sin(e.MoveTime*2.2) * base * 0.8
		e.Y += math.Cos(e.MoveTime*1.8) * base * 1.2
	case 3: // Attack
		e.X += math.Sin(e.MoveTime*1.2) * base * 1.3
		e.Y += math.Cos(e.MoveTime*1.4) * base * 0.9
	}
	e.Z += math.Sin(e.MoveTime*0.7+float64(phase)) * 1.2 * tickSeconds

	if rng.Chance(parameter.EnemyEliteAdjustChance) {
		e.AdjustX = rng.Signed(parameter.EnemyEliteAdjustRange / 2)
		e.AdjustY = rng.Signed(parameter.EnemyEliteAdjustRange / 2)
		e.AdjustTicks = parameter.EnemyEliteAdjustTicks
	}
	if e.AdjustTicks > 0 {
		e.AdjustTicks--
		e.X += e.AdjustX * tickSeconds * 3
		e.Y += e.AdjustY * tickSeconds * 3
	}
}
