package component

import (
	"math"

	"github.com/drillerjoe/space/parameter"
)

// Projectile is a straight-moving shot with a lifetime in ticks
type Projectile struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Lifetime int
}

// Step moves one tick and decrements the lifetime, returns false once expired
func (p *Projectile) Step() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Lifetime--
	return p.Lifetime > 0
}

// Laser is a combat bolt travelling from a cannon to the crosshair
type Laser struct {
	X, Y   float64
	VX, VY float64
}

// NewLaser aims a bolt from (x, y) at the target with the given speed
func NewLaser(x, y, tx, ty, speed float64) Laser {
	dx, dy := tx-x, ty-y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return Laser{X: x, Y: y}
	}
	return Laser{X: x, Y: y, VX: dx / d * speed, VY: dy / d * speed}
}

// EnemyShot is a combat projectile approaching the camera along Z
// Screen position is recomputed every tick from base, wobble, deflection and camera
type EnemyShot struct {
	BaseX, BaseY       float64
	Z                  float64
	Speed              float64
	Wobble             float64
	DeflectX, DeflectY float64
	Scale              float64
	Age                int
	Lifetime           int
	X, Y               float64
}

// NewEnemyShot creates a shot whose lifetime covers its full depth travel
func NewEnemyShot(baseX, baseY, z, speed, wobble float64) EnemyShot {
	life := 1
	if speed > 0 {
		life = int(math.Ceil(z / speed))
	}
	return EnemyShot{
		BaseX:    baseX,
		BaseY:    baseY,
		Z:        z,
		Speed:    speed,
		Wobble:   wobble,
		Scale:    parameter.CombatShotMinScale,
		Lifetime: life,
		X:        baseX,
		Y:        baseY,
	}
}

// Step advances depth, age and lifetime, returns false once the shot is spent
func (s *EnemyShot) Step(worldX, worldY float64) bool {
	s.Z -= s.Speed
	s.Age++
	s.Lifetime--
	s.Scale = math.Max(parameter.CombatShotMinScale, (parameter.CombatShotZMax-s.Z)/parameter.CombatShotScaleDiv)
	s.X = s.BaseX + s.DeflectX + math.Sin(s.Z*0.01)*s.Wobble + worldX
	s.Y = s.BaseY + s.DeflectY + math.Cos(s.Z*0.008)*s.Wobble*0.5 + worldY
	return s.Lifetime > 0 && s.Z > 0 && s.Z <= parameter.CombatShotZMax
}

// Armed reports whether the shot may damage the player
func (s *EnemyShot) Armed() bool {
	return s.Age > parameter.CombatShotArmTicks && s.Scale > parameter.CombatShotArmScale
}

// HalfSize is the apparent half extent used for the player hit test
func (s *EnemyShot) HalfSize() float64 {
	return parameter.CombatShotHalfSize * s.Scale
}
