package component

import "github.com/drillerjoe/space/parameter"

// AsteroidKind orders sizes from largest to smallest
type AsteroidKind uint8

const (
	AsteroidLarge AsteroidKind = iota
	AsteroidMedium
	AsteroidSmall
)

func (k AsteroidKind) String() string {
	switch k {
	case AsteroidLarge:
		return "large"
	case AsteroidMedium:
		return "medium"
	case AsteroidSmall:
		return "small"
	}
	return "unknown"
}

// Size returns the collision radius for the kind
func (k AsteroidKind) Size() float64 {
	switch k {
	case AsteroidLarge:
		return parameter.StormLargeSize
	case AsteroidMedium:
		return parameter.StormMediumSize
	default:
		return parameter.StormSmallSize
	}
}

// Damage returns the health cost of ramming an asteroid of this kind
func (k AsteroidKind) Damage() int {
	switch k {
	case AsteroidLarge:
		return parameter.StormLargeDamage
	case AsteroidMedium:
		return parameter.StormMediumDamage
	default:
		return parameter.StormSmallDamage
	}
}

// Fragment returns the kind produced on destruction, ok is false for Small
func (k AsteroidKind) Fragment() (AsteroidKind, bool) {
	switch k {
	case AsteroidLarge:
		return AsteroidMedium, true
	case AsteroidMedium:
		return AsteroidSmall, true
	}
	return k, false
}

// Asteroid drifts with constant velocity and wraps around the arena
type Asteroid struct {
	Kind      AsteroidKind
	X, Y      float64
	VX, VY    float64
	Size      float64
	Damage    int
	Health    int
	Rotation  float64
	Spin      float64
	Destroyed bool
}

// NewAsteroid creates an asteroid with kind constants applied
func NewAsteroid(kind AsteroidKind, x, y, vx, vy, spin float64) Asteroid {
	return Asteroid{
		Kind:   kind,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Size:   kind.Size(),
		Damage: kind.Damage(),
		Health: 1,
		Spin:   spin,
	}
}

// UFO hunts the player and fires aimed shots
type UFO struct {
	X, Y          float64
	VX, VY        float64
	Health        int
	RetargetTimer int
	ShootTimer    int
	Bullets       []Projectile
	Destroyed     bool
}
