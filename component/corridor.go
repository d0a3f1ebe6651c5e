package component

import "github.com/drillerjoe/space/physics"

// Segment is one horizontal slice of the scrolling canyon
type Segment struct {
	Y         float64
	LeftWall  float64
	RightWall float64
}

// Width returns the traversable width of the slice
func (s Segment) Width() float64 {
	return s.RightWall - s.LeftWall
}

// Center returns the horizontal middle of the slice
func (s Segment) Center() float64 {
	return (s.LeftWall + s.RightWall) / 2
}

// ObstacleShape selects an obstacle silhouette
type ObstacleShape uint8

const (
	ShapeCircle ObstacleShape = iota
	ShapeDiamond
	ShapePentagon
	shapeCount
)

// ShapeCount is the number of obstacle silhouettes
const ShapeCount = int(shapeCount)

// Obstacle is indestructible, blocks shots and is lethal on contact
type Obstacle struct {
	X, Y       float64
	Size       float64
	Shape      ObstacleShape
	ColorPhase float64
}

// Barrier is a destructible rectangle worth score when shot
type Barrier struct {
	X, Y       float64
	W, H       float64
	FlashPhase float64
	Body       *physics.Body
}

// CorridorShot is a player projectile travelling up the corridor
type CorridorShot struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Body  *physics.Body
}

// RearMissile climbs from below the screen toward the player
type RearMissile struct {
	X, Y       float64
	W, H       float64
	ColorPhase float64
	Body       *physics.Body
}

// Warning marks where a rear missile will appear
type Warning struct {
	X, Y       float64
	Life       int
	FlashPhase float64
}

// ExitPoint is the mission goal
type ExitPoint struct {
	X, Y       float64
	Size       float64
	FlashPhase float64
	Spawned    bool
	Active     bool
	Reached    bool
}
