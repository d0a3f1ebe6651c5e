package component

import "strconv"

// SectorKind is the encounter waiting in a star map cell
type SectorKind uint8

const (
	SectorEnemy SectorKind = iota
	SectorAsteroid
	SectorEnemyPlanet
	SectorAllyPlanet
)

func (k SectorKind) String() string {
	switch k {
	case SectorEnemy:
		return "enemy"
	case SectorAsteroid:
		return "asteroid"
	case SectorEnemyPlanet:
		return "enemyPlanet"
	case SectorAllyPlanet:
		return "allyPlanet"
	}
	return "unknown"
}

// Sector is one cell of the star map grid
type Sector struct {
	X, Y      int
	Kind      SectorKind
	Revealed  bool
	Completed bool
}

// SectorName labels a cell with a column letter and a 1-based row, e.g. "C4"
func SectorName(x, y int) string {
	return string(rune('A'+x)) + strconv.Itoa(y+1)
}
