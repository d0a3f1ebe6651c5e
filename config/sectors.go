package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sectors.yaml
var defaultSectors []byte

// Encounters is the number of sectors of each kind
type Encounters struct {
	EnemyPlanets    int `yaml:"enemy_planets"`
	AllyPlanets     int `yaml:"ally_planets"`
	AsteroidStorms  int `yaml:"asteroid_storms"`
	EnemyEncounters int `yaml:"enemy_encounters"`
}

// Total sums every encounter count
func (e Encounters) Total() int {
	return e.EnemyPlanets + e.AllyPlanets + e.AsteroidStorms + e.EnemyEncounters
}

// SectorLayout describes the star map campaign
type SectorLayout struct {
	GridSize     int `yaml:"grid_size"`
	Encounters   `yaml:"encounters"`
	RevealCount  int `yaml:"reveal_count"`
	VictoryCount int `yaml:"victory_count"`
}

// DefaultSectors returns the embedded layout
func DefaultSectors() (SectorLayout, error) {
	var l SectorLayout
	if err := yaml.Unmarshal(defaultSectors, &l); err != nil {
		return l, fmt.Errorf("decode embedded sectors: %w", err)
	}
	return l, nil
}

// LoadSectors reads a layout file over the embedded defaults, an empty path uses the defaults
func LoadSectors(path string) (SectorLayout, error) {
	l, err := DefaultSectors()
	if err != nil {
		return l, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return l, fmt.Errorf("read sectors %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &l); err != nil {
			return l, fmt.Errorf("decode sectors %s: %w", path, err)
		}
	}
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

// Validate checks the counts fill the grid and the campaign can be won
func (l SectorLayout) Validate() error {
	if l.GridSize <= 0 || l.GridSize > 26 {
		return fmt.Errorf("%w: grid_size must be in [1,26], got %d", ErrInvalid, l.GridSize)
	}
	if area := l.GridSize * l.GridSize; l.Total() != area {
		return fmt.Errorf("%w: encounter counts sum to %d, grid has %d sectors", ErrInvalid, l.Total(), area)
	}
	if l.EnemyEncounters < 1 {
		return fmt.Errorf("%w: at least one enemy encounter is needed for the start sector", ErrInvalid)
	}
	if l.VictoryCount <= 0 || (l.VictoryCount > l.EnemyPlanets && l.VictoryCount > l.AllyPlanets) {
		return fmt.Errorf("%w: victory_count %d is unreachable", ErrInvalid, l.VictoryCount)
	}
	if l.RevealCount < 0 {
		return fmt.Errorf("%w: reveal_count must not be negative", ErrInvalid)
	}
	return nil
}
