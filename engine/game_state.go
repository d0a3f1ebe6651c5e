package engine

import (
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/vmath"
)

// GameState is the cross-mode player state
// Only the active mode writes it, so it carries no lock
type GameState struct {
	health      int
	maxHealth   int
	startHealth int
	score       int
	route       string
}

// NewGameState creates a state starting at startHealth, clamped to [1, PlayerMaxHealth]
func NewGameState(startHealth int) *GameState {
	startHealth = vmath.ClampInt(startHealth, 1, parameter.PlayerMaxHealth)
	return &GameState{
		health:      startHealth,
		maxHealth:   parameter.PlayerMaxHealth,
		startHealth: startHealth,
	}
}

// Health returns current health in [0, MaxHealth]
func (g *GameState) Health() int {
	return g.health
}

// MaxHealth returns the health ceiling
func (g *GameState) MaxHealth() int {
	return g.maxHealth
}

// SetHealth stores h clamped to [0, MaxHealth]
func (g *GameState) SetHealth(h int) {
	g.health = vmath.ClampInt(h, 0, g.maxHealth)
}

// Damage subtracts n, never below zero
func (g *GameState) Damage(n int) {
	if n <= 0 {
		return
	}
	g.SetHealth(g.health - n)
}

// Heal adds n, never above MaxHealth
func (g *GameState) Heal(n int) {
	if n <= 0 {
		return
	}
	g.SetHealth(g.health + n)
}

// IsPlayerAlive reports health > 0
func (g *GameState) IsPlayerAlive() bool {
	return g.health > 0
}

// AddScore adds n; negative amounts are ignored so score never decreases
func (g *GameState) AddScore(n int) {
	if n > 0 {
		g.score += n
	}
}

// Score returns the accumulated score
func (g *GameState) Score() int {
	return g.score
}

// TriggerVictory records the campaign route that won the game
func (g *GameState) TriggerVictory(route string) {
	g.route = route
}

// VictoryRoute returns the recorded route, empty while the campaign is open
func (g *GameState) VictoryRoute() string {
	return g.route
}

// Reset restores a fresh campaign
func (g *GameState) Reset() {
	g.health = g.startHealth
	g.score = 0
	g.route = ""
}
