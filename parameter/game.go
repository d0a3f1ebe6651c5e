package parameter

// Logical play field, independent of the terminal size
const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0
	ScreenCX     = ScreenWidth / 2
	ScreenCY     = ScreenHeight / 2
)

// TicksPerSecond is the simulation rate; every duration below is in ticks
const TicksPerSecond = 60

// Shared player state
const (
	// PlayerMaxHealth bounds health to [0, PlayerMaxHealth]
	PlayerMaxHealth = 7
)

// Mode names used by the dispatcher and SwitchToMode
const (
	ModeMenu          = "menu"
	ModeStory         = "story"
	ModeStarMap       = "starMap"
	ModeCombat        = "combat"
	ModeAsteroidStorm = "asteroidStorm"
	ModePlanetDescent = "planetDescent"
	ModeAllyDescent   = "allyPlanetDescent"
	ModeEnemyPlanet   = "enemyPlanet"
	ModeGameOver      = "gameOver"
	ModeVictory       = "victory"
)

// Fade overlay shared by victory sequences
const (
	FadeInTicks  = 30
	FadeOutTicks = 30
)

// Input emulation for terminals without key release events
const (
	// KeyHoldTicks keeps a key down after its last repeat event
	KeyHoldTicks = 8
)
