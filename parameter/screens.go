package parameter

// Menu
const (
	MenuStartIndex = 0
)

// Story crawl
const (
	StoryScrollStart = ScreenHeight
	StoryScrollSpeed = 0.5
	StoryLineSpacing = 40.0
	StoryTitleOffset = 100.0
)

// Planet descent
const (
	DescentTicks           = 240
	DescentOrbitSoundTicks = 60
	DescentShipStartY      = 100.0
	DescentShipTravel      = 120.0
	// EmergencyRepairHealth or less is patched up before an enemy planet
	EmergencyRepairHealth = 2
	EmergencyRepairMin    = 3
	EmergencyRepairSpan   = 2
	AllyMessageTicks      = 300
)

// Game over screen
const (
	GameOverInputDelayTicks = 240
	GameOverMusicDelayTicks = 30
)

// Victory screen
const (
	VictoryInputDelayTicks = 480
	VictoryMusicDelayTicks = 30
	VictoryFireworkMax     = 8
	VictoryFireworkStart   = 60
	VictoryFireworkGapMin  = 30
	VictoryFireworkGapSpan = 90
)

// Victory routes recorded by the star map
const (
	RouteEnemy = "enemy_route"
	RouteAlly  = "ally_route"
)
