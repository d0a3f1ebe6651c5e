package parameter

// Phases
const (
	MissionIntroTicks   = 120
	MissionVictoryTicks = 300
)

// Corridor
const (
	MissionScrollSpeed   = 6.0
	MissionSegmentHeight = 50.0
	MissionSegmentCount  = 20
	MissionDiscardY      = 700.0
	MissionMinWidth      = 150.0
	MissionMaxWidth      = 300.0
	MissionStartWidth    = 300.0
	MissionPhaseStep     = 0.2
	MissionSerpentine    = 40.0
	MissionSerpentineMix = 0.3
	MissionWidthJitter   = 60.0
	MissionSway          = 30.0
	MissionSwayRate      = 0.7
	MissionLeftWallMin   = 50.0
	MissionLeftWallMax   = 350.0
	MissionRightWallMin  = 450.0
	MissionRightWallMax  = 750.0
)

// Player
const (
	MissionPlayerX     = 400.0
	MissionPlayerY     = 500.0
	MissionPlayerW     = 20.0
	MissionPlayerH     = 30.0
	MissionPlayerSpeed = 4.0
	MissionPlayerMinX  = 50.0
	MissionPlayerMaxX  = 750.0
	MissionPlayerMinY  = 50.0
	MissionPlayerMaxY  = 550.0
)

// Player shots
const (
	MissionFireRate  = 12
	MissionShotSpeed = 12.0
	MissionShotW     = 4.0
	MissionShotH     = 12.0
	MissionShotLift  = 15.0
	MissionShotMinY  = -20.0
)

// Difficulty ramp
const (
	MissionRampSeconds = 120
)

// Obstacles
const (
	MissionObstacleSize      = 20.0
	MissionObstacleMaxGap    = 180.0
	MissionObstacleMinGap    = 60.0
	MissionSpawnY            = -30.0
	MissionSpawnMargin       = 30.0
	MissionSpawnBandTop      = -100.0
	MissionSpawnBandBottom   = 50.0
	MissionExitQuietDistance = 100.0
)

// Barriers
const (
	MissionBarrierW            = 45.0
	MissionBarrierH            = 25.0
	MissionBarrierMaxGap       = 60.0
	MissionBarrierMinGap       = 15.0
	MissionBarrierAttempts     = 20
	MissionBarrierObstacleBand = 150.0
	MissionBarrierHitShrink    = 0.7
	MissionPlayerHitShrink     = 0.8

	MissionFormationDistance = 200.0
	MissionFormationMargin   = 25.0
	MissionFormationMinWidth = 60.0
	MissionWallSpacing       = 50.0
	MissionWallW             = 40.0
	MissionWallH             = 25.0
	MissionFlankW            = 50.0
	MissionFlankH            = 30.0
	MissionScatterMin        = 2
	MissionScatterSpan       = 3
	MissionScatterAttempts   = 15
	MissionScatterStagger    = 15.0
)

// Exit point
const (
	MissionExitMinTicks  = 5400
	MissionExitSpanTicks = 1800
	MissionExitSize      = 100.0
	MissionExitBandTop   = -200.0
	MissionExitBandBot   = -50.0
	MissionExitSlowY     = 450.0
	MissionExitHoldY     = 550.0
	MissionExitLostY     = 700.0
)

// Rear missiles
const (
	MissionMissileMinTicks = 300
	MissionMissileSpan     = 301
	MissionWarningTicks    = 90
	MissionMissileSpeed    = 2.0
	MissionMissileW        = 16.0
	MissionMissileH        = 32.0
	MissionMissileStartY   = 620.0
	MissionMissileMinY     = -50.0
	MissionWarningY        = 580.0
	MissionMissileBandTop  = 550.0
	MissionMissileBandBot  = 650.0
	MissionMissileScore    = 3
	MissionBarrierScore    = 1
)

// Placement clearance against obstacles
const (
	MissionRegularPadX        = 20.0
	MissionRegularPadY        = 15.0
	MissionFormationPadX      = 25.0
	MissionFormationPadY      = 20.0
	MissionObstacleNearTop    = -200.0
	MissionObstacleNearBottom = 100.0
	MissionWallJitter         = 15.0
	MissionFlankJitter        = 20.0
)

// Exit tracking and missile placement
const (
	MissionExitTrackBand    = 25.0
	MissionExitRadius       = MissionExitSize / 2
	MissionMissileMargin    = 30.0
	MissionMissileFallbackX = 350.0
	MissionMissileFallbackW = 100.0
)
