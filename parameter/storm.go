package parameter

// Survival timer, seconds
const (
	StormTimerMinSeconds  = 45
	StormTimerSpanSeconds = 45
)

// Phases
const (
	StormAlertTicks   = 240
	StormVictoryTicks = 240
)

// Player ship
const (
	StormPlayerMaxSpeed = 8.0
	StormPlayerThrust   = 0.18
	StormPlayerRotation = 0.09
	StormPlayerFriction = 0.98
	StormPlayerSize     = 12.0
	StormInvulnTicks    = 120
	StormKnockback      = 3.0
)

// Player bullets
const (
	StormBulletSpeed    = 12.0
	StormBulletLifetime = 22
	StormFireRate       = 8
	StormMaxBullets     = 2
	StormBulletSize     = 2.0
)

// Asteroids
const (
	StormInitialMin       = 6
	StormInitialSpan      = 3
	StormMaxAsteroids     = 18
	StormSpawnBase        = 120.0
	StormSpawnRamp        = 90.0
	StormSpawnFloor       = 30.0
	StormAsteroidSpeedMin = 0.3
	StormAsteroidSpeedMax = 1.5

	StormLargeSize    = 25.0
	StormMediumSize   = 15.0
	StormSmallSize    = 8.0
	StormLargeDamage  = 2
	StormMediumDamage = 1
	StormSmallDamage  = 1
)

// Fragmentation
const (
	StormFragmentMin       = 2
	StormFragmentSpan      = 2
	StormMediumSpread      = 0.5
	StormSmallSpread       = 0.7
	StormMediumFragmentMin = 0.75
	StormMediumFragmentMax = 1.75
	StormSmallFragmentMin  = 1.0
	StormSmallFragmentMax  = 2.25
	StormFragmentJitter    = 0.15
)

// Scoring
const (
	StormAsteroidScore = 1
	StormUFOScore      = 5
)

// UFO
const (
	StormUFOSize          = 20.0
	StormUFOHealth        = 2
	StormMaxUFOs          = 2
	StormUFOSpawnBase     = 1800.0
	StormUFOSpawnRamp     = 600.0
	StormUFOSpawnFloor    = 900.0
	StormUFOSpeedMin      = 1.0
	StormUFOSpeedMax      = 2.0
	StormUFORetargetTicks = 180
	StormUFOAimNoise      = 1.5
	StormUFOCruiseMin     = 0.8
	StormUFOCruiseMax     = 1.2
	StormUFOShootMin      = 60
	StormUFOShootSpan     = 90
	StormUFOBulletSpeed   = 3.0
	StormUFOBulletLife    = 180
	StormUFOBulletSize    = 3.0
)
