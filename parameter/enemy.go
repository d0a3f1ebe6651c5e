package parameter

// Explosion
const (
	EnemyExplosionTicks   = 90
	EnemyParticleMin      = 15
	EnemyParticleSpan     = 11
	EnemyParticleSpeedMin = 50.0
	EnemyParticleSpeedMax = 150.0
	EnemyParticleLifeMin  = 0.8
	EnemyParticleLifeMax  = 1.5
	EnemyParticleGravity  = 30.0
)

// Basic: circular drift with a random offset re-rolled every 2 s
const (
	EnemyBasicSpeed       = 1.0
	EnemyBasicSize        = 60.0
	EnemyBasicScore       = 1
	EnemyBasicHP          = 1
	EnemyBasicOffsetTicks = 120
	EnemyBasicOffsetX     = 200.0
	EnemyBasicOffsetY     = 150.0
)

// Fast: quick oscillation with half-second strafes
const (
	EnemyFastSpeed       = 2.0
	EnemyFastSize        = 90.0
	EnemyFastScore       = 2
	EnemyFastHP          = 1
	EnemyFastStrafeTicks = 30
	EnemyFastStrafeX     = 400.0
	EnemyFastStrafeY     = 300.0
)

// Elite: four tactical phases plus micro-adjustments
const (
	EnemyEliteSpeed        = 2.0
	EnemyEliteSize         = 75.0
	EnemyEliteScore        = 3
	EnemyEliteHP           = 3
	EnemyEliteFlashTicks   = 15
	EnemyElitePhaseRate    = 0.3
	EnemyEliteOrbitRadius  = 100.0
	EnemyEliteAdjustChance = 0.02
	EnemyEliteAdjustRange  = 80.0
	EnemyEliteAdjustTicks  = 18
)
