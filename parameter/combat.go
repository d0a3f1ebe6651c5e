package parameter

// Encounter
const (
	CombatWaveSize      = 10
	CombatMaxOnScreen   = 5
	CombatSpawnInterval = 150

	// Independent per slot, cumulative thresholds
	CombatBasicWeight = 0.50
	CombatFastWeight  = 0.85
)

// Phases
const (
	CombatAlertTicks   = 360
	CombatVictoryTicks = 240
)

// World camera
const (
	CombatWorldSpeed    = 3.0
	CombatWorldFriction = 0.85
	CombatWorldMaxX     = 300.0
	CombatWorldMaxY     = 200.0
	CombatVelocitySnap  = 0.1
)

// Player lasers
const (
	CombatFireRate      = 9
	CombatLaserSpeed    = 32.0
	CombatCannonLeftX   = 100.0
	CombatCannonRightX  = 700.0
	CombatCannonY       = 580.0
	CombatCrosshairSize = 20.0

	// CombatConvergenceRadius is the crosshair circle where bolts are resolved
	CombatConvergenceRadius = CombatCrosshairSize + 5

	CombatLaserMinX = -10.0
	CombatLaserMaxX = ScreenWidth + 10
	CombatLaserMinY = -10.0
	CombatLaserMaxY = ScreenHeight + 10
)

// Enemy spawn geometry
const (
	CombatSpawnMargin = 100.0
	CombatSpawnZMin   = 1.5
	CombatSpawnZSpan  = 2.0
)

// Enemy fire
const (
	CombatEnemyFireMin  = 180
	CombatEnemyFireSpan = 300

	// Visible window an enemy must be inside to fire
	CombatFireWindowMargin = 50.0

	CombatShotZMin       = 800.0
	CombatShotZSpan      = 200.0
	CombatShotZMax       = 1000.0
	CombatShotSpeedMin   = 4.0
	CombatShotSpeedSpan  = 3.0
	CombatShotWobbleMin  = 10.0
	CombatShotWobbleSpan = 20.0
	CombatShotSpread     = 30.0
	CombatShotHalfSize   = 15.0
	CombatShotScaleDiv   = 200.0
	CombatShotMinScale   = 0.1

	// Shots cannot hurt before this age and apparent scale
	CombatShotArmTicks = 60
	CombatShotArmScale = 0.5
)

// Deflection of incoming shots by held direction
const (
	CombatDeflectHoldTicks = 3
	CombatDeflectStep      = 2.0
)

// Player hitbox in screen space
const (
	CombatPlayerHitX = 350.0
	CombatPlayerHitY = 265.0
	CombatPlayerHitW = 100.0
	CombatPlayerHitH = 70.0
)

// Effects
const (
	CombatCrackTicks = 60
)

// Enemy movement envelope around the crosshair
const (
	CombatEnvelopeHalfW = 300.0
	CombatEnvelopeHalfH = 200.0
	CombatDepthMin      = 0.3
	CombatDepthMax      = 5.0
)

// Elite reinforcements
const (
	CombatEliteSplitCount    = 4
	CombatEliteSplitDistance = 100.0
	CombatEliteSplitDepth    = 0.25
)
