package mode

import (
	"math"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/physics"
	"github.com/drillerjoe/space/vmath"
)

// reinforcement is a Basic enemy waiting for its Elite's explosion to resolve
type reinforcement struct {
	parent  *component.Enemy
	x, y, z float64
}

// Combat is the first-person shooting gallery encounter
type Combat struct {
	deps Deps
	log  zerolog.Logger
	done latch
	cues CueList

	phase      Phase
	phaseTicks int

	// Camera offset applied to everything in world space
	worldX, worldY float64
	velX, velY     float64

	queue          []component.EnemyKind
	spawned        int
	everSpawned    bool
	spawnTimer     int
	reinforcements []reinforcement

	enemies []*component.Enemy
	lasers  []component.Laser
	shots   []component.EnemyShot

	fireCooldown int
	crackTicks   int
	kills        int

	statEnemies *atomic.Int64
	statShots   *atomic.Int64
	statSpawned *atomic.Int64
}

// NewCombat creates the combat mode; state is built on Enter
func NewCombat(deps Deps) *Combat {
	return &Combat{
		deps:        deps,
		log:         deps.logger(parameter.ModeCombat),
		statEnemies: deps.Status.Ints.Get("combat.enemies"),
		statShots:   deps.Status.Ints.Get("combat.enemy_shots"),
		statSpawned: deps.Status.Ints.Get("combat.spawned"),
	}
}

// Enter resets the encounter and starts the alert
func (c *Combat) Enter() {
	c.done.reset()
	c.cues.Clear()
	c.phase = PhaseAlert
	c.phaseTicks = 0

	c.worldX, c.worldY, c.velX, c.velY = 0, 0, 0, 0
	c.enemies = c.enemies[:0]
	c.lasers = c.lasers[:0]
	c.shots = c.shots[:0]
	c.reinforcements = c.reinforcements[:0]
	c.spawned = 0
	c.everSpawned = false
	c.spawnTimer = 0
	c.fireCooldown = 0
	c.crackTicks = 0
	c.kills = 0

	c.queue = c.queue[:0]
	for i := 0; i < parameter.CombatWaveSize; i++ {
		c.queue = append(c.queue, rollEnemyKind(c.deps.Rand))
	}

	c.deps.Audio.PlaySFX(audio.SoundAlert)
	c.cues.Schedule(parameter.CombatAlertTicks, func() {
		c.deps.Audio.PlayMusic(audio.MusicCombat)
	})
	c.log.Info().Interface("queue", c.queue).Msg("combat encounter started")
}

// Exit cancels pending cues and stops the music
func (c *Combat) Exit() {
	c.cues.Clear()
	c.deps.Audio.StopMusic()
}

func rollEnemyKind(rng *vmath.FastRand) component.EnemyKind {
	r := rng.Float64()
	switch {
	case r < parameter.CombatBasicWeight:
		return component.EnemyBasic
	case r < parameter.CombatFastWeight:
		return component.EnemyFast
	}
	return component.EnemyElite
}

// Update advances the encounter by one tick
func (c *Combat) Update() {
	if c.done.fired {
		return
	}
	// Defeat overrides alert and victory
	if !c.deps.State.IsPlayerAlive() {
		c.finish(parameter.ModeGameOver)
		return
	}

	c.cues.Advance()
	c.phaseTicks++
	if c.crackTicks > 0 {
		c.crackTicks--
	}

	switch c.phase {
	case PhaseAlert:
		c.updateCamera()
		if c.deps.Input.IsFirePressed() {
			c.cues.Clear()
			c.deps.Audio.PlayMusic(audio.MusicCombat)
			c.setPhase(PhaseActive)
		} else if c.phaseTicks >= parameter.CombatAlertTicks {
			c.setPhase(PhaseActive)
		}
	case PhaseActive:
		c.updateCamera()
		c.updateDeflection()
		c.updateFiring()
		c.updateSpawner()
		c.updateEnemies()
		c.updateEnemyShots()
		c.updateLasers()
		c.checkVictory()
	case PhaseVictory:
		c.updateCamera()
		c.updateEnemies()
		c.updateEnemyShots()
		c.updateLasers()
		if c.phaseTicks >= parameter.CombatVictoryTicks {
			c.deps.Sectors.CompleteSector()
			c.finish(parameter.ModeStarMap)
		}
	}

	c.statEnemies.Store(int64(c.ActiveEnemies()))
	c.statShots.Store(int64(len(c.shots)))
}

func (c *Combat) setPhase(p Phase) {
	c.log.Info().Stringer("from", c.phase).Stringer("to", p).Msg("phase change")
	c.phase = p
	c.phaseTicks = 0
}

func (c *Combat) finish(next string) {
	if !c.done.fire() {
		return
	}
	if next == parameter.ModeGameOver {
		c.phase = PhaseDefeat
	}
	c.log.Info().Str("next", next).Int("kills", c.kills).Msg("combat finished")
	c.deps.Switcher.SwitchToMode(next)
}

// updateCamera moves the world opposite to the held direction
func (c *Combat) updateCamera() {
	in := c.deps.Input
	if c.phase == PhaseActive {
		if in.IsKeyDown(input.KeyLeft) {
			c.velX += parameter.CombatWorldSpeed
		}
		if in.IsKeyDown(input.KeyRight) {
			c.velX -= parameter.CombatWorldSpeed
		}
		if in.IsKeyDown(input.KeyUp) {
			c.velY += parameter.CombatWorldSpeed
		}
		if in.IsKeyDown(input.KeyDown) {
			c.velY -= parameter.CombatWorldSpeed
		}
	}

	c.velX *= parameter.CombatWorldFriction
	c.velY *= parameter.CombatWorldFriction
	c.worldX += c.velX
	c.worldY += c.velY

	// Position clamps, velocity does not
	c.worldX = vmath.Clamp(c.worldX, -parameter.CombatWorldMaxX, parameter.CombatWorldMaxX)
	c.worldY = vmath.Clamp(c.worldY, -parameter.CombatWorldMaxY, parameter.CombatWorldMaxY)
	c.velX = vmath.SnapZero(c.velX, parameter.CombatVelocitySnap)
	c.velY = vmath.SnapZero(c.velY, parameter.CombatVelocitySnap)
}

// updateDeflection pushes incoming shots away from a direction held long enough
func (c *Combat) updateDeflection() {
	in := c.deps.Input
	var dx, dy float64
	if in.HeldTicks(input.KeyLeft) > parameter.CombatDeflectHoldTicks {
		dx += parameter.CombatDeflectStep
	}
	if in.HeldTicks(input.KeyRight) > parameter.CombatDeflectHoldTicks {
		dx -= parameter.CombatDeflectStep
	}
	if in.HeldTicks(input.KeyUp) > parameter.CombatDeflectHoldTicks {
		dy += parameter.CombatDeflectStep
	}
	if in.HeldTicks(input.KeyDown) > parameter.CombatDeflectHoldTicks {
		dy -= parameter.CombatDeflectStep
	}
	if dx == 0 && dy == 0 {
		return
	}
	for i := range c.shots {
		c.shots[i].DeflectX += dx
		c.shots[i].DeflectY += dy
	}
}

func (c *Combat) updateFiring() {
	if c.fireCooldown > 0 {
		c.fireCooldown--
	}
	if c.fireCooldown > 0 || !c.deps.Input.IsKeyDown(input.KeyFire) {
		return
	}
	c.fireCooldown = parameter.CombatFireRate
	c.lasers = append(c.lasers,
		component.NewLaser(parameter.CombatCannonLeftX, parameter.CombatCannonY, parameter.ScreenCX, parameter.ScreenCY, parameter.CombatLaserSpeed),
		component.NewLaser(parameter.CombatCannonRightX, parameter.CombatCannonY, parameter.ScreenCX, parameter.ScreenCY, parameter.CombatLaserSpeed),
	)
	c.deps.Audio.PlaySFX(audio.SoundLaser)
}

// updateLasers moves bolts and resolves those reaching the convergence circle
func (c *Combat) updateLasers() {
	kept := c.lasers[:0]
	for _, l := range c.lasers {
		l.X += l.VX
		l.Y += l.VY

		if vmath.Dist(l.X, l.Y, parameter.ScreenCX, parameter.ScreenCY) <= parameter.CombatConvergenceRadius {
			c.resolveBolt()
			continue
		}
		if l.X < parameter.CombatLaserMinX || l.X > parameter.CombatLaserMaxX ||
			l.Y < parameter.CombatLaserMinY || l.Y > parameter.CombatLaserMaxY {
			continue
		}
		kept = append(kept, l)
	}
	c.lasers = kept
}

// resolveBolt damages the first visible live enemy under the crosshair
func (c *Combat) resolveBolt() {
	for _, e := range c.enemies {
		if !e.Active() {
			continue
		}
		sx, sy := e.X+c.worldX, e.Y+c.worldY
		if !onScreen(sx, sy) {
			continue
		}
		if !physics.CirclesOverlap(parameter.ScreenCX, parameter.ScreenCY, parameter.CombatConvergenceRadius, sx, sy, e.CollisionRadius()) {
			continue
		}
		if e.Hit(c.deps.Rand) {
			c.onEnemyKilled(e)
		}
		return
	}
}

func onScreen(x, y float64) bool {
	return x >= 0 && x <= parameter.ScreenWidth && y >= 0 && y <= parameter.ScreenHeight
}

func (c *Combat) onEnemyKilled(e *component.Enemy) {
	c.kills++
	c.deps.State.AddScore(e.ScoreValue)
	c.deps.Audio.PlaySFX(audio.SoundExplosion)
	c.log.Debug().Stringer("kind", e.Kind).Int("score", e.ScoreValue).Msg("enemy destroyed")

	if e.Kind != component.EnemyElite {
		return
	}
	for i := 0; i < parameter.CombatEliteSplitCount; i++ {
		angle := math.Pi / 2 * float64(i)
		c.reinforcements = append(c.reinforcements, reinforcement{
			parent: e,
			x:      e.X + math.Cos(angle)*parameter.CombatEliteSplitDistance,
			y:      e.Y + math.Sin(angle)*parameter.CombatEliteSplitDistance,
			z:      e.Z + c.deps.Rand.Signed(parameter.CombatEliteSplitDepth),
		})
	}
}

// updateEnemies advances movement, explosions and enemy fire, then drops resolved explosions
func (c *Combat) updateEnemies() {
	for _, e := range c.enemies {
		e.Update(c.deps.Rand)
		if !e.Active() {
			continue
		}
		e.FireTimer--
		if e.FireTimer > 0 {
			continue
		}
		e.FireTimer = rollFireDelay(c.deps.Rand)
		sx, sy := e.X+c.worldX, e.Y+c.worldY
		if sx < -parameter.CombatFireWindowMargin || sx > parameter.ScreenWidth+parameter.CombatFireWindowMargin ||
			sy < -parameter.CombatFireWindowMargin || sy > parameter.ScreenHeight+parameter.CombatFireWindowMargin {
			continue
		}
		rng := c.deps.Rand
		c.shots = append(c.shots, component.NewEnemyShot(
			e.X+rng.Signed(parameter.CombatShotSpread),
			e.Y+rng.Signed(parameter.CombatShotSpread),
			parameter.CombatShotZMin+rng.Float64()*parameter.CombatShotZSpan,
			parameter.CombatShotSpeedMin+rng.Float64()*parameter.CombatShotSpeedSpan,
			parameter.CombatShotWobbleMin+rng.Float64()*parameter.CombatShotWobbleSpan,
		))
		c.deps.Audio.PlaySFX(audio.SoundEnemyShot)
	}

	kept := c.enemies[:0]
	for _, e := range c.enemies {
		if !e.Destroyed {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(c.enemies); i++ {
		c.enemies[i] = nil
	}
	c.enemies = kept
}

func rollFireDelay(rng *vmath.FastRand) int {
	return parameter.CombatEnemyFireMin + rng.Intn(parameter.CombatEnemyFireSpan+1)
}

// updateEnemyShots moves shots toward the camera and applies player hits
func (c *Combat) updateEnemyShots() {
	hitbox := physics.Rect{
		X: parameter.CombatPlayerHitX, Y: parameter.CombatPlayerHitY,
		W: parameter.CombatPlayerHitW, H: parameter.CombatPlayerHitH,
	}
	kept := c.shots[:0]
	for _, s := range c.shots {
		if !s.Step(c.worldX, c.worldY) {
			continue
		}
		if c.phase == PhaseActive && s.Armed() {
			h := s.HalfSize()
			if (physics.Rect{X: s.X - h, Y: s.Y - h, W: 2 * h, H: 2 * h}).Overlaps(hitbox) {
				c.deps.State.Damage(1)
				c.crackTicks = parameter.CombatCrackTicks
				c.deps.Audio.PlaySFX(audio.SoundPlayerHit)
				continue
			}
		}
		kept = append(kept, s)
	}
	c.shots = kept
}

// updateSpawner releases resolved reinforcements, then the next queued enemy on its interval
func (c *Combat) updateSpawner() {
	pending := c.reinforcements[:0]
	for _, r := range c.reinforcements {
		if !r.parent.Destroyed {
			pending = append(pending, r)
			continue
		}
		c.spawn(component.EnemyBasic, r.x, r.y, r.z).Reinforcement = true
	}
	c.reinforcements = pending

	c.spawnTimer++
	if c.spawnTimer < parameter.CombatSpawnInterval {
		return
	}
	c.spawnTimer = 0
	if c.spawned >= len(c.queue) || c.ActiveEnemies() >= parameter.CombatMaxOnScreen {
		return
	}

	rng := c.deps.Rand
	var x, y float64
	switch rng.Intn(4) {
	case 0: // Top
		x, y = rng.Float64()*parameter.ScreenWidth, -parameter.CombatSpawnMargin
	case 1: // Right
		x, y = parameter.ScreenWidth+parameter.CombatSpawnMargin, rng.Float64()*parameter.ScreenHeight
	case 2: // Bottom
		x, y = rng.Float64()*parameter.ScreenWidth, parameter.ScreenHeight+parameter.CombatSpawnMargin
	default: // Left
		x, y = -parameter.CombatSpawnMargin, rng.Float64()*parameter.ScreenHeight
	}
	z := parameter.CombatSpawnZMin + rng.Float64()*parameter.CombatSpawnZSpan
	c.spawn(c.queue[c.spawned], x, y, z)
	c.spawned++
	c.statSpawned.Store(int64(c.spawned))
}

func (c *Combat) spawn(kind component.EnemyKind, x, y, z float64) *component.Enemy {
	e := component.NewEnemy(kind, x, y, z, rollFireDelay(c.deps.Rand))
	c.enemies = append(c.enemies, e)
	c.everSpawned = true
	c.log.Debug().Stringer("kind", kind).Float64("x", x).Float64("y", y).Float64("z", z).Msg("enemy spawned")
	return e
}

// checkVictory ends the wave once every queued enemy has spawned and none is still active
// Reinforcements do not hold the sector; survivors break off as the victory starts
func (c *Combat) checkVictory() {
	if c.spawned < len(c.queue) || !c.everSpawned || c.activeWave() > 0 {
		return
	}
	c.reinforcements = c.reinforcements[:0]
	for _, e := range c.enemies {
		if e.Active() {
			e.Explode(c.deps.Rand)
		}
	}
	c.setPhase(PhaseVictory)
	c.deps.Audio.PlaySFX(audio.SoundVictory)
}

// activeWave counts active enemies that came from the wave queue
func (c *Combat) activeWave() int {
	n := 0
	for _, e := range c.enemies {
		if e.Active() && !e.Reinforcement {
			n++
		}
	}
	return n
}

// ActiveEnemies counts enemies that are neither exploding nor destroyed
func (c *Combat) ActiveEnemies() int {
	n := 0
	for _, e := range c.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

// CombatView is a read-only snapshot for rendering; slices must not be modified
type CombatView struct {
	Phase          Phase
	PhaseTicks     int
	WorldX, WorldY float64
	Enemies        []*component.Enemy
	Lasers         []component.Laser
	Shots          []component.EnemyShot
	Crack          bool
	Remaining      int
	OverlayAlpha   float64
}

// View returns the current snapshot
func (c *Combat) View() CombatView {
	v := CombatView{
		Phase:      c.phase,
		PhaseTicks: c.phaseTicks,
		WorldX:     c.worldX,
		WorldY:     c.worldY,
		Enemies:    c.enemies,
		Lasers:     c.lasers,
		Shots:      c.shots,
		Crack:      c.crackTicks > 0,
		Remaining:  len(c.queue) - c.spawned + c.activeWave(),
	}
	if c.phase == PhaseVictory {
		v.OverlayAlpha = FadeAlpha(c.phaseTicks, parameter.CombatVictoryTicks)
	}
	return v
}
