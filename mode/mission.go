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

// FailReason names what ended a mission
type FailReason uint8

const (
	FailNone FailReason = iota
	FailObstacle
	FailBarrier
	FailWall
	FailExitLost
	FailDestroyed
)

func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailObstacle:
		return "obstacle"
	case FailBarrier:
		return "barrier"
	case FailWall:
		return "wall"
	case FailExitLost:
		return "exit_lost"
	case FailDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// formation is a barrier arrangement guarding the exit
type formation uint8

const (
	formationWall formation = iota
	formationFlanks
	formationScattered
	formationCount
)

// Mission is the vertical corridor run on an enemy planet
type Mission struct {
	deps Deps
	log  zerolog.Logger
	done latch
	cues CueList

	phase      Phase
	phaseTicks int

	timer         int
	exitThreshold int
	failed        FailReason
	localScore    int

	corridor *Corridor
	space    *physics.Space
	band     []component.Segment

	playerX, playerY float64
	playerBody       *physics.Body
	lastFire         int

	obstacles []component.Obstacle
	barriers  []*component.Barrier
	shots     []*component.CorridorShot
	missiles  []*component.RearMissile
	warnings  []component.Warning
	exit      component.ExitPoint

	obstacleTimer   int
	barrierTimer    int
	missileTimer    int
	missileInterval int

	statTimer    *atomic.Int64
	statBarriers *atomic.Int64
	statBodies   *atomic.Int64
}

// NewMission creates the enemy planet mission mode
func NewMission(deps Deps) *Mission {
	return &Mission{
		deps:         deps,
		log:          deps.logger(parameter.ModeEnemyPlanet),
		corridor:     NewCorridor(deps.Rand),
		space:        physics.NewSpace(parameter.ScreenWidth, parameter.ScreenHeight),
		statTimer:    deps.Status.Ints.Get("mission.timer"),
		statBarriers: deps.Status.Ints.Get("mission.barriers"),
		statBodies:   deps.Status.Ints.Get("mission.bodies"),
	}
}

// Enter regenerates the corridor and rolls a new exit threshold
func (m *Mission) Enter() {
	m.done.reset()
	m.cues.Clear()
	m.phase = PhaseIntro
	m.phaseTicks = 0

	m.timer = 0
	m.exitThreshold = parameter.MissionExitMinTicks + m.deps.Rand.Intn(parameter.MissionExitSpanTicks+1)
	m.failed = FailNone
	m.localScore = 0

	m.corridor.Reset()
	m.space.Clear()

	m.playerX, m.playerY = parameter.MissionPlayerX, parameter.MissionPlayerY
	m.playerBody = m.space.Add(nil, m.playerX, m.playerY, parameter.MissionPlayerW, parameter.MissionPlayerH, physics.TagPlayer)
	m.lastFire = -parameter.MissionFireRate

	m.obstacles = m.obstacles[:0]
	m.barriers = m.barriers[:0]
	m.shots = m.shots[:0]
	m.missiles = m.missiles[:0]
	m.warnings = m.warnings[:0]
	m.exit = component.ExitPoint{X: parameter.ScreenCX, Size: parameter.MissionExitSize}

	m.obstacleTimer = 0
	m.barrierTimer = 0
	m.missileTimer = 0
	m.missileInterval = m.rollMissileInterval()

	m.deps.Audio.PlayMusic(audio.MusicMission)
	m.log.Info().Int("exit_threshold", m.exitThreshold).Msg("planet mission started")
}

// Exit cancels pending missiles and stops the music
func (m *Mission) Exit() {
	m.cues.Clear()
	m.deps.Audio.StopMusic()
}

func (m *Mission) rollMissileInterval() int {
	return parameter.MissionMissileMinTicks + m.deps.Rand.Intn(parameter.MissionMissileSpan)
}

// Update advances the mission by one tick
func (m *Mission) Update() {
	if m.done.fired {
		return
	}
	// Failures raised last tick resolve before anything else moves
	if m.failed != FailNone {
		m.finish(parameter.ModeGameOver)
		return
	}
	if !m.deps.State.IsPlayerAlive() {
		m.failed = FailDestroyed
		m.finish(parameter.ModeGameOver)
		return
	}

	m.cues.Advance()
	m.phaseTicks++

	switch m.phase {
	case PhaseIntro:
		if m.deps.Input.IsFirePressed() || m.phaseTicks >= parameter.MissionIntroTicks {
			m.setPhase(PhaseActive)
		}
	case PhaseActive:
		m.step()
	case PhaseVictory:
		if m.phaseTicks >= parameter.MissionVictoryTicks {
			m.deps.Sectors.CompleteSector()
			m.finish(parameter.ModeStarMap)
		}
	}

	m.statTimer.Store(int64(m.timer))
	m.statBarriers.Store(int64(len(m.barriers)))
	m.statBodies.Store(int64(m.space.Len()))
}

func (m *Mission) setPhase(p Phase) {
	m.log.Info().Stringer("from", m.phase).Stringer("to", p).Msg("phase change")
	m.phase = p
	m.phaseTicks = 0
}

func (m *Mission) finish(next string) {
	if !m.done.fire() {
		return
	}
	if next == parameter.ModeGameOver {
		m.phase = PhaseDefeat
	}
	m.log.Info().Str("next", next).Stringer("reason", m.failed).Int("local_score", m.localScore).Msg("planet mission finished")
	m.deps.Switcher.SwitchToMode(next)
}

func (m *Mission) fail(r FailReason) {
	if m.failed != FailNone {
		return
	}
	m.failed = r
	m.deps.Audio.PlaySFX(audio.SoundPlayerHit)
	m.log.Debug().Stringer("reason", r).Float64("x", m.playerX).Float64("y", m.playerY).Msg("mission failed")
}

// step runs one tick of active play
func (m *Mission) step() {
	m.timer++
	m.corridor.Scroll(parameter.MissionScrollSpeed)

	if !m.exit.Spawned && m.timer >= m.exitThreshold {
		m.spawnExit()
	}
	if m.exit.Active {
		m.updateExit()
	}

	m.updateObstacles()
	m.updateShots()
	m.updateBarriers()
	m.updateMissiles()
	m.updateWarnings()

	if m.exit.Active && !m.exit.Reached &&
		vmath.Dist(m.playerX, m.playerY, m.exit.X, m.exit.Y) < m.exit.Size/2+parameter.MissionPlayerW/2 {
		m.exit.Reached = true
		m.setPhase(PhaseVictory)
		m.deps.Audio.PlaySFX(audio.SoundVictory)
		return
	}

	m.checkCollisions()
	m.handleInput()

	if m.exit.Active && m.exit.Y > parameter.MissionExitLostY {
		m.fail(FailExitLost)
	}
}

func (m *Mission) handleInput() {
	if m.failed != FailNone {
		return
	}
	in := m.deps.Input
	if in.IsKeyDown(input.KeyLeft) {
		m.playerX = math.Max(parameter.MissionPlayerMinX, m.playerX-parameter.MissionPlayerSpeed)
	}
	if in.IsKeyDown(input.KeyRight) {
		m.playerX = math.Min(parameter.MissionPlayerMaxX, m.playerX+parameter.MissionPlayerSpeed)
	}
	if in.IsKeyDown(input.KeyUp) {
		m.playerY = math.Max(parameter.MissionPlayerMinY, m.playerY-parameter.MissionPlayerSpeed)
	}
	if in.IsKeyDown(input.KeyDown) {
		m.playerY = math.Min(parameter.MissionPlayerMaxY, m.playerY+parameter.MissionPlayerSpeed)
	}
	m.space.Move(m.playerBody, m.playerX, m.playerY)

	if in.IsKeyDown(input.KeyFire) && m.timer-m.lastFire >= parameter.MissionFireRate {
		m.fire()
	}
}

func (m *Mission) fire() {
	s := &component.CorridorShot{
		X:     m.playerX,
		Y:     m.playerY - parameter.MissionShotLift,
		W:     parameter.MissionShotW,
		H:     parameter.MissionShotH,
		Speed: parameter.MissionShotSpeed,
	}
	s.Body = m.space.Add(s, s.X, s.Y, s.W, s.H, physics.TagShot)
	m.shots = append(m.shots, s)
	m.lastFire = m.timer
	m.deps.Audio.PlaySFX(audio.SoundLaser)
}

// ramp is difficulty progress over the first two minutes, capped at 1
func (m *Mission) ramp() float64 {
	return math.Min(float64(m.timer)/(parameter.MissionRampSeconds*parameter.TicksPerSecond), 1)
}

func (m *Mission) spawnExit() {
	m.band = m.corridor.Band(m.band[:0], parameter.MissionExitBandTop, parameter.MissionExitBandBot)
	if len(m.band) > 0 {
		seg := m.band[m.deps.Rand.Intn(len(m.band))]
		m.exit.X, m.exit.Y = seg.Center(), seg.Y
	} else {
		m.exit.X, m.exit.Y = parameter.ScreenCX, -100
	}
	m.exit.Spawned = true
	m.exit.Active = true
	m.exit.FlashPhase = 0
	m.deps.Audio.PlaySFX(audio.SoundWarp)
	m.log.Info().Float64("x", m.exit.X).Float64("y", m.exit.Y).Int("tick", m.timer).Msg("exit point spawned")
}

func (m *Mission) updateExit() {
	switch {
	case m.exit.Y < parameter.MissionExitSlowY:
		m.exit.Y += parameter.MissionScrollSpeed
		m.exit.FlashPhase += 0.3
	case m.exit.Y < parameter.MissionExitHoldY:
		m.exit.Y += parameter.MissionScrollSpeed / 2
		m.exit.FlashPhase += 0.5
	default:
		m.exit.FlashPhase += 0.5
	}
	if seg, ok := m.corridor.Near(m.exit.Y, parameter.MissionExitTrackBand); ok {
		m.exit.X = seg.Center()
	} else {
		m.exit.X = parameter.ScreenCX
	}
}

func (m *Mission) updateObstacles() {
	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		o.Y += parameter.MissionScrollSpeed
		o.ColorPhase += 0.2
		if o.Y < parameter.MissionDiscardY {
			kept = append(kept, o)
		}
	}
	m.obstacles = kept

	m.obstacleTimer++
	interval := parameter.MissionObstacleMaxGap - m.ramp()*(parameter.MissionObstacleMaxGap-parameter.MissionObstacleMinGap)
	if float64(m.obstacleTimer) > interval {
		m.spawnObstacle()
		m.obstacleTimer = 0
	}
}

// spawnSegment picks a random segment near the top of the screen
func (m *Mission) spawnSegment() (component.Segment, bool) {
	m.band = m.corridor.Band(m.band[:0], parameter.MissionSpawnBandTop, parameter.MissionSpawnBandBottom)
	if len(m.band) == 0 {
		return component.Segment{}, false
	}
	return m.band[m.deps.Rand.Intn(len(m.band))], true
}

func (m *Mission) spawnObstacle() {
	seg, ok := m.spawnSegment()
	if !ok {
		return
	}
	if m.exit.Active && math.Abs(m.exit.Y-seg.Y) < parameter.MissionExitQuietDistance {
		return
	}
	lo, hi := seg.LeftWall+parameter.MissionSpawnMargin, seg.RightWall-parameter.MissionSpawnMargin
	if hi <= lo {
		return
	}
	rng := m.deps.Rand
	m.obstacles = append(m.obstacles, component.Obstacle{
		X:          rng.Range(lo, hi),
		Y:          parameter.MissionSpawnY,
		Size:       parameter.MissionObstacleSize,
		Shape:      component.ObstacleShape(rng.Intn(component.ShapeCount)),
		ColorPhase: rng.Float64() * 2 * math.Pi,
	})
}

func (m *Mission) updateShots() {
	kept := m.shots[:0]
	for _, s := range m.shots {
		s.Y -= s.Speed
		m.space.Move(s.Body, s.X, s.Y)
		if s.Y <= parameter.MissionShotMinY {
			m.space.Remove(s.Body)
			continue
		}
		if hit := m.space.FirstHit(s.Body, physics.TagBarrier); hit != nil {
			m.destroyBarrier(hit.Owner.(*component.Barrier))
			m.space.Remove(s.Body)
			continue
		}
		if m.shotBlocked(s) {
			m.space.Remove(s.Body)
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(m.shots); i++ {
		m.shots[i] = nil
	}
	m.shots = kept
}

// shotBlocked reports whether an obstacle absorbs the shot
func (m *Mission) shotBlocked(s *component.CorridorShot) bool {
	for _, o := range m.obstacles {
		if physics.CirclesOverlap(s.X, s.Y, s.W/2, o.X, o.Y, o.Size/2) {
			return true
		}
	}
	return false
}

func (m *Mission) destroyBarrier(b *component.Barrier) {
	m.space.Remove(b.Body)
	for i, other := range m.barriers {
		if other == b {
			m.barriers = append(m.barriers[:i], m.barriers[i+1:]...)
			break
		}
	}
	m.localScore += parameter.MissionBarrierScore
	m.deps.State.AddScore(parameter.MissionBarrierScore)
	m.deps.Audio.PlaySFX(audio.SoundExplosion)
}

func (m *Mission) updateBarriers() {
	kept := m.barriers[:0]
	for _, b := range m.barriers {
		b.Y += parameter.MissionScrollSpeed
		b.FlashPhase += 0.3
		if b.Y >= parameter.MissionDiscardY {
			m.space.Remove(b.Body)
			continue
		}
		m.space.Move(b.Body, b.X, b.Y)
		kept = append(kept, b)
	}
	for i := len(kept); i < len(m.barriers); i++ {
		m.barriers[i] = nil
	}
	m.barriers = kept

	m.barrierTimer++
	interval := parameter.MissionBarrierMaxGap - m.ramp()*(parameter.MissionBarrierMaxGap-parameter.MissionBarrierMinGap)
	if float64(m.barrierTimer) > interval {
		m.spawnBarriers()
		m.barrierTimer = 0
	}
}

func (m *Mission) addBarrier(x, y, w, h float64) {
	b := &component.Barrier{X: x, Y: y, W: w, H: h, FlashPhase: m.deps.Rand.Float64() * 2 * math.Pi}
	b.Body = m.space.Add(b, x, y, w, h, physics.TagBarrier)
	m.barriers = append(m.barriers, b)
}

// blocked reports whether a barrier at (x, y) would crowd an obstacle
func blocked(obstacles []component.Obstacle, x, y, w, h, padX, padY float64) bool {
	for _, o := range obstacles {
		if math.Abs(o.X-x) < o.Size/2+w/2+padX && math.Abs(o.Y-y) < o.Size/2+h/2+padY {
			return true
		}
	}
	return false
}

func (m *Mission) spawnBarriers() {
	seg, ok := m.spawnSegment()
	if !ok {
		return
	}
	if m.exit.Active && math.Abs(m.exit.Y-seg.Y) < parameter.MissionFormationDistance {
		m.spawnFormation(seg, formation(m.deps.Rand.Intn(int(formationCount))))
		return
	}
	m.spawnRegularBarrier(seg)
}

func (m *Mission) spawnRegularBarrier(seg component.Segment) {
	lo, hi := seg.LeftWall+parameter.MissionSpawnMargin, seg.RightWall-parameter.MissionSpawnMargin
	if hi <= lo {
		return
	}
	// Obstacles spawn on the same row, so crowding is judged where the barrier lands
	y := parameter.MissionSpawnY
	var near []component.Obstacle
	for _, o := range m.obstacles {
		if math.Abs(o.Y-y) < parameter.MissionBarrierObstacleBand {
			near = append(near, o)
		}
	}
	for i := 0; i < parameter.MissionBarrierAttempts; i++ {
		x := m.deps.Rand.Range(lo, hi)
		if blocked(near, x, y, parameter.MissionBarrierW, parameter.MissionBarrierH, parameter.MissionRegularPadX, parameter.MissionRegularPadY) {
			continue
		}
		m.addBarrier(x, y, parameter.MissionBarrierW, parameter.MissionBarrierH)
		return
	}
	m.log.Debug().Float64("segment_y", seg.Y).Msg("barrier skipped, no clear spot")
}

// spawnFormation places a defensive arrangement in front of the exit
func (m *Mission) spawnFormation(seg component.Segment, f formation) {
	margin := parameter.MissionFormationMargin
	width := seg.Width() - 2*margin
	if width < parameter.MissionFormationMinWidth {
		return
	}
	var near []component.Obstacle
	for _, o := range m.obstacles {
		if o.Y > parameter.MissionObstacleNearTop && o.Y < parameter.MissionObstacleNearBottom {
			near = append(near, o)
		}
	}
	lo, hi := seg.LeftWall+margin, seg.RightWall-margin
	rng := m.deps.Rand
	y := parameter.MissionSpawnY
	padX, padY := parameter.MissionFormationPadX, parameter.MissionFormationPadY

	switch f {
	case formationWall:
		count := int(width / parameter.MissionWallSpacing)
		for i := 0; i < count; i++ {
			base := lo + float64(i)*parameter.MissionWallSpacing + rng.Float64()*parameter.MissionWallJitter
			for _, off := range [...]float64{0, -25, 25, -50, 50} {
				x := base + off
				if x < lo || x > hi {
					continue
				}
				if blocked(near, x, y, parameter.MissionWallW, parameter.MissionWallH, padX, padY) {
					continue
				}
				m.addBarrier(x, y, parameter.MissionWallW, parameter.MissionWallH)
				break
			}
		}
	case formationFlanks:
		for _, x := range [...]float64{lo + rng.Float64()*parameter.MissionFlankJitter, hi - rng.Float64()*parameter.MissionFlankJitter} {
			if !blocked(near, x, y, parameter.MissionFlankW, parameter.MissionFlankH, padX, padY) {
				m.addBarrier(x, y, parameter.MissionFlankW, parameter.MissionFlankH)
			}
		}
	case formationScattered:
		count := parameter.MissionScatterMin + rng.Intn(parameter.MissionScatterSpan)
		for i := 0; i < count; i++ {
			sy := y - float64(i)*parameter.MissionScatterStagger
			for a := 0; a < parameter.MissionScatterAttempts; a++ {
				x := lo + rng.Float64()*width
				if blocked(near, x, sy, parameter.MissionBarrierW, parameter.MissionBarrierH, padX, padY) {
					continue
				}
				m.addBarrier(x, sy, parameter.MissionBarrierW, parameter.MissionBarrierH)
				break
			}
		}
	}
	m.log.Debug().Uint8("formation", uint8(f)).Float64("segment_y", seg.Y).Msg("exit formation spawned")
}

func (m *Mission) updateMissiles() {
	m.missileTimer++
	if m.missileTimer >= m.missileInterval {
		m.warnMissile()
		m.missileTimer = 0
		m.missileInterval = m.rollMissileInterval()
	}

	kept := m.missiles[:0]
	for _, ms := range m.missiles {
		ms.Y -= parameter.MissionMissileSpeed
		ms.ColorPhase += 0.2
		m.space.Move(ms.Body, ms.X, ms.Y)

		if m.space.FirstHit(ms.Body, physics.TagPlayer) != nil {
			m.space.Remove(ms.Body)
			m.deps.State.Damage(1)
			m.deps.Audio.PlaySFX(audio.SoundPlayerHit)
			if !m.deps.State.IsPlayerAlive() {
				m.fail(FailDestroyed)
			}
			continue
		}
		if hit := m.space.FirstHit(ms.Body, physics.TagShot); hit != nil {
			m.removeShot(hit.Owner.(*component.CorridorShot))
			m.space.Remove(ms.Body)
			m.localScore += parameter.MissionMissileScore
			m.deps.State.AddScore(parameter.MissionMissileScore)
			m.deps.Audio.PlaySFX(audio.SoundExplosion)
			continue
		}
		if ms.Y < parameter.MissionMissileMinY {
			m.space.Remove(ms.Body)
			continue
		}
		kept = append(kept, ms)
	}
	for i := len(kept); i < len(m.missiles); i++ {
		m.missiles[i] = nil
	}
	m.missiles = kept
}

func (m *Mission) removeShot(s *component.CorridorShot) {
	m.space.Remove(s.Body)
	for i, other := range m.shots {
		if other == s {
			m.shots = append(m.shots[:i], m.shots[i+1:]...)
			return
		}
	}
}

// warnMissile shows a warning near the bottom and queues the missile behind it
func (m *Mission) warnMissile() {
	rng := m.deps.Rand
	x := parameter.MissionMissileFallbackX + rng.Float64()*parameter.MissionMissileFallbackW
	m.band = m.corridor.Band(m.band[:0], parameter.MissionMissileBandTop, parameter.MissionMissileBandBot)
	if len(m.band) > 0 {
		seg := m.band[0]
		lo, hi := seg.LeftWall+parameter.MissionMissileMargin, seg.RightWall-parameter.MissionMissileMargin
		x = lo + rng.Float64()*(hi-lo)
	}

	m.warnings = append(m.warnings, component.Warning{X: x, Y: parameter.MissionWarningY, Life: parameter.MissionWarningTicks})
	m.deps.Audio.PlaySFX(audio.SoundMissileWarning)
	m.cues.Schedule(parameter.MissionWarningTicks, func() {
		if m.phase != PhaseActive {
			return
		}
		ms := &component.RearMissile{
			X:          x,
			Y:          parameter.MissionMissileStartY,
			W:          parameter.MissionMissileW,
			H:          parameter.MissionMissileH,
			ColorPhase: rng.Float64() * 2 * math.Pi,
		}
		ms.Body = m.space.Add(ms, ms.X, ms.Y, ms.W, ms.H, physics.TagMissile)
		m.missiles = append(m.missiles, ms)
	})
}

func (m *Mission) updateWarnings() {
	kept := m.warnings[:0]
	for _, w := range m.warnings {
		w.Life--
		w.FlashPhase += 0.3
		if w.Life > 0 {
			kept = append(kept, w)
		}
	}
	m.warnings = kept
}

// checkCollisions flags lethal contact; the switch happens next tick
func (m *Mission) checkCollisions() {
	for _, o := range m.obstacles {
		if physics.CirclesOverlap(m.playerX, m.playerY, parameter.MissionPlayerW/2, o.X, o.Y, o.Size/2) {
			m.fail(FailObstacle)
			return
		}
	}

	player := physics.RectAround(m.playerX, m.playerY, parameter.MissionPlayerW, parameter.MissionPlayerH).Scaled(parameter.MissionPlayerHitShrink)
	for _, b := range m.barriers {
		if player.Overlaps(physics.RectAround(b.X, b.Y, b.W, b.H).Scaled(parameter.MissionBarrierHitShrink)) {
			m.fail(FailBarrier)
			return
		}
	}

	if seg, ok := m.corridor.At(m.playerY); ok {
		half := parameter.MissionPlayerW / 2
		if m.playerX-half < seg.LeftWall || m.playerX+half > seg.RightWall {
			m.fail(FailWall)
		}
	}
}

// MissionView is a read-only snapshot for rendering
type MissionView struct {
	Phase            Phase
	PhaseTicks       int
	Timer            int
	PlayerX, PlayerY float64
	Segments         []component.Segment
	Obstacles        []component.Obstacle
	Barriers         []*component.Barrier
	Shots            []*component.CorridorShot
	Missiles         []*component.RearMissile
	Warnings         []component.Warning
	Exit             component.ExitPoint
	LocalScore       int
	Failed           FailReason
	OverlayAlpha     float64
}

// View returns the current snapshot
func (m *Mission) View() MissionView {
	v := MissionView{
		Phase:      m.phase,
		PhaseTicks: m.phaseTicks,
		Timer:      m.timer,
		PlayerX:    m.playerX,
		PlayerY:    m.playerY,
		Segments:   m.corridor.Segments,
		Obstacles:  m.obstacles,
		Barriers:   m.barriers,
		Shots:      m.shots,
		Missiles:   m.missiles,
		Warnings:   m.warnings,
		Exit:       m.exit,
		LocalScore: m.localScore,
		Failed:     m.failed,
	}
	if m.phase == PhaseVictory {
		v.OverlayAlpha = FadeAlpha(m.phaseTicks, parameter.MissionVictoryTicks)
	}
	return v
}
