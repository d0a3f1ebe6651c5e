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

// Ship is the storm player: a rotating, thrusting triangle that wraps around the arena
type Ship struct {
	X, Y         float64
	VX, VY       float64
	Angle        float64
	Thrusting    bool
	InvulnTicks  int
	FireCooldown int
}

// Invulnerable reports whether collisions are currently ignored
func (s *Ship) Invulnerable() bool {
	return s.InvulnTicks > 0
}

// Storm is the asteroid survival encounter
type Storm struct {
	deps Deps
	log  zerolog.Logger
	done latch
	cues CueList

	phase      Phase
	phaseTicks int

	totalTicks int
	timer      int

	ship      Ship
	bullets   []component.Projectile
	asteroids []component.Asteroid
	ufos      []component.UFO

	asteroidTimer int
	ufoTimer      int
	destroyed     int

	statAsteroids *atomic.Int64
	statUFOs      *atomic.Int64
	statTimer     *atomic.Int64
}

// NewStorm creates the asteroid storm mode
func NewStorm(deps Deps) *Storm {
	return &Storm{
		deps:          deps,
		log:           deps.logger(parameter.ModeAsteroidStorm),
		statAsteroids: deps.Status.Ints.Get("storm.asteroids"),
		statUFOs:      deps.Status.Ints.Get("storm.ufos"),
		statTimer:     deps.Status.Ints.Get("storm.timer"),
	}
}

// Enter rolls a new survival timer and seeds the field
func (s *Storm) Enter() {
	s.done.reset()
	s.cues.Clear()
	s.phase = PhaseAlert
	s.phaseTicks = 0

	seconds := parameter.StormTimerMinSeconds + s.deps.Rand.Float64()*parameter.StormTimerSpanSeconds
	s.totalTicks = int(seconds * parameter.TicksPerSecond)
	s.timer = s.totalTicks

	s.ship = Ship{X: parameter.ScreenCX, Y: parameter.ScreenCY}
	s.bullets = s.bullets[:0]
	s.asteroids = s.asteroids[:0]
	s.ufos = s.ufos[:0]
	s.asteroidTimer = 0
	s.ufoTimer = 0
	s.destroyed = 0

	count := parameter.StormInitialMin + s.deps.Rand.Intn(parameter.StormInitialSpan)
	for i := 0; i < count; i++ {
		s.spawnLarge()
	}

	s.deps.Audio.PlaySFX(audio.SoundAlert)
	s.cues.Schedule(parameter.StormAlertTicks, func() {
		s.deps.Audio.PlayMusic(audio.MusicStorm)
	})
	s.log.Info().Int("timer_ticks", s.totalTicks).Int("asteroids", count).Msg("asteroid storm started")
}

// Exit cancels pending cues and stops the music
func (s *Storm) Exit() {
	s.cues.Clear()
	s.deps.Audio.StopMusic()
}

// Update advances the storm by one tick
func (s *Storm) Update() {
	if s.done.fired {
		return
	}
	if !s.deps.State.IsPlayerAlive() {
		s.finish(parameter.ModeGameOver)
		return
	}

	s.cues.Advance()
	s.phaseTicks++

	switch s.phase {
	case PhaseAlert:
		if s.deps.Input.IsFirePressed() {
			s.cues.Clear()
			s.deps.Audio.PlayMusic(audio.MusicStorm)
			s.setPhase(PhaseActive)
		} else if s.phaseTicks >= parameter.StormAlertTicks {
			s.setPhase(PhaseActive)
		}
	case PhaseActive:
		s.handleInput()
		s.simulate()
		s.spawnAsteroids()
		s.spawnUFOs()
		if s.timer > 0 {
			s.timer--
		}
		if !s.deps.State.IsPlayerAlive() {
			s.finish(parameter.ModeGameOver)
			return
		}
		if s.timer <= 0 {
			s.setPhase(PhaseVictory)
			s.ship.InvulnTicks = parameter.StormVictoryTicks
			s.deps.Audio.PlaySFX(audio.SoundVictory)
		}
	case PhaseVictory:
		s.simulate()
		if s.phaseTicks >= parameter.StormVictoryTicks {
			s.deps.Sectors.CompleteSector()
			s.finish(parameter.ModeStarMap)
		}
	}

	s.statAsteroids.Store(int64(len(s.asteroids)))
	s.statUFOs.Store(int64(len(s.ufos)))
	s.statTimer.Store(int64(s.timer))
}

func (s *Storm) setPhase(p Phase) {
	s.log.Info().Stringer("from", s.phase).Stringer("to", p).Msg("phase change")
	s.phase = p
	s.phaseTicks = 0
}

func (s *Storm) finish(next string) {
	if !s.done.fire() {
		return
	}
	if next == parameter.ModeGameOver {
		s.phase = PhaseDefeat
	}
	s.log.Info().Str("next", next).Int("destroyed", s.destroyed).Msg("asteroid storm finished")
	s.deps.Switcher.SwitchToMode(next)
}

func (s *Storm) handleInput() {
	in := s.deps.Input
	sh := &s.ship
	if in.IsKeyDown(input.KeyLeft) {
		sh.Angle -= parameter.StormPlayerRotation
	}
	if in.IsKeyDown(input.KeyRight) {
		sh.Angle += parameter.StormPlayerRotation
	}
	sh.Thrusting = in.IsKeyDown(input.KeyUp)
	if sh.Thrusting {
		sh.VX += math.Cos(sh.Angle) * parameter.StormPlayerThrust
		sh.VY += math.Sin(sh.Angle) * parameter.StormPlayerThrust
		sh.VX, sh.VY = vmath.CapLength(sh.VX, sh.VY, parameter.StormPlayerMaxSpeed)
	}
	if in.IsKeyDown(input.KeyFire) {
		s.fire()
	}
}

func (s *Storm) fire() {
	if s.ship.FireCooldown > 0 || len(s.bullets) >= parameter.StormMaxBullets {
		return
	}
	s.bullets = append(s.bullets, component.Projectile{
		X:        s.ship.X,
		Y:        s.ship.Y,
		VX:       math.Cos(s.ship.Angle) * parameter.StormBulletSpeed,
		VY:       math.Sin(s.ship.Angle) * parameter.StormBulletSpeed,
		Size:     parameter.StormBulletSize,
		Lifetime: parameter.StormBulletLifetime,
	})
	s.ship.FireCooldown = parameter.StormFireRate
	s.deps.Audio.PlaySFX(audio.SoundLaser)
}

// simulate moves every body and resolves collisions; spawning is separate
func (s *Storm) simulate() {
	s.updateShip()
	s.updateBullets()
	s.updateAsteroids()
	s.updateUFOs()
	s.collideBulletsAsteroids()
	s.collideBulletsUFOs()
	s.collideShipAsteroids()
	if s.ship.FireCooldown > 0 {
		s.ship.FireCooldown--
	}
}

func (s *Storm) updateShip() {
	sh := &s.ship
	// The victory overlay keeps the ship shielded until the switch
	if sh.InvulnTicks > 0 && s.phase != PhaseVictory {
		sh.InvulnTicks--
	}
	sh.X = vmath.Wrap(sh.X+sh.VX, parameter.ScreenWidth)
	sh.Y = vmath.Wrap(sh.Y+sh.VY, parameter.ScreenHeight)
	sh.VX *= parameter.StormPlayerFriction
	sh.VY *= parameter.StormPlayerFriction
	sh.Angle = vmath.Wrap(sh.Angle, 2*math.Pi)
}

func (s *Storm) updateBullets() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		alive := b.Step()
		b.X = vmath.Wrap(b.X, parameter.ScreenWidth)
		b.Y = vmath.Wrap(b.Y, parameter.ScreenHeight)
		if alive {
			kept = append(kept, b)
		}
	}
	s.bullets = kept
}

func (s *Storm) updateAsteroids() {
	for i := range s.asteroids {
		a := &s.asteroids[i]
		a.X = vmath.WrapMargin(a.X+a.VX, parameter.ScreenWidth, a.Size)
		a.Y = vmath.WrapMargin(a.Y+a.VY, parameter.ScreenHeight, a.Size)
		a.Rotation += a.Spin
	}
}

func (s *Storm) updateUFOs() {
	rng := s.deps.Rand
	sh := &s.ship
	for i := range s.ufos {
		u := &s.ufos[i]

		u.RetargetTimer++
		if u.RetargetTimer > parameter.StormUFORetargetTicks {
			angle := math.Atan2(sh.Y-u.Y, sh.X-u.X) + rng.Signed(parameter.StormUFOAimNoise/2)
			speed := rng.Range(parameter.StormUFOCruiseMin, parameter.StormUFOCruiseMax)
			u.VX, u.VY = math.Cos(angle)*speed, math.Sin(angle)*speed
			u.RetargetTimer = 0
		}
		u.X = vmath.WrapMargin(u.X+u.VX, parameter.ScreenWidth, parameter.StormUFOSize)
		u.Y = vmath.WrapMargin(u.Y+u.VY, parameter.ScreenHeight, parameter.StormUFOSize)

		u.ShootTimer--
		if u.ShootTimer <= 0 {
			angle := math.Atan2(sh.Y-u.Y, sh.X-u.X)
			u.Bullets = append(u.Bullets, component.Projectile{
				X:        u.X,
				Y:        u.Y,
				VX:       math.Cos(angle) * parameter.StormUFOBulletSpeed,
				VY:       math.Sin(angle) * parameter.StormUFOBulletSpeed,
				Size:     parameter.StormUFOBulletSize,
				Lifetime: parameter.StormUFOBulletLife,
			})
			u.ShootTimer = rollUFOShot(rng)
			s.deps.Audio.PlaySFX(audio.SoundUFOShot)
		}

		kept := u.Bullets[:0]
		for _, b := range u.Bullets {
			if !b.Step() {
				continue
			}
			if s.phase == PhaseActive && !sh.Invulnerable() &&
				physics.CirclesOverlap(b.X, b.Y, b.Size, sh.X, sh.Y, parameter.StormPlayerSize) {
				s.damageShip(1)
				continue
			}
			kept = append(kept, b)
		}
		u.Bullets = kept
	}
}

func rollUFOShot(rng *vmath.FastRand) int {
	return parameter.StormUFOShootMin + rng.Intn(parameter.StormUFOShootSpan+1)
}

func (s *Storm) damageShip(n int) {
	s.deps.State.Damage(n)
	s.ship.InvulnTicks = parameter.StormInvulnTicks
	s.deps.Audio.PlaySFX(audio.SoundPlayerHit)
}

func (s *Storm) collideBulletsAsteroids() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		hit := -1
		for i := range s.asteroids {
			a := &s.asteroids[i]
			if physics.CirclesOverlap(b.X, b.Y, b.Size, a.X, a.Y, a.Size) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, b)
			continue
		}
		s.destroyAsteroid(hit)
	}
	s.bullets = kept
}

// destroyAsteroid scores, fragments and removes the asteroid at index i
func (s *Storm) destroyAsteroid(i int) {
	a := s.asteroids[i]
	s.asteroids = append(s.asteroids[:i], s.asteroids[i+1:]...)
	s.destroyed++
	s.deps.State.AddScore(parameter.StormAsteroidScore)
	s.deps.Audio.PlaySFX(audio.SoundAsteroidBreak)
	s.asteroids = Fragment(s.asteroids, a, s.deps.Rand)
}

// Fragment appends the children of a destroyed asteroid, ignoring the field cap
func Fragment(dst []component.Asteroid, parent component.Asteroid, rng *vmath.FastRand) []component.Asteroid {
	kind, ok := parent.Kind.Fragment()
	if !ok {
		return dst
	}
	spread, lo, hi := parameter.StormMediumSpread, parameter.StormMediumFragmentMin, parameter.StormMediumFragmentMax
	if kind == component.AsteroidSmall {
		spread, lo, hi = parameter.StormSmallSpread, parameter.StormSmallFragmentMin, parameter.StormSmallFragmentMax
	}
	n := parameter.StormFragmentMin + rng.Intn(parameter.StormFragmentSpan)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + rng.Signed(spread/2)
		speed := rng.Range(lo, hi)
		vx := parent.VX + math.Cos(angle)*speed + rng.Signed(parameter.StormFragmentJitter)
		vy := parent.VY + math.Sin(angle)*speed + rng.Signed(parameter.StormFragmentJitter)
		dst = append(dst, component.NewAsteroid(kind, parent.X, parent.Y, vx, vy, rng.Signed(0.05)))
	}
	return dst
}

func (s *Storm) collideBulletsUFOs() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		hit := false
		for i := range s.ufos {
			u := &s.ufos[i]
			if !physics.CirclesOverlap(b.X, b.Y, b.Size, u.X, u.Y, parameter.StormUFOSize) {
				continue
			}
			hit = true
			u.Health--
			if u.Health <= 0 {
				u.Destroyed = true
				s.deps.State.AddScore(parameter.StormUFOScore)
				s.deps.Audio.PlaySFX(audio.SoundExplosion)
				s.log.Debug().Float64("x", u.X).Float64("y", u.Y).Msg("ufo destroyed")
			}
			break
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	s.bullets = kept

	ufos := s.ufos[:0]
	for _, u := range s.ufos {
		if !u.Destroyed {
			ufos = append(ufos, u)
		}
	}
	s.ufos = ufos
}

// collideShipAsteroids applies at most one asteroid hit per tick
func (s *Storm) collideShipAsteroids() {
	sh := &s.ship
	if sh.Invulnerable() || s.phase != PhaseActive {
		return
	}
	for i := range s.asteroids {
		a := &s.asteroids[i]
		if !physics.CirclesOverlap(sh.X, sh.Y, parameter.StormPlayerSize, a.X, a.Y, a.Size) {
			continue
		}
		s.damageShip(a.Damage)
		angle := math.Atan2(sh.Y-a.Y, sh.X-a.X)
		sh.VX += math.Cos(angle) * parameter.StormKnockback
		sh.VY += math.Sin(angle) * parameter.StormKnockback
		return
	}
}

func (s *Storm) progress() float64 {
	if s.totalTicks <= 0 {
		return 1
	}
	return float64(s.totalTicks-s.timer) / float64(s.totalTicks)
}

func (s *Storm) spawnAsteroids() {
	s.asteroidTimer++
	interval := math.Max(parameter.StormSpawnFloor, parameter.StormSpawnBase-s.progress()*parameter.StormSpawnRamp)
	if float64(s.asteroidTimer) < interval || len(s.asteroids) >= parameter.StormMaxAsteroids {
		return
	}
	s.spawnLarge()
	s.asteroidTimer = 0
}

// edgePoint picks a random point just outside one of the four arena edges
func edgePoint(rng *vmath.FastRand, margin float64) (float64, float64) {
	switch rng.Intn(4) {
	case 0:
		return rng.Float64() * parameter.ScreenWidth, -margin
	case 1:
		return parameter.ScreenWidth + margin, rng.Float64() * parameter.ScreenHeight
	case 2:
		return rng.Float64() * parameter.ScreenWidth, parameter.ScreenHeight + margin
	}
	return -margin, rng.Float64() * parameter.ScreenHeight
}

func (s *Storm) spawnLarge() {
	rng := s.deps.Rand
	size := component.AsteroidLarge.Size()
	x, y := edgePoint(rng, size)

	speed := rng.Range(parameter.StormAsteroidSpeedMin, parameter.StormAsteroidSpeedMax)
	angle := rng.Float64() * 2 * math.Pi
	vx, vy := math.Cos(angle)*speed, math.Sin(angle)*speed
	// Headings pointing away from the arena are mirrored inward
	if vx*(parameter.ScreenCX-x)+vy*(parameter.ScreenCY-y) < 0 {
		vx, vy = -vx, -vy
	}

	a := component.NewAsteroid(component.AsteroidLarge, x, y, vx, vy, rng.Signed(0.05))
	a.Rotation = rng.Float64() * 2 * math.Pi
	s.asteroids = append(s.asteroids, a)
}

func (s *Storm) spawnUFOs() {
	s.ufoTimer++
	interval := math.Max(parameter.StormUFOSpawnFloor, parameter.StormUFOSpawnBase-s.progress()*parameter.StormUFOSpawnRamp)
	if float64(s.ufoTimer) < interval || len(s.ufos) >= parameter.StormMaxUFOs {
		return
	}
	s.ufoTimer = 0

	rng := s.deps.Rand
	x, y := edgePoint(rng, parameter.StormUFOSize)
	angle := math.Atan2(s.ship.Y-y, s.ship.X-x)
	speed := rng.Range(parameter.StormUFOSpeedMin, parameter.StormUFOSpeedMax)
	s.ufos = append(s.ufos, component.UFO{
		X:          x,
		Y:          y,
		VX:         math.Cos(angle) * speed,
		VY:         math.Sin(angle) * speed,
		Health:     parameter.StormUFOHealth,
		ShootTimer: rollUFOShot(rng),
	})
	s.deps.Audio.PlaySFX(audio.SoundAlert)
	s.log.Debug().Float64("x", x).Float64("y", y).Msg("ufo spawned")
}

// StormView is a read-only snapshot for rendering
type StormView struct {
	Phase        Phase
	PhaseTicks   int
	Ship         Ship
	Bullets      []component.Projectile
	Asteroids    []component.Asteroid
	UFOs         []component.UFO
	TimerTicks   int
	OverlayAlpha float64
}

// View returns the current snapshot
func (s *Storm) View() StormView {
	v := StormView{
		Phase:      s.phase,
		PhaseTicks: s.phaseTicks,
		Ship:       s.ship,
		Bullets:    s.bullets,
		Asteroids:  s.asteroids,
		UFOs:       s.ufos,
		TimerTicks: s.timer,
	}
	if s.phase == PhaseVictory {
		v.OverlayAlpha = FadeAlpha(s.phaseTicks, parameter.StormVictoryTicks)
	}
	return v
}
