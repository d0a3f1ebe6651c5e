package mode

import (
	"math"
	"testing"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/vmath"
)

func newActiveStorm(t *testing.T, seed uint64) (*Storm, *harness) {
	t.Helper()
	h := newHarness(seed)
	s := NewStorm(h.deps)
	s.Enter()
	h.input.tap(input.KeyFire)
	h.tick(s)
	if s.phase != PhaseActive {
		t.Fatalf("Expected active after alert skip, got %v", s.phase)
	}
	return s, h
}

func TestFragmentCounts(t *testing.T) {
	rng := vmath.NewFastRand(11)
	for i := 0; i < 200; i++ {
		large := component.NewAsteroid(component.AsteroidLarge, 120, 80, 0.5, -0.5, 0)
		out := Fragment(nil, large, rng)
		if len(out) < 2 || len(out) > 3 {
			t.Fatalf("Expected 2 or 3 fragments, got %d", len(out))
		}
		for _, f := range out {
			if f.Kind != component.AsteroidMedium {
				t.Errorf("Expected medium fragment, got %v", f.Kind)
			}
			if f.X != 120 || f.Y != 80 {
				t.Errorf("Expected fragment at parent position, got (%v, %v)", f.X, f.Y)
			}
		}

		medium := component.NewAsteroid(component.AsteroidMedium, 0, 0, 0, 0, 0)
		for _, f := range Fragment(nil, medium, rng) {
			if f.Kind != component.AsteroidSmall {
				t.Errorf("Expected small fragment, got %v", f.Kind)
			}
		}

		small := component.NewAsteroid(component.AsteroidSmall, 0, 0, 0, 0, 0)
		if n := len(Fragment(nil, small, rng)); n != 0 {
			t.Errorf("Expected no fragments from small, got %d", n)
		}
	}
}

func TestFragmentIgnoresCap(t *testing.T) {
	s, _ := newActiveStorm(t, 12)
	s.asteroids = s.asteroids[:0]
	for i := 0; i < parameter.StormMaxAsteroids; i++ {
		s.asteroids = append(s.asteroids, component.NewAsteroid(component.AsteroidLarge, float64(i*40), 0, 0, 0, 0))
	}
	n := len(s.asteroids)
	s.destroyAsteroid(0)
	got := len(s.asteroids)
	if got != n-1+2 && got != n-1+3 {
		t.Errorf("Expected %d or %d asteroids, got %d", n+1, n+2, got)
	}
}

func TestStormBulletLifetime(t *testing.T) {
	s, h := newActiveStorm(t, 13)
	s.asteroids = s.asteroids[:0]
	s.ufos = s.ufos[:0]
	h.input.hold(input.KeyFire, 1)
	h.tick(s)
	h.input.release(input.KeyFire)
	if len(s.bullets) != 1 {
		t.Fatalf("Expected one bullet, got %d", len(s.bullets))
	}
	// The bullet already moved once on the tick it was fired
	h.ticks(s, parameter.StormBulletLifetime-2)
	if len(s.bullets) != 1 {
		t.Fatalf("Expected bullet alive before its lifetime ends, got %d", len(s.bullets))
	}
	h.tick(s)
	if len(s.bullets) != 0 {
		t.Errorf("Expected bullet removed after %d ticks, got %d", parameter.StormBulletLifetime, len(s.bullets))
	}
}

func TestStormBulletCap(t *testing.T) {
	s, h := newActiveStorm(t, 14)
	s.asteroids = s.asteroids[:0]
	h.input.hold(input.KeyFire, 1)
	h.ticks(s, parameter.StormFireRate*4)
	if len(s.bullets) > parameter.StormMaxBullets {
		t.Errorf("Expected at most %d bullets, got %d", parameter.StormMaxBullets, len(s.bullets))
	}
}

func TestStormShipWraps(t *testing.T) {
	s, h := newActiveStorm(t, 15)
	s.asteroids = s.asteroids[:0]
	s.ship.X, s.ship.VX = parameter.ScreenWidth, 1
	s.ship.Y, s.ship.VY = 0, -1
	h.tick(s)
	if s.ship.X != 1 {
		t.Errorf("Expected x to wrap to 1, got %v", s.ship.X)
	}
	if s.ship.Y != parameter.ScreenHeight-1 {
		t.Errorf("Expected y to wrap to %v, got %v", parameter.ScreenHeight-1, s.ship.Y)
	}
}

func TestStormThrustCapsSpeed(t *testing.T) {
	s, h := newActiveStorm(t, 16)
	s.asteroids = s.asteroids[:0]
	h.input.hold(input.KeyUp, 1)
	for i := 0; i < 200; i++ {
		h.tick(s)
		if v := vmath.Length(s.ship.VX, s.ship.VY); v > parameter.StormPlayerMaxSpeed+1e-9 {
			t.Fatalf("Speed %v exceeds cap at tick %d", v, i)
		}
	}
}

func TestStormDefeatScenario(t *testing.T) {
	s, h := newActiveStorm(t, 17)
	s.ufos = s.ufos[:0]
	s.asteroids = append(s.asteroids[:0], component.NewAsteroid(component.AsteroidLarge, s.ship.X, s.ship.Y, 0, 0, 0))
	h.state.SetHealth(1)

	h.tick(s)
	if h.state.Health() != 0 || h.state.IsPlayerAlive() {
		t.Fatalf("Expected dead player, health %d", h.state.Health())
	}
	h.ticks(s, 10)
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeGameOver {
		t.Errorf("Expected one switch to gameOver, got %v", h.switcher.switches)
	}
}

func TestStormSingleCollisionPerTick(t *testing.T) {
	s, h := newActiveStorm(t, 18)
	s.ufos = s.ufos[:0]
	s.asteroids = append(s.asteroids[:0],
		component.NewAsteroid(component.AsteroidSmall, s.ship.X, s.ship.Y, 0, 0, 0),
		component.NewAsteroid(component.AsteroidSmall, s.ship.X+1, s.ship.Y, 0, 0, 0),
	)
	h.tick(s)
	if h.state.Health() != 6 {
		t.Errorf("Expected one point of damage, health %d", h.state.Health())
	}
	if !s.ship.Invulnerable() {
		t.Error("Expected invulnerability after the hit")
	}
	h.tick(s)
	if h.state.Health() != 6 {
		t.Errorf("Expected invulnerability to block damage, health %d", h.state.Health())
	}
}

func TestStormVictory(t *testing.T) {
	s, h := newActiveStorm(t, 19)
	s.asteroids = s.asteroids[:0]
	s.timer = 1
	h.tick(s)
	if s.phase != PhaseVictory {
		t.Fatalf("Expected victory when the timer runs out, got %v", s.phase)
	}
	h.ticks(s, parameter.StormVictoryTicks+30)
	if h.sectors.completed != 1 {
		t.Errorf("Expected CompleteSector once, got %d", h.sectors.completed)
	}
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeStarMap {
		t.Errorf("Expected one switch to starMap, got %v", h.switcher.switches)
	}
}

func TestStormEnterResets(t *testing.T) {
	s, h := newActiveStorm(t, 20)
	h.ticks(s, 50)
	s.Enter()
	if s.phase != PhaseAlert || s.phaseTicks != 0 {
		t.Errorf("Expected alert phase, got %v at %d", s.phase, s.phaseTicks)
	}
	if len(s.bullets) != 0 || len(s.ufos) != 0 {
		t.Errorf("Expected no bullets or ufos, got %d and %d", len(s.bullets), len(s.ufos))
	}
	n := len(s.asteroids)
	if n < parameter.StormInitialMin || n >= parameter.StormInitialMin+parameter.StormInitialSpan {
		t.Errorf("Expected %d-%d initial asteroids, got %d", parameter.StormInitialMin, parameter.StormInitialMin+parameter.StormInitialSpan-1, n)
	}
	for _, a := range s.asteroids {
		if a.Kind != component.AsteroidLarge {
			t.Errorf("Expected only large asteroids at entry, got %v", a.Kind)
		}
	}
	minTicks := parameter.StormTimerMinSeconds * parameter.TicksPerSecond
	maxTicks := (parameter.StormTimerMinSeconds + parameter.StormTimerSpanSeconds) * parameter.TicksPerSecond
	if s.timer < minTicks || s.timer > maxTicks {
		t.Errorf("Expected timer in [%d,%d], got %d", minTicks, maxTicks, s.timer)
	}
	if s.ship.X != parameter.ScreenCX || s.ship.Y != parameter.ScreenCY || s.ship.Angle != 0 {
		t.Errorf("Expected ship reset to centre, got %+v", s.ship)
	}
}

// spawnDelay counts spawner calls until the population grows
func spawnDelay(spawn func(), count func() int) int {
	before := count()
	for n := 1; n <= 10000; n++ {
		spawn()
		if count() > before {
			return n
		}
	}
	return -1
}

func TestStormAsteroidSpawnRamp(t *testing.T) {
	s, _ := newActiveStorm(t, 19)
	count := func() int { return len(s.asteroids) }

	s.asteroids = s.asteroids[:0]
	s.asteroidTimer = 0
	s.timer = s.totalTicks
	if got := spawnDelay(s.spawnAsteroids, count); got != int(parameter.StormSpawnBase) {
		t.Errorf("Expected first spawn after %v ticks, got %d", parameter.StormSpawnBase, got)
	}

	s.asteroidTimer = 0
	s.timer = s.totalTicks / 2
	want := int(math.Ceil(parameter.StormSpawnBase - s.progress()*parameter.StormSpawnRamp))
	if got := spawnDelay(s.spawnAsteroids, count); got != want {
		t.Errorf("Expected mid-storm spawn after %d ticks, got %d", want, got)
	}

	s.asteroidTimer = 0
	s.timer = 0
	if got := spawnDelay(s.spawnAsteroids, count); got != int(parameter.StormSpawnFloor) {
		t.Errorf("Expected floor of %v ticks, got %d", parameter.StormSpawnFloor, got)
	}
}

func TestStormUFOSpawnRamp(t *testing.T) {
	s, _ := newActiveStorm(t, 20)
	count := func() int { return len(s.ufos) }

	s.ufos = s.ufos[:0]
	s.ufoTimer = 0
	s.timer = s.totalTicks
	if got := spawnDelay(s.spawnUFOs, count); got != int(parameter.StormUFOSpawnBase) {
		t.Errorf("Expected first ufo after %v ticks, got %d", parameter.StormUFOSpawnBase, got)
	}

	s.ufos = s.ufos[:0]
	s.ufoTimer = 0
	s.timer = 0
	want := int(math.Max(parameter.StormUFOSpawnFloor, parameter.StormUFOSpawnBase-parameter.StormUFOSpawnRamp))
	if got := spawnDelay(s.spawnUFOs, count); got != want {
		t.Errorf("Expected late ufo after %d ticks, got %d", want, got)
	}
	if u := s.ufos[0]; u.Health != parameter.StormUFOHealth {
		t.Errorf("Expected ufo health %d, got %d", parameter.StormUFOHealth, u.Health)
	}

	// Full population blocks spawning regardless of the timer
	s.ufos = append(s.ufos, component.UFO{})
	s.ufoTimer = 1 << 20
	s.spawnUFOs()
	if len(s.ufos) != parameter.StormMaxUFOs {
		t.Errorf("Expected ufo cap of %d, got %d", parameter.StormMaxUFOs, len(s.ufos))
	}
}

func TestStormAsteroidCap(t *testing.T) {
	s, _ := newActiveStorm(t, 21)
	s.asteroids = s.asteroids[:0]
	for len(s.asteroids) < parameter.StormMaxAsteroids {
		s.spawnLarge()
	}
	s.asteroidTimer = 1 << 20
	s.spawnAsteroids()
	if len(s.asteroids) != parameter.StormMaxAsteroids {
		t.Errorf("Expected cap of %d asteroids, got %d", parameter.StormMaxAsteroids, len(s.asteroids))
	}

	s.asteroids = s.asteroids[:parameter.StormMaxAsteroids-1]
	s.spawnAsteroids()
	if len(s.asteroids) != parameter.StormMaxAsteroids {
		t.Errorf("Expected a spawn below the cap, got %d", len(s.asteroids))
	}
}

func TestStormUFOTakesTwoHits(t *testing.T) {
	s, h := newActiveStorm(t, 22)
	s.ufos = append(s.ufos[:0], component.UFO{X: 200, Y: 200, Health: parameter.StormUFOHealth, ShootTimer: 1000})
	shoot := func() {
		s.bullets = append(s.bullets[:0], component.Projectile{X: 200, Y: 200, Size: parameter.StormBulletSize, Lifetime: 10})
		s.collideBulletsUFOs()
	}

	shoot()
	if len(s.ufos) != 1 || s.ufos[0].Health != 1 {
		t.Fatalf("Expected ufo to survive the first hit, got %d ufos", len(s.ufos))
	}
	if len(s.bullets) != 0 {
		t.Errorf("Expected bullet consumed, got %d", len(s.bullets))
	}
	if h.state.Score() != 0 {
		t.Errorf("Expected no score for a wounding hit, got %d", h.state.Score())
	}

	shoot()
	if len(s.ufos) != 0 {
		t.Errorf("Expected ufo destroyed on the second hit, got %d", len(s.ufos))
	}
	if h.state.Score() != parameter.StormUFOScore {
		t.Errorf("Expected score %d, got %d", parameter.StormUFOScore, h.state.Score())
	}
	if h.audio.played(audio.SoundExplosion) != 1 {
		t.Errorf("Expected one explosion sound, got %d", h.audio.played(audio.SoundExplosion))
	}
}

func TestStormUFOBulletDamage(t *testing.T) {
	s, h := newActiveStorm(t, 23)
	s.asteroids = s.asteroids[:0]
	bullet := component.Projectile{X: s.ship.X, Y: s.ship.Y, Size: parameter.StormUFOBulletSize, Lifetime: 10}
	s.ufos = append(s.ufos[:0], component.UFO{X: 50, Y: 50, ShootTimer: 1000, Health: parameter.StormUFOHealth})
	s.ufos[0].Bullets = append(s.ufos[0].Bullets, bullet)

	health := h.state.Health()
	s.updateUFOs()
	if h.state.Health() != health-1 {
		t.Errorf("Expected one point of damage, health %d", h.state.Health())
	}
	if s.ship.InvulnTicks != parameter.StormInvulnTicks {
		t.Errorf("Expected %d invulnerable ticks, got %d", parameter.StormInvulnTicks, s.ship.InvulnTicks)
	}
	if len(s.ufos[0].Bullets) != 0 {
		t.Errorf("Expected bullet spent on the hit, got %d", len(s.ufos[0].Bullets))
	}

	s.ufos[0].Bullets = append(s.ufos[0].Bullets, bullet)
	s.updateUFOs()
	if h.state.Health() != health-1 {
		t.Errorf("Expected invulnerability to block ufo fire, health %d", h.state.Health())
	}
	if len(s.ufos[0].Bullets) != 1 {
		t.Errorf("Expected bullet to pass through while invulnerable, got %d", len(s.ufos[0].Bullets))
	}
}
