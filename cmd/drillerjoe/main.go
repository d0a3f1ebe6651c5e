package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/config"
	"github.com/drillerjoe/space/core"
	"github.com/drillerjoe/space/engine"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/render/renderer"
	"github.com/drillerjoe/space/status"
	"github.com/drillerjoe/space/terminal"
	"github.com/drillerjoe/space/vmath"
)

const starCount = 120

var (
	debugFlag   = flag.Bool("debug", false, "Enable debug logging")
	configFlag  = flag.String("config", "", "Path to a TOML config overriding the defaults")
	sectorsFlag = flag.String("sectors", "", "Path to a YAML sector layout")
	modesFlag   = flag.String("modes", "", "Path to a TOML mode graph")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 uses the config seed or the clock")
)

func main() {
	os.Exit(run())
}

func run() int {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	layout, err := config.LoadSectors(*sectorsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sectors: %v\n", err)
		return 2
	}
	keys, err := input.ApplyBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keys: %v\n", err)
		return 2
	}
	colorMode, err := terminal.ParseColorMode(cfg.ColorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "color_mode: %v\n", err)
		return 2
	}

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log, logFile := setupLogging(logDir, cfg.Level(*debugFlag))
	if logFile != nil {
		defer logFile.Close()
	}
	core.SetCrashLogger(log)
	log.Info().Uint64("seed", seed).Str("config", cfg.Source).Msg("starting")

	reg := status.NewRegistry()
	state := engine.NewGameState(cfg.StartingHealth)
	in := input.NewState(keys)
	rng := vmath.NewFastRand(seed)

	sound := audio.NewEngine(audio.Config{
		Enabled:      cfg.Sound.Enabled && !*muteFlag,
		MasterVolume: cfg.Sound.MasterVolume,
		MusicVolume:  cfg.Sound.MusicVolume,
		SampleRate:   cfg.Sound.SampleRate,
	}, reg, log)
	if err := sound.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing silent")
	}
	defer sound.Stop()

	disp := engine.NewDispatcher(state, in, reg, log)
	deps := mode.Deps{
		Switcher: disp,
		Input:    in,
		State:    state,
		Audio:    sound,
		Rand:     rng,
		Log:      log,
		Status:   reg,
	}
	starMap := mode.NewStarMap(deps, layout)
	deps.Sectors = starMap

	menu := mode.NewMenu(deps, starMap, sound, disp)
	menu.SetSoundOn(!sound.IsMuted())
	story := mode.NewStory(deps)
	combat := mode.NewCombat(deps)
	storm := mode.NewStorm(deps)
	planetDescent := mode.NewPlanetDescent(deps)
	allyDescent := mode.NewAllyDescent(deps)
	mission := mode.NewMission(deps)
	gameOver := mode.NewGameOver(deps)
	victory := mode.NewVictory(deps)

	disp.Register(parameter.ModeMenu, menu)
	disp.Register(parameter.ModeStory, story)
	disp.Register(parameter.ModeStarMap, starMap)
	disp.Register(parameter.ModeCombat, combat)
	disp.Register(parameter.ModeAsteroidStorm, storm)
	disp.Register(parameter.ModePlanetDescent, planetDescent)
	disp.Register(parameter.ModeAllyDescent, allyDescent)
	disp.Register(parameter.ModeEnemyPlanet, mission)
	disp.Register(parameter.ModeGameOver, gameOver)
	disp.Register(parameter.ModeVictory, victory)

	term, err := terminal.New(colorMode)
	if err != nil {
		log.Error().Err(err).Msg("terminal create failed")
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		log.Error().Err(err).Msg("terminal init failed")
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	defer term.Fini()
	core.SetCrashTerminal(term)
	defer core.SetCrashTerminal(nil)

	if err := disp.Start(*modesFlag); err != nil {
		term.Fini()
		log.Error().Err(err).Msg("dispatcher start failed")
		fmt.Fprintf(os.Stderr, "modes: %v\n", err)
		return 1
	}
	defer disp.Shutdown()

	width, height := term.Size()
	orch := render.NewRenderOrchestrator(term, width, height, log)
	debugView := renderer.NewDebugRenderer(reg)

	orch.Register(renderer.NewStarfieldRenderer(starCount, seed), render.PriorityBackground)
	orch.Register(renderer.NewMenuRenderer(menu), render.PriorityUI, parameter.ModeMenu)
	orch.Register(renderer.NewStoryRenderer(story), render.PriorityUI, parameter.ModeStory)
	orch.Register(renderer.NewStarMapRenderer(starMap), render.PriorityWorld, parameter.ModeStarMap)
	orch.Register(renderer.NewCombatRenderer(combat), render.PriorityEntities, parameter.ModeCombat)
	orch.Register(renderer.NewStormRenderer(storm), render.PriorityEntities, parameter.ModeAsteroidStorm)
	orch.Register(renderer.NewDescentRenderer(planetDescent), render.PriorityEntities, parameter.ModePlanetDescent)
	orch.Register(renderer.NewDescentRenderer(allyDescent), render.PriorityEntities, parameter.ModeAllyDescent)
	orch.Register(renderer.NewMissionRenderer(mission), render.PriorityEntities, parameter.ModeEnemyPlanet)
	orch.Register(renderer.NewGameOverRenderer(gameOver), render.PriorityUI, parameter.ModeGameOver)
	orch.Register(renderer.NewVictoryRenderer(victory), render.PriorityUI, parameter.ModeVictory)
	orch.Register(renderer.NewHUDRenderer(state), render.PriorityOverlay,
		parameter.ModeStarMap, parameter.ModeCombat, parameter.ModeAsteroidStorm,
		parameter.ModePlanetDescent, parameter.ModeAllyDescent, parameter.ModeEnemyPlanet)
	orch.Register(debugView, render.PriorityDebug)

	clock := engine.NewPausableClock(nil)
	sched := engine.NewClockScheduler(clock, cfg.TickRate, reg)

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	frame := func() {
		w, h := orch.Buffer().Width(), orch.Buffer().Height()
		ctx := render.NewRenderContext(sched.TickCount(), disp.Current(), clock.IsPaused(), w, h)
		orch.RenderFrame(ctx)
	}
	frame()

	timer := time.NewTimer(sched.UntilNext())
	defer timer.Stop()

	for !disp.Quitting() {
		select {
		case ev, ok := <-events:
			if !ok {
				disp.RequestQuit()
				continue
			}
			handleEvent(ev, eventTargets{
				input:   in,
				disp:    disp,
				clock:   clock,
				sched:   sched,
				sound:   sound,
				menu:    menu,
				debug:   debugView,
				orch:    orch,
				term:    term,
				log:     log,
				refresh: frame,
			})

		case <-timer.C:
			if sched.Advance(disp) > 0 {
				frame()
			}
			timer.Reset(sched.UntilNext())
		}
	}

	log.Info().Int("score", state.Score()).Str("mode", disp.Current()).Msg("exiting")
	return 0
}

// eventTargets are the collaborators a terminal event can reach
type eventTargets struct {
	input   *input.State
	disp    *engine.Dispatcher
	clock   *engine.PausableClock
	sched   *engine.ClockScheduler
	sound   *audio.Engine
	menu    *mode.Menu
	debug   *renderer.DebugRenderer
	orch    *render.RenderOrchestrator
	term    terminal.Terminal
	log     zerolog.Logger
	refresh func()
}

// handleEvent routes global keys and resizes; game keys stay in the input state for the next tick
func handleEvent(ev tcell.Event, t eventTargets) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := t.input.HandleEvent(ev)
		if !ok {
			return
		}
		switch k {
		case input.KeyQuit:
			t.disp.RequestQuit()
		case input.KeyPause:
			if paused := t.clock.Toggle(); !paused {
				t.sched.Resync()
			}
			t.log.Debug().Bool("paused", t.clock.IsPaused()).Msg("pause toggled")
			t.refresh()
		case input.KeyMute:
			on := t.sound.ToggleMute()
			t.menu.SetSoundOn(on)
			t.log.Debug().Bool("sound", on).Msg("mute toggled")
		case input.KeyDebug:
			t.debug.Toggle()
			t.refresh()
		}

	case *tcell.EventResize:
		t.orch.Resize(t.term.Size())
		t.term.Sync()
		t.refresh()
	}
}
