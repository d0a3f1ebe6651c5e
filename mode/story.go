package mode

import (
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
)

const storyTitle = "DRILLER JOE IN SPACE"

var storyLines = []string{
	"Driller Joe, boldest driller in the cosmos,",
	"is finally heading home.",
	"",
	"The job took him to the far rim of the galaxy",
	"and it cost him dearly:",
	"his radar is jammed and his shield is down.",
	"",
	"*** RADAR JAMMED ***",
	"",
	"DESTROY 3 ENEMY PLANETS",
	"",
	"OR",
	"",
	"DELIVER BEER TO 3 ALLY PLANETS",
	"",
	"The allies need the beer to patch his systems.",
	"Obviously.",
	"",
	"Asteroids rattle the hull.",
	"Enemy ships close in on the sensors.",
	"",
	"Joe grins. His moustache twitches.",
	"",
	"BE DRILLER!",
	"",
	"BE JOE!",
	"",
	"BE IN SPACE!",
}

// crawlHeight is the distance from the title to the last line
func crawlHeight() float64 {
	return parameter.StoryTitleOffset + float64(len(storyLines))*parameter.StoryLineSpacing
}

// Story scrolls the briefing up the screen, then returns to the menu
type Story struct {
	deps Deps
	log  zerolog.Logger
	done latch

	scroll float64
	ticks  int
}

func NewStory(deps Deps) *Story {
	return &Story{deps: deps, log: deps.logger(parameter.ModeStory)}
}

// Enter restarts the crawl below the screen
func (s *Story) Enter() {
	s.done.reset()
	s.scroll = parameter.StoryScrollStart
	s.ticks = 0
	s.deps.Audio.PlayMusic(audio.MusicMenu)
}

func (s *Story) Exit() {
	s.deps.Audio.StopMusic()
}

// Update scrolls one step; fire or escape skip straight to the menu
func (s *Story) Update() {
	if s.done.fired {
		return
	}
	in := s.deps.Input
	if in.IsFirePressed() || in.IsKeyPressed(input.KeyEscape) {
		s.log.Debug().Int("tick", s.ticks).Msg("story skipped")
		s.finish()
		return
	}

	s.scroll -= parameter.StoryScrollSpeed
	s.ticks++
	if s.scroll < -crawlHeight() {
		s.finish()
	}
}

func (s *Story) finish() {
	if s.done.fire() {
		s.deps.Switcher.SwitchToMode(parameter.ModeMenu)
	}
}

// StoryView is a read-only snapshot for rendering; Scroll is the world y of the first line
type StoryView struct {
	Title  string
	Lines  []string
	Scroll float64
	Ticks  int
}

func (s *Story) View() StoryView {
	return StoryView{
		Title:  storyTitle,
		Lines:  storyLines,
		Scroll: s.scroll,
		Ticks:  s.ticks,
	}
}
