package mode

import (
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
)

// Campaign regenerates the star map for a new game and places the player on an enemy sector
type Campaign interface {
	Reset()
}

// SoundToggler flips global mute, returns true when sound is now on
type SoundToggler interface {
	ToggleMute() bool
}

// Quitter asks the main loop to stop
type Quitter interface {
	RequestQuit()
}

// MenuItem is one selectable menu entry
type MenuItem uint8

const (
	MenuStart MenuItem = iota
	MenuStory
	MenuSound
	MenuQuit
	menuItemCount
)

func (i MenuItem) String() string {
	switch i {
	case MenuStart:
		return "Start Mission"
	case MenuStory:
		return "Story"
	case MenuSound:
		return "Toggle Sound"
	case MenuQuit:
		return "Quit"
	}
	return "unknown"
}

// Menu is the title screen
type Menu struct {
	deps     Deps
	log      zerolog.Logger
	campaign Campaign
	sound    SoundToggler
	quit     Quitter
	done     latch

	selected MenuItem
	soundOn  bool
	ticks    int
}

// NewMenu creates the title screen
func NewMenu(deps Deps, campaign Campaign, sound SoundToggler, quit Quitter) *Menu {
	return &Menu{
		deps:     deps,
		log:      deps.logger(parameter.ModeMenu),
		campaign: campaign,
		sound:    sound,
		quit:     quit,
		soundOn:  true,
	}
}

// SetSoundOn seeds the toggle label, used when starting muted
func (m *Menu) SetSoundOn(on bool) { m.soundOn = on }

func (m *Menu) Enter() {
	m.done.reset()
	m.selected = parameter.MenuStartIndex
	m.ticks = 0
	m.deps.Audio.PlayMusic(audio.MusicMenu)
}

func (m *Menu) Exit() {
	m.deps.Audio.StopMusic()
}

func (m *Menu) Update() {
	if m.done.fired {
		return
	}
	m.ticks++

	in := m.deps.Input
	if in.IsKeyPressed(input.KeyUp) && m.selected > 0 {
		m.selected--
		m.deps.Audio.PlaySFX(audio.SoundMenuMove)
	}
	if in.IsKeyPressed(input.KeyDown) && m.selected < menuItemCount-1 {
		m.selected++
		m.deps.Audio.PlaySFX(audio.SoundMenuMove)
	}
	if !in.IsFirePressed() {
		return
	}

	m.deps.Audio.PlaySFX(audio.SoundMenuSelect)
	switch m.selected {
	case MenuStart:
		if !m.done.fire() {
			return
		}
		m.deps.State.Reset()
		m.campaign.Reset()
		m.log.Info().Msg("new game")
		// The campaign opens on the enemy encounter at the start sector
		m.deps.Switcher.SwitchToMode(parameter.ModeCombat)
	case MenuStory:
		if m.done.fire() {
			m.deps.Switcher.SwitchToMode(parameter.ModeStory)
		}
	case MenuSound:
		m.soundOn = m.sound.ToggleMute()
		m.log.Info().Bool("sound", m.soundOn).Msg("sound toggled")
		if m.soundOn {
			m.deps.Audio.PlayMusic(audio.MusicMenu)
		}
	case MenuQuit:
		if !m.done.fire() {
			return
		}
		m.log.Info().Msg("quit requested")
		m.quit.RequestQuit()
	}
}

// MenuView is a read-only snapshot for rendering
type MenuView struct {
	Items    []MenuItem
	Selected MenuItem
	SoundOn  bool
	Ticks    int
}

// View returns the current snapshot
func (m *Menu) View() MenuView {
	return MenuView{
		Items:    []MenuItem{MenuStart, MenuStory, MenuSound, MenuQuit},
		Selected: m.selected,
		SoundOn:  m.soundOn,
		Ticks:    m.ticks,
	}
}
