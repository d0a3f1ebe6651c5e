package mode

import (
	"math"
	"testing"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
)

func TestStoryScrollsToMenu(t *testing.T) {
	h := newHarness(71)
	s := NewStory(h.deps)
	s.Enter()
	if len(h.audio.music) != 1 || h.audio.music[0] != audio.MusicMenu {
		t.Errorf("Expected menu music, got %v", h.audio.music)
	}

	// The crawl ends once the last line has passed the top edge
	total := int(math.Floor((parameter.StoryScrollStart+crawlHeight())/parameter.StoryScrollSpeed)) + 1
	h.ticks(s, total-1)
	if len(h.switcher.switches) != 0 {
		t.Fatalf("Expected crawl still running at tick %d, scroll %v", total-1, s.View().Scroll)
	}
	h.ticks(s, 5)
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeMenu {
		t.Errorf("Expected one switch to menu, got %v", h.switcher.switches)
	}
}

func TestStorySkip(t *testing.T) {
	for _, k := range []input.Key{input.KeyFire, input.KeyEscape} {
		h := newHarness(72)
		s := NewStory(h.deps)
		s.Enter()
		h.ticks(s, 10)
		before := s.View().Scroll

		h.input.tap(k)
		h.tick(s)
		h.input.tap(k)
		h.tick(s)
		if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeMenu {
			t.Errorf("Expected %v to skip to menu once, got %v", k, h.switcher.switches)
		}
		if s.View().Scroll != before {
			t.Errorf("Expected no scroll on the skipping tick, got %v from %v", s.View().Scroll, before)
		}
	}
}

func TestStoryEnterRestarts(t *testing.T) {
	h := newHarness(73)
	s := NewStory(h.deps)
	s.Enter()
	h.ticks(s, 100)
	s.Enter()
	v := s.View()
	if v.Scroll != parameter.StoryScrollStart || v.Ticks != 0 {
		t.Errorf("Expected crawl restarted, got scroll %v ticks %d", v.Scroll, v.Ticks)
	}
	if len(v.Lines) == 0 || v.Title == "" {
		t.Error("Expected story text")
	}
}
