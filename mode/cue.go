package mode

import "github.com/drillerjoe/space/audio"

// CueList holds tick-scheduled actions owned by one mode
type CueList struct {
	tick uint64
	cues []audio.Cue
}

// Schedule runs action after delay ticks
func (c *CueList) Schedule(delay int, action func()) {
	if delay < 0 {
		delay = 0
	}
	c.cues = append(c.cues, audio.Cue{FireAt: c.tick + uint64(delay), Action: action})
}

// Advance moves one tick forward and runs every due cue in schedule order
func (c *CueList) Advance() {
	c.tick++
	kept := c.cues[:0]
	var due []audio.Cue
	for _, cue := range c.cues {
		if cue.FireAt <= c.tick {
			due = append(due, cue)
		} else {
			kept = append(kept, cue)
		}
	}
	c.cues = kept
	for _, cue := range due {
		cue.Action()
	}
}

// Clear cancels every pending cue
func (c *CueList) Clear() {
	c.cues = c.cues[:0]
	c.tick = 0
}

// Len returns the number of pending cues
func (c *CueList) Len() int {
	return len(c.cues)
}
