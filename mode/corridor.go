package mode

import (
	"math"

	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/vmath"
)

// Corridor generates and scrolls the canyon walls of a planet mission
// Segments are kept ordered from bottom (largest Y) to top
type Corridor struct {
	Segments []component.Segment

	width float64
	phase float64
	rng   *vmath.FastRand
}

// NewCorridor creates an empty corridor; call Reset before use
func NewCorridor(rng *vmath.FastRand) *Corridor {
	return &Corridor{rng: rng}
}

// Reset fills the window with segments covering the screen from the bottom up
func (c *Corridor) Reset() {
	c.Segments = c.Segments[:0]
	c.width = parameter.MissionStartWidth
	c.phase = 0
	bottom := parameter.MissionDiscardY - parameter.MissionSegmentHeight
	for i := 0; i < parameter.MissionSegmentCount; i++ {
		c.Segments = append(c.Segments, c.next(bottom-float64(i)*parameter.MissionSegmentHeight))
	}
}

// next builds one segment at y, advancing the width walk and the serpentine phase
func (c *Corridor) next(y float64) component.Segment {
	c.phase += parameter.MissionPhaseStep
	serpentine := math.Sin(c.phase) * parameter.MissionSerpentine
	c.width += c.rng.Signed(parameter.MissionWidthJitter/2) + serpentine*parameter.MissionSerpentineMix
	c.width = vmath.Clamp(c.width, parameter.MissionMinWidth, parameter.MissionMaxWidth)

	center := parameter.ScreenCX + math.Sin(c.phase*parameter.MissionSwayRate)*parameter.MissionSway
	left := vmath.Clamp(center-c.width/2, parameter.MissionLeftWallMin, parameter.MissionLeftWallMax)
	right := vmath.Clamp(center+c.width/2, parameter.MissionRightWallMin, parameter.MissionRightWallMax)

	// Wall clamping may stretch the slice past the width bound
	if w := right - left; w > parameter.MissionMaxWidth {
		excess := w - parameter.MissionMaxWidth
		left += excess / 2
		right -= excess / 2
	} else if w < parameter.MissionMinWidth {
		short := parameter.MissionMinWidth - w
		left -= short / 2
		right += short / 2
	}
	return component.Segment{Y: y, LeftWall: left, RightWall: right}
}

// Scroll moves every segment down by dy, drops those past the bottom and refills the top
func (c *Corridor) Scroll(dy float64) {
	kept := c.Segments[:0]
	for _, s := range c.Segments {
		s.Y += dy
		if s.Y < parameter.MissionDiscardY {
			kept = append(kept, s)
		}
	}
	c.Segments = kept

	for len(c.Segments) < parameter.MissionSegmentCount {
		top := parameter.MissionDiscardY
		if n := len(c.Segments); n > 0 {
			top = c.Segments[n-1].Y
		}
		c.Segments = append(c.Segments, c.next(top-parameter.MissionSegmentHeight))
	}
}

// Band returns the segments with lo <= Y <= hi, appended to dst
func (c *Corridor) Band(dst []component.Segment, lo, hi float64) []component.Segment {
	for _, s := range c.Segments {
		if s.Y >= lo && s.Y <= hi {
			dst = append(dst, s)
		}
	}
	return dst
}

// At returns the segment whose slice [Y, Y+height) contains y
func (c *Corridor) At(y float64) (component.Segment, bool) {
	for _, s := range c.Segments {
		if s.Y <= y && y < s.Y+parameter.MissionSegmentHeight {
			return s, true
		}
	}
	return component.Segment{}, false
}

// Near returns the first segment within band of y vertically
func (c *Corridor) Near(y, band float64) (component.Segment, bool) {
	for _, s := range c.Segments {
		if math.Abs(s.Y-y) < band {
			return s, true
		}
	}
	return component.Segment{}, false
}
