package physics

import (
	"github.com/solarlune/resolv"
)

// Collision tags for the corridor space
var (
	TagPlayer  = resolv.NewTag("player")
	TagShot    = resolv.NewTag("shot")
	TagBarrier = resolv.NewTag("barrier")
	TagMissile = resolv.NewTag("missile")
)

// Bodies live partly outside the visible field (spawn above, missiles below)
const (
	spaceMarginX = 64
	spaceMarginY = 192
	spaceCell    = 32
)

// Body is a rectangle registered in a Space
type Body struct {
	Owner any
	W, H  float64
	shape resolv.IShape
}

// Space is a broad-phase rectangle index over the play field
type Space struct {
	space  *resolv.Space
	bodies map[resolv.IShape]*Body
}

// NewSpace creates a space covering a w x h field plus spawn margins
func NewSpace(w, h float64) *Space {
	return &Space{
		space:  resolv.NewSpace(int(w)+2*spaceMarginX, int(h)+2*spaceMarginY, spaceCell, spaceCell),
		bodies: make(map[resolv.IShape]*Body),
	}
}

// Add registers a rectangle centred on (cx, cy)
func (s *Space) Add(owner any, cx, cy, w, h float64, tag resolv.Tags) *Body {
	sh := resolv.NewRectangleTopLeft(cx-w/2+spaceMarginX, cy-h/2+spaceMarginY, w, h)
	sh.Tags().Set(tag)
	s.space.Add(sh)
	b := &Body{Owner: owner, W: w, H: h, shape: sh}
	s.bodies[sh] = b
	return b
}

// Move re-centres a body on (cx, cy)
func (s *Space) Move(b *Body, cx, cy float64) {
	if b == nil {
		return
	}
	b.shape.SetPosition(cx+spaceMarginX, cy+spaceMarginY)
}

// Remove unregisters a body, nil is ignored
func (s *Space) Remove(b *Body) {
	if b == nil {
		return
	}
	if _, ok := s.bodies[b.shape]; !ok {
		return
	}
	s.space.Remove(b.shape)
	delete(s.bodies, b.shape)
}

// Clear removes every body
func (s *Space) Clear() {
	for sh := range s.bodies {
		s.space.Remove(sh)
	}
	clear(s.bodies)
}

// Len returns the number of registered bodies
func (s *Space) Len() int {
	return len(s.bodies)
}

// FirstHit returns the first body carrying tag that overlaps b, or nil
func (s *Space) FirstHit(b *Body, tag resolv.Tags) *Body {
	if b == nil {
		return nil
	}
	candidates := b.shape.SelectTouchingCells(0).FilterShapes().ByTags(tag)
	var hit *Body
	b.shape.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: candidates,
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if other, ok := s.bodies[set.OtherShape]; ok && other != b {
				hit = other
				return false
			}
			return true
		},
	})
	if hit != nil {
		return hit
	}

	// Edge tests miss a body sitting wholly inside another
	bounds := b.shape.Bounds()
	candidates.ForEach(func(sh resolv.IShape) bool {
		if other, ok := s.bodies[sh]; ok && other != b && overlaps(bounds, sh.Bounds()) {
			hit = other
			return false
		}
		return true
	})
	return hit
}

// overlaps is a strict axis-aligned overlap; touching edges do not count
func overlaps(a, b resolv.Bounds) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}
