package tuipager

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/okibalabs/pagingview"
)

// settleEpsilon is how close, in cells, the spring must get to its target
// before the animation counts as landed.
const settleEpsilon = 0.25

// cellSurface is the engine surface in terminal cell units. All of the
// component's mutable state lives here so Model copies stay interchangeable.
type cellSurface struct {
	width  int
	height int

	contentSize pagingview.Size
	offset      pagingview.Point

	spring    harmonica.Spring
	animating bool
	ticking   bool
	target    float64
	velocity  float64

	scrubbing bool
	scrubSeq  int
}

func newCellSurface(fps int) *cellSurface {
	return &cellSurface{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

func (s *cellSurface) Bounds() pagingview.Rect {
	return pagingview.Rect{Size: pagingview.Size{
		Width:  float64(s.width),
		Height: float64(s.height),
	}}
}

func (s *cellSurface) ContentSize() pagingview.Size        { return s.contentSize }
func (s *cellSurface) SetContentSize(size pagingview.Size) { s.contentSize = size }
func (s *cellSurface) ContentOffset() pagingview.Point     { return s.offset }

// SetContentOffset is the engine resting the view, which supersedes any
// spring still in motion.
func (s *cellSurface) SetContentOffset(p pagingview.Point) {
	s.offset = p
	s.animating = false
	s.velocity = 0
}

func (s *cellSurface) AnimateContentOffset(target pagingview.Point) {
	s.target = target.X
	s.animating = true
}

// step advances the spring one frame toward the target. Reports true once
// the offset has landed.
func (s *cellSurface) step() bool {
	pos, vel := s.spring.Update(s.offset.X, s.velocity, s.target)
	s.offset.X = pos
	s.velocity = vel
	if math.Abs(pos-s.target) < settleEpsilon && math.Abs(vel) < settleEpsilon {
		s.offset.X = s.target
		s.velocity = 0
		s.animating = false
		return true
	}
	return false
}

func (s *cellSurface) maxOffset() float64 {
	max := s.contentSize.Width - float64(s.width)
	if max < 0 {
		max = 0
	}
	return max
}
