package glpager

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/okibalabs/pagingview"
)

const settleEpsilon = 0.5

// pixelSurface is the engine surface in window pixels.
type pixelSurface struct {
	width  int
	height int

	contentSize pagingview.Size
	offset      pagingview.Point

	spring    harmonica.Spring
	animating bool
	target    float64
	velocity  float64
}

func newPixelSurface(width, height, fps int) *pixelSurface {
	return &pixelSurface{
		width:  width,
		height: height,
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

func (s *pixelSurface) Bounds() pagingview.Rect {
	return pagingview.Rect{Size: pagingview.Size{
		Width:  float64(s.width),
		Height: float64(s.height),
	}}
}

func (s *pixelSurface) ContentSize() pagingview.Size        { return s.contentSize }
func (s *pixelSurface) SetContentSize(size pagingview.Size) { s.contentSize = size }
func (s *pixelSurface) ContentOffset() pagingview.Point     { return s.offset }

func (s *pixelSurface) SetContentOffset(p pagingview.Point) {
	s.offset = p
	s.animating = false
	s.velocity = 0
}

func (s *pixelSurface) AnimateContentOffset(target pagingview.Point) {
	s.target = target.X
	s.animating = true
}

// step advances the spring one frame toward the target. Reports true once
// the offset has landed.
func (s *pixelSurface) step() bool {
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

func (s *pixelSurface) maxOffset() float64 {
	max := s.contentSize.Width - float64(s.width)
	if max < 0 {
		max = 0
	}
	return max
}

func clampScrub(x, max float64) float64 {
	if x < 0 {
		return 0
	}
	if x > max {
		return max
	}
	return x
}
