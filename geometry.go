package pagingview

// Point is a location in content units.
type Point struct {
	X float64
	Y float64
}

// Size is an extent in content units.
type Size struct {
	Width  float64
	Height float64
}

// Rect pairs an origin with a size.
type Rect struct {
	Origin Point
	Size   Size
}

func (r Rect) MinX() float64 { return r.Origin.X }

func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }
