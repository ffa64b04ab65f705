// Package drawing turns pointer samples into strokes. It has no rendering
// or toolkit dependency; widgets feed it events and draw what it holds.
package drawing

type Point struct {
	X, Y float32
}

// Rect is an axis-aligned area; both edges are inside.
type Rect struct {
	Min, Max Point
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Stroke is one pointer-down..pointer-up gesture in sample order.
type Stroke struct {
	Points []Point
}

func (s Stroke) clone() Stroke {
	return Stroke{Points: append([]Point(nil), s.Points...)}
}

// Canvas accumulates strokes. Committed strokes are never modified; the only
// way to remove them is Clear.
type Canvas struct {
	bounds   Rect
	strokes  []Stroke
	active   *Stroke
	revision uint64
}

func NewCanvas(bounds Rect) *Canvas {
	return &Canvas{bounds: bounds}
}

func (c *Canvas) Bounds() Rect {
	return c.bounds
}

func (c *Canvas) SetBounds(r Rect) {
	c.bounds = r
}

// Begin starts a stroke at p when p is inside the bounds. An unfinished
// stroke from a lost pointer-up is committed first.
func (c *Canvas) Begin(p Point) bool {
	if !c.bounds.Contains(p) {
		return false
	}
	if c.active != nil {
		c.End()
	}
	c.active = &Stroke{Points: []Point{p}}
	c.revision++
	return true
}

// Move appends p to the active stroke. Samples outside the bounds are
// dropped but do not end the stroke.
func (c *Canvas) Move(p Point) bool {
	if c.active == nil || !c.bounds.Contains(p) {
		return false
	}
	c.active.Points = append(c.active.Points, p)
	c.revision++
	return true
}

// End commits the active stroke.
func (c *Canvas) End() bool {
	if c.active == nil {
		return false
	}
	c.strokes = append(c.strokes, *c.active)
	c.active = nil
	c.revision++
	return true
}

// Clear drops every stroke, including one in progress.
func (c *Canvas) Clear() {
	c.strokes = nil
	c.active = nil
	c.revision++
}

func (c *Canvas) Drawing() bool {
	return c.active != nil
}

// Strokes returns copies of the committed strokes.
func (c *Canvas) Strokes() []Stroke {
	out := make([]Stroke, len(c.strokes))
	for i, s := range c.strokes {
		out[i] = s.clone()
	}
	return out
}

func (c *Canvas) Active() (Stroke, bool) {
	if c.active == nil {
		return Stroke{}, false
	}
	return c.active.clone(), true
}

// Len counts committed strokes.
func (c *Canvas) Len() int {
	return len(c.strokes)
}

// Revision changes on every mutation so renderers can skip redundant rebuilds.
func (c *Canvas) Revision() uint64 {
	return c.revision
}
