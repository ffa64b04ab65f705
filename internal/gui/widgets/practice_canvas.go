package widgets

import (
	"image/color"

	"hiragana-practice/internal/drawing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const practiceCanvasMinEdge = 200

// PracticeCanvas is a freehand drawing surface backed by drawing.Canvas.
//
// Desktop input starts a stroke on primary mouse-down and ends it on
// mouse-up. Touch input has no mouse-down, so the first drag event starts
// the stroke at the drag origin and drag-end commits it. A touch tap with no
// movement arrives only as Tapped and commits a one-point stroke.
type PracticeCanvas struct {
	widget.BaseWidget

	model       *drawing.Canvas
	strokeColor color.Color
	strokeWidth float32

	// set by a primary mouse-down; the Tapped that follows it is already handled
	mouseDown bool

	// OnStrokeCommitted fires after each finished stroke.
	OnStrokeCommitted func(count int)
}

var (
	_ fyne.Draggable    = (*PracticeCanvas)(nil)
	_ fyne.Tappable     = (*PracticeCanvas)(nil)
	_ desktop.Mouseable = (*PracticeCanvas)(nil)
)

func NewPracticeCanvas(strokeColor color.Color, strokeWidth float32) *PracticeCanvas {
	p := &PracticeCanvas{
		model:       drawing.NewCanvas(drawing.Rect{}),
		strokeColor: strokeColor,
		strokeWidth: strokeWidth,
	}
	p.ExtendBaseWidget(p)
	return p
}

// Model exposes the stroke data; treat it as read-only outside this widget.
func (p *PracticeCanvas) Model() *drawing.Canvas {
	return p.model
}

// Clear discards every stroke and the line objects drawn for them.
func (p *PracticeCanvas) Clear() {
	p.model.Clear()
	p.Refresh()
}

func (p *PracticeCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mouseDown = true
	if p.model.Begin(toPoint(e.Position)) {
		p.Refresh()
	}
}

func (p *PracticeCanvas) Tapped(e *fyne.PointEvent) {
	if p.mouseDown {
		p.mouseDown = false
		return
	}
	if p.model.Begin(toPoint(e.Position)) {
		p.commit()
	}
}

func (p *PracticeCanvas) MouseUp(_ *desktop.MouseEvent) {
	p.commit()
}

func (p *PracticeCanvas) Dragged(e *fyne.DragEvent) {
	if !p.model.Drawing() {
		origin := e.Position.Subtract(e.Dragged)
		if !p.model.Begin(toPoint(origin)) {
			return
		}
	}
	p.model.Move(toPoint(e.Position))
	p.Refresh()
}

func (p *PracticeCanvas) DragEnd() {
	p.commit()
}

func (p *PracticeCanvas) commit() {
	if !p.model.End() {
		return
	}
	p.Refresh()
	if p.OnStrokeCommitted != nil {
		p.OnStrokeCommitted(p.model.Len())
	}
}

func (p *PracticeCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.StrokeColor = theme.Color(theme.ColorNameSeparator)
	bg.StrokeWidth = 1

	return &practiceCanvasRenderer{
		canvas:   p,
		bg:       bg,
		revision: p.model.Revision(),
	}
}

func toPoint(pos fyne.Position) drawing.Point {
	return drawing.Point{X: pos.X, Y: pos.Y}
}

func toPosition(pt drawing.Point) fyne.Position {
	return fyne.NewPos(pt.X, pt.Y)
}

type practiceCanvasRenderer struct {
	canvas   *PracticeCanvas
	bg       *canvas.Rectangle
	segments []fyne.CanvasObject
	revision uint64
}

func (r *practiceCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	r.canvas.model.SetBounds(drawing.NewRect(0, 0, size.Width, size.Height))
}

func (r *practiceCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(practiceCanvasMinEdge, practiceCanvasMinEdge)
}

func (r *practiceCanvasRenderer) Refresh() {
	if rev := r.canvas.model.Revision(); rev != r.revision {
		r.revision = rev
		r.rebuild()
	}
	r.bg.Refresh()
	canvas.Refresh(r.canvas)
}

// rebuild regenerates every segment. Strokes are short, so there is no
// incremental path.
func (r *practiceCanvasRenderer) rebuild() {
	r.segments = r.segments[:0]

	strokes := r.canvas.model.Strokes()
	if active, ok := r.canvas.model.Active(); ok {
		strokes = append(strokes, active)
	}

	for _, s := range strokes {
		r.segments = append(r.segments, r.strokeObjects(s)...)
	}
	if len(r.segments) == 0 {
		r.segments = nil
	}
}

func (r *practiceCanvasRenderer) strokeObjects(s drawing.Stroke) []fyne.CanvasObject {
	c := r.canvas
	if len(s.Points) == 1 {
		half := c.strokeWidth / 2
		dot := canvas.NewCircle(c.strokeColor)
		dot.Move(toPosition(s.Points[0]).SubtractXY(half, half))
		dot.Resize(fyne.NewSquareSize(c.strokeWidth))
		return []fyne.CanvasObject{dot}
	}

	objs := make([]fyne.CanvasObject, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		line := canvas.NewLine(c.strokeColor)
		line.StrokeWidth = c.strokeWidth
		line.Position1 = toPosition(s.Points[i-1])
		line.Position2 = toPosition(s.Points[i])
		objs = append(objs, line)
	}
	return objs
}

func (r *practiceCanvasRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.segments)+1)
	objs = append(objs, r.bg)
	return append(objs, r.segments...)
}

func (r *practiceCanvasRenderer) Destroy() {
	r.segments = nil
}
