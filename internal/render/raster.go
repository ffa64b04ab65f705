package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"hiragana-practice/internal/drawing"

	"gocv.io/x/gocv"
)

var ErrNothingToExport = errors.New("no strokes to export")

// Style controls how strokes are painted onto the raster.
type Style struct {
	Width      float32
	Color      color.NRGBA
	Background color.NRGBA
}

func DefaultStyle() Style {
	return Style{
		Width:      3,
		Color:      color.NRGBA{R: 0xff, A: 0xff},
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Rasterize paints strokes, given in the coordinate space of bounds, onto a
// new width x height BGR Mat. The caller owns the returned Mat.
func Rasterize(strokes []drawing.Stroke, bounds drawing.Rect, width, height int, style Style) (gocv.Mat, error) {
	if width <= 0 || height <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	bg := style.Background
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(bg.B), float64(bg.G), float64(bg.R), 0),
		height, width, gocv.MatTypeCV8UC3,
	)

	pen := toRGBA(style.Color)
	thickness := penThickness(style.Width, bounds, width, height)

	for _, s := range strokes {
		pts := Project(s.Points, bounds, width, height)
		switch len(pts) {
		case 0:
			continue
		case 1:
			radius := thickness / 2
			if radius < 1 {
				radius = 1
			}
			gocv.Circle(&mat, pts[0], radius, pen, -1)
		default:
			for i := 1; i < len(pts); i++ {
				gocv.Line(&mat, pts[i-1], pts[i], pen, thickness)
			}
		}
	}

	return mat, nil
}

// Project maps points from bounds into a width x height pixel grid,
// clamping to the grid edges.
func Project(points []drawing.Point, bounds drawing.Rect, width, height int) []image.Point {
	out := make([]image.Point, 0, len(points))

	bw, bh := bounds.Width(), bounds.Height()
	if bw <= 0 || bh <= 0 {
		return out
	}

	sx := float64(width-1) / float64(bw)
	sy := float64(height-1) / float64(bh)

	for _, p := range points {
		x := int(math.Round(float64(p.X-bounds.Min.X) * sx))
		y := int(math.Round(float64(p.Y-bounds.Min.Y) * sy))
		out = append(out, image.Pt(clamp(x, 0, width-1), clamp(y, 0, height-1)))
	}
	return out
}

func penThickness(w float32, bounds drawing.Rect, width, height int) int {
	scale := 1.0
	if bw := bounds.Width(); bw > 0 {
		scale = float64(width) / float64(bw)
	}
	if bh := bounds.Height(); bh > 0 {
		if s := float64(height) / float64(bh); s < scale {
			scale = s
		}
	}
	t := int(math.Round(float64(w) * scale))
	if t < 1 {
		t = 1
	}
	return t
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
