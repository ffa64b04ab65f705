package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"hiragana-practice/internal/drawing"
	"hiragana-practice/internal/logger"

	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

// ExportSize is the edge length of exported practice sheets.
const ExportSize = 512

type Exporter struct {
	dir    string
	style  Style
	logger logger.Logger
}

func NewExporter(dir string, style Style, log logger.Logger) *Exporter {
	return &Exporter{dir: dir, style: style, logger: log}
}

// Export writes the strokes as <label>-<uuid>.png under the export
// directory and returns the file path.
func (e *Exporter) Export(label string, strokes []drawing.Stroke, bounds drawing.Rect) (string, error) {
	if len(strokes) == 0 {
		return "", ErrNothingToExport
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", e.dir, err)
	}

	width, height := exportDimensions(bounds)
	mat, err := Rasterize(strokes, bounds, width, height, e.style)
	if err != nil {
		return "", err
	}
	defer mat.Close()

	path := filepath.Join(e.dir, FileName(label))
	if ok := gocv.IMWrite(path, mat); !ok {
		return "", fmt.Errorf("failed to write %s", path)
	}

	e.logger.Info("Exporter", "practice sheet exported", map[string]interface{}{
		"path":    path,
		"strokes": len(strokes),
		"width":   width,
		"height":  height,
	})
	return path, nil
}

// Preview rasterises the strokes into a Go image for on-screen thumbnails.
func (e *Exporter) Preview(strokes []drawing.Stroke, bounds drawing.Rect, width, height int) (image.Image, error) {
	mat, err := Rasterize(strokes, bounds, width, height, e.style)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return mat.ToImage()
}

// FileName builds a unique, filesystem-safe name from a label such as a romaji.
func FileName(label string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, label)
	if clean == "" {
		clean = "practice"
	}
	return clean + "-" + uuid.NewString() + ".png"
}

// exportDimensions keeps the canvas aspect ratio with the long edge at ExportSize.
func exportDimensions(bounds drawing.Rect) (int, int) {
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 || h <= 0 {
		return ExportSize, ExportSize
	}
	if w >= h {
		return ExportSize, max(1, int(float32(ExportSize)*h/w))
	}
	return max(1, int(float32(ExportSize)*w/h)), ExportSize
}
