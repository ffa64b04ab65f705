package gui

import (
	"fmt"
	"image"

	"hiragana-practice/internal/drawing"
	apptheme "hiragana-practice/internal/gui/theme"
	"hiragana-practice/internal/gui/widgets"
	"hiragana-practice/internal/kana"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const romajiTextSize = 20

// DetailView shows one character and a practice canvas.
type DetailView struct {
	Entry kana.Entry

	BackButton   *widget.Button
	ClearButton  *widget.Button
	ExportButton *widget.Button
	Glyph        *canvas.Text
	Romaji       *canvas.Text
	StrokeInfo   *widget.Label
	Canvas       *widgets.PracticeCanvas

	// Preview shows the strokes drawn so far; it stays empty until the first stroke.
	Preview *canvas.Image

	preview func(strokes []drawing.Stroke, bounds drawing.Rect) image.Image
	content fyne.CanvasObject
}

type detailCallbacks struct {
	back    func()
	export  func(entry kana.Entry, strokes []drawing.Stroke, bounds drawing.Rect)
	preview func(strokes []drawing.Stroke, bounds drawing.Rect) image.Image
}

func newDetailView(entry kana.Entry, style CanvasStyle, cb detailCallbacks) *DetailView {
	fg := theme.Color(theme.ColorNameForeground)

	v := &DetailView{
		Entry:      entry,
		Glyph:      canvas.NewText(entry.Glyph, fg),
		Romaji:     canvas.NewText(entry.Romaji, fg),
		StrokeInfo: widget.NewLabel(""),
		Canvas:     widgets.NewPracticeCanvas(style.Color, style.Width),
		Preview:    canvas.NewImageFromImage(nil),
		preview:    cb.preview,
	}
	v.Preview.FillMode = canvas.ImageFillContain
	v.Preview.SetMinSize(fyne.NewSquareSize(previewEdge))
	v.Glyph.TextSize = apptheme.GlyphTextSize
	v.Glyph.Alignment = fyne.TextAlignCenter
	v.Romaji.TextSize = romajiTextSize
	v.Romaji.Alignment = fyne.TextAlignCenter

	v.BackButton = widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		if cb.back != nil {
			cb.back()
		}
	})
	v.ClearButton = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), v.clear)
	v.ExportButton = widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if cb.export != nil {
			model := v.Canvas.Model()
			cb.export(v.Entry, model.Strokes(), model.Bounds())
		}
	})

	v.Canvas.OnStrokeCommitted = func(int) {
		v.updateStrokeInfo()
		v.updatePreview()
	}
	v.updateStrokeInfo()

	header := container.NewBorder(
		nil, nil,
		v.BackButton, v.Preview,
		container.NewVBox(v.Glyph, v.Romaji),
	)

	v.content = container.NewBorder(
		container.NewVBox(
			header,
			widget.NewSeparator(),
			widget.NewLabelWithStyle("Practice Area", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			v.StrokeInfo,
		),
		container.NewGridWithColumns(2, v.ClearButton, v.ExportButton),
		nil, nil,
		v.Canvas,
	)
	return v
}

func (v *DetailView) clear() {
	v.Canvas.Clear()
	v.updateStrokeInfo()
	v.updatePreview()
}

func (v *DetailView) updatePreview() {
	if v.preview == nil {
		return
	}
	model := v.Canvas.Model()
	v.Preview.Image = v.preview(model.Strokes(), model.Bounds())
	v.Preview.Refresh()
}

func (v *DetailView) updateStrokeInfo() {
	v.StrokeInfo.SetText(fmt.Sprintf("Strokes drawn: %d / %d", v.Canvas.Model().Len(), v.Entry.Strokes))
}

func (v *DetailView) Content() fyne.CanvasObject {
	return v.content
}
