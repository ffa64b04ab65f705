package gui

import (
	"hiragana-practice/internal/kana"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const chartColumns = 6

// ChartView is the scrollable grid of character buttons, one section per group.
type ChartView struct {
	Title   *widget.Label
	User    *widget.Label
	Buttons []*CharacterButton

	scroll  *container.Scroll
	content fyne.CanvasObject
}

// CharacterButton is a chart button bound to exactly one entry.
type CharacterButton struct {
	Button *widget.Button
	Entry  kana.Entry
}

func newCharacterButton(entry kana.Entry, onSelect func(kana.Entry)) *CharacterButton {
	b := widget.NewButton(entry.Glyph, func() {
		if onSelect != nil {
			onSelect(entry)
		}
	})
	return &CharacterButton{Button: b, Entry: entry}
}

func newChartView(chart kana.Chart, onSelect func(kana.Entry)) *ChartView {
	v := &ChartView{
		Title: widget.NewLabelWithStyle("Hiragana Chart", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		User:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	sections := container.NewVBox()
	for _, group := range chart.Groups() {
		header := widget.NewLabelWithStyle(group.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

		grid := container.NewGridWithColumns(chartColumns)
		for _, entry := range group.Entries {
			btn := newCharacterButton(entry, onSelect)
			v.Buttons = append(v.Buttons, btn)
			grid.Add(btn.Button)
		}

		sections.Add(header)
		sections.Add(grid)
	}

	v.scroll = container.NewVScroll(sections)
	v.content = container.NewBorder(
		container.NewVBox(v.Title, v.User),
		nil, nil, nil,
		v.scroll,
	)
	return v
}

func (v *ChartView) setUser(username string) {
	if username == "" {
		v.User.SetText("")
		return
	}
	v.User.SetText("Signed in as " + username)
}

// Button returns the button for glyph, if the chart has one.
func (v *ChartView) Button(glyph string) (*CharacterButton, bool) {
	for _, b := range v.Buttons {
		if b.Entry.Glyph == glyph {
			return b, true
		}
	}
	return nil, false
}

func (v *ChartView) Content() fyne.CanvasObject {
	return v.content
}
