package gui

import (
	"fmt"
	"image"
	"image/color"

	"hiragana-practice/internal/drawing"
	"hiragana-practice/internal/kana"
	"hiragana-practice/internal/logger"
	"hiragana-practice/internal/navigation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// CanvasStyle is the pen used on practice canvases.
type CanvasStyle struct {
	Color color.Color
	Width float32
}

// previewEdge is the long edge of the stroke thumbnail on the detail screen.
const previewEdge = 72

// Previewer rasterises strokes into a thumbnail.
type Previewer interface {
	Preview(strokes []drawing.Stroke, bounds drawing.Rect, width, height int) (image.Image, error)
}

// Manager renders navigation screens into the window. The chart view is
// built once and reused, so its scroll position survives a detail visit.
type Manager struct {
	window fyne.Window
	chart  kana.Chart
	style  CanvasStyle
	logger logger.Logger

	previewer Previewer

	loginHandler    func(username, password string)
	registerHandler func(username, password string)
	selectHandler   func(kana.Entry)
	backHandler     func()
	exportHandler   func(kana.Entry, []drawing.Stroke, drawing.Rect)

	login     *LoginView
	chartView *ChartView
	detail    *DetailView
}

func NewManager(window fyne.Window, chart kana.Chart, style CanvasStyle, log logger.Logger) *Manager {
	return &Manager{
		window: window,
		chart:  chart,
		style:  style,
		logger: log,
	}
}

// SetPreviewer enables the stroke thumbnail on detail screens.
func (m *Manager) SetPreviewer(p Previewer) {
	m.previewer = p
}

func (m *Manager) SetLoginHandler(handler func(username, password string)) {
	m.loginHandler = handler
}

func (m *Manager) SetRegisterHandler(handler func(username, password string)) {
	m.registerHandler = handler
}

func (m *Manager) SetSelectHandler(handler func(kana.Entry)) {
	m.selectHandler = handler
}

func (m *Manager) SetBackHandler(handler func()) {
	m.backHandler = handler
}

func (m *Manager) SetExportHandler(handler func(kana.Entry, []drawing.Stroke, drawing.Rect)) {
	m.exportHandler = handler
}

// Render builds the view for screen.
func (m *Manager) Render(screen navigation.Screen) fyne.CanvasObject {
	switch s := screen.(type) {
	case navigation.LoginScreen:
		m.login = newLoginView(m.onLogin, m.onRegister)
		m.detail = nil
		return m.login.Content()

	case navigation.ChartScreen:
		if m.chartView == nil {
			m.chartView = newChartView(m.chart, m.onSelect)
		}
		m.chartView.setUser(s.Username)
		m.detail = nil
		return m.chartView.Content()

	case navigation.DetailScreen:
		m.detail = newDetailView(s.Entry, m.style, detailCallbacks{
			back:    m.onBack,
			export:  m.onExport,
			preview: m.preview,
		})
		return m.detail.Content()

	default:
		m.logger.Warning("GUIManager", "unknown screen", map[string]interface{}{
			"screen": fmt.Sprintf("%T", screen),
		})
		return widget.NewLabel("Unknown screen")
	}
}

// Show renders screen and makes it the window content.
func (m *Manager) Show(screen navigation.Screen) {
	m.window.SetContent(m.Render(screen))
	m.logger.Debug("GUIManager", "screen shown", map[string]interface{}{
		"screen": screen.Name(),
	})
}

// Notify shows a modal information dialog.
func (m *Manager) Notify(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) LoginView() *LoginView   { return m.login }
func (m *Manager) ChartView() *ChartView   { return m.chartView }
func (m *Manager) DetailView() *DetailView { return m.detail }

func (m *Manager) onLogin(username, password string) {
	if m.loginHandler != nil {
		m.loginHandler(username, password)
	}
}

func (m *Manager) onRegister(username, password string) {
	if m.registerHandler != nil {
		m.registerHandler(username, password)
	}
}

func (m *Manager) onSelect(entry kana.Entry) {
	m.logger.Debug("GUIManager", "character selected", map[string]interface{}{
		"glyph":  entry.Glyph,
		"romaji": entry.Romaji,
	})
	if m.selectHandler != nil {
		m.selectHandler(entry)
	}
}

func (m *Manager) onBack() {
	if m.backHandler != nil {
		m.backHandler()
	}
}

func (m *Manager) onExport(entry kana.Entry, strokes []drawing.Stroke, bounds drawing.Rect) {
	if m.exportHandler != nil {
		m.exportHandler(entry, strokes, bounds)
	}
}

func (m *Manager) preview(strokes []drawing.Stroke, bounds drawing.Rect) image.Image {
	if m.previewer == nil || len(strokes) == 0 {
		return nil
	}

	w, h := thumbnailSize(bounds)
	img, err := m.previewer.Preview(strokes, bounds, w, h)
	if err != nil {
		m.logger.Warning("GUIManager", "preview failed", map[string]interface{}{
			"error":   err.Error(),
			"strokes": len(strokes),
		})
		return nil
	}
	return img
}

// thumbnailSize scales bounds so the long edge is previewEdge.
func thumbnailSize(bounds drawing.Rect) (int, int) {
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 || h <= 0 {
		return previewEdge, previewEdge
	}
	if w >= h {
		return previewEdge, max(1, int(previewEdge*h/w))
	}
	return max(1, int(previewEdge*w/h)), previewEdge
}
