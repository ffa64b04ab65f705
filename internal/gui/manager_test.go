package gui

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"hiragana-practice/internal/drawing"
	"hiragana-practice/internal/kana"
	"hiragana-practice/internal/logger"
	"hiragana-practice/internal/navigation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	return NewManager(w, kana.Default(), CanvasStyle{Color: color.Black, Width: 3}, logger.NoOp{})
}

func TestManager_LoginViewForwardsFields(t *testing.T) {
	m := newTestManager(t)

	var got []string
	m.SetLoginHandler(func(u, p string) { got = append(got, "login", u, p) })
	m.SetRegisterHandler(func(u, p string) { got = append(got, "register", u, p) })

	m.Show(navigation.LoginScreen{})
	v := m.LoginView()
	require.NotNil(t, v)

	test.Type(v.Username, "alice")
	test.Type(v.Password, "pw1")
	test.Tap(v.RegisterButton)
	test.Tap(v.LoginButton)

	assert.Equal(t, []string{"register", "alice", "pw1", "login", "alice", "pw1"}, got)
	assert.True(t, v.Password.Password, "password entry is masked")
}

func TestManager_ChartButtonsCarryTheirEntry(t *testing.T) {
	m := newTestManager(t)

	var selected []kana.Entry
	m.SetSelectHandler(func(e kana.Entry) { selected = append(selected, e) })

	m.Show(navigation.ChartScreen{Username: "alice"})
	v := m.ChartView()
	require.NotNil(t, v)

	assert.Len(t, v.Buttons, kana.Default().Len())
	assert.Equal(t, "Signed in as alice", v.User.Text)

	btn, ok := v.Button("ぴょ")
	require.True(t, ok)
	assert.Equal(t, "ぴょ", btn.Button.Text)
	test.Tap(btn.Button)

	btn, ok = v.Button("あ")
	require.True(t, ok)
	test.Tap(btn.Button)

	assert.Equal(t, []kana.Entry{
		{Glyph: "ぴょ", Romaji: "pyo", Strokes: 1},
		{Glyph: "あ", Romaji: "a", Strokes: 3},
	}, selected)
}

func TestManager_ChartViewIsReused(t *testing.T) {
	m := newTestManager(t)

	first := m.Render(navigation.ChartScreen{Username: "alice"})
	m.Render(navigation.DetailScreen{Username: "alice", Entry: kana.Entry{Glyph: "い", Romaji: "i", Strokes: 2}})
	second := m.Render(navigation.ChartScreen{Username: "alice"})

	assert.Same(t, first, second)
	assert.Nil(t, m.DetailView())
}

func TestManager_DetailView(t *testing.T) {
	m := newTestManager(t)
	entry := kana.Entry{Glyph: "か", Romaji: "ka", Strokes: 3}

	backs := 0
	m.SetBackHandler(func() { backs++ })

	var exported []drawing.Stroke
	m.SetExportHandler(func(e kana.Entry, s []drawing.Stroke, b drawing.Rect) {
		assert.Equal(t, entry, e)
		assert.Positive(t, b.Width())
		exported = s
	})

	m.Show(navigation.DetailScreen{Username: "alice", Entry: entry})
	v := m.DetailView()
	require.NotNil(t, v)

	assert.Equal(t, "か", v.Glyph.Text)
	assert.Equal(t, "ka", v.Romaji.Text)
	assert.Equal(t, "Strokes drawn: 0 / 3", v.StrokeInfo.Text)

	v.Canvas.Resize(fyne.NewSize(200, 200))
	down := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	down.Position = fyne.NewPos(10, 10)
	v.Canvas.MouseDown(down)
	move := &fyne.DragEvent{Dragged: fyne.NewDelta(10, 10)}
	move.Position = fyne.NewPos(20, 20)
	v.Canvas.Dragged(move)
	v.Canvas.DragEnd()

	assert.Equal(t, "Strokes drawn: 1 / 3", v.StrokeInfo.Text)

	test.Tap(v.ExportButton)
	require.Len(t, exported, 1)
	assert.Len(t, exported[0].Points, 2)

	test.Tap(v.ClearButton)
	assert.Zero(t, v.Canvas.Model().Len())
	assert.Equal(t, "Strokes drawn: 0 / 3", v.StrokeInfo.Text)

	test.Tap(v.BackButton)
	assert.Equal(t, 1, backs)
}

type fakePreviewer struct {
	calls   int
	strokes []drawing.Stroke
	width   int
	height  int
	err     error
}

func (f *fakePreviewer) Preview(strokes []drawing.Stroke, _ drawing.Rect, width, height int) (image.Image, error) {
	f.calls++
	f.strokes = strokes
	f.width, f.height = width, height
	if f.err != nil {
		return nil, f.err
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func TestManager_DetailPreviewFollowsStrokes(t *testing.T) {
	m := newTestManager(t)
	prev := &fakePreviewer{}
	m.SetPreviewer(prev)

	m.Show(navigation.DetailScreen{Username: "alice", Entry: kana.Entry{Glyph: "さ", Romaji: "sa", Strokes: 3}})
	v := m.DetailView()
	require.NotNil(t, v)
	assert.Nil(t, v.Preview.Image)

	v.Canvas.Resize(fyne.NewSize(200, 100))
	v.Canvas.Tapped(&fyne.PointEvent{Position: fyne.NewPos(50, 50)})

	require.NotNil(t, v.Preview.Image)
	assert.Equal(t, 1, prev.calls)
	assert.Len(t, prev.strokes, 1)
	assert.Equal(t, previewEdge, prev.width)
	assert.Equal(t, previewEdge/2, prev.height)

	test.Tap(v.ClearButton)
	assert.Nil(t, v.Preview.Image)
	assert.Equal(t, 1, prev.calls, "an empty canvas is not rasterised")
}

func TestManager_DetailPreviewErrorLeavesItEmpty(t *testing.T) {
	m := newTestManager(t)
	m.SetPreviewer(&fakePreviewer{err: errors.New("no opencv")})

	m.Show(navigation.DetailScreen{Entry: kana.Entry{Glyph: "す", Romaji: "su", Strokes: 2}})
	v := m.DetailView()
	v.Canvas.Resize(fyne.NewSize(200, 200))
	v.Canvas.Tapped(&fyne.PointEvent{Position: fyne.NewPos(20, 20)})

	assert.Equal(t, 1, v.Canvas.Model().Len())
	assert.Nil(t, v.Preview.Image)
}

func TestThumbnailSize(t *testing.T) {
	w, h := thumbnailSize(drawing.NewRect(0, 0, 100, 200))
	assert.Equal(t, previewEdge/2, w)
	assert.Equal(t, previewEdge, h)

	w, h = thumbnailSize(drawing.Rect{})
	assert.Equal(t, previewEdge, w)
	assert.Equal(t, previewEdge, h)
}

func TestManager_NewDetailViewPerEntry(t *testing.T) {
	m := newTestManager(t)

	m.Render(navigation.DetailScreen{Entry: kana.Entry{Glyph: "あ", Romaji: "a", Strokes: 3}})
	first := m.DetailView()
	m.Render(navigation.DetailScreen{Entry: kana.Entry{Glyph: "い", Romaji: "i", Strokes: 2}})
	second := m.DetailView()

	assert.NotSame(t, first, second)
	assert.NotSame(t, first.Canvas, second.Canvas)
}

func TestManager_NotifyShowsDialog(t *testing.T) {
	m := newTestManager(t)
	m.Show(navigation.LoginScreen{})

	m.Notify("Error", "Invalid username or password")

	overlay := m.window.Canvas().Overlays().Top()
	assert.NotNil(t, overlay)
}
