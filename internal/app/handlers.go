package app

import (
	"errors"
	"fmt"

	"hiragana-practice/internal/credentials"
	"hiragana-practice/internal/drawing"
	"hiragana-practice/internal/kana"
	"hiragana-practice/internal/logger"
	"hiragana-practice/internal/navigation"
	"hiragana-practice/internal/render"
)

const (
	titleError   = "Error"
	titleSuccess = "Success"
	titleExport  = "Export"

	msgInvalidLogin   = "Invalid username or password"
	msgUsernameTaken  = "Username already exists"
	msgEmptyFields    = "Please enter username and password"
	msgRegistered     = "Registration successful! Please login."
	msgStoreCorrupt   = "User data file is damaged and was not changed."
	msgNothingToSave  = "Draw something before exporting."
	msgStoreIOFailure = "Could not access user data: %v"
)

// Notifier presents a blocking informational message.
type Notifier interface {
	Notify(title, message string)
}

// Exporter writes a practice sheet and returns where it went.
type Exporter interface {
	Export(label string, strokes []drawing.Stroke, bounds drawing.Rect) (string, error)
}

// Handlers turns UI events into store, navigation and export calls. Every
// failure ends in a dialog; none of them stop the app.
type Handlers struct {
	store     *credentials.Store
	navigator *navigation.Navigator
	chart     kana.Chart
	exporter  Exporter
	notifier  Notifier
	logger    logger.Logger
}

func NewHandlers(store *credentials.Store, nav *navigation.Navigator, chart kana.Chart, exp Exporter, notifier Notifier, log logger.Logger) *Handlers {
	return &Handlers{
		store:     store,
		navigator: nav,
		chart:     chart,
		exporter:  exp,
		notifier:  notifier,
		logger:    log,
	}
}

func (h *Handlers) HandleLogin(username, password string) {
	ok, err := h.store.Authenticate(username, password)
	if err != nil {
		h.showStoreError("login", err)
		return
	}
	if !ok {
		h.notifier.Notify(titleError, msgInvalidLogin)
		return
	}

	if err := h.navigator.Login(username); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{"action": "login"})
	}
}

func (h *Handlers) HandleRegister(username, password string) {
	result, err := h.store.Register(username, password)
	if err != nil {
		h.showStoreError("register", err)
		return
	}

	switch result {
	case credentials.RegisterSuccess:
		h.notifier.Notify(titleSuccess, msgRegistered)
	case credentials.RegisterUsernameTaken:
		h.notifier.Notify(titleError, msgUsernameTaken)
	case credentials.RegisterEmptyField:
		h.notifier.Notify(titleError, msgEmptyFields)
	}
}

// HandleSelect opens the detail screen for entry. Entries that are not in
// the chart are dropped.
func (h *Handlers) HandleSelect(entry kana.Entry) {
	if known, ok := h.chart.Lookup(entry.Glyph); !ok || known != entry {
		h.logger.Warning("Handlers", "unknown character selected", map[string]interface{}{
			"glyph":  entry.Glyph,
			"romaji": entry.Romaji,
		})
		return
	}
	if err := h.navigator.Select(entry); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "select",
			"glyph":  entry.Glyph,
		})
	}
}

func (h *Handlers) HandleBack() {
	if err := h.navigator.Back(); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{"action": "back"})
	}
}

func (h *Handlers) HandleExport(entry kana.Entry, strokes []drawing.Stroke, bounds drawing.Rect) {
	path, err := h.exporter.Export(entry.Romaji, strokes, bounds)
	if errors.Is(err, render.ErrNothingToExport) {
		h.notifier.Notify(titleExport, msgNothingToSave)
		return
	}
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "export",
			"glyph":  entry.Glyph,
		})
		h.notifier.Notify(titleError, fmt.Sprintf("Export failed: %v", err))
		return
	}

	h.notifier.Notify(titleExport, "Saved to "+path)
}

func (h *Handlers) showStoreError(action string, err error) {
	h.logger.Error("Handlers", err, map[string]interface{}{
		"action": action,
		"store":  h.store.Path(),
	})

	if errors.Is(err, credentials.ErrCorruptStore) {
		h.notifier.Notify(titleError, msgStoreCorrupt)
		return
	}
	h.notifier.Notify(titleError, fmt.Sprintf(msgStoreIOFailure, err))
}
