package app

import (
	"runtime"

	"hiragana-practice/internal/config"
	"hiragana-practice/internal/credentials"
	"hiragana-practice/internal/gui"
	apptheme "hiragana-practice/internal/gui/theme"
	"hiragana-practice/internal/kana"
	"hiragana-practice/internal/logger"
	"hiragana-practice/internal/navigation"
	"hiragana-practice/internal/render"
	"hiragana-practice/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Hiragana Practice"
	AppID      = "com.hiraganapractice.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	navigator  *navigation.Navigator
	guiManager *gui.Manager
	handlers   *Handlers
	shutdown   *shutdown.Manager
}

// NewApplication wires every component from cfg. Nothing here touches the
// credential file; it is read on the first login or register.
func NewApplication(cfg config.Config) (*Application, error) {
	log := logger.New(cfg.LogBackend, logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	th, err := apptheme.New(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	fyneApp.Settings().SetTheme(th)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()

	chart := kana.Default()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":      AppVersion,
		"go_version":   runtime.Version(),
		"data_file":    cfg.DataFile,
		"export_dir":   cfg.ExportDir,
		"custom_font":  th.HasCustomFont(),
		"kana_entries": chart.Len(),
	})

	store := credentials.NewStore(cfg.DataFile, log)
	navigator := navigation.NewNavigator(log)

	style := render.DefaultStyle()
	style.Color = cfg.StrokeColor()
	style.Width = cfg.Stroke.Width
	exporter := render.NewExporter(cfg.ExportDir, style, log)

	guiManager := gui.NewManager(window, chart, gui.CanvasStyle{
		Color: cfg.StrokeColor(),
		Width: cfg.Stroke.Width,
	}, log)
	guiManager.SetPreviewer(exporter)

	handlers := NewHandlers(store, navigator, chart, exporter, guiManager, log)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		navigator:  navigator,
		guiManager: guiManager,
		handlers:   handlers,
		shutdown:   shutdown.NewManager(log),
	}
	a.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetLoginHandler(a.handlers.HandleLogin)
	a.guiManager.SetRegisterHandler(a.handlers.HandleRegister)
	a.guiManager.SetSelectHandler(a.handlers.HandleSelect)
	a.guiManager.SetBackHandler(a.handlers.HandleBack)
	a.guiManager.SetExportHandler(a.handlers.HandleExport)

	a.navigator.OnChange(func(_, to navigation.Screen) {
		a.guiManager.Show(to)
	})

	a.shutdown.Register("fyne", func() {
		fyne.Do(a.fyneApp.Quit)
	})
}

// Run shows the login screen and blocks in the GUI loop until the window
// closes or a termination signal arrives.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen()

	a.guiManager.Show(a.navigator.Current())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
