// Package navigation models which screen is active and the legal moves
// between screens: login -> chart -> detail -> chart.
package navigation

import (
	"errors"
	"fmt"

	"hiragana-practice/internal/kana"
	"hiragana-practice/internal/logger"
)

var ErrInvalidTransition = errors.New("invalid screen transition")

// Screen is the closed set of screens. Only this package can add variants.
type Screen interface {
	Name() string
	isScreen()
}

type LoginScreen struct{}

type ChartScreen struct {
	Username string
}

type DetailScreen struct {
	Username string
	Entry    kana.Entry
}

func (LoginScreen) Name() string  { return "login" }
func (ChartScreen) Name() string  { return "chart" }
func (DetailScreen) Name() string { return "detail" }

func (LoginScreen) isScreen()  {}
func (ChartScreen) isScreen()  {}
func (DetailScreen) isScreen() {}

// ChangeFunc observes a completed transition.
type ChangeFunc func(from, to Screen)

// Navigator holds the single active screen. It is driven from the GUI
// goroutine only and does no locking.
type Navigator struct {
	current   Screen
	listeners []ChangeFunc
	logger    logger.Logger
}

func NewNavigator(log logger.Logger) *Navigator {
	return &Navigator{
		current: LoginScreen{},
		logger:  log,
	}
}

func (n *Navigator) Current() Screen {
	return n.current
}

// OnChange registers fn; listeners run in registration order after the
// screen has switched.
func (n *Navigator) OnChange(fn ChangeFunc) {
	n.listeners = append(n.listeners, fn)
}

// Login moves from the login screen to the chart for an authenticated user.
func (n *Navigator) Login(username string) error {
	if _, ok := n.current.(LoginScreen); !ok {
		return n.reject("login")
	}
	n.switchTo(ChartScreen{Username: username})
	return nil
}

// Select opens the detail screen for entry.
func (n *Navigator) Select(entry kana.Entry) error {
	chart, ok := n.current.(ChartScreen)
	if !ok {
		return n.reject("select")
	}
	n.switchTo(DetailScreen{Username: chart.Username, Entry: entry})
	return nil
}

// Back returns from the detail screen to the chart.
func (n *Navigator) Back() error {
	detail, ok := n.current.(DetailScreen)
	if !ok {
		return n.reject("back")
	}
	n.switchTo(ChartScreen{Username: detail.Username})
	return nil
}

func (n *Navigator) reject(action string) error {
	err := fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, n.current.Name())
	n.logger.Warning("Navigator", "transition rejected", map[string]interface{}{
		"action": action,
		"screen": n.current.Name(),
	})
	return err
}

func (n *Navigator) switchTo(next Screen) {
	prev := n.current
	n.current = next

	n.logger.Debug("Navigator", "screen changed", map[string]interface{}{
		"from": prev.Name(),
		"to":   next.Name(),
	})

	for _, fn := range n.listeners {
		fn(prev, next)
	}
}
