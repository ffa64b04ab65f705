package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hiragana-practice/internal/logger"
)

// Hook is a named cleanup step.
type Hook struct {
	Name string
	Fn   func()
}

// Manager runs registered hooks once, newest first, on Shutdown or on
// SIGINT/SIGTERM.
type Manager struct {
	hooks  []Hook
	logger logger.Logger
	mu     sync.Mutex
	done   chan struct{}
	once   sync.Once
	stop   func()
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger: log,
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hooks = append(m.hooks, Hook{Name: name, Fn: fn})
}

// Listen starts watching for termination signals until Shutdown runs.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	m.stop = func() { signal.Stop(sigChan) }

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		hooks := append([]Hook(nil), m.hooks...)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"hooks": len(hooks),
		})

		for i := len(hooks) - 1; i >= 0; i-- {
			hooks[i].Fn()
			m.logger.Debug("ShutdownManager", "hook completed", map[string]interface{}{
				"hook": hooks[i].Name,
			})
		}

		if m.stop != nil {
			m.stop()
		}
		close(m.done)

		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}
