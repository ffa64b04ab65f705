package shutdown

import (
	"testing"

	"hiragana-practice/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdown_RunsHooksInReverseOnce(t *testing.T) {
	m := NewManager(logger.NoOp{})

	var order []string
	m.Register("window", func() { order = append(order, "window") })
	m.Register("logger", func() { order = append(order, "logger") })

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"logger", "window"}, order)

	select {
	case <-m.done:
	default:
		t.Fatal("done not closed after Shutdown")
	}
}
