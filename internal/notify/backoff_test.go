package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReconnectDelaysDoubleAndCap(t *testing.T) {
	p := DefaultReconnectPolicy

	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second, // capped
		30 * time.Second,
	}
	for i, expected := range want {
		d, ok := p.Delay(i + 1)
		assert.True(t, ok, "attempt %d", i+1)
		assert.Equal(t, expected, d, "attempt %d", i+1)
	}
}

func TestReconnectBudgetExhausted(t *testing.T) {
	p := DefaultReconnectPolicy
	_, ok := p.Delay(p.MaxAttempts)
	assert.True(t, ok)
	_, ok = p.Delay(p.MaxAttempts + 1)
	assert.False(t, ok)
	_, ok = p.Delay(0)
	assert.False(t, ok)
}
