package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should pass", i)
	}
	assert.False(t, l.Allow("10.0.0.1"), "over the limit")
	assert.True(t, l.Allow("10.0.0.2"), "keys are independent")
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	l := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
	time.Sleep(15 * time.Millisecond)
	assert.True(t, l.Allow("k"), "window elapsed, slot frees up")
}
