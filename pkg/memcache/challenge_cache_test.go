package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChallengesSetAndGet(t *testing.T) {
	c := NewChallenges()

	c.Set("session-1", "account-1", true, time.Minute)
	c.Set("session-1", "account-2", false, time.Minute)

	allowed, ok := c.Get("session-1", "account-1")
	require.True(t, ok)
	require.True(t, allowed)

	allowed, ok = c.Get("session-1", "account-2")
	require.True(t, ok)
	require.False(t, allowed)

	_, ok = c.Get("session-1", "account-3")
	require.False(t, ok)

	_, ok = c.Get("session-2", "account-1")
	require.False(t, ok)
}

func TestChallengesExpiry(t *testing.T) {
	c := NewChallenges()

	c.Set("session-1", "account-1", true, -time.Second)

	_, ok := c.Get("session-1", "account-1")
	require.False(t, ok)
}

func TestChallengesInvalidate(t *testing.T) {
	c := NewChallenges()

	c.Set("session-1", "account-1", true, time.Minute)
	c.Set("session-1", "account-2", true, time.Minute)
	c.Set("session-2", "account-1", true, time.Minute)

	c.Invalidate("session-1")

	_, ok := c.Get("session-1", "account-1")
	require.False(t, ok)
	_, ok = c.Get("session-1", "account-2")
	require.False(t, ok)

	allowed, ok := c.Get("session-2", "account-1")
	require.True(t, ok)
	require.True(t, allowed)
}
