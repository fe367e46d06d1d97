package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	t.Run("Empty uses wall clock", func(t *testing.T) {
		c, err := Reference("")
		require.NoError(t, err)
		assert.IsType(t, Real{}, c)
		assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
		assert.Equal(t, time.UTC, c.Now().Location())
	})

	t.Run("Fixed instant", func(t *testing.T) {
		c, err := Reference("2026-02-28T12:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC), c.Now())
		assert.Equal(t, c.Now(), c.Now())
	})

	t.Run("Offset is normalised to UTC", func(t *testing.T) {
		c, err := Reference("2026-02-28T13:00:00+01:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC), c.Now())
	})

	t.Run("Invalid", func(t *testing.T) {
		c, err := Reference("yesterday")
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestFunc(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Func(func() time.Time { return at })
	assert.Equal(t, at, c.Now())
}
