package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockIsUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("IST", 5*60*60+30*60)
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, loc)

	c := NewFixed(at)

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Now().Equal(at))
	assert.Equal(t, c.Now(), c.Now())
}

func TestSystemClockIsUTC(t *testing.T) {
	t.Parallel()

	before := time.Now()
	now := NewSystem().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
}
