package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingSessions(t *testing.T) {
	cfg := testConfig()
	cfg.BattleSchedule = "FREQ=WEEKLY;BYDAY=WE,SA;BYHOUR=19"
	from := time.Date(2025, 3, 3, 12, 30, 15, 0, time.UTC)

	sessions, err := UpcomingSessions(cfg, from, 3)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		time.Date(2025, 3, 5, 19, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 8, 19, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 19, 0, 0, 0, time.UTC),
	}, sessions)
}

func TestUpcomingSessions_SameDayLaterSession(t *testing.T) {
	cfg := testConfig()
	cfg.BattleSchedule = "FREQ=WEEKLY;BYDAY=WE;BYHOUR=19"

	// Wednesday afternoon, the evening session is still ahead
	sessions, err := UpcomingSessions(cfg, time.Date(2025, 3, 5, 15, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, time.Date(2025, 3, 5, 19, 0, 0, 0, time.UTC), sessions[0])

	// Wednesday night, it has passed
	sessions, err = UpcomingSessions(cfg, time.Date(2025, 3, 5, 21, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 12, 19, 0, 0, 0, time.UTC), sessions[0])
}

func TestUpcomingSessions_NoSchedule(t *testing.T) {
	sessions, err := UpcomingSessions(testConfig(), time.Now(), 5)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestUpcomingSessions_InvalidRule(t *testing.T) {
	cfg := testConfig()
	cfg.BattleSchedule = "FREQ=SOMETIMES"

	_, err := UpcomingSessions(cfg, time.Now(), 1)
	assert.Error(t, err)
}
