package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/cb-team-builder/internal/config"
)

// sessionHorizon limits how far ahead sessions are looked for
const sessionHorizon = 1 // years

// UpcomingSessions returns up to count clan battle sessions after from, as scheduled
// by the battleSchedule rule. An unset schedule has no sessions.
func UpcomingSessions(cfg *config.Config, from time.Time, count int) ([]time.Time, error) {
	if cfg.BattleSchedule == "" || count <= 0 {
		return nil, nil
	}

	rule, err := rrule.StrToRRule(cfg.BattleSchedule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse battle schedule: %w", err)
	}

	// Anchor at the start of the day so BYHOUR rules don't inherit from's minutes
	rule.DTStart(time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location()))

	sessions := rule.Between(from, from.AddDate(sessionHorizon, 0, 0), true)
	if len(sessions) > count {
		sessions = sessions[:count]
	}

	return sessions, nil
}

// nextSessionDate formats the date of the next session, or returns "" when none is scheduled
func nextSessionDate(cfg *config.Config, from time.Time) (string, error) {
	sessions, err := UpcomingSessions(cfg, from, 1)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", nil
	}
	return sessions[0].Format("2006-01-02"), nil
}
