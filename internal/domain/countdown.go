package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultRoundDuration applies when the configured duration is missing
	// or unparsable.
	DefaultRoundDuration = 30 * time.Minute

	// ReminderThreshold is the remaining time below which the one-time
	// low-time reminder fires.
	ReminderThreshold = 300
)

var leadingIntPattern = regexp.MustCompile(`^\s*(\d+)\s*(.*)$`)

// ParseRoundDuration parses a human duration string like "30 mins", "1 hour"
// or "45". The leading integer is taken; an hour-unit remainder multiplies by
// hours, anything else defaults to minutes. Unparsable input falls back to
// DefaultRoundDuration.
func ParseRoundDuration(raw string) time.Duration {
	match := leadingIntPattern.FindStringSubmatch(raw)
	if match == nil {
		return DefaultRoundDuration
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return DefaultRoundDuration
	}

	unit := strings.ToLower(strings.TrimSpace(match[2]))
	if isHourUnit(unit) {
		return time.Duration(value) * time.Hour
	}
	return time.Duration(value) * time.Minute
}

func isHourUnit(unit string) bool {
	for _, token := range []string{"hour", "hr", "h"} {
		if strings.HasPrefix(unit, token) {
			return true
		}
	}
	return false
}

// CountdownEvent is the outcome of a single countdown tick.
type CountdownEvent int

const (
	CountdownNone CountdownEvent = iota
	CountdownReminder
	CountdownExpired
)

// Countdown holds the active session timer state. Created when the session
// starts and destroyed when it ends; Remaining is never persisted across
// sessions. Not safe for concurrent use.
type Countdown struct {
	Total         int
	Remaining     int
	ReminderFired bool
	Expired       bool
}

func NewCountdown(total time.Duration) *Countdown {
	seconds := int(total / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{Total: seconds, Remaining: seconds}
}

// Tick advances the countdown by one second. The reminder fires exactly once,
// the first time Remaining drops below ReminderThreshold, and only for rounds
// of at least that length. Expiry is signalled exactly once; later ticks are
// no-ops.
func (c *Countdown) Tick() CountdownEvent {
	if c.Expired {
		return CountdownNone
	}

	c.Remaining--
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.Expired = true
		return CountdownExpired
	}

	if !c.ReminderFired && c.Total >= ReminderThreshold && c.Remaining < ReminderThreshold {
		c.ReminderFired = true
		return CountdownReminder
	}

	return CountdownNone
}
