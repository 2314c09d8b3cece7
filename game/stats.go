package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CJendantix/snake/game/manager"
)

// SessionStats aggregates finished games for the lifetime of the
// process. Nothing is persisted; the session is ephemeral.
type SessionStats struct {
	UUID        string
	StartTime   time.Time
	GamesPlayed int
	SessionHigh int
	TotalScore  int
	WallDeaths  int
	SelfDeaths  int
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
	}
}

// RecordGame rolls a finished game into the session aggregates.
func (s *SessionStats) RecordGame(score int, cause manager.CollisionType) {
	s.GamesPlayed++
	s.TotalScore += score
	if score > s.SessionHigh {
		s.SessionHigh = score
	}
	switch cause {
	case manager.WallCollision:
		s.WallDeaths++
	case manager.SelfCollision:
		s.SelfDeaths++
	}
}

func (s *SessionStats) AverageScore() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.GamesPlayed)
}

// Elapsed returns the time since the session started.
func (s *SessionStats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// Summary formats the session for the exit log line.
func (s *SessionStats) Summary() string {
	return fmt.Sprintf("games=%d high=%d avg=%.2f wall=%d self=%d elapsed=%s",
		s.GamesPlayed, s.SessionHigh, s.AverageScore(),
		s.WallDeaths, s.SelfDeaths, s.Elapsed().Round(time.Second))
}
