// Package quiz holds the gender quiz game state: XP, levels, lives and
// streaks, plus the small per-user lists the quiz CLI persists between runs.
package quiz

import "github.com/heartmarshall/legenre/internal/domain"

const (
	// StartingLives is the number of wrong answers a session tolerates.
	StartingLives = 3

	baseXP         = 10
	streakBonusXP  = 5
	streakBonusPer = 5
	xpPerLevel     = 100
)

// Progress survives across sessions.
type Progress struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}

// NewProgress returns the state of a brand-new player.
func NewProgress() Progress {
	return Progress{Level: 1}
}

// XPForNextLevel is the XP needed to leave the current level.
func (p Progress) XPForNextLevel() int {
	return p.Level * xpPerLevel
}

// Title is the rank shown next to the level.
func (p Progress) Title() string {
	return LevelTitle(p.Level)
}

// LevelTitle maps a level to its rank name.
func LevelTitle(level int) string {
	switch {
	case level < 5:
		return "Novice"
	case level < 10:
		return "Apprentice"
	case level < 20:
		return "Scholar"
	case level < 30:
		return "Expert"
	case level < 50:
		return "Master"
	default:
		return "Academician"
	}
}

// Outcome reports what an answer changed.
type Outcome struct {
	Correct   bool
	XPGained  int
	LeveledUp bool
	GameOver  bool
}

// Session is one run of the quiz. Lives and Streak reset when a new
// session starts; Progress carries over.
type Session struct {
	Progress Progress
	Lives    int
	Streak   int
}

// NewSession starts a session on top of saved progress.
func NewSession(p Progress) *Session {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XP < 0 {
		p.XP = 0
	}
	return &Session{Progress: p, Lives: StartingLives}
}

// Answer scores a guess against the word's entries. A word documented
// with both genders accepts either.
func (s *Session) Answer(entries []domain.LexicalEntry, guess domain.Gender) Outcome {
	for _, e := range entries {
		if e.Gender == guess {
			return s.OnCorrect()
		}
	}
	return s.OnWrong()
}

// OnCorrect extends the streak and awards 10 XP plus 5 per full run of
// five correct answers, levelling up at most once.
func (s *Session) OnCorrect() Outcome {
	s.Streak++
	gain := baseXP + (s.Streak/streakBonusPer)*streakBonusXP
	s.Progress.XP += gain

	out := Outcome{Correct: true, XPGained: gain}
	if need := s.Progress.XPForNextLevel(); s.Progress.XP >= need {
		s.Progress.XP -= need
		s.Progress.Level++
		out.LeveledUp = true
	}
	return out
}

// OnWrong costs a life and breaks the streak. XP is never lost.
func (s *Session) OnWrong() Outcome {
	if s.Lives > 0 {
		s.Lives--
	}
	s.Streak = 0
	return Outcome{GameOver: s.Lives == 0}
}

// Over reports whether the session has run out of lives.
func (s *Session) Over() bool {
	return s.Lives <= 0
}

// Restart begins a new session keeping progress.
func (s *Session) Restart() {
	s.Lives = StartingLives
	s.Streak = 0
}
