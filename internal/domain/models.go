package domain

import "time"

// Question is a single multiple-choice question. Questions are immutable
// once loaded from the bank.
type Question struct {
	ID          int      `json:"id" yaml:"id"`
	Text        string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct_answer" yaml:"correct_answer"`
	Explanation string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Player is the identity captured at registration. Score fields live on the
// session result, not here.
type Player struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	MarketingConsent bool      `json:"marketing_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

// QuestionOutcome records how one question went inside a session.
// PlayerAnswer is nil when the question timed out.
type QuestionOutcome struct {
	QuestionID   int      `json:"question_id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Correct      int      `json:"correct_answer"`
	PlayerAnswer *int     `json:"player_answer"`
	IsCorrect    bool     `json:"is_correct"`
	TimeTaken    float64  `json:"time_taken"`
	TimedOut     bool     `json:"timed_out"`
}

// SessionResult is the immutable unit a finished session hands to the
// recorder. Score counts correct outcomes; TotalTime sums per-question time.
type SessionResult struct {
	SessionID string
	Player    Player
	Score     int
	TotalTime float64
	Outcomes  []QuestionOutcome
	Timestamp time.Time
}

// ScoreboardEntry is the ranking-relevant subset of a session result.
type ScoreboardEntry struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	MarketingConsent bool      `json:"marketing_consent"`
	Score            int       `json:"score"`
	TotalTime        float64   `json:"total_time"`
	Timestamp        time.Time `json:"timestamp"`
}

// StatsRecord is the full audit view of one session, appended to the stats
// store and never read back by the live game.
type StatsRecord struct {
	SessionID      string            `json:"session_id"`
	PlayerName     string            `json:"player_name"`
	PlayerEmail    string            `json:"player_email"`
	Timestamp      time.Time         `json:"timestamp"`
	FinalScore     int               `json:"final_score"`
	TotalTime      float64           `json:"total_time"`
	TotalQuestions int               `json:"total_questions"`
	Questions      []QuestionOutcome `json:"questions"`
}

// EntryFromResult derives the scoreboard view of a session result.
func EntryFromResult(r SessionResult) ScoreboardEntry {
	return ScoreboardEntry{
		Name:             r.Player.Name,
		Email:            r.Player.Email,
		MarketingConsent: r.Player.MarketingConsent,
		Score:            r.Score,
		TotalTime:        r.TotalTime,
		Timestamp:        r.Timestamp,
	}
}

// StatsFromResult derives the stats-store view of a session result.
func StatsFromResult(r SessionResult) StatsRecord {
	return StatsRecord{
		SessionID:      r.SessionID,
		PlayerName:     r.Player.Name,
		PlayerEmail:    r.Player.Email,
		Timestamp:      r.Timestamp,
		FinalScore:     r.Score,
		TotalTime:      r.TotalTime,
		TotalQuestions: len(r.Outcomes),
		Questions:      r.Outcomes,
	}
}
