package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestScoreboardUnmarshalLegacyList(t *testing.T) {
	legacy := `[
		{"name": "Alice", "email": "a@example.com", "marketing_consent": true, "score": 3, "total_time": 20.5, "timestamp": "2024-06-01T12:00:00Z"},
		{"name": "Bob", "email": "b@example.com", "marketing_consent": false, "score": 1, "total_time": 9, "timestamp": "2024-06-01T13:00:00Z"}
	]`
	wrapped := `{"quiz_title": "", "quiz_description": "", "scores": ` + legacy + `}`

	var fromLegacy, fromWrapped Scoreboard
	if err := json.Unmarshal([]byte(legacy), &fromLegacy); err != nil {
		t.Fatalf("legacy unmarshal: %v", err)
	}
	if err := json.Unmarshal([]byte(wrapped), &fromWrapped); err != nil {
		t.Fatalf("wrapped unmarshal: %v", err)
	}

	if len(fromLegacy.Scores) != 2 {
		t.Fatalf("expected 2 legacy entries, got %d", len(fromLegacy.Scores))
	}
	for i := range fromLegacy.Scores {
		if fromLegacy.Scores[i] != fromWrapped.Scores[i] {
			t.Fatalf("legacy and wrapped entries differ at %d: %+v vs %+v",
				i, fromLegacy.Scores[i], fromWrapped.Scores[i])
		}
	}
}

func TestScoreboardUnmarshalKeepsMetadata(t *testing.T) {
	doc := `{"quiz_title": "Retro", "quiz_description": "80s", "last_updated": "2024-06-01T12:00:00Z", "scores": []}`

	var sb Scoreboard
	if err := json.Unmarshal([]byte(doc), &sb); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sb.QuizTitle != "Retro" || sb.QuizDescription != "80s" {
		t.Fatalf("expected metadata preserved, got %+v", sb)
	}
}

func TestScoreboardUnmarshalRejectsGarbage(t *testing.T) {
	var sb Scoreboard
	if err := json.Unmarshal([]byte(`"not a scoreboard"`), &sb); err == nil {
		t.Fatalf("expected error for non-scoreboard document")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("A"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected short name rejection, got %v", err)
	}
	if err := ValidateName("Al"); err != nil {
		t.Fatalf("two characters must pass, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last+tag@sub.example.com"}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com"}

	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Fatalf("%q must pass, got %v", email, err)
		}
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("%q must be rejected, got %v", email, err)
		}
	}
}

func TestDerivedViewsFromResult(t *testing.T) {
	answer := 0
	result := SessionResult{
		SessionID: "s1",
		Player: Player{
			Name:             "Alice",
			Email:            "alice@example.com",
			MarketingConsent: true,
		},
		Score:     1,
		TotalTime: 7.5,
		Outcomes: []QuestionOutcome{
			{QuestionID: 1, PlayerAnswer: &answer, IsCorrect: true, TimeTaken: 7.5},
		},
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	entry := EntryFromResult(result)
	if entry.Name != "Alice" || entry.Score != 1 || entry.TotalTime != 7.5 || !entry.MarketingConsent {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if !entry.Timestamp.Equal(result.Timestamp) {
		t.Fatalf("entry timestamp must match the result")
	}

	record := StatsFromResult(result)
	if record.SessionID != "s1" || record.FinalScore != 1 || record.TotalQuestions != 1 {
		t.Fatalf("unexpected record %+v", record)
	}
	if len(record.Questions) != 1 || record.Questions[0].QuestionID != 1 {
		t.Fatalf("expected full outcomes on the record, got %+v", record.Questions)
	}
}
