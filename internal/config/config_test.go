package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"qliz/internal/domain"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "quiz.json", `{
		"quiz_metadata": {"title": "Retro Quiz"},
		"questions": [
			{"id": 1, "question": "2+2?", "options": ["3", "4"], "correct_answer": 1}
		]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Quiz.QuestionsPerGame != DefaultQuestionsPerGame {
		t.Fatalf("expected default questions per game, got %d", cfg.Quiz.QuestionsPerGame)
	}
	if cfg.QuestionTimeout() != DefaultTimePerQuestion {
		t.Fatalf("expected default timeout, got %v", cfg.QuestionTimeout())
	}
	if cfg.Quiz.ScoreboardPath != DefaultScoreboardPath || cfg.Quiz.StatsPath != DefaultStatsPath {
		t.Fatalf("expected default store paths, got %+v", cfg.Quiz)
	}
}

func TestLoadReadsFullMetadata(t *testing.T) {
	path := writeConfig(t, "quiz.json", `{
		"quiz_metadata": {
			"title": "Retro Quiz",
			"description": "80s trivia",
			"questions_per_game": 3,
			"time_per_question": 12.5,
			"scoreboard_file": "board.json",
			"stats_file": "detail.json"
		},
		"questions": [
			{"id": 1, "question": "2+2?", "options": ["3", "4"], "correct_answer": 1, "explanation": "math"}
		]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Quiz.QuestionsPerGame != 3 {
		t.Fatalf("expected 3 questions per game, got %d", cfg.Quiz.QuestionsPerGame)
	}
	if want := 12500 * time.Millisecond; cfg.QuestionTimeout() != want {
		t.Fatalf("expected %v timeout, got %v", want, cfg.QuestionTimeout())
	}
	if cfg.Questions[0].Explanation != "math" {
		t.Fatalf("expected explanation to load, got %+v", cfg.Questions[0])
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "quiz.yaml", `
quiz_metadata:
  title: Retro Quiz
  questions_per_game: 2
questions:
  - id: 1
    question: "2+2?"
    options: ["3", "4"]
    correct_answer: 1
  - id: 2
    question: "capital of France?"
    options: ["Paris", "Rome"]
    correct_answer: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if len(cfg.Questions) != 2 || cfg.Quiz.QuestionsPerGame != 2 {
		t.Fatalf("unexpected yaml config %+v", cfg)
	}
}

func TestLoadRejectsEmptyBank(t *testing.T) {
	path := writeConfig(t, "quiz.json", `{"quiz_metadata": {"title": "x"}, "questions": []}`)

	if _, err := Load(path); !errors.Is(err, domain.ErrNoQuestions) {
		t.Fatalf("expected empty-bank error, got %v", err)
	}
}

func TestLoadRejectsInvalidQuestions(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing text", `{"questions": [{"id": 1, "options": ["a", "b"], "correct_answer": 0}]}`},
		{"one option", `{"questions": [{"id": 1, "question": "q", "options": ["a"], "correct_answer": 0}]}`},
		{"correct out of range", `{"questions": [{"id": 1, "question": "q", "options": ["a", "b"], "correct_answer": 2}]}`},
		{"negative correct", `{"questions": [{"id": 1, "question": "q", "options": ["a", "b"], "correct_answer": -1}]}`},
	}

	for _, tc := range cases {
		path := writeConfig(t, "quiz.json", tc.body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, "quiz.json", `{"questions": [`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error for malformed config")
	}
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
