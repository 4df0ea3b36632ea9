package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"qliz/internal/domain"
)

// Defaults applied when the quiz metadata omits optional fields.
const (
	DefaultQuestionsPerGame = 5
	DefaultTimePerQuestion  = 30 * time.Second
	DefaultScoreboardPath   = "scoreboard.json"
	DefaultStatsPath        = "stats.json"
)

// Metadata is the quiz_metadata section of the config document.
type Metadata struct {
	Title            string  `json:"title" yaml:"title"`
	Description      string  `json:"description" yaml:"description"`
	QuestionsPerGame int     `json:"questions_per_game" yaml:"questions_per_game"`
	TimePerQuestion  float64 `json:"time_per_question" yaml:"time_per_question"`
	ScoreboardPath   string  `json:"scoreboard_file" yaml:"scoreboard_file"`
	StatsPath        string  `json:"stats_file" yaml:"stats_file"`
	// BankSource optionally points the question bank at Postgres
	// ("postgres://...#bank-id") instead of the inline questions list.
	BankSource string `json:"bank_source,omitempty" yaml:"bank_source,omitempty"`
}

// Config is the full quiz configuration document: metadata plus the inline
// question list. Loaded once at startup, read-only afterwards.
type Config struct {
	Quiz      Metadata          `json:"quiz_metadata" yaml:"quiz_metadata"`
	Questions []domain.Question `json:"questions" yaml:"questions"`
}

// QuestionTimeout returns the per-question time limit as a duration.
func (c Config) QuestionTimeout() time.Duration {
	return time.Duration(c.Quiz.TimePerQuestion * float64(time.Second))
}

// Load reads the config document from path. JSON is the native format; files
// ending in .yaml or .yml are parsed as YAML. Any read, parse, or validation
// failure is fatal for startup.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg.Quiz)
	if cfg.Quiz.BankSource == "" {
		if err := ValidateQuestions(cfg.Questions); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func applyDefaults(m *Metadata) {
	if m.QuestionsPerGame <= 0 {
		m.QuestionsPerGame = DefaultQuestionsPerGame
	}
	if m.TimePerQuestion <= 0 {
		m.TimePerQuestion = DefaultTimePerQuestion.Seconds()
	}
	if m.ScoreboardPath == "" {
		m.ScoreboardPath = DefaultScoreboardPath
	}
	if m.StatsPath == "" {
		m.StatsPath = DefaultStatsPath
	}
}

// ValidateQuestions rejects an empty bank and questions with missing fields
// or an out-of-range correct index.
func ValidateQuestions(questions []domain.Question) error {
	if len(questions) == 0 {
		return domain.ErrNoQuestions
	}
	for i, q := range questions {
		if q.Text == "" {
			return fmt.Errorf("question %d: missing text", i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: need at least two options", i)
		}
		if len(q.Options) > 6 {
			return fmt.Errorf("question %d: at most six options supported", i)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d: correct answer index %d out of range", i, q.Correct)
		}
	}
	return nil
}
