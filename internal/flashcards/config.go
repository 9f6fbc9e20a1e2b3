package flashcards

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/startpage-backend/internal/platform/envutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

const configPathEnv = "FLASHCARDS_CONFIG"

//go:embed flashcards.yaml
var defaultConfigYAML []byte

// Config holds the generator and scoring heuristics.
type Config struct {
	MatchThreshold        float64  `yaml:"match_threshold"`
	TrueProbability       float64  `yaml:"true_probability"`
	Placeholder           string   `yaml:"placeholder"`
	MinBlankSentenceChars int      `yaml:"min_blank_sentence_chars"`
	MinBlankSentenceWords int      `yaml:"min_blank_sentence_words"`
	MinClaimSentenceChars int      `yaml:"min_claim_sentence_chars"`
	MinChoiceDistractors  int      `yaml:"min_choice_distractors"`
	MaxChoiceDistractors  int      `yaml:"max_choice_distractors"`
	ClauseEvery           int      `yaml:"clause_every"`
	Stopwords             []string `yaml:"stopwords"`
	NegationWords         []string `yaml:"negation_words"`
}

type yamlConfig struct {
	Version int `yaml:"version"`
	Config  `yaml:",inline"`
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		MatchThreshold:        0.30,
		TrueProbability:       0.5,
		Placeholder:           "_____",
		MinBlankSentenceChars: 30,
		MinBlankSentenceWords: 5,
		MinClaimSentenceChars: 20,
		MinChoiceDistractors:  2,
		MaxChoiceDistractors:  3,
		ClauseEvery:           3,
		Stopwords:             []string{"the", "and", "but", "or", "if", "in", "on", "at", "to", "for", "with", "by"},
		NegationWords:         []string{"never", "rarely", "seldom", "hardly"},
	}
}

// ParseConfig overlays the YAML document on the defaults. Fields that are
// missing keep their default; out of range fields are an error.
func ParseConfig(data []byte) (Config, error) {
	y := yamlConfig{Config: DefaultConfig()}
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Config{}, fmt.Errorf("parse flashcards config: %w", err)
	}
	if y.Version > 1 {
		return Config{}, fmt.Errorf("unsupported flashcards config version %d", y.Version)
	}
	if err := y.Config.Validate(); err != nil {
		return Config{}, err
	}
	return y.Config, nil
}

func (c Config) Validate() error {
	switch {
	case c.MatchThreshold < 0 || c.MatchThreshold > 1:
		return fmt.Errorf("match_threshold must be within [0,1], got %v", c.MatchThreshold)
	case c.TrueProbability < 0 || c.TrueProbability > 1:
		return fmt.Errorf("true_probability must be within [0,1], got %v", c.TrueProbability)
	case strings.TrimSpace(c.Placeholder) == "":
		return fmt.Errorf("placeholder must not be empty")
	case c.MinChoiceDistractors < 1 || c.MaxChoiceDistractors < c.MinChoiceDistractors:
		return fmt.Errorf("choice distractor bounds invalid: min=%d max=%d", c.MinChoiceDistractors, c.MaxChoiceDistractors)
	case c.ClauseEvery < 1:
		return fmt.Errorf("clause_every must be at least 1, got %d", c.ClauseEvery)
	case len(c.NegationWords) == 0:
		return fmt.Errorf("negation_words must not be empty")
	}
	return nil
}

// LoadConfig reads the file named by FLASHCARDS_CONFIG (or the embedded
// defaults) and then applies FLASHCARD_MATCH_THRESHOLD and
// FLASHCARD_TRUE_PROBABILITY. Any invalid input falls back with a warning.
func LoadConfig(log *logger.Logger) Config {
	cfg := DefaultConfig()
	data := defaultConfigYAML
	if path := strings.TrimSpace(os.Getenv(configPathEnv)); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("flashcards: config file unreadable; using defaults", "path", path, "error", err)
		} else {
			data = raw
		}
	}
	if parsed, err := ParseConfig(data); err != nil {
		log.Warn("flashcards: config invalid; using defaults", "error", err)
	} else {
		cfg = parsed
	}

	withEnv := cfg
	withEnv.MatchThreshold = envutil.Float("FLASHCARD_MATCH_THRESHOLD", cfg.MatchThreshold)
	withEnv.TrueProbability = envutil.Float("FLASHCARD_TRUE_PROBABILITY", cfg.TrueProbability)
	if err := withEnv.Validate(); err != nil {
		log.Warn("flashcards: env override invalid; ignoring", "error", err)
		return cfg
	}
	return withEnv
}

func (c Config) isStopword(w string) bool {
	for _, s := range c.Stopwords {
		if strings.EqualFold(s, w) {
			return true
		}
	}
	return false
}
