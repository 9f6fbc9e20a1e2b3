package flashcards

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoContent       = errors.New("add more content to your notes")
	ErrInvalidCount    = errors.New("card count must be at least 1")
	ErrSessionNotFound = errors.New("flash card session not found")
	ErrAIUnavailable   = errors.New("ai flash card generation is not configured")
	ErrAIResponse      = errors.New("could not extract flash cards from the ai response")
)

type Kind string

const (
	KindFillInBlank    Kind = "fill-in-blank"
	KindTrueFalse      Kind = "true-false"
	KindMultipleChoice Kind = "multiple-choice"
	KindDirectQA       Kind = "direct-qa"
)

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(raw))); k {
	case KindFillInBlank, KindTrueFalse, KindMultipleChoice, KindDirectQA:
		return k, nil
	}
	return "", fmt.Errorf("unknown card kind %q", raw)
}

// Card is one study card. Options is only set for multiple-choice cards and
// always contains Back.
type Card struct {
	Front   string   `json:"front"`
	Back    string   `json:"back"`
	Kind    Kind     `json:"kind"`
	Options []string `json:"options,omitempty"`
}

func (c Card) clone() Card {
	if c.Options != nil {
		c.Options = append([]string(nil), c.Options...)
	}
	return c
}
