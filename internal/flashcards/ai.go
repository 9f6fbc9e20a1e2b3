package flashcards

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

// TextGenerator is the language model call the AI generator needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

var jsonArrayRe = regexp.MustCompile(`\[[\s\S]*\]`)

// AIGenerator asks a language model for cards. Each call is a single
// request; errors are returned as is and never retried.
type AIGenerator struct {
	log    *logger.Logger
	client TextGenerator
}

// NewAIGenerator accepts a nil client; Generate then reports ErrAIUnavailable.
func NewAIGenerator(client TextGenerator, baseLog *logger.Logger) *AIGenerator {
	return &AIGenerator{log: baseLog.With("component", "AIFlashCards"), client: client}
}

func (g *AIGenerator) Available() bool { return g != nil && g.client != nil }

func aiSystemPrompt(n int) string {
	return fmt.Sprintf(`Generate %d flash cards from the following notes.
Each flash card should have a question (front) and answer (back).
Also specify a type for each card: either "multiplechoice" (with 4 options including the correct one),
"truefalse", or "fillinblank". Return the data as a JSON array of objects, each with
"front", "back", "type", and optionally "options" properties.`, n)
}

type aiCard struct {
	Front   string   `json:"front"`
	Back    string   `json:"back"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

func (g *AIGenerator) Generate(ctx context.Context, text string, n int) ([]Card, error) {
	if !g.Available() {
		return nil, ErrAIUnavailable
	}
	if n < 1 {
		return nil, ErrInvalidCount
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}

	reply, err := g.client.GenerateText(ctx, aiSystemPrompt(n), text)
	if err != nil {
		return nil, fmt.Errorf("generate flash cards: %w", err)
	}
	cards, err := ParseAICards(reply)
	if err != nil {
		g.log.Warn("AI reply unusable", "error", err, "reply_length", len(reply))
		return nil, err
	}
	if len(cards) > n {
		cards = cards[:n]
	}
	return cards, nil
}

// ParseAICards extracts the first JSON array in reply and converts its
// entries to cards, dropping entries without a front or back.
func ParseAICards(reply string) ([]Card, error) {
	raw := jsonArrayRe.FindString(reply)
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON array in reply", ErrAIResponse)
	}
	var parsed []aiCard
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIResponse, err)
	}

	var cards []Card
	for _, p := range parsed {
		front, back := strings.TrimSpace(p.Front), strings.TrimSpace(p.Back)
		if front == "" || back == "" {
			continue
		}
		card := Card{Front: front, Back: back, Kind: aiKind(p.Type)}
		switch card.Kind {
		case KindTrueFalse:
			card.Back = strings.ToLower(back)
		case KindMultipleChoice:
			card.Options = choiceOptions(back, p.Options)
			if len(card.Options) < 2 {
				card.Kind, card.Options = KindDirectQA, nil
			}
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no usable cards", ErrAIResponse)
	}
	return cards, nil
}

func aiKind(t string) Kind {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(t)) {
	case "multiplechoice":
		return KindMultipleChoice
	case "truefalse":
		return KindTrueFalse
	case "fillinblank", "fillintheblank":
		return KindFillInBlank
	}
	return KindDirectQA
}

// choiceOptions keeps the non-empty options and makes sure back is one of them.
func choiceOptions(back string, opts []string) []string {
	var out []string
	found := false
	for _, o := range opts {
		if o = strings.TrimSpace(o); o == "" {
			continue
		}
		if strings.EqualFold(o, back) {
			found = true
		}
		out = append(out, o)
	}
	if !found {
		out = append(out, back)
	}
	return out
}
