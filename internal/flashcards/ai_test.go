package flashcards

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

type fakeTextGenerator struct {
	reply  string
	err    error
	system string
	user   string
}

func (f *fakeTextGenerator) GenerateText(_ context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.reply, f.err
}

const aiReply = `Sure! Here are your cards:
[
  {"front": "Paris is the capital of France.", "back": "True", "type": "truefalse"},
  {"front": "What is the capital of France?", "back": "Paris", "type": "multiplechoice", "options": ["Lyon", "Paris", "Nice", "Lille"]},
  {"front": "Paris has over two _____ people.", "back": "million", "type": "fillinblank"},
  {"front": "", "back": "dropped", "type": "truefalse"},
  {"front": "Largest French river?", "back": "Loire", "type": "multiplechoice"}
]
Good luck!`

func TestAIGenerate(t *testing.T) {
	client := &fakeTextGenerator{reply: aiReply}
	g := NewAIGenerator(client, logger.Nop())

	cards, err := g.Generate(context.Background(), parisText, 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if client.user != parisText {
		t.Fatalf("notes not sent as user message: %q", client.user)
	}
	if len(cards) != 3 {
		t.Fatalf("expected truncation to 3, got %d", len(cards))
	}
	if cards[0].Kind != KindTrueFalse || cards[0].Back != "true" {
		t.Fatalf("true/false card: %+v", cards[0])
	}
	if cards[1].Kind != KindMultipleChoice || len(cards[1].Options) != 4 {
		t.Fatalf("multiple choice card: %+v", cards[1])
	}
	if cards[2].Kind != KindFillInBlank || cards[2].Back != "million" {
		t.Fatalf("fill in blank card: %+v", cards[2])
	}
}

func TestParseAICardsNormalizesEntries(t *testing.T) {
	got, err := ParseAICards(aiReply)
	if err != nil {
		t.Fatalf("ParseAICards: %v", err)
	}
	want := []Card{
		{Front: "Paris is the capital of France.", Back: "true", Kind: KindTrueFalse},
		{Front: "What is the capital of France?", Back: "Paris", Kind: KindMultipleChoice, Options: []string{"Lyon", "Paris", "Nice", "Lille"}},
		{Front: "Paris has over two _____ people.", Back: "million", Kind: KindFillInBlank},
		// choice without options becomes a plain question
		{Front: "Largest French river?", Back: "Loire", Kind: KindDirectQA},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseAICards mismatch (-want +got):\n%s", diff)
	}
}

func TestChoiceOptionsAddsMissingAnswer(t *testing.T) {
	got := choiceOptions("Loire", []string{" Seine ", "", "Rhone"})
	if diff := cmp.Diff([]string{"Seine", "Rhone", "Loire"}, got); diff != "" {
		t.Fatalf("choiceOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestAIGenerateErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := NewAIGenerator(nil, logger.Nop()).Generate(ctx, parisText, 3); !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("nil client: %v", err)
	}

	boom := errors.New("401 unauthorized")
	if _, err := NewAIGenerator(&fakeTextGenerator{err: boom}, logger.Nop()).Generate(ctx, parisText, 3); !errors.Is(err, boom) {
		t.Fatalf("transport error not wrapped: %v", err)
	}

	for _, reply := range []string{"I cannot help with that.", "[not json]", `[{"front": "", "back": ""}]`} {
		_, err := NewAIGenerator(&fakeTextGenerator{reply: reply}, logger.Nop()).Generate(ctx, parisText, 3)
		if !errors.Is(err, ErrAIResponse) {
			t.Fatalf("reply %q: expected ErrAIResponse, got %v", reply, err)
		}
	}

	if _, err := NewAIGenerator(&fakeTextGenerator{reply: aiReply}, logger.Nop()).Generate(ctx, "  ", 3); !errors.Is(err, ErrNoContent) {
		t.Fatalf("empty notes: %v", err)
	}
}
