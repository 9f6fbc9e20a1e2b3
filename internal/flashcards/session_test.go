package flashcards

import "testing"

func sampleCards() []Card {
	return []Card{
		{Front: "Paris is the capital of France.", Back: "true", Kind: KindTrueFalse},
		{Front: "What is Ribosome?", Back: "protein synthesis", Kind: KindMultipleChoice, Options: []string{"protein synthesis", "energy", "storage"}},
		{Front: "It has a _____ of over two million.", Back: "population", Kind: KindFillInBlank},
	}
}

func TestSessionNavigationBounds(t *testing.T) {
	s := NewSession(sampleCards())
	if s.Len() != 3 || s.Position() != 0 {
		t.Fatalf("new session: len=%d pos=%d", s.Len(), s.Position())
	}
	if s.Previous() {
		t.Fatalf("previous at start should be a no-op")
	}
	if !s.Next() || !s.Next() {
		t.Fatalf("next should advance")
	}
	if s.Next() {
		t.Fatalf("next at end should be a no-op")
	}
	if s.Position() != 2 {
		t.Fatalf("pos=%d", s.Position())
	}
	st := s.State()
	if st.HasNext || !st.HasPrevious || st.Card == nil || st.Card.Back != "population" {
		t.Fatalf("state at end: %+v", st)
	}
}

func TestSessionMovingResetsReviewState(t *testing.T) {
	s := NewSession(sampleCards())
	s.Select("true")
	card, res, ok := s.Reveal(DefaultConfig())
	if !ok || !res.Correct || card.Back != "true" {
		t.Fatalf("reveal: ok=%v res=%+v card=%+v", ok, res, card)
	}
	st := s.State()
	if !st.Flipped || st.Selected == nil || st.Result == nil {
		t.Fatalf("review state not kept: %+v", st)
	}

	s.Next()
	st = s.State()
	if st.Flipped || st.Selected != nil || st.Result != nil {
		t.Fatalf("next did not reset: %+v", st)
	}

	s.Flip()
	s.Select("energy")
	s.Previous()
	st = s.State()
	if st.Flipped || st.Selected != nil || st.Result != nil {
		t.Fatalf("previous did not reset: %+v", st)
	}
}

func TestSessionBoundaryMoveKeepsState(t *testing.T) {
	s := NewSession(sampleCards())
	s.Flip()
	s.Previous()
	if !s.State().Flipped {
		t.Fatalf("no-op previous should not reset state")
	}
}

func TestSessionRevealWithoutSelection(t *testing.T) {
	s := NewSession(sampleCards())
	_, res, ok := s.Reveal(DefaultConfig())
	if !ok || res.Correct {
		t.Fatalf("empty answer: ok=%v res=%+v", ok, res)
	}
}

func TestSessionIsolatedFromInput(t *testing.T) {
	cards := sampleCards()
	s := NewSession(cards)
	cards[1].Options[0] = "mutated"
	s.Next()
	c, _ := s.Current()
	if c.Options[0] != "protein synthesis" {
		t.Fatalf("session shares caller's slice: %v", c.Options)
	}
}

func TestEmptySession(t *testing.T) {
	s := NewSession(nil)
	if _, ok := s.Current(); ok {
		t.Fatalf("empty session has a current card")
	}
	if s.Next() || s.Previous() {
		t.Fatalf("empty session moved")
	}
	if _, _, ok := s.Reveal(DefaultConfig()); ok {
		t.Fatalf("empty session revealed")
	}
	if st := s.State(); st.Card != nil || st.Total != 0 {
		t.Fatalf("empty state: %+v", st)
	}
}
