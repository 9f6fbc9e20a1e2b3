package flashcards

import "sync"

// Session is a cursor over one generated card set plus the review state of
// the card under the cursor. Moving the cursor clears that state.
type Session struct {
	mu       sync.Mutex
	cards    []Card
	pos      int
	flipped  bool
	selected *string
	result   *Result
}

// SessionState is a snapshot of a Session for rendering.
type SessionState struct {
	Card        *Card   `json:"card,omitempty"`
	Position    int     `json:"position"`
	Total       int     `json:"total"`
	Flipped     bool    `json:"flipped"`
	Selected    *string `json:"selected,omitempty"`
	Result      *Result `json:"result,omitempty"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
}

func NewSession(cards []Card) *Session {
	cp := make([]Card, len(cards))
	for i, c := range cards {
		cp[i] = c.clone()
	}
	return &Session{cards: cp}
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

func (s *Session) Current() (Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[s.pos].clone(), true
}

func (s *Session) Cards() []Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Card, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.clone()
	}
	return out
}

// Next advances the cursor. It reports false, changing nothing, on the last
// card.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.cards)-1 {
		return false
	}
	s.pos++
	s.resetLocked()
	return true
}

// Previous moves the cursor back. It reports false on the first card.
func (s *Session) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos <= 0 {
		return false
	}
	s.pos--
	s.resetLocked()
	return true
}

func (s *Session) resetLocked() {
	s.flipped = false
	s.selected = nil
	s.result = nil
}

// Flip turns the current card over and returns the new orientation.
func (s *Session) Flip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flipped = !s.flipped
	return s.flipped
}

// Select records the answer for the current card, replacing any earlier
// answer and its result.
func (s *Session) Select(answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &answer
	s.result = nil
}

// Reveal scores the selected answer against the current card and flips it.
// With no selection the answer is treated as empty.
func (s *Session) Reveal(cfg Config) (Card, Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cards) == 0 {
		return Card{}, Result{}, false
	}
	answer := ""
	if s.selected != nil {
		answer = *s.selected
	}
	card := s.cards[s.pos]
	res := Score(card, answer, cfg)
	s.result = &res
	s.flipped = true
	return card.clone(), res, true
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := SessionState{
		Position:    s.pos,
		Total:       len(s.cards),
		Flipped:     s.flipped,
		HasNext:     s.pos < len(s.cards)-1,
		HasPrevious: s.pos > 0,
	}
	if len(s.cards) > 0 {
		c := s.cards[s.pos].clone()
		st.Card = &c
	}
	if s.selected != nil {
		sel := *s.selected
		st.Selected = &sel
	}
	if s.result != nil {
		r := *s.result
		st.Result = &r
	}
	return st
}
