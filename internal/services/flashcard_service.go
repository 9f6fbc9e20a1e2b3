package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/startpage-backend/internal/data/repos/study"
	"github.com/yungbote/startpage-backend/internal/domain"
	"github.com/yungbote/startpage-backend/internal/flashcards"
	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/apierr"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

const (
	ModeHeuristic = "heuristic"
	ModeAI        = "ai"

	DefaultCardCount = 5
	MaxCardCount     = 100
)

var errEmptyNotes = errors.New("please add some notes before generating flash cards")

type SessionView struct {
	ID        uuid.UUID               `json:"id"`
	Mode      string                  `json:"mode"`
	CreatedAt time.Time               `json:"created_at"`
	State     flashcards.SessionState `json:"state"`
}

type AnswerResult struct {
	Card   flashcards.Card   `json:"card"`
	Answer string            `json:"answer"`
	Result flashcards.Result `json:"result"`
	View   *SessionView      `json:"session"`
}

type AttemptList struct {
	Attempts []*domain.ReviewAttempt `json:"attempts"`
	Answered int                     `json:"answered"`
	Correct  int                     `json:"correct"`
}

type FlashCardService interface {
	StartSession(ctx context.Context, mode string, count int) (*SessionView, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Next(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Previous(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Flip(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Answer(ctx context.Context, id uuid.UUID, answer string) (*AnswerResult, error)
	ListAttempts(ctx context.Context, id uuid.UUID) (*AttemptList, error)
	CloseSession(ctx context.Context, id uuid.UUID) error
}

type sessionEntry struct {
	session   *flashcards.Session
	mode      string
	createdAt time.Time
	lastUsed  time.Time
}

type flashCardService struct {
	log      *logger.Logger
	notes    NoteService
	gen      *flashcards.Generator
	ai       *flashcards.AIGenerator
	attempts study.ReviewAttemptRepo
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewFlashCardService keeps sessions in memory. Sessions idle for longer
// than sessionTTL are dropped the next time a session starts.
func NewFlashCardService(
	baseLog *logger.Logger,
	notes NoteService,
	gen *flashcards.Generator,
	ai *flashcards.AIGenerator,
	attempts study.ReviewAttemptRepo,
	sessionTTL time.Duration,
) FlashCardService {
	return &flashCardService{
		log:      baseLog.With("service", "FlashCardService"),
		notes:    notes,
		gen:      gen,
		ai:       ai,
		attempts: attempts,
		ttl:      sessionTTL,
		now:      time.Now,
		sessions: map[uuid.UUID]*sessionEntry{},
	}
}

func (s *flashCardService) StartSession(ctx context.Context, mode string, count int) (*SessionView, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ModeHeuristic
	}
	if count == 0 {
		count = DefaultCardCount
	}
	if count < 1 || count > MaxCardCount {
		return nil, apierr.BadRequest("invalid_count", fmt.Errorf("%w (max %d)", flashcards.ErrInvalidCount, MaxCardCount))
	}

	text := s.notes.Note(ctx).PlainText
	if strings.TrimSpace(text) == "" {
		return nil, apierr.Unprocessable("no_content", errEmptyNotes)
	}

	var (
		cards []flashcards.Card
		err   error
		start = s.now()
	)
	switch mode {
	case ModeHeuristic:
		cards, err = s.gen.Generate(text, count)
	case ModeAI:
		cards, err = s.ai.Generate(ctx, text, count)
	default:
		return nil, apierr.BadRequest("invalid_mode", fmt.Errorf("unknown generation mode %q", mode))
	}
	observability.Current().ObserveGeneration(mode, cardKinds(cards), err, s.now().Sub(start))
	if err != nil {
		return nil, mapGenerateErr(err)
	}

	now := s.now()
	id := uuid.New()
	entry := &sessionEntry{
		session:   flashcards.NewSession(cards),
		mode:      mode,
		createdAt: now,
		lastUsed:  now,
	}

	s.mu.Lock()
	s.evictIdleLocked(now)
	s.sessions[id] = entry
	active := len(s.sessions)
	s.mu.Unlock()
	observability.Current().SetActiveSessions(active)

	s.log.Info("Flash card session started", "session_id", id.String(), "mode", mode, "cards", len(cards))
	return viewOf(id, entry), nil
}

func cardKinds(cards []flashcards.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = string(c.Kind)
	}
	return out
}

func mapGenerateErr(err error) error {
	switch {
	case errors.Is(err, flashcards.ErrNoContent):
		return apierr.Unprocessable("no_content", err)
	case errors.Is(err, flashcards.ErrInvalidCount):
		return apierr.BadRequest("invalid_count", err)
	case errors.Is(err, flashcards.ErrAIUnavailable):
		return apierr.Unavailable("ai_unavailable", err)
	case errors.Is(err, flashcards.ErrAIResponse):
		return apierr.New(http.StatusBadGateway, "ai_bad_response", err)
	}
	return apierr.New(http.StatusBadGateway, "ai_failed", err)
}

func (s *flashCardService) evictIdleLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.sessions {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *flashCardService) lookup(id uuid.UUID) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, apierr.NotFound("session_not_found", flashcards.ErrSessionNotFound)
	}
	e.lastUsed = s.now()
	return e, nil
}

func viewOf(id uuid.UUID, e *sessionEntry) *SessionView {
	return &SessionView{ID: id, Mode: e.mode, CreatedAt: e.createdAt, State: e.session.State()}
}

func (s *flashCardService) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return viewOf(id, e), nil
}

func (s *flashCardService) Next(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.session.Next()
	return viewOf(id, e), nil
}

func (s *flashCardService) Previous(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.session.Previous()
	return viewOf(id, e), nil
}

func (s *flashCardService) Flip(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.session.Flip()
	return viewOf(id, e), nil
}

// Answer scores answer against the current card and records the attempt.
// A failed write is logged; the score is still returned.
func (s *flashCardService) Answer(ctx context.Context, id uuid.UUID, answer string) (*AnswerResult, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.session.Select(answer)
	card, res, ok := e.session.Reveal(s.gen.Config())
	if !ok {
		return nil, apierr.Unprocessable("empty_session", errors.New("session has no cards"))
	}
	observability.Current().IncAnswer(string(card.Kind), res.Correct)

	attempt := &domain.ReviewAttempt{
		SessionID: id,
		Position:  e.session.Position(),
		Kind:      string(card.Kind),
		Front:     card.Front,
		Back:      card.Back,
		Answer:    answer,
		Correct:   res.Correct,
		Percent:   res.Percent,
	}
	if len(card.Options) > 0 {
		if raw, err := json.Marshal(card.Options); err == nil {
			attempt.Options = datatypes.JSON(raw)
		}
	}
	if _, err := s.attempts.Create(ctx, nil, []*domain.ReviewAttempt{attempt}); err != nil {
		s.log.Warn("Failed to record review attempt", "session_id", id.String(), "error", err)
		observability.Current().IncStorageFailure("review_attempts")
	}

	return &AnswerResult{Card: card, Answer: answer, Result: res, View: viewOf(id, e)}, nil
}

// ListAttempts works for closed sessions too; attempts outlive them.
func (s *flashCardService) ListAttempts(ctx context.Context, id uuid.UUID) (*AttemptList, error) {
	rows, err := s.attempts.ListBySession(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("list review attempts: %w", err)
	}
	sum, err := s.attempts.SummaryBySession(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("summarize review attempts: %w", err)
	}
	if rows == nil {
		rows = []*domain.ReviewAttempt{}
	}
	return &AttemptList{Attempts: rows, Answered: sum.Answered, Correct: sum.Correct}, nil
}

func (s *flashCardService) CloseSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return apierr.NotFound("session_not_found", flashcards.ErrSessionNotFound)
	}
	delete(s.sessions, id)
	observability.Current().SetActiveSessions(len(s.sessions))
	s.log.Debug("Flash card session closed", "session_id", id.String())
	return nil
}
