package study

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/startpage-backend/internal/data/repos/testutil"
	"github.com/yungbote/startpage-backend/internal/domain"
)

func TestReviewAttemptRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewReviewAttemptRepo(db, testutil.Logger(t))
	sessionID := uuid.New()

	a1 := &domain.ReviewAttempt{
		SessionID: sessionID,
		Position:  0,
		Kind:      "multiple-choice",
		Front:     "What is Go?",
		Back:      "A programming language",
		Options:   datatypes.JSON([]byte(`["A programming language","A board game"]`)),
		Answer:    "a programming language",
		Correct:   true,
		Percent:   100,
	}
	a2 := &domain.ReviewAttempt{
		SessionID: sessionID,
		Position:  1,
		Kind:      "true-false",
		Front:     "Paris is not the capital of France.",
		Back:      "false",
		Answer:    "true",
	}
	created, err := repo.Create(ctx, tx, []*domain.ReviewAttempt{a1, a2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created[0].ID == uuid.Nil || created[1].ID == uuid.Nil {
		t.Fatalf("Create did not assign ids")
	}

	if rows, err := repo.ListBySession(ctx, tx, sessionID); err != nil || len(rows) != 2 {
		t.Fatalf("ListBySession: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.ListBySession(ctx, tx, uuid.New()); err != nil || len(rows) != 0 {
		t.Fatalf("ListBySession other: err=%v len=%d", err, len(rows))
	}

	sum, err := repo.SummaryBySession(ctx, tx, sessionID)
	if err != nil {
		t.Fatalf("SummaryBySession: %v", err)
	}
	if sum.Answered != 2 || sum.Correct != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	if rows, err := repo.Create(ctx, tx, nil); err != nil || len(rows) != 0 {
		t.Fatalf("Create empty: err=%v len=%d", err, len(rows))
	}
}
