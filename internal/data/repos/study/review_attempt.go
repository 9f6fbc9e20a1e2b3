package study

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/startpage-backend/internal/domain"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

type Summary struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

type ReviewAttemptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, attempts []*domain.ReviewAttempt) ([]*domain.ReviewAttempt, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*domain.ReviewAttempt, error)
	SummaryBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (Summary, error)
}

type reviewAttemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewAttemptRepo(db *gorm.DB, baseLog *logger.Logger) ReviewAttemptRepo {
	return &reviewAttemptRepo{db: db, log: baseLog.With("repo", "ReviewAttemptRepo")}
}

func (r *reviewAttemptRepo) Create(ctx context.Context, tx *gorm.DB, attempts []*domain.ReviewAttempt) ([]*domain.ReviewAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(attempts) == 0 {
		return []*domain.ReviewAttempt{}, nil
	}
	for _, a := range attempts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *reviewAttemptRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*domain.ReviewAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.ReviewAttempt
	if sessionID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewAttemptRepo) SummaryBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out Summary
	if sessionID == uuid.Nil {
		return out, nil
	}
	var answered, correct int64
	q := transaction.WithContext(ctx).Model(&domain.ReviewAttempt{}).Where("session_id = ?", sessionID)
	if err := q.Count(&answered).Error; err != nil {
		return out, err
	}
	if err := transaction.WithContext(ctx).
		Model(&domain.ReviewAttempt{}).
		Where("session_id = ? AND correct = ?", sessionID, true).
		Count(&correct).Error; err != nil {
		return out, err
	}
	out.Answered = int(answered)
	out.Correct = int(correct)
	return out, nil
}
