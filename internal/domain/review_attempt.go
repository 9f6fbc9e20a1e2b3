package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReviewAttempt records one scored answer given during a flash-card study session.
type ReviewAttempt struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;column:session_id;not null;index" json:"session_id"`
	Position  int       `gorm:"column:position;not null" json:"position"`

	Kind    string         `gorm:"column:kind;not null;index" json:"kind"`
	Front   string         `gorm:"column:front;type:text" json:"front"`
	Back    string         `gorm:"column:back;type:text" json:"back"`
	Options datatypes.JSON `gorm:"column:options" json:"options,omitempty"`

	Answer  string `gorm:"column:answer;type:text" json:"answer"`
	Correct bool   `gorm:"column:correct;not null;default:false" json:"correct"`
	Percent int    `gorm:"column:percent;not null;default:0" json:"percent"`

	CreatedAt time.Time `json:"created_at"`
}

func (ReviewAttempt) TableName() string { return "review_attempt" }
