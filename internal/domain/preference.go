package domain

import "time"

// Preference is one row of the key/value table backing the notes storage.
type Preference struct {
	Key       string    `gorm:"column:pref_key;primaryKey;size:128" json:"key"`
	Value     string    `gorm:"column:value;type:text" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Preference) TableName() string { return "preference" }
