package models

import (
	"time"

	"gorm.io/datatypes"
)

// Challenge is a standalone MCQ competition, signed by its creator wallet.
type Challenge struct {
	ID        string                           `json:"id" gorm:"primaryKey"`
	CreatorID string                           `json:"creator_id" gorm:"index;not null"`
	Name      string                           `json:"name" gorm:"not null"`
	Type      string                           `json:"type" gorm:"default:'mcq'"`
	Questions datatypes.JSONSlice[MCQQuestion] `json:"questions"`
	Signature string                           `json:"signature" gorm:"not null"`
	Reward    int                              `json:"reward" gorm:"default:0"`
	Completed bool                             `json:"completed" gorm:"default:false"`
	CreatedAt time.Time                        `json:"created_at"`
	UpdatedAt time.Time                        `json:"updated_at"`
}

// ChallengeSubmission is one challenger's graded answer set. One row per
// (challenge, challenger); a re-submission overwrites the previous one.
type ChallengeSubmission struct {
	ID           uint                     `json:"id" gorm:"primaryKey"`
	ChallengeID  string                   `json:"challenge_id" gorm:"uniqueIndex:idx_challenge_challenger;not null"`
	ChallengerID string                   `json:"challenger_id" gorm:"uniqueIndex:idx_challenge_challenger;not null"`
	Answers      datatypes.JSONSlice[int] `json:"answers"`
	Score        int                      `json:"score"`
	Percentage   float64                  `json:"percentage"`
	Signature    string                   `json:"signature"`
	SubmittedAt  time.Time                `json:"submitted_at"`
}
