package models

import (
	"time"

	"gorm.io/datatypes"
)

// MCQQuestion is a single multiple-choice question. CorrectOption is an
// index into Options, for assessments and challenges alike.
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Assessment is the MCQ question set attached to a module. One per module;
// course_id is denormalized for fork copies and cleanup.
type Assessment struct {
	ID        string                           `json:"id" gorm:"primaryKey"`
	ModuleID  string                           `json:"module_id" gorm:"uniqueIndex;not null"`
	CourseID  string                           `json:"course_id" gorm:"index;not null"`
	Type      string                           `json:"type" gorm:"default:'mcq'"`
	Questions datatypes.JSONSlice[MCQQuestion] `json:"questions"`
	CreatedAt time.Time                        `json:"created_at"`
	UpdatedAt time.Time                        `json:"updated_at"`
}
