package models

import "time"

// CourseRanking holds the vote counters for a course. It is created and
// deleted together with its course. Score is a plain vote differential,
// kept equal to upvotes - downvotes after every mutation.
type CourseRanking struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"uniqueIndex;not null"`
	CreatorID string    `json:"creator_id" gorm:"index"`
	Upvotes   int       `json:"upvotes" gorm:"default:0;check:upvotes >= 0"`
	Downvotes int       `json:"downvotes" gorm:"default:0;check:downvotes >= 0"`
	Score     int       `json:"score" gorm:"default:0;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourseVote records one vote per wallet per course.
type CourseVote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"uniqueIndex:idx_course_voter;not null"`
	VoterID   string    `json:"voter_id" gorm:"uniqueIndex:idx_course_voter;not null"`
	Direction string    `json:"direction" gorm:"not null"` // up, down
	CreatedAt time.Time `json:"created_at"`
}
