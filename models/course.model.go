package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course categories and difficulties are closed sets.
var Categories = []string{"Web3", "AI/ML", "Full Stack Development", "Marketing", "Designs"}

var Difficulties = []string{"Beginner", "Intermediate", "Advanced"}

func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func IsValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}

// Course is a unit of learning content owned by a creator.
// A fork carries is_original=false plus forked_from/forked_by back-references.
type Course struct {
	ID          string                      `json:"id" gorm:"primaryKey"`
	Name        string                      `json:"name" gorm:"not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Background  string                      `json:"background"`
	CreatorID   string                      `json:"creator_id" gorm:"index;not null"`
	IsPublic    bool                        `json:"is_public"`
	Categories  datatypes.JSONSlice[string] `json:"categories"`
	Difficulty  string                      `json:"difficulty" gorm:"not null"`
	IsOriginal  bool                        `json:"is_original"`
	ForkedFrom  string                      `json:"forked_from,omitempty" gorm:"index"`
	ForkedBy    string                      `json:"forked_by,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
