package models

import (
	"time"

	"gorm.io/datatypes"
)

// Module is an ordered content unit within a course. Index ordering is not
// unique-enforced; reorder applies whatever the editor sends.
type Module struct {
	ID        string                      `json:"id" gorm:"primaryKey"`
	CourseID  string                      `json:"course_id" gorm:"index;not null"`
	Name      string                      `json:"name" gorm:"not null"`
	Content   string                      `json:"content" gorm:"type:text"`
	Media     datatypes.JSONSlice[string] `json:"media"`
	Index     int                         `json:"index" gorm:"column:order_index;default:0"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
