package models

import "time"

// User is keyed by wallet address (0x...)
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Bio       string    `json:"bio" gorm:"default:''"`
	Avatar    string    `json:"avatar" gorm:"default:''"`
	Email     string    `json:"email" gorm:"default:''"`
	Github    string    `json:"github" gorm:"default:''"`
	X         string    `json:"x" gorm:"default:''"`
	Linkedin  string    `json:"linkedin" gorm:"default:''"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
