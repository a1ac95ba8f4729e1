package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	UserName     string    `json:"user_name"`
	Email        string    `gorm:"index" json:"email"`
	Password     string    `json:"-"`
	Gender       string    `json:"gender"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Goal         int       `json:"goal"` // target cooked meals per week
	CookingLevel string    `json:"cooking_level"` // "상", "중", "하"
	ImageURL     string    `json:"image_url,omitempty"`
	IsDeleted    bool      `json:"-"`

	Timestamp
}

func (User) TableName() string { return "user_info" }

type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"user_id"`
	JTIHash   string    `gorm:"size:128;index" json:"-"`
	UserAgent string    `json:"user_agent"`
	Revoked   bool      `json:"revoked"`
	ExpiresAt time.Time `gorm:"type:timestamp" json:"expires_at"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

func (RefreshToken) TableName() string { return "user_refresh_token" }
