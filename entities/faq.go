package entities

import "time"

type Faq struct {
	FaqID     int64     `gorm:"primaryKey;autoIncrement;column:faq_id" json:"faq_id"`
	Question  string    `gorm:"size:255;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"size:50" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	IsVisible bool      `gorm:"default:true" json:"is_visible"`
}

func (Faq) TableName() string { return "faq" }
