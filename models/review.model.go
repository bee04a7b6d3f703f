package models

import "gorm.io/gorm"

// ReviewTimeLayout is the format of Review.Time
const ReviewTimeLayout = "2006-01-02 15:04:05"

type Review struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Stars     int            `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"` // 1–5 rating
	Time      string         `gorm:"type:text;not null" json:"time"`                        // creation time, never updated
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Review) TableName() string { return "reviews" }
