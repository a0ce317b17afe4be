package domain

import "time"

// Entry represents a single journal entry
type Entry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content"`
	Emotion   string    `json:"emotion"`
	Date      time.Time `json:"date"`
	Tags      []*Tag    `json:"tags" gorm:"many2many:entry_tags;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag labels entries; a tag can be attached to any number of entries
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
