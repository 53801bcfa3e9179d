package model

import "time"

// FeedbackItem represents a single feedback note. Every item is owned by
// exactly one account; deleting the account deletes its items (cascade).
type FeedbackItem struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title         string    `gorm:"column:title"`
	Content       string    `gorm:"column:content"`
	OwnerUsername string    `gorm:"column:owner_username"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (FeedbackItem) TableName() string {
	return "feedback_items"
}
