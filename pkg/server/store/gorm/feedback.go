package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

// Ensure FeedbackStore implements store.FeedbackStore
var _ store.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore implements store.FeedbackStore using GORM
type FeedbackStore struct {
	db *gorm.DB
}

// NewFeedbackStore creates a new FeedbackStore
func NewFeedbackStore(db *gorm.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// CreateFeedback inserts a new feedback row
func (s *FeedbackStore) CreateFeedback(item *model.FeedbackItem) error {
	return s.db.Create(item).Error
}

// FetchFeedback looks up a feedback item by id
func (s *FeedbackStore) FetchFeedback(id int64) (*model.FeedbackItem, error) {
	var item model.FeedbackItem
	tx := s.db.Where("id = ?", id).First(&item)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &item, nil
}

// UpdateFeedback mutates title and content of an existing row
func (s *FeedbackStore) UpdateFeedback(id int64, title, content string) error {
	tx := s.db.Model(&model.FeedbackItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":   title,
		"content": content,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteFeedback removes a feedback row
func (s *FeedbackStore) DeleteFeedback(id int64) error {
	tx := s.db.Where("id = ?", id).Delete(&model.FeedbackItem{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListFeedback returns all feedback items in insertion order
func (s *FeedbackStore) ListFeedback() ([]model.FeedbackItem, error) {
	var items []model.FeedbackItem
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListFeedbackByOwner returns one account's feedback items in insertion order
func (s *FeedbackStore) ListFeedbackByOwner(username string) ([]model.FeedbackItem, error) {
	var items []model.FeedbackItem
	if err := s.db.Where("owner_username = ?", username).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
