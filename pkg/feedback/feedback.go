// Package feedback implements feedback item operations over the feedback
// store. Every item is scoped to an owning account; ownership checks live
// in the request handlers, lifecycle lives here.
package feedback

import (
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

// ErrNotFound is returned when a feedback id does not exist.
var ErrNotFound = errors.New("feedback: not found")

// Service implements feedback operations over a FeedbackStore.
type Service struct {
	store store.FeedbackStore
}

// NewService creates a new feedback Service
func NewService(s store.FeedbackStore) *Service {
	return &Service{store: s}
}

// Create inserts a new feedback item owned by owner.
func (s *Service) Create(owner, title, content string) (*model.FeedbackItem, error) {
	item := &model.FeedbackItem{
		Title:         title,
		Content:       content,
		OwnerUsername: owner,
	}
	if err := s.store.CreateFeedback(item); err != nil {
		return nil, fmt.Errorf("creating feedback: %w", err)
	}
	return item, nil
}

// Get returns the feedback item with the given id, or ErrNotFound.
func (s *Service) Get(id int64) (*model.FeedbackItem, error) {
	item, err := s.store.FetchFeedback(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Update mutates the title and content of an existing item and returns
// the updated item. Ownership is immutable.
func (s *Service) Update(id int64, title, content string) (*model.FeedbackItem, error) {
	if err := s.store.UpdateFeedback(id, title, content); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(id)
}

// Delete removes an item, or returns ErrNotFound.
func (s *Service) Delete(id int64) error {
	if err := s.store.DeleteFeedback(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListAll returns every feedback item in insertion order.
func (s *Service) ListAll() ([]model.FeedbackItem, error) {
	return s.store.ListFeedback()
}

// ListByOwner returns one account's feedback items in insertion order.
func (s *Service) ListByOwner(username string) ([]model.FeedbackItem, error) {
	return s.store.ListFeedbackByOwner(username)
}
