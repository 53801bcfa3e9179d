package store

import "github.com/doodlesbykumbi/feedback-in-go/pkg/model"

// FeedbackStore abstracts feedback item storage operations
type FeedbackStore interface {
	// CreateFeedback inserts a new feedback item.
	CreateFeedback(item *model.FeedbackItem) error

	// FetchFeedback looks up a feedback item by id. Returns ErrNotFound
	// when no such item exists.
	FetchFeedback(id int64) (*model.FeedbackItem, error)

	// UpdateFeedback mutates the title and content of an existing item.
	// Returns ErrNotFound when no such item exists.
	UpdateFeedback(id int64, title, content string) error

	// DeleteFeedback removes an item. Returns ErrNotFound when no such
	// item exists.
	DeleteFeedback(id int64) error

	// ListFeedback returns all feedback items in insertion order.
	ListFeedback() ([]model.FeedbackItem, error)

	// ListFeedbackByOwner returns a single account's feedback items in
	// insertion order.
	ListFeedbackByOwner(username string) ([]model.FeedbackItem, error)
}
