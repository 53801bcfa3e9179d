package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
)

// MockAccountsStore implements store.AccountsStore for testing using testify/mock
type MockAccountsStore struct {
	mock.Mock
}

func NewMockAccountsStore() *MockAccountsStore {
	return &MockAccountsStore{}
}

func (m *MockAccountsStore) CreateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountsStore) FindAccount(username string) (*model.Account, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountsStore) ListAccounts() ([]model.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountsStore) DeleteAccount(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

// MockFeedbackStore implements store.FeedbackStore for testing using testify/mock
type MockFeedbackStore struct {
	mock.Mock
}

func NewMockFeedbackStore() *MockFeedbackStore {
	return &MockFeedbackStore{}
}

func (m *MockFeedbackStore) CreateFeedback(item *model.FeedbackItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockFeedbackStore) FetchFeedback(id int64) (*model.FeedbackItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedbackItem), args.Error(1)
}

func (m *MockFeedbackStore) UpdateFeedback(id int64, title, content string) error {
	args := m.Called(id, title, content)
	return args.Error(0)
}

func (m *MockFeedbackStore) DeleteFeedback(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFeedbackStore) ListFeedback() ([]model.FeedbackItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeedbackItem), args.Error(1)
}

func (m *MockFeedbackStore) ListFeedbackByOwner(username string) ([]model.FeedbackItem, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeedbackItem), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
