// Package accounts implements registration and authentication over the
// accounts store.
package accounts

import (
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/password"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

var (
	// ErrUsernameTaken is returned by Register when the username exists.
	ErrUsernameTaken = errors.New("accounts: username already taken")

	// ErrEmailTaken is returned by Register when the email exists.
	ErrEmailTaken = errors.New("accounts: email already registered")
)

// Service implements account operations over an AccountsStore.
type Service struct {
	store store.AccountsStore
}

// NewService creates a new account Service
func NewService(s store.AccountsStore) *Service {
	return &Service{store: s}
}

// Register creates a new account with a hashed password. The plaintext
// password never reaches the store.
func (s *Service) Register(firstName, lastName, email, username, plaintext string) (*model.Account, error) {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.store.CreateAccount(account); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, s.classifyConflict(username)
		}
		return nil, fmt.Errorf("registering account: %w", err)
	}
	return account, nil
}

// classifyConflict decides which unique constraint a failed registration
// hit: if the username is already present that is the conflict, otherwise
// it was the email.
func (s *Service) classifyConflict(username string) error {
	if _, err := s.store.FindAccount(username); err == nil {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// Authenticate verifies a username/password pair. A missing account or a
// wrong password returns (nil, nil); absence of a match is a normal
// outcome, not an error.
func (s *Service) Authenticate(username, plaintext string) (*model.Account, error) {
	account, err := s.store.FindAccount(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("authenticating %q: %w", username, err)
	}

	if !password.Verify(plaintext, account.PasswordHash) {
		return nil, nil
	}
	return account, nil
}

// Find returns the account for username, or store.ErrNotFound.
func (s *Service) Find(username string) (*model.Account, error) {
	return s.store.FindAccount(username)
}

// List returns all accounts ordered by id.
func (s *Service) List() ([]model.Account, error) {
	return s.store.ListAccounts()
}

// Delete removes an account. Its feedback items are removed by the
// database cascade.
func (s *Service) Delete(username string) error {
	return s.store.DeleteAccount(username)
}
