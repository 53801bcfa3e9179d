package store

import "github.com/doodlesbykumbi/feedback-in-go/pkg/model"

// AccountsStore abstracts account storage operations
type AccountsStore interface {
	// CreateAccount inserts a new account. Returns ErrDuplicate when the
	// username or email is already taken.
	CreateAccount(account *model.Account) error

	// FindAccount looks up an account by username. Returns ErrNotFound
	// when no such account exists.
	FindAccount(username string) (*model.Account, error)

	// ListAccounts returns all accounts ordered by id.
	ListAccounts() ([]model.Account, error)

	// DeleteAccount deletes an account by username. The database cascades
	// the delete to the account's feedback items. Returns ErrNotFound
	// when no such account exists.
	DeleteAccount(username string) error
}
