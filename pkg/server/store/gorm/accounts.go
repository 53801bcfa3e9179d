package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

// Ensure AccountsStore implements store.AccountsStore
var _ store.AccountsStore = (*AccountsStore)(nil)

// AccountsStore implements store.AccountsStore using GORM
type AccountsStore struct {
	db *gorm.DB
}

// NewAccountsStore creates a new AccountsStore
func NewAccountsStore(db *gorm.DB) *AccountsStore {
	return &AccountsStore{db: db}
}

// CreateAccount inserts a new account row
func (s *AccountsStore) CreateAccount(account *model.Account) error {
	if err := s.db.Create(account).Error; err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

// FindAccount looks up an account by username
func (s *AccountsStore) FindAccount(username string) (*model.Account, error) {
	var account model.Account
	tx := s.db.Where("username = ?", username).First(&account)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &account, nil
}

// ListAccounts returns all accounts ordered by id
func (s *AccountsStore) ListAccounts() ([]model.Account, error) {
	var accounts []model.Account
	if err := s.db.Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// DeleteAccount deletes an account by username. Feedback rows cascade
// via the foreign key.
func (s *AccountsStore) DeleteAccount(username string) error {
	tx := s.db.Where("username = ?", username).Delete(&model.Account{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
