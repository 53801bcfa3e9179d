package model

import "time"

// Account represents a registered user identity.
type Account struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Account) TableName() string {
	return "accounts"
}

// FullName returns the account's display name.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
