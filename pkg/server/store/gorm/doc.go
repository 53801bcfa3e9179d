// Package gorm implements the store interfaces using GORM on PostgreSQL.
package gorm
