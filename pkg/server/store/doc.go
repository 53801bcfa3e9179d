// Package store defines the storage interfaces used by the feedback
// application services and handlers.
//
// Interfaces here abstract over the concrete GORM implementations in the
// gorm subpackage, which keeps the services testable with mocks and the
// handlers free of SQL.
package store
