// Package db provides database connection utilities for the feedback
// application.
//
// This package handles PostgreSQL database connections using GORM.
//
// # Connection
//
//	database, err := db.Connect(db.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string (required)
//   - FEEDBACK_LOG_LEVEL: Set to "debug" for SQL query logging
package db
