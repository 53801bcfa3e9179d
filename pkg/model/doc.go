// Package model defines the database models for the feedback application.
//
// This package contains GORM models that map to the PostgreSQL schema.
//
// # Core Models
//
//   - Account: a registered user with unique username/email and a hashed password
//   - FeedbackItem: a titled text note owned by exactly one Account
//
// # Database Schema
//
// The database uses PostgreSQL with two tables:
//
//   - accounts: user identities, unique on both username and email
//   - feedback_items: feedback rows referencing accounts(username)
//     with ON DELETE CASCADE
package model
