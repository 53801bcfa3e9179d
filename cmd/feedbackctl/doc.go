// Package feedback provides a Go implementation of the feedback web application.
//
// The application lets visitors register an account, sign in with a
// browser session, and post feedback items rendered from Markdown on
// their own page. Accounts own their feedback; deleting an account
// removes its feedback through a database cascade.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: page and form handlers
//   - pkg/server/render: embedded HTML templates
//   - pkg/accounts: registration and authentication
//   - pkg/feedback: feedback item lifecycle
//   - pkg/session: cookie sessions and flash messages
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the feedbackctl CLI:
//
//	# Run database migrations
//	feedbackctl db migrate
//
//	# Start the server
//	feedbackctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - FEEDBACK_SESSION_SECRET: Key for the session cookie store (at least 32 bytes)
//   - FEEDBACK_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
//
// For more information, see https://github.com/doodlesbykumbi/feedback-in-go
package main
