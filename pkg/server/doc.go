// Package server provides the HTTP server for the feedback application.
//
// It uses gorilla/mux for routing and gorilla/handlers for access logging
// and panic recovery.
//
// # Server Setup
//
//	srv := server.NewServer(db, sessions, renderer, accountsService, feedbackService, healthStore, host, port)
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
//
// # Routes
//
// Endpoints are registered via the endpoints subpackage:
//
//   - GET  /                                  landing page, all feedback
//   - GET  /users                             all users
//   - GET/POST /register                      account registration
//   - GET/POST /login                         login
//   - POST /logout                            logout
//   - GET  /users/{username}                  user page (authenticated)
//   - POST /users/{username}/delete           delete own account
//   - GET/POST /users/{username}/feedback/add add feedback (owner only)
//   - GET/POST /feedback/{id}/update          update feedback (owner only)
//   - POST /feedback/{id}/delete              delete feedback (owner only)
//   - GET  /health                            database connectivity check
package server
