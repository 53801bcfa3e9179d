// Package endpoints implements the HTTP request handlers for the
// feedback application.
//
// Each route group lives in its own file and is registered on the server
// with a RegisterXxxEndpoints function; RegisterAll wires everything.
//
// Write-capable routes enforce a uniform two-step check: the session must
// carry a username (otherwise a warning flash and a redirect to /login),
// and for resource-scoped routes that username must match the resource
// owner (otherwise a warning flash and a redirect to /).
package endpoints
