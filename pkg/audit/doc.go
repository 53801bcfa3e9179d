// Package audit emits security-relevant application events in RFC5424
// syslog format: logins, account lifecycle and feedback mutations.
//
// Audit logging is enabled by default and can be disabled with
// FEEDBACK_AUDIT_ENABLED=false.
package audit
