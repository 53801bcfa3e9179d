package audit

import "fmt"

// LoginEvent represents a login attempt
type LoginEvent struct {
	Username string
	ClientIP string
	Success  bool
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Username)
	}
	return fmt.Sprintf("%s failed to log in", e.Username)
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// AccountEvent represents an account lifecycle change
type AccountEvent struct {
	Username string
	ClientIP string
	Action   string // "created" or "deleted"
}

func (e AccountEvent) MessageID() string {
	return "account"
}

func (e AccountEvent) Message() string {
	return fmt.Sprintf("account %s %s", e.Username, e.Action)
}

func (e AccountEvent) Severity() Severity {
	return SeverityNotice
}

func (e AccountEvent) Facility() int {
	return FacilityAuth
}

func (e AccountEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"account": e.Username,
		},
		SDIDAction: {
			"operation": e.Action,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// FeedbackEvent represents a feedback item mutation
type FeedbackEvent struct {
	FeedbackID int64
	Owner      string
	ClientIP   string
	Action     string // "created", "updated" or "deleted"
}

func (e FeedbackEvent) MessageID() string {
	return "feedback"
}

func (e FeedbackEvent) Message() string {
	return fmt.Sprintf("feedback %d owned by %s %s", e.FeedbackID, e.Owner, e.Action)
}

func (e FeedbackEvent) Severity() Severity {
	return SeverityInfo
}

func (e FeedbackEvent) Facility() int {
	return FacilityAuth
}

func (e FeedbackEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"feedback_id": fmt.Sprintf("%d", e.FeedbackID),
			"owner":       e.Owner,
		},
		SDIDAction: {
			"operation": e.Action,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}
