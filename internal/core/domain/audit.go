package domain

import "time"

// AuditAction identifies the kind of auth activity being recorded.
type AuditAction string

const (
	AuditLogin        AuditAction = "login"
	AuditLogout       AuditAction = "logout"
	AuditRegister     AuditAction = "register"
	AuditAccessDenied AuditAction = "access_denied"
)

// AuditEvent is one entry in the auth activity trail.
type AuditEvent struct {
	Actor     string      `json:"actor" bson:"actor"`
	Action    AuditAction `json:"action" bson:"action"`
	Detail    string      `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
