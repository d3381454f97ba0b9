package models

// VerificationStatus enumerates the states of a phone verification session.
type VerificationStatus string

const (
	VerificationIdle     VerificationStatus = "idle"
	VerificationCodeSent VerificationStatus = "code_sent"
	VerificationVerified VerificationStatus = "verified"
	VerificationFailed   VerificationStatus = "failed"
)

// VerifiedIdentity is the opaque identity yielded by a successful code
// confirmation: the canonical phone number plus the provider-assigned uid.
type VerifiedIdentity struct {
	PhoneNumber string `json:"phoneNumber"`
	SubjectID   string `json:"subjectId"`
}

// VerificationSnapshot is the wire view of a session's current state.
type VerificationSnapshot struct {
	SessionID             string             `json:"sessionId"`
	PhoneNumber           string             `json:"phoneNumber,omitempty"`
	Status                VerificationStatus `json:"status"`
	ResendCooldownSeconds int                `json:"resendCooldownSeconds"`
	LastError             string             `json:"lastError,omitempty"`
}
