package verification

import (
	"context"

	"shramic/models"
)

// ChallengeHandle represents one dispatched code awaiting confirmation.
// Requesting a new code supersedes any previously issued handle; the
// provider rejects confirmations against a superseded handle.
type ChallengeHandle interface {
	Confirm(ctx context.Context, code string) (models.VerifiedIdentity, error)
}

// ChallengeProvider dispatches one-time codes out-of-band. Implementations
// are injected so the state machine never touches provider globals.
type ChallengeProvider interface {
	RequestCode(ctx context.Context, phoneNumber string) (ChallengeHandle, error)
}

// SMSSender delivers a message to a phone number.
type SMSSender interface {
	Send(phoneNumber, message string) error
}
