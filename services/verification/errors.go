package verification

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when a confirmation is attempted with no
	// active challenge handle, or against an unknown session.
	ErrSessionExpired = errors.New("verification session expired")

	// ErrCooldownActive is returned by ResendCode while the resend cooldown
	// has not elapsed; the provider is not invoked.
	ErrCooldownActive = errors.New("resend cooldown active")

	// ErrRequestInFlight is returned when a provider call is already pending
	// for the session.
	ErrRequestInFlight = errors.New("verification request already in progress")

	// ErrInvalidCode is returned when the submitted code does not match.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrCodeExpired is returned when the stored code has already expired
	// or was superseded by a newer one.
	ErrCodeExpired = errors.New("verification code expired")
)

// ProviderError wraps a failure from the external challenge provider. These
// surface to the caller as transient, and are never retried automatically.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("verification provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
