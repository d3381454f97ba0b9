package verification

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"shramic/models"
)

// Defaults for session timing.
const (
	DefaultResendCooldown = 60 * time.Second
	DefaultErrorTTL       = 5 * time.Second
)

// Options tunes session timing; zero values fall back to the defaults.
type Options struct {
	ResendCooldown time.Duration
	ErrorTTL       time.Duration
	Now            func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ResendCooldown == 0 {
		o.ResendCooldown = DefaultResendCooldown
	}
	if o.ErrorTTL == 0 {
		o.ErrorTTL = DefaultErrorTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Session drives the phone challenge/response flow for one registration:
// Idle -> CodeSent -> Verified, with Failed reachable on provider errors.
// At most one provider call may be in flight at a time; requesting a new
// code supersedes the previous challenge handle.
type Session struct {
	id       string
	provider ChallengeProvider
	policy   CountryPolicy
	opts     Options

	mu             sync.Mutex
	phoneNumber    string
	status         models.VerificationStatus
	handle         ChallengeHandle
	identity       *models.VerifiedIdentity
	resendDeadline time.Time
	lastError      string
	errGen         int
	inFlight       bool
	lastTouched    time.Time
}

// NewSession creates a session in the Idle state.
func NewSession(id string, provider ChallengeProvider, policy CountryPolicy, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		id:          id,
		provider:    provider,
		policy:      policy,
		opts:        opts,
		status:      models.VerificationIdle,
		lastTouched: opts.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// RequestCode normalizes the number and dispatches a challenge. Valid from
// Idle or Failed; on success the session enters CodeSent and the resend
// cooldown starts.
func (s *Session) RequestCode(ctx context.Context, rawNumber string) error {
	s.mu.Lock()
	s.lastTouched = s.opts.Now()
	if s.inFlight {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if s.status == models.VerificationCodeSent || s.status == models.VerificationVerified {
		status := s.status
		s.mu.Unlock()
		return fmt.Errorf("request code: invalid in state %s", status)
	}
	canonical := NormalizePhoneNumber(rawNumber, s.policy)
	if canonical == "" {
		s.mu.Unlock()
		return fmt.Errorf("phone number is required")
	}
	s.phoneNumber = canonical
	s.inFlight = true
	s.mu.Unlock()

	handle, err := s.provider.RequestCode(ctx, canonical)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.status = models.VerificationFailed
		s.setErrorLocked(err.Error())
		return &ProviderError{Op: "request", Err: err}
	}
	s.status = models.VerificationCodeSent
	s.handle = handle
	s.resendDeadline = s.opts.Now().Add(s.opts.ResendCooldown)
	s.clearErrorLocked()
	return nil
}

// ConfirmCode submits the user's code against the active challenge handle.
// Only valid while a code is outstanding; confirming with no handle present
// yields ErrSessionExpired. An invalid code leaves the session in CodeSent
// so the user may retry without requesting a new code.
func (s *Session) ConfirmCode(ctx context.Context, code string) (models.VerifiedIdentity, error) {
	s.mu.Lock()
	s.lastTouched = s.opts.Now()
	if s.inFlight {
		s.mu.Unlock()
		return models.VerifiedIdentity{}, ErrRequestInFlight
	}
	if s.status != models.VerificationCodeSent || s.handle == nil {
		s.mu.Unlock()
		return models.VerifiedIdentity{}, ErrSessionExpired
	}
	handle := s.handle
	s.inFlight = true
	s.mu.Unlock()

	identity, err := handle.Confirm(ctx, code)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.setErrorLocked("Invalid code. Please check and try again.")
		switch {
		case errors.Is(err, ErrInvalidCode):
			return models.VerifiedIdentity{}, ErrInvalidCode
		case errors.Is(err, ErrCodeExpired):
			return models.VerifiedIdentity{}, ErrCodeExpired
		default:
			return models.VerifiedIdentity{}, &ProviderError{Op: "confirm", Err: err}
		}
	}
	s.status = models.VerificationVerified
	s.identity = &identity
	s.handle = nil
	s.clearErrorLocked()
	return identity, nil
}

// ResendCode dispatches a fresh challenge to the previously entered number.
// It is a no-op returning ErrCooldownActive while the cooldown has not
// elapsed; otherwise it behaves as RequestCode, resetting the cooldown and
// superseding the previous handle.
func (s *Session) ResendCode(ctx context.Context) error {
	s.mu.Lock()
	s.lastTouched = s.opts.Now()
	if s.inFlight {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if s.phoneNumber == "" || s.status == models.VerificationIdle || s.status == models.VerificationVerified {
		s.mu.Unlock()
		return ErrSessionExpired
	}
	if s.cooldownRemainingLocked() > 0 {
		s.mu.Unlock()
		return ErrCooldownActive
	}
	phone := s.phoneNumber
	s.inFlight = true
	s.mu.Unlock()

	handle, err := s.provider.RequestCode(ctx, phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.status = models.VerificationFailed
		s.setErrorLocked(err.Error())
		return &ProviderError{Op: "resend", Err: err}
	}
	s.status = models.VerificationCodeSent
	s.handle = handle
	s.resendDeadline = s.opts.Now().Add(s.opts.ResendCooldown)
	s.clearErrorLocked()
	return nil
}

// Reset returns the session to Idle, clearing number, handle and cooldown.
// Used when the user elects to change phone number.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = s.opts.Now()
	s.phoneNumber = ""
	s.status = models.VerificationIdle
	s.handle = nil
	s.identity = nil
	s.resendDeadline = time.Time{}
	s.clearErrorLocked()
}

// Identity returns the verified identity, if the session reached Verified.
func (s *Session) Identity() (models.VerifiedIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.VerifiedIdentity{}, false
	}
	return *s.identity, true
}

// Snapshot reports the session's externally visible state.
func (s *Session) Snapshot() models.VerificationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.VerificationSnapshot{
		SessionID:             s.id,
		PhoneNumber:           s.phoneNumber,
		Status:                s.status,
		ResendCooldownSeconds: s.cooldownRemainingLocked(),
		LastError:             s.lastError,
	}
}

// LastTouched reports the last operation time, for idle eviction.
func (s *Session) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

func (s *Session) cooldownRemainingLocked() int {
	remaining := s.resendDeadline.Sub(s.opts.Now())
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}

// setErrorLocked records a user-facing error message that self-clears after
// the error TTL. The generation counter keeps a stale timer from wiping a
// newer message.
func (s *Session) setErrorLocked(msg string) {
	s.lastError = msg
	s.errGen++
	gen := s.errGen
	time.AfterFunc(s.opts.ErrorTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.errGen == gen {
			s.lastError = ""
		}
	})
}

func (s *Session) clearErrorLocked() {
	s.lastError = ""
	s.errGen++
}
