package verification

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"time"

	"shramic/models"

	"firebase.google.com/go/v4/auth"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpKeyPrefix = "otp:"

// DefaultCodeTTL is how long a dispatched code stays confirmable.
const DefaultCodeTTL = 5 * time.Minute

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the
// desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// RedisOTPProvider implements ChallengeProvider with codes held in Redis
// under a per-phone key with a TTL. Because the key is per-phone, a resent
// code overwrites the old one; a confirmation against the superseded handle
// then fails the comparison, which is exactly the rejection the flow needs.
type RedisOTPProvider struct {
	Cache  *redis.Client
	Sender SMSSender
	Auth   *auth.Client
	TTL    time.Duration
}

func (p *RedisOTPProvider) ttl() time.Duration {
	if p.TTL > 0 {
		return p.TTL
	}
	return DefaultCodeTTL
}

// RequestCode generates, stores and dispatches a 6-character code.
func (p *RedisOTPProvider) RequestCode(ctx context.Context, phoneNumber string) (ChallengeHandle, error) {
	code, err := generateSecureOTP(6)
	if err != nil {
		return nil, err
	}

	key := otpKeyPrefix + phoneNumber
	if err := p.Cache.Set(ctx, key, code, p.ttl()).Err(); err != nil {
		zap.L().Error("Failed to cache verification code", zap.Error(err))
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	message := fmt.Sprintf("Your Shramic verification code is: %s. It expires in %d minutes.",
		code, int(p.ttl().Minutes()))
	if err := p.Sender.Send(phoneNumber, message); err != nil {
		zap.L().Error("Failed to send verification code", zap.Error(err))
		return nil, fmt.Errorf("failed to send verification code: %w", err)
	}

	return &redisChallenge{provider: p, phoneNumber: phoneNumber}, nil
}

type redisChallenge struct {
	provider    *RedisOTPProvider
	phoneNumber string
}

// Confirm compares the submitted code against the stored one, deletes it on
// success and resolves the phone number to a Firebase identity.
func (c *redisChallenge) Confirm(ctx context.Context, code string) (models.VerifiedIdentity, error) {
	p := c.provider
	key := otpKeyPrefix + c.phoneNumber

	stored, err := p.Cache.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.VerifiedIdentity{}, ErrCodeExpired
		}
		return models.VerifiedIdentity{}, fmt.Errorf("failed to retrieve verification code: %w", err)
	}
	if stored != code {
		return models.VerifiedIdentity{}, ErrInvalidCode
	}

	if err := p.Cache.Del(ctx, key).Err(); err != nil {
		zap.L().Error("Failed to delete verification code after confirmation", zap.Error(err))
	}

	identity, err := p.resolveIdentity(ctx, c.phoneNumber)
	if err != nil {
		return models.VerifiedIdentity{}, err
	}
	return identity, nil
}

// resolveIdentity looks up the Firebase user for a verified phone number,
// creating one on first verification.
func (p *RedisOTPProvider) resolveIdentity(ctx context.Context, phoneNumber string) (models.VerifiedIdentity, error) {
	user, err := p.Auth.GetUserByPhoneNumber(ctx, phoneNumber)
	if err == nil {
		return models.VerifiedIdentity{PhoneNumber: phoneNumber, SubjectID: user.UID}, nil
	}
	if !auth.IsUserNotFound(err) {
		return models.VerifiedIdentity{}, fmt.Errorf("failed to look up identity: %w", err)
	}

	created, err := p.Auth.CreateUser(ctx, (&auth.UserToCreate{}).PhoneNumber(phoneNumber))
	if err != nil {
		return models.VerifiedIdentity{}, fmt.Errorf("failed to create identity: %w", err)
	}
	zap.L().Info("Created identity for newly verified phone number", zap.String("uid", created.UID))
	return models.VerifiedIdentity{PhoneNumber: phoneNumber, SubjectID: created.UID}, nil
}
