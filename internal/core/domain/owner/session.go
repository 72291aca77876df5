package owner

import (
	"context"
	c "reemind/internal/core/domain/common"
	"time"
)

type SessionToken string

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}

// SessionRepository stores session tokens with a TTL. Tokens map to the
// owner's email address, the only identity the dashboard needs.
type SessionRepository interface {
	Create(ctx context.Context, token SessionToken, email c.Email, validFor time.Duration) error
	GetEmailByToken(ctx context.Context, token SessionToken) (c.Email, error)
	Delete(ctx context.Context, token SessionToken) error
}

type LoginCode string

type LoginCodeGenerator interface {
	GenerateLoginCode() LoginCode
}

// LoginCodeRepository stores one-time login codes with a TTL.
type LoginCodeRepository interface {
	Create(ctx context.Context, email c.Email, code LoginCode, validFor time.Duration) error
	// Consume verifies the code and invalidates it so it can be used only
	// once. Returns ErrLoginCodeInvalid for unknown, expired or mismatched
	// codes.
	Consume(ctx context.Context, email c.Email, code LoginCode) error
}

// LoginCodeSender delivers a one-time login code to an owner address.
type LoginCodeSender interface {
	SendLoginCode(ctx context.Context, email c.Email, code LoginCode) error
}
