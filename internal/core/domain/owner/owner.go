package owner

import (
	"context"
	c "reemind/internal/core/domain/common"
	"time"
)

type ID int64

// Owner is a dashboard account keyed by email address. Owners are created
// implicitly on the first successful login-code verification.
type Owner struct {
	ID          ID
	Email       c.Email
	Verified    bool
	CreatedAt   time.Time
	LastLoginAt time.Time
}

type UpsertInput struct {
	Email c.Email
	Now   time.Time
}

type Repository interface {
	// Upsert creates the owner on first login and refreshes LastLoginAt on
	// subsequent ones.
	Upsert(ctx context.Context, input UpsertInput) (Owner, error)
	GetByEmail(ctx context.Context, email c.Email) (Owner, error)
}
