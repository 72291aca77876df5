package response

import (
	"reemind/internal/core/domain/owner"
	"time"
)

type Owner struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

func (o *Owner) FromDomainType(do owner.Owner) {
	o.ID = int64(do.ID)
	o.Email = string(do.Email)
	o.Verified = do.Verified
	o.CreatedAt = do.CreatedAt
	o.LastLoginAt = do.LastLoginAt
}
