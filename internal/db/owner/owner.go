package owner

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/owner"
	"reemind/internal/db"

	"github.com/jackc/pgx/v4"
)

const ownerColumns = "id, email, verified, created_at, last_login_at"

type PgxOwnerRepository struct {
	db db.DBTX
}

func NewPgxOwnerRepository(db db.DBTX) *PgxOwnerRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxOwnerRepository{db: db}
}

func (r *PgxOwnerRepository) Upsert(
	ctx context.Context,
	input owner.UpsertInput,
) (o owner.Owner, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "owner" (email, verified, created_at, last_login_at)
		 VALUES ($1, TRUE, $2, $2)
		 ON CONFLICT (email) DO UPDATE SET last_login_at = EXCLUDED.last_login_at
		 RETURNING `+ownerColumns,
		string(input.Email),
		input.Now,
	)
	return decodeOwner(row)
}

func (r *PgxOwnerRepository) GetByEmail(
	ctx context.Context,
	email c.Email,
) (o owner.Owner, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+ownerColumns+` FROM "owner" WHERE email = $1`,
		string(email),
	)
	o, err = decodeOwner(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return o, owner.ErrOwnerDoesNotExist
	}
	return o, err
}

func decodeOwner(row pgx.Row) (o owner.Owner, err error) {
	var id int64
	var email string
	err = row.Scan(&id, &email, &o.Verified, &o.CreatedAt, &o.LastLoginAt)
	if err != nil {
		return o, err
	}
	o.ID = owner.ID(id)
	o.Email = c.Email(email)
	return o, nil
}
