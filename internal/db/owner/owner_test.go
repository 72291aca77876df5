package owner

import (
	"context"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/owner"
	"reemind/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var Now = time.Now().UTC().Truncate(time.Microsecond)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxOwnerRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxOwnerRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxOwnerRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestUpsertCreatesOwner() {
	o, err := s.repo.Upsert(context.Background(), owner.UpsertInput{
		Email: c.NewEmail("test@test.com"),
		Now:   Now,
	})

	s.Nil(err)
	s.NotZero(o.ID)
	s.Equal(c.NewEmail("test@test.com"), o.Email)
	s.True(o.Verified)
	s.Equal(Now, o.CreatedAt)
	s.Equal(Now, o.LastLoginAt)
}

func (s *testSuite) TestUpsertKeepsCreatedAt() {
	first, err := s.repo.Upsert(context.Background(), owner.UpsertInput{
		Email: c.NewEmail("test@test.com"),
		Now:   Now,
	})
	s.Nil(err)

	later := Now.Add(24 * time.Hour)
	second, err := s.repo.Upsert(context.Background(), owner.UpsertInput{
		Email: c.NewEmail("test@test.com"),
		Now:   later,
	})

	s.Nil(err)
	s.Equal(first.ID, second.ID)
	s.Equal(Now, second.CreatedAt)
	s.Equal(later, second.LastLoginAt)
}

func (s *testSuite) TestGetByEmail() {
	created, err := s.repo.Upsert(context.Background(), owner.UpsertInput{
		Email: c.NewEmail("test@test.com"),
		Now:   Now,
	})
	s.Nil(err)

	got, err := s.repo.GetByEmail(context.Background(), c.NewEmail("test@test.com"))

	s.Nil(err)
	s.Equal(created, got)
}

func (s *testSuite) TestGetByUnknownEmail() {
	_, err := s.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.com"))

	s.ErrorIs(err, owner.ErrOwnerDoesNotExist)
}
