package repositories

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// repository works against either the pool or an open transaction.
type repository struct {
	db orm.DB
}

type Repositories struct {
	Users        UserRepository
	Applications ApplicationRepository
	Members      MemberRepository
}

func newRepositories(db orm.DB) Repositories {
	return Repositories{
		Users:        NewUserRepository(db),
		Applications: NewApplicationRepository(db),
		Members:      NewMemberRepository(db),
	}
}

type store struct {
	db *pg.DB
}

// Store hands out repositories bound to the connection pool, or to a single
// transaction for the duration of fn. The transaction is rolled back when fn
// returns an error or panics.
type Store interface {
	Repositories() Repositories
	RunInTransaction(ctx context.Context, fn func(repositories Repositories) error) error
}

func NewStore(db *pg.DB) Store {
	return &store{db: db}
}

func (s *store) Repositories() Repositories {
	return newRepositories(s.db)
}

func (s *store) RunInTransaction(ctx context.Context, fn func(repositories Repositories) error) error {
	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(newRepositories(tx))
	})
}
