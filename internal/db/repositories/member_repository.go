package repositories

//go:generate mockgen -source=member_repository.go -destination=mocks/member_repository.go

import (
	"context"

	"fame_list/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const nextIDQuery = `SELECT COALESCE(MAX(id), 0) + 1 FROM members`

type memberRepository struct {
	repository
}

type MemberRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, request *models.Member) error
	GetMany(ctx context.Context) ([]*models.Member, error)
}

func NewMemberRepository(db orm.DB) MemberRepository {
	return &memberRepository{
		repository: repository{
			db: db,
		},
	}
}

// NextID reads the current maximum without locking. Two concurrent callers
// can get the same id; the primary key makes the second insert fail.
func (r *memberRepository) NextID(ctx context.Context) (int, error) {
	var nextID int

	_, err := r.db.QueryOneContext(ctx, pg.Scan(&nextID), nextIDQuery)
	if err != nil {
		return 0, err
	}

	return nextID, nil
}

func (r *memberRepository) Create(ctx context.Context, request *models.Member) error {
	_, err := r.db.ModelContext(ctx, request).Insert()
	return err
}

func (r *memberRepository) GetMany(ctx context.Context) ([]*models.Member, error) {
	members := make([]*models.Member, 0)

	err := rosterQuery(r.db.ModelContext(ctx, &members)).Select()

	return members, err
}

func rosterQuery(query *orm.Query) *orm.Query {
	return query.Order("id ASC")
}
