package repositories

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go

import (
	"context"
	"errors"

	"fame_list/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	CreateIfNotExists(ctx context.Context, request *models.User) (bool, error)
	GetOneByUsername(ctx context.Context, username string) (*models.User, error)
}

func NewUserRepository(db orm.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) CreateIfNotExists(ctx context.Context, request *models.User) (bool, error) {
	result, err := r.db.ModelContext(ctx, request).
		OnConflict("(username) DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// GetOneByUsername returns nil, nil when no such user exists.
func (r *userRepository) GetOneByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}

	err := r.db.ModelContext(ctx, user).
		Where("username = ?", username).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
