package repositories

//go:generate mockgen -source=application_repository.go -destination=mocks/application_repository.go

import (
	"context"
	"errors"
	"time"

	"fame_list/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type applicationRepository struct {
	repository
}

type ApplicationRepository interface {
	GetOneApproved(ctx context.Context, applicationID int) (*models.Application, error)
	MarkProcessed(ctx context.Context, applicationID int, processedAt time.Time, processedBy *int) error
}

func NewApplicationRepository(db orm.DB) ApplicationRepository {
	return &applicationRepository{
		repository: repository{
			db: db,
		},
	}
}

// GetOneApproved loads the application together with its owner. It returns
// nil, nil when the id is unknown or the application is not approved.
func (r *applicationRepository) GetOneApproved(ctx context.Context, applicationID int) (*models.Application, error) {
	application := &models.Application{}

	err := approvedQuery(r.db.ModelContext(ctx, application), applicationID).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return application, nil
}

// MarkProcessed stamps the application. A nil processedBy is stored as NULL.
func (r *applicationRepository) MarkProcessed(ctx context.Context, applicationID int, processedAt time.Time, processedBy *int) error {
	query := r.db.ModelContext(ctx, (*models.Application)(nil))
	_, err := markProcessedQuery(query, applicationID, processedAt, processedBy).Update()

	return err
}

func approvedQuery(query *orm.Query, applicationID int) *orm.Query {
	return query.
		Relation("User").
		Where("application.id = ?", applicationID).
		Where("application.status = ?", models.ApplicationStatusApproved)
}

func markProcessedQuery(query *orm.Query, applicationID int, processedAt time.Time, processedBy *int) *orm.Query {
	return query.
		Set("processed_at = ?", processedAt).
		Set("processed_by = ?", processedBy).
		Set("updated_at = ?", processedAt).
		Where("id = ?", applicationID)
}
