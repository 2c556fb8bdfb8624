package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloft/career-pages-api/internal/entity"
)

// ApplicationsRepository describes persistence operations for candidate
// applications.
type ApplicationsRepository interface {
	Create(ctx context.Context, application *entity.Application) (*entity.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Application, error)
}

// PGXApplicationsRepository implements ApplicationsRepository using pgx.
type PGXApplicationsRepository struct {
	pool pgxPool
}

// NewPGXApplicationsRepository wires a pgx backed repository.
func NewPGXApplicationsRepository(pool *pgxpool.Pool) *PGXApplicationsRepository {
	return &PGXApplicationsRepository{pool: pool}
}

// Create inserts a new application with status "received".
func (r *PGXApplicationsRepository) Create(ctx context.Context, application *entity.Application) (*entity.Application, error) {
	if application == nil {
		return nil, fmt.Errorf("application payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO applications (job_id, name, email, phone, resume_url, status)
        VALUES ($1, $2, $3, $4, $5, 'received')
        RETURNING id, job_id, name, email, phone, resume_url, status, created_at
    `, application.JobID, application.Name, application.Email, application.Phone, application.ResumeURL)

	var created entity.Application
	err := row.Scan(&created.ID, &created.JobID, &created.Name, &created.Email, &created.Phone, &created.ResumeURL, &created.Status, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return &created, nil
}

// ListByJob returns a job's applications, newest first.
func (r *PGXApplicationsRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Application, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, job_id, name, email, phone, resume_url, status, created_at
        FROM applications
        WHERE job_id = $1
        ORDER BY created_at DESC
    `, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var applications []entity.Application
	for rows.Next() {
		var app entity.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.Name, &app.Email, &app.Phone, &app.ResumeURL, &app.Status, &app.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return applications, nil
}
