package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloft/career-pages-api/internal/entity"
)

// ErrJobNotFound is returned when no job matches the lookup.
var ErrJobNotFound = errors.New("job not found")

// JobsRepository describes persistence operations for job postings.
type JobsRepository interface {
	Create(ctx context.Context, job *entity.Job) (*entity.Job, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	FindPublicBySlug(ctx context.Context, companyID uuid.UUID, jobSlug string) (*entity.Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, publishedOnly bool) ([]entity.Job, error)
	Update(ctx context.Context, id uuid.UUID, fields JobUpdate) (*entity.Job, error)
	BulkSetPublished(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, published bool) (int64, error)
	BulkDelete(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// JobUpdate carries the optional fields of a partial job update.
type JobUpdate struct {
	Title       *string
	Description *string
	JobSlug     *string
	JobType     *string
	Location    *string
	Published   *bool
}

// PGXJobsRepository implements JobsRepository using pgx.
type PGXJobsRepository struct {
	pool pgxPool
}

// NewPGXJobsRepository wires a pgx backed repository.
func NewPGXJobsRepository(pool *pgxpool.Pool) *PGXJobsRepository {
	return &PGXJobsRepository{pool: pool}
}

const jobColumns = `id, company_id, title, description, job_slug, job_type, location, published, created_at, updated_at`

// Create inserts a new job posting in draft state.
func (r *PGXJobsRepository) Create(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	if job == nil {
		return nil, fmt.Errorf("job payload is nil")
	}

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO jobs (company_id, title, description, job_slug, job_type, location, published)
        VALUES ($1, $2, $3, $4, $5, $6, FALSE)
        RETURNING %s
    `, jobColumns), job.CompanyID, job.Title, job.Description, job.JobSlug, job.JobType, job.Location)

	created, err := scanJobRow(row)
	if err != nil {
		if isUniqueViolation(err, "jobs_company_id_job_slug_key") {
			return nil, fmt.Errorf("%w: %q", ErrSlugTaken, job.JobSlug)
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return created, nil
}

// FindByID retrieves a job by identifier.
func (r *PGXJobsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns), id)
	job, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("query job by id: %w", err)
	}
	return job, nil
}

// FindPublicBySlug retrieves a published job by its public slug.
func (r *PGXJobsRepository) FindPublicBySlug(ctx context.Context, companyID uuid.UUID, jobSlug string) (*entity.Job, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
        SELECT %s FROM jobs
        WHERE company_id = $1 AND job_slug = $2 AND published = TRUE
    `, jobColumns), companyID, jobSlug)
	job, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("query job by slug: %w", err)
	}
	return job, nil
}

// ListByCompany returns a company's jobs, most recently updated first.
func (r *PGXJobsRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, publishedOnly bool) ([]entity.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE company_id = $1`, jobColumns)
	if publishedOnly {
		query += ` AND published = TRUE`
	}
	query += ` ORDER BY updated_at DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// Update patches job attributes, stamping updated_at.
func (r *PGXJobsRepository) Update(ctx context.Context, id uuid.UUID, fields JobUpdate) (*entity.Job, error) {
	setClauses := make([]string, 0, 7)
	args := make([]any, 0, 7)
	idx := 1

	appendClause := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if fields.Title != nil {
		appendClause("title", *fields.Title)
	}
	if fields.Description != nil {
		appendClause("description", *fields.Description)
	}
	if fields.JobSlug != nil {
		appendClause("job_slug", *fields.JobSlug)
	}
	if fields.JobType != nil {
		appendClause("job_type", *fields.JobType)
	}
	if fields.Location != nil {
		appendClause("location", *fields.Location)
	}
	if fields.Published != nil {
		appendClause("published", *fields.Published)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`, strings.Join(setClauses, ", "), idx, jobColumns)

	job, err := scanJobRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		if isUniqueViolation(err, "jobs_company_id_job_slug_key") {
			return nil, fmt.Errorf("%w: %q", ErrSlugTaken, *fields.JobSlug)
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// BulkSetPublished flips the published flag for the given job ids in one
// statement, scoped to the company. Returns the number of affected rows.
func (r *PGXJobsRepository) BulkSetPublished(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, published bool) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `
        UPDATE jobs SET published = $1, updated_at = NOW()
        WHERE company_id = $2 AND id = ANY($3)
    `, published, companyID, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk publish jobs: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// BulkDelete removes the given job ids in one statement, scoped to the
// company. Returns the number of deleted rows.
func (r *PGXJobsRepository) BulkDelete(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `
        DELETE FROM jobs
        WHERE company_id = $1 AND id = ANY($2)
    `, companyID, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete jobs: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanJobRow(row pgx.Row) (*entity.Job, error) {
	var job entity.Job
	err := row.Scan(
		&job.ID,
		&job.CompanyID,
		&job.Title,
		&job.Description,
		&job.JobSlug,
		&job.JobType,
		&job.Location,
		&job.Published,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func scanJobs(rows pgx.Rows) ([]entity.Job, error) {
	var jobs []entity.Job
	for rows.Next() {
		var job entity.Job
		err := rows.Scan(
			&job.ID,
			&job.CompanyID,
			&job.Title,
			&job.Description,
			&job.JobSlug,
			&job.JobType,
			&job.Location,
			&job.Published,
			&job.CreatedAt,
			&job.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
