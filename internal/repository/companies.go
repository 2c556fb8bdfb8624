package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloft/career-pages-api/internal/entity"
)

// Sentinel errors surfaced by the companies repository.
var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCareerPageNotFound = errors.New("career page not found")
	ErrSlugTaken          = errors.New("slug already taken")
)

// CompaniesRepository describes persistence operations for companies and
// their career pages.
type CompaniesRepository interface {
	CreateWithPage(ctx context.Context, name, slug string, ownerID uuid.UUID) (*entity.Company, *entity.CareerPage, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Company, error)
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.Company, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Company, error)
	FindPage(ctx context.Context, companyID uuid.UUID) (*entity.CareerPage, error)
	FindPageByID(ctx context.Context, pageID uuid.UUID) (*entity.CareerPage, error)
	UpdatePage(ctx context.Context, companyID uuid.UUID, theme *string, published *bool) (*entity.CareerPage, error)
	ListPublished(ctx context.Context) ([]PublishedCompany, error)
}

// PublishedCompany pairs a company with its published page's freshness
// timestamp for sitemap derivation.
type PublishedCompany struct {
	Company       entity.Company
	PageUpdatedAt time.Time
}

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

// CreateWithPage inserts a company and its draft career page in a single
// transaction so a company can never exist without its page.
func (r *PGXCompaniesRepository) CreateWithPage(ctx context.Context, name, slug string, ownerID uuid.UUID) (*entity.Company, *entity.CareerPage, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("start create company tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var company entity.Company
	err = tx.QueryRow(ctx, `
        INSERT INTO companies (name, slug, owner_id)
        VALUES ($1, $2, $3)
        RETURNING id, name, slug, owner_id, created_at
    `, name, slug, ownerID).Scan(&company.ID, &company.Name, &company.Slug, &company.OwnerID, &company.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "companies_slug_key") {
			return nil, nil, fmt.Errorf("%w: %q", ErrSlugTaken, slug)
		}
		return nil, nil, fmt.Errorf("insert company: %w", err)
	}

	var page entity.CareerPage
	err = tx.QueryRow(ctx, `
        INSERT INTO career_pages (company_id, theme, published)
        VALUES ($1, 'default', FALSE)
        RETURNING id, company_id, theme, published, updated_at
    `, company.ID).Scan(&page.ID, &page.CompanyID, &page.Theme, &page.Published, &page.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("insert career page: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit create company tx: %w", err)
	}

	return &company, &page, nil
}

// ListByOwner returns the owner's companies, most recently created first.
func (r *PGXCompaniesRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, slug, owner_id, created_at
        FROM companies
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// FindByID fetches a company by id, scoped to its owner.
func (r *PGXCompaniesRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, name, slug, owner_id, created_at
        FROM companies
        WHERE id = $1 AND owner_id = $2
    `, id, ownerID)
	return scanCompany(row)
}

// FindBySlug fetches a company by its public slug.
func (r *PGXCompaniesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, name, slug, owner_id, created_at
        FROM companies
        WHERE slug = $1
    `, slug)
	return scanCompany(row)
}

// FindPage returns the career page for a company. An absent page is a
// distinct sentinel because "company without a page yet" is a valid empty
// state, not a fetch failure.
func (r *PGXCompaniesRepository) FindPage(ctx context.Context, companyID uuid.UUID) (*entity.CareerPage, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, company_id, theme, published, updated_at
        FROM career_pages
        WHERE company_id = $1
    `, companyID)

	var page entity.CareerPage
	if err := row.Scan(&page.ID, &page.CompanyID, &page.Theme, &page.Published, &page.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCareerPageNotFound
		}
		return nil, fmt.Errorf("query career page: %w", err)
	}
	return &page, nil
}

// FindPageByID returns a career page by its own id.
func (r *PGXCompaniesRepository) FindPageByID(ctx context.Context, pageID uuid.UUID) (*entity.CareerPage, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, company_id, theme, published, updated_at
        FROM career_pages
        WHERE id = $1
    `, pageID)

	var page entity.CareerPage
	if err := row.Scan(&page.ID, &page.CompanyID, &page.Theme, &page.Published, &page.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCareerPageNotFound
		}
		return nil, fmt.Errorf("query career page: %w", err)
	}
	return &page, nil
}

// UpdatePage patches theme and/or published state, stamping updated_at.
func (r *PGXCompaniesRepository) UpdatePage(ctx context.Context, companyID uuid.UUID, theme *string, published *bool) (*entity.CareerPage, error) {
	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 3)
	idx := 1

	if theme != nil {
		setClauses = append(setClauses, fmt.Sprintf("theme = $%d", idx))
		args = append(args, *theme)
		idx++
	}
	if published != nil {
		setClauses = append(setClauses, fmt.Sprintf("published = $%d", idx))
		args = append(args, *published)
		idx++
	}

	if len(setClauses) == 0 {
		return r.FindPage(ctx, companyID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, companyID)

	query := fmt.Sprintf(`
        UPDATE career_pages SET %s
        WHERE company_id = $%d
        RETURNING id, company_id, theme, published, updated_at
    `, strings.Join(setClauses, ", "), idx)

	var page entity.CareerPage
	err := r.pool.QueryRow(ctx, query, args...).Scan(&page.ID, &page.CompanyID, &page.Theme, &page.Published, &page.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCareerPageNotFound
		}
		return nil, fmt.Errorf("update career page: %w", err)
	}
	return &page, nil
}

// ListPublished returns companies whose career page is published, most
// recently updated page first.
func (r *PGXCompaniesRepository) ListPublished(ctx context.Context) ([]PublishedCompany, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT c.id, c.name, c.slug, c.owner_id, c.created_at, p.updated_at
        FROM companies c
        JOIN career_pages p ON p.company_id = c.id
        WHERE p.published = TRUE
        ORDER BY p.updated_at DESC, c.slug ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("list published companies: %w", err)
	}
	defer rows.Close()

	var out []PublishedCompany
	for rows.Next() {
		var pc PublishedCompany
		if err := rows.Scan(&pc.Company.ID, &pc.Company.Name, &pc.Company.Slug, &pc.Company.OwnerID, &pc.Company.CreatedAt, &pc.PageUpdatedAt); err != nil {
			return nil, fmt.Errorf("scan published company: %w", err)
		}
		out = append(out, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate published companies: %w", err)
	}
	return out, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var company entity.Company
	if err := row.Scan(&company.ID, &company.Name, &company.Slug, &company.OwnerID, &company.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &company, nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	var companies []entity.Company
	for rows.Next() {
		var company entity.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Slug, &company.OwnerID, &company.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}
