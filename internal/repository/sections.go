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

// ErrSectionNotFound is returned when no section matches the lookup.
var ErrSectionNotFound = errors.New("section not found")

// appendRetries bounds how often an append is retried when concurrent
// inserts collide on the same order slot.
const appendRetries = 3

// SectionsRepository describes persistence operations for page sections.
type SectionsRepository interface {
	Append(ctx context.Context, pageID uuid.UUID, sectionType entity.SectionType, title, content string) (*entity.PageSection, error)
	Find(ctx context.Context, id uuid.UUID) (*entity.PageSection, error)
	Update(ctx context.Context, id uuid.UUID, title, content *string, order *int, visible *bool) (*entity.PageSection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, pageID uuid.UUID) ([]entity.PageSection, error)
	Reorder(ctx context.Context, pageID uuid.UUID, sectionIDs []uuid.UUID) error
}

// PGXSectionsRepository implements SectionsRepository using pgx.
type PGXSectionsRepository struct {
	pool pgxPool
}

// NewPGXSectionsRepository wires a pgx backed repository.
func NewPGXSectionsRepository(pool *pgxpool.Pool) *PGXSectionsRepository {
	return &PGXSectionsRepository{pool: pool}
}

const appendSectionSQL = `
        INSERT INTO page_sections (career_page_id, type, title, content, "order", visible)
        SELECT $1, $2, $3, $4, COALESCE(MAX("order") + 1, 0), TRUE
        FROM page_sections
        WHERE career_page_id = $1
        RETURNING id, career_page_id, type, title, content, "order", visible, updated_at
    `

// Append inserts a section at the next order slot. The max-read and the
// insert happen in one statement, and the UNIQUE(career_page_id, "order")
// constraint rejects the loser if two appends still land on the same slot;
// the loser retries against the fresh maximum.
func (r *PGXSectionsRepository) Append(ctx context.Context, pageID uuid.UUID, sectionType entity.SectionType, title, content string) (*entity.PageSection, error) {
	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		var section entity.PageSection
		err := r.pool.QueryRow(ctx, appendSectionSQL, pageID, sectionType, title, content).Scan(
			&section.ID,
			&section.CareerPageID,
			&section.Type,
			&section.Title,
			&section.Content,
			&section.Order,
			&section.Visible,
			&section.UpdatedAt,
		)
		if err == nil {
			return &section, nil
		}
		if isUniqueViolation(err, "page_sections_career_page_id_order_key") {
			lastErr = err
			continue
		}
		return nil, fmt.Errorf("append section: %w", err)
	}
	return nil, fmt.Errorf("append section: order slot contention: %w", lastErr)
}

// Find retrieves a section by identifier.
func (r *PGXSectionsRepository) Find(ctx context.Context, id uuid.UUID) (*entity.PageSection, error) {
	var section entity.PageSection
	err := r.pool.QueryRow(ctx, `
        SELECT id, career_page_id, type, title, content, "order", visible, updated_at
        FROM page_sections
        WHERE id = $1
    `, id).Scan(
		&section.ID,
		&section.CareerPageID,
		&section.Type,
		&section.Title,
		&section.Content,
		&section.Order,
		&section.Visible,
		&section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("query section: %w", err)
	}
	return &section, nil
}

// Update patches the supplied fields only and stamps updated_at. The
// global order invariant is not re-validated here; Reorder is the safe
// path for moving sections.
func (r *PGXSectionsRepository) Update(ctx context.Context, id uuid.UUID, title, content *string, order *int, visible *bool) (*entity.PageSection, error) {
	setClauses := make([]string, 0, 5)
	args := make([]any, 0, 5)
	idx := 1

	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", idx))
		args = append(args, *title)
		idx++
	}
	if content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", idx))
		args = append(args, *content)
		idx++
	}
	if order != nil {
		setClauses = append(setClauses, fmt.Sprintf(`"order" = $%d`, idx))
		args = append(args, *order)
		idx++
	}
	if visible != nil {
		setClauses = append(setClauses, fmt.Sprintf("visible = $%d", idx))
		args = append(args, *visible)
		idx++
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE page_sections SET %s
        WHERE id = $%d
        RETURNING id, career_page_id, type, title, content, "order", visible, updated_at
    `, strings.Join(setClauses, ", "), idx)

	var section entity.PageSection
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&section.ID,
		&section.CareerPageID,
		&section.Type,
		&section.Title,
		&section.Content,
		&section.Order,
		&section.Visible,
		&section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("update section: %w", err)
	}
	return &section, nil
}

// Delete removes the section. Remaining sections are not renumbered; the
// resulting gap is tolerated by readers, which sort by order.
func (r *PGXSectionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM page_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// List returns all sections of a page sorted by order ascending.
func (r *PGXSectionsRepository) List(ctx context.Context, pageID uuid.UUID) ([]entity.PageSection, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, career_page_id, type, title, content, "order", visible, updated_at
        FROM page_sections
        WHERE career_page_id = $1
        ORDER BY "order" ASC
    `, pageID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	return scanSections(rows)
}

// Reorder rewrites the order values of a page's sections to 0..n-1
// following the supplied id sequence, in one transaction. Rows are first
// parked at negative slots so the unique constraint never trips while the
// permutation is applied.
func (r *PGXSectionsRepository) Reorder(ctx context.Context, pageID uuid.UUID, sectionIDs []uuid.UUID) error {
	if len(sectionIDs) == 0 {
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("start reorder tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, id := range sectionIDs {
		cmd, err := tx.Exec(ctx, `
            UPDATE page_sections SET "order" = $1, updated_at = NOW()
            WHERE id = $2 AND career_page_id = $3
        `, -(i + 1), id, pageID)
		if err != nil {
			return fmt.Errorf("park section %s: %w", id, err)
		}
		if cmd.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
		}
	}

	for i, id := range sectionIDs {
		if _, err := tx.Exec(ctx, `
            UPDATE page_sections SET "order" = $1
            WHERE id = $2 AND career_page_id = $3
        `, i, id, pageID); err != nil {
			return fmt.Errorf("assign section order %s: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reorder tx: %w", err)
	}
	return nil
}

func scanSections(rows pgx.Rows) ([]entity.PageSection, error) {
	var sections []entity.PageSection
	for rows.Next() {
		var section entity.PageSection
		err := rows.Scan(
			&section.ID,
			&section.CareerPageID,
			&section.Type,
			&section.Title,
			&section.Content,
			&section.Order,
			&section.Visible,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}
	return sections, nil
}
