package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// JobFilter narrows the public listing. Zero values apply no bound;
// all populated filters combine with AND. Keyword matches as a
// case-sensitive substring across title, company name and description.
type JobFilter struct {
	Keyword     string
	Country     string
	City        string
	Status      model.JobStatus
	PostedSince time.Time
}

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status model.JobStatus) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	FindBySlug(ctx context.Context, slug string) (*model.Job, error)
	List(ctx context.Context, filter JobFilter, now time.Time) ([]model.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]model.Job, error)
}

type pgJobRepository struct {
	db *sql.DB
}

func NewPgJobRepository(db *sql.DB) JobRepository {
	return &pgJobRepository{db: db}
}

const jobColumns = `id, slug, title, description, country, city, apply_link,
	company_name, employment_type, salary_range, status, employer_id,
	created_at, expires_at`

func scanJob(row interface{ Scan(...interface{}) error }, j *model.Job) error {
	return row.Scan(
		&j.ID, &j.Slug, &j.Title, &j.Description, &j.Country, &j.City, &j.ApplyLink,
		&j.CompanyName, &j.EmploymentType, &j.SalaryRange, &j.Status, &j.EmployerID,
		&j.CreatedAt, &j.ExpiresAt,
	)
}

func (r *pgJobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `INSERT INTO jobs (id, slug, title, description, country, city, apply_link,
	              company_name, employment_type, salary_range, status, employer_id,
	              created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Slug, job.Title, job.Description, job.Country, job.City, job.ApplyLink,
		job.CompanyName, job.EmploymentType, job.SalaryRange, job.Status, job.EmployerID,
		job.CreatedAt, job.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("job with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgJobRepository.Create: %w", err)
	}
	return nil
}

// Update overwrites content fields only. Status, employer, creation and
// expiry timestamps are untouched by owner edits.
func (r *pgJobRepository) Update(ctx context.Context, job *model.Job) error {
	query := `UPDATE jobs SET
	              slug = $1, title = $2, description = $3, country = $4, city = $5,
	              apply_link = $6, company_name = $7, employment_type = $8, salary_range = $9
	          WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		job.Slug, job.Title, job.Description, job.Country, job.City,
		job.ApplyLink, job.CompanyName, job.EmploymentType, job.SalaryRange, job.ID,
	)
	if err != nil {
		return fmt.Errorf("pgJobRepository.Update: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgJobRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgJobRepository.Delete: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgJobRepository) UpdateStatus(ctx context.Context, id string, status model.JobStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("pgJobRepository.UpdateStatus: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgJobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job := &model.Job{}
	if err := scanJob(r.db.QueryRowContext(ctx, query, id), job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgJobRepository.FindByID: %w", err)
	}
	return job, nil
}

func (r *pgJobRepository) FindBySlug(ctx context.Context, slug string) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = $1`
	job := &model.Job{}
	if err := scanJob(r.db.QueryRowContext(ctx, query, slug), job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgJobRepository.FindBySlug: %w", err)
	}
	return job, nil
}

// List returns jobs matching the filter that have not yet expired,
// newest first. The expiry bound applies even when the caller asks for
// a status other than APPROVED.
func (r *pgJobRepository) List(ctx context.Context, filter JobFilter, now time.Time) ([]model.Job, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + jobColumns + ` FROM jobs`)

	conditions := []string{"expires_at > $1"}
	args := []interface{}{now}
	argID := 2

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, filter.Status)
		argID++
	}

	if filter.Keyword != "" {
		// LIKE, not ILIKE: the matching is case-sensitive. See DESIGN.md
		// for the known ambiguity around this.
		conditions = append(conditions, fmt.Sprintf(
			"(title LIKE $%d OR company_name LIKE $%d OR description LIKE $%d)",
			argID, argID+1, argID+2))
		likeTerm := "%" + filter.Keyword + "%"
		args = append(args, likeTerm, likeTerm, likeTerm)
		argID += 3
	}

	if filter.Country != "" {
		conditions = append(conditions, fmt.Sprintf("country = $%d", argID))
		args = append(args, filter.Country)
		argID++
	}

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", argID))
		args = append(args, filter.City)
		argID++
	}

	if !filter.PostedSince.IsZero() {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argID))
		args = append(args, filter.PostedSince)
		argID++
	}

	query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	query.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("pgJobRepository.List query: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		var j model.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, fmt.Errorf("pgJobRepository.List scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgJobRepository.List rows.Err: %w", err)
	}
	return jobs, nil
}

// ListByEmployer is the owner's dashboard view: every job regardless of
// status or expiry, newest first.
func (r *pgJobRepository) ListByEmployer(ctx context.Context, employerID string) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("pgJobRepository.ListByEmployer query: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		var j model.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, fmt.Errorf("pgJobRepository.ListByEmployer scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgJobRepository.ListByEmployer rows.Err: %w", err)
	}
	return jobs, nil
}
