// Dev seeding tool: creates the schema if needed, wipes job and user
// data, and loads an admin, two employers and a handful of postings.
package main

import (
	"context"
	"time"

	"jobboard/internal/app/service"
	"jobboard/internal/common/security"
	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"
	"jobboard/internal/platform/config"
	"jobboard/internal/platform/database"
	"jobboard/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id              UUID PRIMARY KEY,
    name            TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    role            TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS jobs (
    id              UUID PRIMARY KEY,
    slug            TEXT NOT NULL UNIQUE,
    title           TEXT NOT NULL,
    description     TEXT NOT NULL,
    country         TEXT NOT NULL DEFAULT '',
    city            TEXT NOT NULL DEFAULT '',
    apply_link      TEXT NOT NULL DEFAULT '',
    company_name    TEXT NOT NULL DEFAULT '',
    employment_type TEXT NOT NULL DEFAULT '',
    salary_range    TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL DEFAULT 'PENDING',
    employer_id     UUID NOT NULL REFERENCES users (id),
    created_at      TIMESTAMPTZ NOT NULL,
    expires_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS jobs_employer_id_idx ON jobs (employer_id);
CREATE INDEX IF NOT EXISTS jobs_status_expires_at_idx ON jobs (status, expires_at);
`

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("schema creation failed")
	}

	// Clear old data
	if _, err := db.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		log.Fatal().Err(err).Msg("clearing jobs failed")
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		log.Fatal().Err(err).Msg("clearing users failed")
	}

	userRepo := repository.NewPgUserRepository(db)
	jobRepo := repository.NewPgJobRepository(db)

	mustUser(ctx, userRepo, "Super Admin", "admin@example.com", "admin123", model.RoleAdmin)
	employer1 := mustUser(ctx, userRepo, "Tech Corp", "employer1@example.com", "employer123", model.RoleEmployer)
	employer2 := mustUser(ctx, userRepo, "Finance Inc", "employer2@example.com", "employer123", model.RoleEmployer)

	jobService := service.NewJobService(jobRepo, nil)

	mustJob(ctx, jobService, employer1.ID, service.JobRequest{
		Title:          "Frontend Developer",
		Description:    "Work with React, Next.js and Tailwind.",
		City:           "Lagos",
		Country:        "Nigeria",
		ApplyLink:      "https://apply.example.com/frontend",
		EmploymentType: "Full-time",
		SalaryRange:    "$1000 - $1500",
		CompanyName:    "Tech Corp",
	})

	approved := mustJob(ctx, jobService, employer1.ID, service.JobRequest{
		Title:          "Backend Engineer",
		Description:    "Go, PostgreSQL and Redis required.",
		City:           "Abuja",
		Country:        "Nigeria",
		ApplyLink:      "https://apply.example.com/backend",
		EmploymentType: "Contract",
		SalaryRange:    "$1200 - $2000",
		CompanyName:    "Tech Corp",
	})
	if _, err := jobService.Approve(ctx, approved.ID); err != nil {
		log.Fatal().Err(err).Msg("approving seed job failed")
	}

	// An already-expired posting, to exercise the visibility cutoff.
	expired := mustJob(ctx, jobService, employer2.ID, service.JobRequest{
		Title:          "Accountant",
		Description:    "Handle finance and reporting.",
		City:           "Nairobi",
		Country:        "Kenya",
		ApplyLink:      "https://apply.example.com/accountant",
		EmploymentType: "Part-time",
		SalaryRange:    "$800 - $1200",
		CompanyName:    "Finance Inc",
	})
	if _, err := jobService.Approve(ctx, expired.ID); err != nil {
		log.Fatal().Err(err).Msg("approving seed job failed")
	}
	if _, err := db.ExecContext(ctx,
		`UPDATE jobs SET expires_at = $1 WHERE id = $2`,
		time.Now().Add(-5*24*time.Hour), expired.ID,
	); err != nil {
		log.Fatal().Err(err).Msg("backdating seed job failed")
	}

	log.Info().Msg("database seeded successfully")
	log.Info().Msg("admin login: admin@example.com / admin123")
	log.Info().Msg("employer login: employer1@example.com / employer123")
	log.Info().Msg("employer login: employer2@example.com / employer123")
}

func mustUser(ctx context.Context, repo repository.UserRepository, name, email, password, role string) *model.User {
	hash, err := security.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("hashing seed password failed")
	}
	user := &model.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		HashedPassword: hash,
		Role:           role,
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("creating seed user failed")
	}
	return user
}

func mustJob(ctx context.Context, svc *service.JobService, employerID string, req service.JobRequest) *model.Job {
	job, err := svc.Create(ctx, employerID, req)
	if err != nil {
		log.Fatal().Err(err).Str("title", req.Title).Msg("creating seed job failed")
	}
	return job
}
