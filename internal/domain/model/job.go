package model

import (
	"time"
)

type JobStatus string

const (
	StatusPending  JobStatus = "PENDING"
	StatusApproved JobStatus = "APPROVED"
	StatusRejected JobStatus = "REJECTED"
)

// JobTTL is how long a posting stays live. expires_at is fixed at
// creation and never extended by edits.
const JobTTL = 30 * 24 * time.Hour

type Job struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Country        string    `json:"country"`
	City           string    `json:"city"`
	ApplyLink      string    `json:"apply_link"`
	CompanyName    string    `json:"company_name"`
	EmploymentType string    `json:"employment_type"`
	SalaryRange    string    `json:"salary_range"`
	Status         JobStatus `json:"status"`
	EmployerID     string    `json:"employer_id"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// VisibleAt reports whether the job may appear in public listings at the
// given instant. Expiry is derived here on read; the stored status is never
// rewritten when a job ages out, so no background sweep is needed.
func (j *Job) VisibleAt(now time.Time) bool {
	return j.Status == StatusApproved && now.Before(j.ExpiresAt)
}

// Expired reports whether the posting is past its expiry, regardless of
// moderation status.
func (j *Job) Expired(now time.Time) bool {
	return !now.Before(j.ExpiresAt)
}
