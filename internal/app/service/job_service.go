package service

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ListingCache is the read-through cache for public listings. It is
// best-effort: a nil cache disables caching entirely.
type ListingCache interface {
	Get(ctx context.Context, filterKey string) ([]model.Job, bool)
	Set(ctx context.Context, filterKey string, jobs []model.Job)
	Invalidate(ctx context.Context)
}

type JobService struct {
	jobRepo repository.JobRepository
	cache   ListingCache
}

func NewJobService(jobRepo repository.JobRepository, cache ListingCache) *JobService {
	return &JobService{jobRepo: jobRepo, cache: cache}
}

// JobRequest carries the employer-editable content fields. Status,
// ownership and expiry are never taken from the payload.
type JobRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Country        string `json:"country"`
	City           string `json:"city"`
	ApplyLink      string `json:"apply_link"`
	CompanyName    string `json:"company_name"`
	EmploymentType string `json:"employment_type"`
	SalaryRange    string `json:"salary_range"`
}

type ListJobsRequest struct {
	Keyword    string
	Country    string
	City       string
	Status     string
	DatePosted string
}

func jobSlug(title, id string) string {
	return slug.Make(title) + "-" + id[:8]
}

func (s *JobService) Create(ctx context.Context, employerID string, req JobRequest) (*model.Job, error) {
	if req.Title == "" || req.Description == "" {
		return nil, common.Errorf("title and description are required: %w", common.ErrBadRequest)
	}

	now := time.Now()
	job := &model.Job{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Country:        req.Country,
		City:           req.City,
		ApplyLink:      req.ApplyLink,
		CompanyName:    req.CompanyName,
		EmploymentType: req.EmploymentType,
		SalaryRange:    req.SalaryRange,
		Status:         model.StatusPending,
		EmployerID:     employerID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(model.JobTTL),
	}
	job.Slug = jobSlug(job.Title, job.ID)

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	s.invalidate(ctx)
	return job, nil
}

// Update overwrites the content fields of a job owned by the caller.
// Moderation status and expiry are not editable here: an edit never
// revives a rejected or expired posting.
func (s *JobService) Update(ctx context.Context, jobID, callerID string, req JobRequest) (*model.Job, error) {
	job, err := s.ownedJob(ctx, jobID, callerID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Country = req.Country
	job.City = req.City
	job.ApplyLink = req.ApplyLink
	job.CompanyName = req.CompanyName
	job.EmploymentType = req.EmploymentType
	job.SalaryRange = req.SalaryRange
	job.Slug = jobSlug(job.Title, job.ID)

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	s.invalidate(ctx)
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, jobID, callerID string) error {
	if _, err := s.ownedJob(ctx, jobID, callerID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *JobService) Approve(ctx context.Context, jobID string) (*model.Job, error) {
	return s.moderate(ctx, jobID, model.StatusApproved)
}

func (s *JobService) Reject(ctx context.Context, jobID string) (*model.Job, error) {
	return s.moderate(ctx, jobID, model.StatusRejected)
}

// moderate flips the stored status. Any admin may moderate any job;
// there is no ownership concept on this path.
func (s *JobService) moderate(ctx context.Context, jobID string, status model.JobStatus) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		return nil, fmt.Errorf("failed to set job status: %w", err)
	}
	job.Status = status
	s.invalidate(ctx)
	return job, nil
}

// List is the public search. The status filter defaults to APPROVED and
// the expiry bound always applies, even for an explicit status override.
func (s *JobService) List(ctx context.Context, req ListJobsRequest) ([]model.Job, error) {
	now := time.Now()
	filter := repository.JobFilter{
		Keyword:     req.Keyword,
		Country:     req.Country,
		City:        req.City,
		Status:      model.JobStatus(req.Status),
		PostedSince: postedSince(req.DatePosted, now),
	}
	if filter.Status == "" {
		filter.Status = model.StatusApproved
	}

	key := listingKey(filter)
	if s.cache != nil {
		if jobs, ok := s.cache.Get(ctx, key); ok {
			return jobs, nil
		}
	}

	jobs, err := s.jobRepo.List(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, jobs)
	}
	return jobs, nil
}

// ListMine returns every job the employer owns, including pending,
// rejected and expired ones. This is the owner's dashboard, not a
// public view.
func (s *JobService) ListMine(ctx context.Context, employerID string) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employer jobs: %w", err)
	}
	return jobs, nil
}

// GetBySlug resolves a single posting for the public detail page. A job
// that exists but is not currently visible reads as not found.
func (s *JobService) GetBySlug(ctx context.Context, jobSlug string) (*model.Job, error) {
	job, err := s.jobRepo.FindBySlug(ctx, jobSlug)
	if err != nil {
		return nil, err
	}
	if !job.VisibleAt(time.Now()) {
		return nil, common.ErrNotFound
	}
	return job, nil
}

func (s *JobService) ownedJob(ctx context.Context, jobID, callerID string) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != callerID {
		return nil, common.Errorf("not the owner of this job: %w", common.ErrForbidden)
	}
	return job, nil
}

func (s *JobService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func listingKey(f repository.JobFilter) string {
	since := ""
	if !f.PostedSince.IsZero() {
		since = f.PostedSince.UTC().Format("2006-01-02T15:04")
	}
	return fmt.Sprintf("k=%s|co=%s|ci=%s|st=%s|ps=%s", f.Keyword, f.Country, f.City, f.Status, since)
}

// postedSince translates the datePosted query value into a creation
// time lower bound. Unrecognized values apply no bound.
func postedSince(datePosted string, now time.Time) time.Time {
	switch datePosted {
	case "last-24-hours":
		return now.Add(-24 * time.Hour)
	case "last-7-days":
		return now.Add(-7 * 24 * time.Hour)
	case "last-30-days":
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}
