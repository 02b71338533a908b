package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"
)

// In-memory repositories mirroring the postgres implementations,
// including the listing semantics (expiry bound, case-sensitive
// substring keyword match, newest-first ordering).

type memUserRepo struct {
	users map[string]*model.User // keyed by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return common.ErrConflict
		}
	}
	u := *user
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = &u
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	for _, u := range r.users {
		cp := *u
		cp.HashedPassword = ""
		users = append(users, cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

type memJobRepo struct {
	jobs map[string]*model.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]*model.Job{}}
}

func (r *memJobRepo) Create(ctx context.Context, job *model.Job) error {
	cp := *job
	r.jobs[cp.ID] = &cp
	return nil
}

func (r *memJobRepo) Update(ctx context.Context, job *model.Job) error {
	stored, ok := r.jobs[job.ID]
	if !ok {
		return common.ErrNotFound
	}
	stored.Slug = job.Slug
	stored.Title = job.Title
	stored.Description = job.Description
	stored.Country = job.Country
	stored.City = job.City
	stored.ApplyLink = job.ApplyLink
	stored.CompanyName = job.CompanyName
	stored.EmploymentType = job.EmploymentType
	stored.SalaryRange = job.SalaryRange
	return nil
}

func (r *memJobRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *memJobRepo) UpdateStatus(ctx context.Context, id string, status model.JobStatus) error {
	stored, ok := r.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	stored.Status = status
	return nil
}

func (r *memJobRepo) FindByID(ctx context.Context, id string) (*model.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *memJobRepo) FindBySlug(ctx context.Context, slug string) (*model.Job, error) {
	for _, j := range r.jobs {
		if j.Slug == slug {
			cp := *j
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memJobRepo) List(ctx context.Context, filter repository.JobFilter, now time.Time) ([]model.Job, error) {
	jobs := []model.Job{}
	for _, j := range r.jobs {
		if !j.ExpiresAt.After(now) {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if filter.Keyword != "" &&
			!strings.Contains(j.Title, filter.Keyword) &&
			!strings.Contains(j.CompanyName, filter.Keyword) &&
			!strings.Contains(j.Description, filter.Keyword) {
			continue
		}
		if filter.Country != "" && j.Country != filter.Country {
			continue
		}
		if filter.City != "" && j.City != filter.City {
			continue
		}
		if !filter.PostedSince.IsZero() && j.CreatedAt.Before(filter.PostedSince) {
			continue
		}
		jobs = append(jobs, *j)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (r *memJobRepo) ListByEmployer(ctx context.Context, employerID string) ([]model.Job, error) {
	jobs := []model.Job{}
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			jobs = append(jobs, *j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}
