package handler

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// The {jobRef} segment is shared across methods (chi requires one
// wildcard name per position): a slug on the public GET, an id on the
// employer mutations.
func (h *JobHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listJobs)       // GET /jobs
	r.Get("/{jobRef}", h.getJob) // GET /jobs/backend-engineer-1a2b3c4d

	r.Group(func(employerRouter chi.Router) {
		employerRouter.Use(middleware.Authenticator)
		employerRouter.Use(middleware.RequireRole(model.RoleEmployer))
		employerRouter.Get("/mine", h.listMyJobs)
		employerRouter.Post("/", h.createJob)
		employerRouter.Put("/{jobRef}", h.updateJob)
		employerRouter.Delete("/{jobRef}", h.deleteJob)
	})
}

func (h *JobHandler) createJob(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req service.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job, err := h.jobService.Create(r.Context(), employerID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create job")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func (h *JobHandler) updateJob(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req service.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job, err := h.jobService.Update(r.Context(), chi.URLParam(r, "jobRef"), employerID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update job")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func (h *JobHandler) deleteJob(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.jobService.Delete(r.Context(), chi.URLParam(r, "jobRef"), employerID); err != nil {
		respondServiceError(w, r, err, "Failed to delete job")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *JobHandler) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := service.ListJobsRequest{
		Keyword:    q.Get("keyword"),
		Country:    q.Get("country"),
		City:       q.Get("city"),
		Status:     q.Get("status"),
		DatePosted: q.Get("datePosted"),
	}

	jobs, err := h.jobService.List(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch jobs")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) listMyJobs(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	jobs, err := h.jobService.ListMine(r.Context(), employerID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch jobs")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetBySlug(r.Context(), chi.URLParam(r, "jobRef"))
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch job")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}
