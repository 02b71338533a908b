package handler

import (
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type AdminHandler struct {
	adminService *service.AdminService
	jobService   *service.JobService
}

func NewAdminHandler(adminService *service.AdminService, jobService *service.JobService) *AdminHandler {
	return &AdminHandler{adminService: adminService, jobService: jobService}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Use(middleware.RequireRole(model.RoleAdmin))
	r.Put("/jobs/{jobID}/approve", h.approveJob)
	r.Put("/jobs/{jobID}/reject", h.rejectJob)
	r.Get("/users", h.listUsers)
}

func (h *AdminHandler) approveJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Approve(r.Context(), chi.URLParam(r, "jobID"))
	if err != nil {
		h.respondModerationError(w, err, "Failed to approve job")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func (h *AdminHandler) rejectJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Reject(r.Context(), chi.URLParam(r, "jobID"))
	if err != nil {
		h.respondModerationError(w, err, "Failed to reject job")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

// Moderation failures answer 400, except a missing job which reads as
// 404. Internal detail stays in the log.
func (h *AdminHandler) respondModerationError(w http.ResponseWriter, err error, genericMsg string) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(genericMsg)
		common.RespondWithError(w, http.StatusBadRequest, genericMsg)
		return
	}
	common.RespondWithError(w, status, err.Error())
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch users")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}
