package handler

import (
	"encoding/json"
	"net/http"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/api/middleware"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/app/service"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(ps *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createProject)              // POST /projects
	r.Get("/", h.listProjects)                // GET /projects
	r.Put("/{projectID}", h.updateProject)    // PUT /projects/{id}
	r.Delete("/{projectID}", h.deleteProject) // DELETE /projects/{id}
}

func (h *ProjectHandler) createProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if _, err := h.projectService.CreateProject(r.Context(), userID, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "Project created successfully!")
}

func (h *ProjectHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) updateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	var req service.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.projectService.UpdateProject(r.Context(), userID, userRole, projectID, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "Project updated successfully!")
}

func (h *ProjectHandler) deleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	if err := h.projectService.DeleteProject(r.Context(), userID, userRole, projectID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "Project deleted successfully!")
}
