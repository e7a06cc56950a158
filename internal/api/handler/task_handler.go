package handler

import (
	"encoding/json"
	"net/http"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/api/middleware"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/app/service"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"

	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(ts *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: ts}
}

func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createTask)           // POST /tasks
	r.Get("/", h.listTasks)             // GET /tasks?projectId=
	r.Put("/{taskID}", h.updateTask)    // PUT /tasks/{id}
	r.Delete("/{taskID}", h.deleteTask) // DELETE /tasks/{id}
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())

	var req service.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if _, err := h.taskService.CreateTask(r.Context(), userID, userRole, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "Task created successfully!")
}

func (h *TaskHandler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())
	projectID := r.URL.Query().Get("projectId")

	tasks, err := h.taskService.ListTasks(r.Context(), userID, userRole, projectID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	var req service.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.taskService.UpdateTask(r.Context(), userID, userRole, taskID, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "Task updated successfully!")
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	if err := h.taskService.DeleteTask(r.Context(), userID, userRole, taskID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "Task deleted successfully!")
}
