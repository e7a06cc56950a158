package handler

import (
	"net/http"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/api/middleware"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/app/service"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"

	"github.com/go-chi/chi/v5"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(as *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: as}
}

func (h *ActivityHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listActivities) // GET /activities
}

func (h *ActivityHandler) listActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	activities, err := h.activityService.ListForUser(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, activities)
}
