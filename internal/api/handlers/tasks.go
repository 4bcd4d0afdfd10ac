package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/selimyuksel/task-manager-backend/internal/api/httpx"
	"github.com/selimyuksel/task-manager-backend/internal/middleware"
	"github.com/selimyuksel/task-manager-backend/internal/models"
	"github.com/selimyuksel/task-manager-backend/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// actingUser is always present under the auth middleware; the ok check
// only guards against a miswired route.
func actingUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Not authorized, no token")
	}
	return u, ok
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	tasks, err := h.tasks.List(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	httpx.WriteJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	var in services.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	t, err := h.tasks.Create(r.Context(), user, in)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	t, err := h.tasks.GetByID(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	var patch services.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	t, err := h.tasks.Update(r.Context(), user, chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	if err := h.tasks.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Task removed"})
}

func (h *TaskHandler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	t, err := h.tasks.ToggleCompletion(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}
