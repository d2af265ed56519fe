package tasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/lifedash/internal/auth"
	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/tasks", h.HandleList).Methods("GET", "OPTIONS").Name("tasks-list")
	r.HandleFunc("/tasks", h.HandleAdd).Methods("POST", "OPTIONS").Name("tasks-add")
	r.HandleFunc("/tasks/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("tasks-get")
	r.HandleFunc("/tasks/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("tasks-update")
	r.HandleFunc("/tasks/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("tasks-delete")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.list")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	tasks, err := h.service.List(ctx, userID, r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidTask) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("list tasks for user %d: %s", userID, err)
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []Task{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, tasks)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.add")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var task Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Tracef("add task, unmarshal json params: %s", err)
		http.Error(w, "invalid task request", http.StatusBadRequest)
		return
	}
	task.UserID = userID

	added, err := h.service.Add(ctx, task)
	if err != nil {
		if errors.Is(err, ErrInvalidTask) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add task for user %d: %s", userID, err)
		http.Error(w, "failed to add task", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, added)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.get")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	task, err := h.service.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("get task %d: %s", id, err)
		http.Error(w, "failed to get task", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, task)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.update")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var task Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Tracef("update task, unmarshal json params: %s", err)
		http.Error(w, "invalid task request", http.StatusBadRequest)
		return
	}
	task.ID = id
	task.UserID = userID

	updated, err := h.service.Update(ctx, task)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTask):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrTaskNotFound):
			http.Error(w, "task not found", http.StatusNotFound)
		default:
			log.Errorf("update task %d: %s", id, err)
			http.Error(w, "failed to update task", http.StatusInternalServerError)
		}
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.delete")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete task %d: %s", id, err)
		http.Error(w, "failed to delete task", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]int{"deletedId": id})
}
