package gym

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/lifedash/internal/auth"
	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type StartWorkoutRequest struct {
	Name      string    `json:"name"`
	StartedAt time.Time `json:"startedAt"`
}

type EndWorkoutRequest struct {
	EndedAt       time.Time `json:"endedAt"`
	DeleteIfEmpty bool      `json:"deleteIfEmpty"`
}

type EndWorkoutResponse struct {
	ID    int  `json:"id"`
	Saved bool `json:"saved"`
}

type ActiveWorkoutResponse struct {
	Workout *Workout `json:"workout"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/gym/workouts/start", h.HandleStart).Methods("POST", "OPTIONS").Name("gym-start")
	r.HandleFunc("/gym/workouts/active", h.HandleActive).Methods("GET", "OPTIONS").Name("gym-active")
	r.HandleFunc("/gym/workouts/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("gym-list")
	r.HandleFunc("/gym/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("gym-get")
	r.HandleFunc("/gym/workouts/{id}/end", h.HandleEnd).Methods("POST", "OPTIONS").Name("gym-end")
	r.HandleFunc("/gym/workouts/{id}/notes", h.HandleUpdateNotes).Methods("PUT", "OPTIONS").Name("gym-notes")
	r.HandleFunc("/gym/workouts/{id}/lifts", h.HandleListLifts).Methods("GET", "OPTIONS").Name("gym-list-lifts")
	r.HandleFunc("/gym/lifts", h.HandleAddLift).Methods("POST", "OPTIONS").Name("gym-add-lift")
	r.HandleFunc("/gym/lifts/{id}", h.HandleDeleteLift).Methods("DELETE", "OPTIONS").Name("gym-delete-lift")
	r.HandleFunc("/gym/records", h.HandleRecords).Methods("GET", "OPTIONS").Name("gym-records")
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.start")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StartWorkoutRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("start workout, unmarshal json params: %s", err)
			http.Error(w, "invalid start workout request", http.StatusBadRequest)
			return
		}
	}

	workout, err := h.service.StartWorkout(ctx, userID, req.Name, req.StartedAt)
	if err != nil {
		log.Errorf("start workout for user %d: %s", userID, err)
		http.Error(w, "failed to start workout", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, workout)
}

func (h *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.end")
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

	var req EndWorkoutRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("end workout, unmarshal json params: %s", err)
			http.Error(w, "invalid end workout request", http.StatusBadRequest)
			return
		}
	}

	saved, err := h.service.EndWorkout(ctx, userID, id, req.EndedAt, req.DeleteIfEmpty)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, MsgWorkoutGone, http.StatusNotFound)
			return
		}
		log.Errorf("end workout %d: %s", id, err)
		http.Error(w, "failed to end workout", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, EndWorkoutResponse{ID: id, Saved: saved})
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.active")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workout, err := h.service.ActiveWorkout(ctx, userID)
	if err != nil {
		log.Errorf("get active workout for user %d: %s", userID, err)
		http.Error(w, "failed to get active workout", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, ActiveWorkoutResponse{Workout: workout})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.get")
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

	workout, err := h.service.GetWorkout(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, workout)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.list")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	page, size, err := pkg.ParsePageAndSize(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workouts, total, err := h.service.ListWorkouts(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	if workouts == nil {
		workouts = []Workout{}
	}
	pkg.SendJsonResponse(w, http.StatusOK, ListResponse{Workouts: workouts, Total: total})
}

func (h *Handler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.updateNotes")
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

	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid notes request", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateNotes(ctx, userID, id, req.Notes); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout notes %d: %s", id, err)
		http.Error(w, "failed to update notes", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleAddLift(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.addLift")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var lift Lift
	if err := json.NewDecoder(r.Body).Decode(&lift); err != nil {
		log.Tracef("add lift, unmarshal json params: %s", err)
		http.Error(w, "invalid lift request", http.StatusBadRequest)
		return
	}
	lift.UserID = userID

	result, err := h.service.AddLift(ctx, lift)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidLiftInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNoActiveWorkout):
			http.Error(w, MsgWorkoutGone, http.StatusConflict)
		default:
			log.Errorf("add lift for user %d: %s", userID, err)
			http.Error(w, "failed to add lift", http.StatusInternalServerError)
		}
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, result)
}

func (h *Handler) HandleDeleteLift(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.deleteLift")
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

	if err := h.service.DeleteLift(ctx, userID, id); err != nil {
		if errors.Is(err, ErrLiftNotFound) {
			http.Error(w, "lift not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete lift %d: %s", id, err)
		http.Error(w, "failed to delete lift", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]int{"deletedId": id})
}

func (h *Handler) HandleListLifts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.listLifts")
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

	lifts, err := h.service.ListLifts(ctx, userID, id)
	if err != nil {
		log.Errorf("list lifts for workout %d: %s", id, err)
		http.Error(w, "failed to list lifts", http.StatusInternalServerError)
		return
	}
	if lifts == nil {
		lifts = []Lift{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, lifts)
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.records")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	records, err := h.service.ListPersonalRecords(ctx, userID)
	if err != nil {
		log.Errorf("list personal records for user %d: %s", userID, err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []PersonalRecord{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, records)
}
