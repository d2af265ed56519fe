package study

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

type StartSessionRequest struct {
	BucketID  *int      `json:"bucketId"`
	StartedAt time.Time `json:"startedAt"`
}

type EndSessionRequest struct {
	EndedAt       time.Time `json:"endedAt"`
	DeleteIfEmpty bool      `json:"deleteIfEmpty"`
}

type EndSessionResponse struct {
	ID    int  `json:"id"`
	Saved bool `json:"saved"`
}

type ActiveSessionResponse struct {
	Session *Session `json:"session"`
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
	r.HandleFunc("/study/sessions/start", h.HandleStart).Methods("POST", "OPTIONS").Name("study-start")
	r.HandleFunc("/study/sessions/active", h.HandleActive).Methods("GET", "OPTIONS").Name("study-active")
	r.HandleFunc("/study/sessions", h.HandleList).Methods("GET", "OPTIONS").Name("study-list")
	r.HandleFunc("/study/sessions/{id}/end", h.HandleEnd).Methods("POST", "OPTIONS").Name("study-end")
	r.HandleFunc("/study/sessions/{id}/notes", h.HandleUpdateNotes).Methods("PUT", "OPTIONS").Name("study-notes")
	r.HandleFunc("/study/buckets", h.HandleListBuckets).Methods("GET", "OPTIONS").Name("study-list-buckets")
	r.HandleFunc("/study/buckets", h.HandleAddBucket).Methods("POST", "OPTIONS").Name("study-add-bucket")
	r.HandleFunc("/study/buckets/{id}", h.HandleDeleteBucket).Methods("DELETE", "OPTIONS").Name("study-delete-bucket")
	r.HandleFunc("/study/buckets/totals", h.HandleBucketTotals).Methods("GET", "OPTIONS").Name("study-bucket-totals")
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.start")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StartSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("start study session, unmarshal json params: %s", err)
			http.Error(w, "invalid start session request", http.StatusBadRequest)
			return
		}
	}

	session, err := h.service.StartSession(ctx, userID, req.BucketID, req.StartedAt)
	if err != nil {
		if errors.Is(err, ErrBucketNotFound) {
			http.Error(w, "bucket not found", http.StatusBadRequest)
			return
		}
		log.Errorf("start study session for user %d: %s", userID, err)
		http.Error(w, "failed to start study session", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, session)
}

func (h *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.end")
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

	var req EndSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("end study session, unmarshal json params: %s", err)
			http.Error(w, "invalid end session request", http.StatusBadRequest)
			return
		}
	}

	saved, err := h.service.EndSession(ctx, userID, id, req.EndedAt, req.DeleteIfEmpty)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, MsgSessionGone, http.StatusNotFound)
			return
		}
		log.Errorf("end study session %d: %s", id, err)
		http.Error(w, "failed to end study session", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, EndSessionResponse{ID: id, Saved: saved})
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.active")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	session, err := h.service.ActiveSession(ctx, userID)
	if err != nil {
		log.Errorf("get active study session for user %d: %s", userID, err)
		http.Error(w, "failed to get active study session", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, ActiveSessionResponse{Session: session})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.list")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := pkg.ParseTimeRange(r.URL.Query(), 7*24*time.Hour)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, err := h.service.ListSessions(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list study sessions for user %d: %s", userID, err)
		http.Error(w, "failed to list study sessions", http.StatusInternalServerError)
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, sessions)
}

func (h *Handler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.updateNotes")
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
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, MsgSessionGone, http.StatusNotFound)
			return
		}
		log.Errorf("update study session notes %d: %s", id, err)
		http.Error(w, "failed to update notes", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleListBuckets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.listBuckets")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	buckets, err := h.service.ListBuckets(ctx, userID)
	if err != nil {
		log.Errorf("list buckets for user %d: %s", userID, err)
		http.Error(w, "failed to list buckets", http.StatusInternalServerError)
		return
	}
	if buckets == nil {
		buckets = []Bucket{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, buckets)
}

func (h *Handler) HandleAddBucket(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.addBucket")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var bucket Bucket
	if err := json.NewDecoder(r.Body).Decode(&bucket); err != nil {
		http.Error(w, "invalid bucket request", http.StatusBadRequest)
		return
	}
	bucket.UserID = userID

	added, err := h.service.AddBucket(ctx, bucket)
	if err != nil {
		if errors.Is(err, ErrInvalidBucket) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add bucket for user %d: %s", userID, err)
		http.Error(w, "failed to add bucket", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, added)
}

func (h *Handler) HandleDeleteBucket(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.deleteBucket")
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

	if err := h.service.DeleteBucket(ctx, userID, id); err != nil {
		if errors.Is(err, ErrBucketNotFound) {
			http.Error(w, "bucket not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete bucket %d: %s", id, err)
		http.Error(w, "failed to delete bucket", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]int{"deletedId": id})
}

func (h *Handler) HandleBucketTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.study.bucketTotals")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := pkg.ParseTimeRange(r.URL.Query(), 30*24*time.Hour)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	totals, err := h.service.BucketTotals(ctx, userID, from, to)
	if err != nil {
		log.Errorf("bucket totals for user %d: %s", userID, err)
		http.Error(w, "failed to get bucket totals", http.StatusInternalServerError)
		return
	}
	if totals == nil {
		totals = []BucketTotal{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, totals)
}
