package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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
	r.HandleFunc("/reviews", h.HandleSubmit).Methods("POST", "OPTIONS").Name("review-submit")
	r.HandleFunc("/reviews", h.HandleList).Methods("GET", "OPTIONS").Name("review-list")
	r.HandleFunc("/reviews/{date}", h.HandleGet).Methods("GET", "OPTIONS").Name("review-get")
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.review.submit")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var review Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		log.Tracef("submit review, unmarshal json params: %s", err)
		http.Error(w, "invalid review request", http.StatusBadRequest)
		return
	}
	review.UserID = userID

	result, err := h.service.Submit(ctx, review)
	if err != nil {
		if errors.Is(err, ErrInvalidReview) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("submit review for user %d: %s", userID, err)
		http.Error(w, "failed to submit review", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, result)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.review.get")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	review, err := h.service.Get(ctx, userID, mux.Vars(r)["date"])
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidReview):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrReviewNotFound):
			http.Error(w, "review not found", http.StatusNotFound)
		default:
			log.Errorf("get review for user %d: %s", userID, err)
			http.Error(w, "failed to get review", http.StatusInternalServerError)
		}
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, review)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.review.list")
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

	reviews, err := h.service.List(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list reviews for user %d: %s", userID, err)
		http.Error(w, "failed to list reviews", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []Review{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, reviews)
}
