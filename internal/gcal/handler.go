package gcal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/2beens/lifedash/internal/auth"
	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gcal_test

type settingsStore interface {
	GetCredentials(ctx context.Context, userID int) (*Credentials, error)
	SetSyncEnabled(ctx context.Context, userID int, enabled bool) error
	ListCachedEvents(ctx context.Context, userID int, from, to time.Time) ([]CachedEvent, error)
}

type StatusResponse struct {
	Connected   bool       `json:"connected"`
	SyncEnabled bool       `json:"syncEnabled"`
	CalendarID  string     `json:"calendarId,omitempty"`
	LastSyncAt  *time.Time `json:"lastSyncAt,omitempty"`
}

type Handler struct {
	tokens      *TokenManager
	syncer      *Syncer
	store       settingsStore
	frontendURL string
	windowDays  int
}

func NewHandler(tokens *TokenManager, syncer *Syncer, store settingsStore, frontendURL string, windowDays int) *Handler {
	return &Handler{
		tokens:      tokens,
		syncer:      syncer,
		store:       store,
		frontendURL: frontendURL,
		windowDays:  windowDays,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/gcal/connect", h.HandleConnect).Methods("GET", "OPTIONS").Name("gcal-connect")
	r.HandleFunc("/gcal/callback", h.HandleCallback).Methods("GET").Name("gcal-callback")
	r.HandleFunc("/gcal/status", h.HandleStatus).Methods("GET", "OPTIONS").Name("gcal-status")
	r.HandleFunc("/gcal/sync", h.HandleSync).Methods("POST", "OPTIONS").Name("gcal-sync")
	r.HandleFunc("/gcal/sync-enabled", h.HandleSetSyncEnabled).Methods("PUT", "OPTIONS").Name("gcal-sync-enabled")
	r.HandleFunc("/gcal/connection", h.HandleDisconnect).Methods("DELETE", "OPTIONS").Name("gcal-disconnect")
	r.HandleFunc("/gcal/events", h.HandleEvents).Methods("GET", "OPTIONS").Name("gcal-events")
}

func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.connect")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !h.tokens.Configured() {
		http.Error(w, "google calendar integration not configured", http.StatusServiceUnavailable)
		return
	}

	authURL, err := h.tokens.AuthURL(userID)
	if err != nil {
		log.Errorf("gcal auth url for user %d: %s", userID, err)
		http.Error(w, "failed to create auth url", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]string{"url": authURL})
}

// HandleCallback is hit by the browser coming back from Google, without a login token;
// the user comes from the signed state.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.callback")
	defer span.End()

	query := r.URL.Query()
	if errParam := query.Get("error"); errParam != "" {
		log.Debugf("gcal callback: consent denied: %s", errParam)
		h.redirect(w, r, "error", errParam)
		return
	}

	userID, err := h.tokens.ValidateState(query.Get("state"))
	if err != nil {
		log.Debugf("gcal callback: %s", err)
		h.redirect(w, r, "error", "invalid_state")
		return
	}

	code := query.Get("code")
	if code == "" {
		h.redirect(w, r, "error", "missing_code")
		return
	}

	if err := h.tokens.Exchange(ctx, userID, code); err != nil {
		log.Errorf("gcal callback: exchange for user %d: %s", userID, err)
		h.redirect(w, r, "error", "exchange_failed")
		return
	}

	h.redirect(w, r, "connected", "true")
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, key, value string) {
	target := h.frontendURL + "/settings?" + url.Values{"gcal_" + key: {value}}.Encode()
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.status")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	creds, err := h.store.GetCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{})
			return
		}
		log.Errorf("gcal status for user %d: %s", userID, err)
		http.Error(w, "failed to get calendar status", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{
		Connected:   true,
		SyncEnabled: creds.SyncEnabled,
		CalendarID:  creds.CalendarID,
		LastSyncAt:  creds.LastSyncAt,
	})
}

func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.sync")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	if query.Get("to") == "" {
		query.Set("to", time.Now().AddDate(0, 0, h.windowDays).Format(time.RFC3339))
	}
	from, to, err := pkg.ParseTimeRange(query, time.Duration(h.windowDays+7)*24*time.Hour)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.syncer.Sync(ctx, userID, from, to)
	pkg.SendJsonResponse(w, http.StatusOK, result)
}

func (h *Handler) HandleSetSyncEnabled(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.setSyncEnabled")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		http.Error(w, "invalid sync-enabled request", http.StatusBadRequest)
		return
	}

	if err := h.store.SetSyncEnabled(ctx, userID, *req.Enabled); err != nil {
		if errors.Is(err, ErrNotConnected) {
			http.Error(w, "google calendar not connected", http.StatusNotFound)
			return
		}
		log.Errorf("gcal set sync enabled for user %d: %s", userID, err)
		http.Error(w, "failed to update sync setting", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]bool{"syncEnabled": *req.Enabled})
}

func (h *Handler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.disconnect")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.tokens.Disconnect(ctx, userID); err != nil {
		if errors.Is(err, ErrNotConnected) {
			http.Error(w, "google calendar not connected", http.StatusNotFound)
			return
		}
		log.Errorf("gcal disconnect for user %d: %s", userID, err)
		http.Error(w, "failed to disconnect", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "disconnected")
}

func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gcal.events")
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

	cached, err := h.store.ListCachedEvents(ctx, userID, from, to)
	if err != nil {
		log.Errorf("gcal events for user %d: %s", userID, err)
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}

	events := []CachedEvent{}
	for _, e := range cached {
		if !e.IsDeleted {
			events = append(events, e)
		}
	}

	pkg.SendJsonResponse(w, http.StatusOK, events)
}
