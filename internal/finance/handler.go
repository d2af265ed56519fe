package finance

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
	nowFunc func() time.Time
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/finance/accounts", h.HandleListAccounts).Methods("GET", "OPTIONS").Name("finance-list-accounts")
	r.HandleFunc("/finance/accounts", h.HandleAddAccount).Methods("POST", "OPTIONS").Name("finance-add-account")
	r.HandleFunc("/finance/transactions", h.HandleListTransactions).Methods("GET", "OPTIONS").Name("finance-list-transactions")
	r.HandleFunc("/finance/transactions", h.HandleAddTransaction).Methods("POST", "OPTIONS").Name("finance-add-transaction")
	r.HandleFunc("/finance/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("finance-summary")
}

// month query param, current month when omitted
func (h *Handler) month(r *http.Request) string {
	if month := r.URL.Query().Get("month"); month != "" {
		return month
	}
	return h.nowFunc().Format(MonthLayout)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", fallback, err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func (h *Handler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finance.listAccounts")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	accounts, err := h.service.ListAccounts(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []Account{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, accounts)
}

func (h *Handler) HandleAddAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finance.addAccount")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var account Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		http.Error(w, "invalid account request", http.StatusBadRequest)
		return
	}
	account.UserID = userID

	added, err := h.service.AddAccount(ctx, account)
	if err != nil {
		writeError(w, err, "failed to add account")
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, added)
}

func (h *Handler) HandleAddTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finance.addTransaction")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var t Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		log.Tracef("add transaction, unmarshal json params: %s", err)
		http.Error(w, "invalid transaction request", http.StatusBadRequest)
		return
	}
	t.UserID = userID

	added, err := h.service.AddTransaction(ctx, t)
	if err != nil {
		writeError(w, err, "failed to add transaction")
		return
	}

	pkg.SendJsonResponse(w, http.StatusCreated, added)
}

func (h *Handler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finance.listTransactions")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	transactions, err := h.service.ListTransactions(ctx, userID, h.month(r))
	if err != nil {
		writeError(w, err, "failed to list transactions")
		return
	}
	if transactions == nil {
		transactions = []Transaction{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, transactions)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finance.summary")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	summary, err := h.service.MonthlySummary(ctx, userID, h.month(r))
	if err != nil {
		writeError(w, err, "failed to get monthly summary")
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, summary)
}
