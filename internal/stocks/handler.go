package stocks

import (
	"errors"
	"net/http"

	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{
		client: client,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stocks/{symbol}/price", h.HandlePrice).Methods("GET", "OPTIONS").Name("stocks-price")
}

func (h *Handler) HandlePrice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stocks.price")
	defer span.End()

	q, err := h.client.Price(ctx, mux.Vars(r)["symbol"])
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSymbol):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrSymbolNotFound):
			http.Error(w, "symbol not found", http.StatusNotFound)
		default:
			log.Errorf("get stock price: %s", err)
			http.Error(w, "stock price unavailable", http.StatusBadGateway)
		}
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, q)
}
