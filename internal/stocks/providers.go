package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Provider fetches the latest price of a symbol from a market data API.
type Provider interface {
	Name() string
	FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// AlphaVantage uses the GLOBAL_QUOTE endpoint.
// https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=IBM&apikey=demo
type AlphaVantage struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantage(baseURL, apiKey string, httpClient *http.Client) *AlphaVantage {
	return &AlphaVantage{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (a *AlphaVantage) Name() string {
	return "alphavantage"
}

type alphaVantageResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	Note        string            `json:"Note"`
	Information string            `json:"Information"`
	Error       string            `json:"Error Message"`
}

func (a *AlphaVantage) FetchPrice(ctx context.Context, symbol string) (_ decimal.Decimal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stocks.alphavantage.fetchPrice")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("stock.symbol", symbol))

	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", symbol)
	query.Set("apikey", a.apiKey)

	var resp alphaVantageResponse
	if err := getJSON(ctx, a.httpClient, a.baseURL+"/query?"+query.Encode(), &resp); err != nil {
		return decimal.Decimal{}, err
	}

	if resp.Note != "" || resp.Information != "" {
		log.Debugf("alpha vantage limited: %s%s", resp.Note, resp.Information)
		return decimal.Decimal{}, ErrProviderRateLimited
	}
	if resp.Error != "" {
		return decimal.Decimal{}, fmt.Errorf("alpha vantage: %s", resp.Error)
	}

	rawPrice, ok := resp.GlobalQuote["05. price"]
	if !ok || rawPrice == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("alpha vantage: bad price [%s]: %w", rawPrice, err)
	}
	return price, nil
}

// TwelveData uses the /price endpoint.
// https://api.twelvedata.com/price?symbol=AAPL&apikey=demo
type TwelveData struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTwelveData(baseURL, apiKey string, httpClient *http.Client) *TwelveData {
	return &TwelveData{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (t *TwelveData) Name() string {
	return "twelvedata"
}

type twelveDataResponse struct {
	Price   string `json:"price"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (t *TwelveData) FetchPrice(ctx context.Context, symbol string) (_ decimal.Decimal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stocks.twelvedata.fetchPrice")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("stock.symbol", symbol))

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("apikey", t.apiKey)

	var resp twelveDataResponse
	if err := getJSON(ctx, t.httpClient, t.baseURL+"/price?"+query.Encode(), &resp); err != nil {
		return decimal.Decimal{}, err
	}

	if resp.Status == "error" {
		switch resp.Code {
		case http.StatusTooManyRequests:
			return decimal.Decimal{}, ErrProviderRateLimited
		case http.StatusNotFound, http.StatusBadRequest:
			return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
		}
		return decimal.Decimal{}, fmt.Errorf("twelve data: %d %s", resp.Code, resp.Message)
	}

	price, err := decimal.NewFromString(resp.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("twelve data: bad price [%s]: %w", resp.Price, err)
	}
	return price, nil
}

func getJSON(ctx context.Context, httpClient *http.Client, reqURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrProviderRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}
	if err := json.Unmarshal(respBytes, target); err != nil {
		return fmt.Errorf("unmarshal response bytes: %w", err)
	}
	return nil
}
