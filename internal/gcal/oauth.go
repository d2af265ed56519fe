package gcal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

//go:generate mockgen -source=$GOFILE -destination=oauth_mocks_test.go -package=gcal_test

const (
	stateMaxAge   = 10 * time.Minute
	refreshBuffer = 5 * time.Minute

	DefaultRevokeURL = "https://oauth2.googleapis.com/revoke"
)

type credentialsStore interface {
	GetCredentials(ctx context.Context, userID int) (*Credentials, error)
	SaveCredentials(ctx context.Context, c Credentials) error
	UpdateToken(ctx context.Context, userID int, accessToken string, expiry time.Time) error
	DeleteCredentials(ctx context.Context, userID int) error
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// zero value means the google endpoint
	Endpoint  oauth2.Endpoint
	RevokeURL string
}

type oauthState struct {
	UserID    int    `json:"userId"`
	Timestamp int64  `json:"timestamp"`
	Nonce     string `json:"nonce"`
}

// TokenManager runs the OAuth authorization code flow and keeps user access tokens fresh.
type TokenManager struct {
	oauthConfig *oauth2.Config
	revokeURL   string
	store       credentialsStore
	httpClient  *http.Client
	nowFunc     func() time.Time
}

func NewTokenManager(cfg OAuthConfig, store credentialsStore, httpClient *http.Client) *TokenManager {
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	revokeURL := cfg.RevokeURL
	if revokeURL == "" {
		revokeURL = DefaultRevokeURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenManager{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{calendar.CalendarScope, calendar.CalendarEventsScope},
		},
		revokeURL:  revokeURL,
		store:      store,
		httpClient: httpClient,
		nowFunc:    time.Now,
	}
}

func (m *TokenManager) Configured() bool {
	return m.oauthConfig.ClientID != "" && m.oauthConfig.ClientSecret != ""
}

// AuthURL returns the consent page URL. Offline access with forced consent makes Google
// issue a refresh token on every connect.
func (m *TokenManager) AuthURL(userID int) (string, error) {
	state, err := json.Marshal(oauthState{
		UserID:    userID,
		Timestamp: m.nowFunc().UnixMilli(),
		Nonce:     uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return m.oauthConfig.AuthCodeURL(
		base64.URLEncoding.EncodeToString(state),
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// ValidateState decodes the callback state and returns the user it was issued for.
func (m *TokenManager) ValidateState(state string) (int, error) {
	raw, err := base64.URLEncoding.DecodeString(state)
	if err != nil {
		return 0, fmt.Errorf("%w: decode: %w", ErrInvalidState, err)
	}
	var s oauthState
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: unmarshal: %w", ErrInvalidState, err)
	}
	if s.UserID <= 0 || s.Nonce == "" {
		return 0, fmt.Errorf("%w: missing fields", ErrInvalidState)
	}

	issuedAt := time.UnixMilli(s.Timestamp)
	age := m.nowFunc().Sub(issuedAt)
	if age > stateMaxAge {
		return 0, fmt.Errorf("%w: expired", ErrInvalidState)
	}
	if age < -time.Minute {
		return 0, fmt.Errorf("%w: issued in the future", ErrInvalidState)
	}
	return s.UserID, nil
}

func (m *TokenManager) oauthCtx(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
}

// Exchange trades the authorization code for tokens and stores them with sync enabled.
func (m *TokenManager) Exchange(ctx context.Context, userID int, code string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gcal.tokens.exchange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	token, err := m.oauthConfig.Exchange(m.oauthCtx(ctx), code)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	if token.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	return m.store.SaveCredentials(ctx, Credentials{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenExpiry:  token.Expiry,
		CalendarID:   DefaultCalendarID,
		SyncEnabled:  true,
	})
}

// Token returns a valid access token, refreshing it when it expires within five minutes.
func (m *TokenManager) Token(ctx context.Context, userID int) (_ *oauth2.Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gcal.tokens.token")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	creds, err := m.store.GetCredentials(ctx, userID)
	if err != nil {
		return nil, err
	}

	if creds.TokenExpiry.Sub(m.nowFunc()) > refreshBuffer {
		return &oauth2.Token{
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
			Expiry:       creds.TokenExpiry,
			TokenType:    "Bearer",
		}, nil
	}

	log.Debugf("gcal: refreshing access token for user %d", userID)
	// expired token forces the token source to refresh
	refreshed, err := m.oauthConfig.TokenSource(m.oauthCtx(ctx), &oauth2.Token{
		RefreshToken: creds.RefreshToken,
		Expiry:       m.nowFunc().Add(-time.Hour),
	}).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	if err := m.store.UpdateToken(ctx, userID, refreshed.AccessToken, refreshed.Expiry); err != nil {
		return nil, fmt.Errorf("store refreshed token: %w", err)
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = creds.RefreshToken
	}
	return refreshed, nil
}

// HTTPClient returns a client authorized as the user.
func (m *TokenManager) HTTPClient(ctx context.Context, userID int) (*http.Client, error) {
	token, err := m.Token(ctx, userID)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(m.oauthCtx(ctx), oauth2.StaticTokenSource(token)), nil
}

// Disconnect revokes the token at Google (best effort) and deletes the stored credentials.
func (m *TokenManager) Disconnect(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gcal.tokens.disconnect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	creds, err := m.store.GetCredentials(ctx, userID)
	if err != nil {
		return err
	}

	token := creds.RefreshToken
	if token == "" {
		token = creds.AccessToken
	}
	if err := m.revoke(ctx, token); err != nil {
		log.Warnf("gcal: revoke token for user %d: %s", userID, err)
	}

	return m.store.DeleteCredentials(ctx, userID)
}

func (m *TokenManager) revoke(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)
	req, err := http.NewRequestWithContext(ctx, "POST", m.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("revoke returned " + resp.Status)
	}
	return nil
}
