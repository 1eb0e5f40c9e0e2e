package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"

	"github.com/teemow/zoomctl/internal/config"
)

const (
	// tokenURL is the Zoom OAuth token endpoint.
	tokenURL = "https://zoom.us/oauth/token"

	// expiryMargin is how close to expiry a cached token may be before it
	// is discarded and refreshed.
	expiryMargin = 60 * time.Second

	// tokenExchangeTimeout bounds the client-credentials exchange.
	tokenExchangeTimeout = 15 * time.Second

	// defaultExpiresIn is assumed when the token response omits expires_in.
	defaultExpiresIn = 3600
)

// TokenRecord is the persisted shape of a cached token: the raw token
// response fields plus the computed absolute expiry in unix seconds.
type TokenRecord struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	Scope       string `json:"scope,omitempty"`
	APIURL      string `json:"api_url,omitempty"`
	ExpiresAt   int64  `json:"expires_at"`
}

// TokenStore persists a single token record between invocations.
//
// Load returns (nil, nil) when no usable record exists; a corrupt record is
// treated the same as a missing one so the caller simply refreshes.
type TokenStore interface {
	Load() (*TokenRecord, error)
	Save(*TokenRecord) error
}

// FileStore keeps the token record as a JSON file.
type FileStore struct {
	Path string
}

// DefaultFileStore returns a FileStore at the well-known cache location,
// <user cache dir>/zoomctl/token.json.
func DefaultFileStore() (*FileStore, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine cache directory: %w", err)
	}
	return &FileStore{Path: filepath.Join(dir, "zoomctl", "token.json")}, nil
}

// Load reads the cached record. Missing or unparseable files are not errors.
func (s *FileStore) Load() (*TokenRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, nil
	}
	var rec TokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil
	}
	return &rec, nil
}

// Save writes the record with owner-only permissions.
func (s *FileStore) Save(rec *TokenRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode token record: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}
	return nil
}

// MemoryStore keeps the token record in memory. Used in tests and anywhere
// filesystem access is undesirable.
type MemoryStore struct {
	rec *TokenRecord
}

func (s *MemoryStore) Load() (*TokenRecord, error) { return s.rec, nil }

func (s *MemoryStore) Save(rec *TokenRecord) error {
	s.rec = rec
	return nil
}

// TokenSource obtains Server-to-Server OAuth tokens for the configured
// account, reusing a cached token while it remains valid.
//
/// There is no locking around the store: concurrent invocations may race to
// refresh and the last writer wins. Acceptable for single-user CLI usage.
type TokenSource struct {
	cfg        *config.Config
	store      TokenStore
	httpClient *http.Client
	tokenURL   string
	logger     *slog.Logger
	now        func() time.Time
}

// NewTokenSource creates a token source backed by the given store.
func NewTokenSource(cfg *config.Config, store TokenStore) *TokenSource {
	return &TokenSource{
		cfg:        cfg,
		store:      store,
		httpClient: &http.Client{Timeout: tokenExchangeTimeout},
		tokenURL:   tokenURL,
		logger:     slog.Default(),
		now:        time.Now,
	}
}

// Token returns a valid access token, refreshing and persisting it when the
// cached one is missing or expires within the margin.
func (ts *TokenSource) Token(ctx context.Context) (*oauth2.Token, error) {
	if err := ts.cfg.ValidateCredentials(); err != nil {
		return nil, err
	}

	if rec, _ := ts.store.Load(); rec != nil && rec.AccessToken != "" {
		expiry := time.Unix(rec.ExpiresAt, 0)
		if expiry.After(ts.now().Add(expiryMargin)) {
			return &oauth2.Token{
				AccessToken: rec.AccessToken,
				TokenType:   "Bearer",
				Expiry:      expiry,
			}, nil
		}
	}

	rec, err := ts.exchange(ctx)
	if err != nil {
		return nil, err
	}

	if err := ts.store.Save(rec); err != nil {
		// A failed cache write only costs an extra exchange next time.
		ts.logger.Warn("failed to persist token cache", "error", err.Error())
	}

	return &oauth2.Token{
		AccessToken: rec.AccessToken,
		TokenType:   "Bearer",
		Expiry:      time.Unix(rec.ExpiresAt, 0),
	}, nil
}

// exchange performs the account_credentials grant.
func (ts *TokenSource) exchange(ctx context.Context) (*TokenRecord, error) {
	q := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {ts.cfg.AccountID},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(ts.cfg.ClientID, ts.cfg.ClientSecret)

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, body)
	}

	var rec TokenRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if rec.AccessToken == "" {
		return nil, fmt.Errorf("token response contained no access token")
	}

	expiresIn := rec.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultExpiresIn
	}
	rec.ExpiresAt = ts.now().Add(time.Duration(expiresIn) * time.Second).Unix()

	return &rec, nil
}
