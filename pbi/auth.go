package pbi

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// credentialsSource fetches service principal tokens through the client's own
// HTTP client and the caller's context. One token is cached until it nears
// expiry; concurrent callers wait for a single fetch.
type credentialsSource struct {
	cfg *clientcredentials.Config
	hc  *http.Client

	mu  sync.Mutex
	tok *oauth2.Token
}

func (s *credentialsSource) Token(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tok.Valid() {
		return s.tok, nil
	}
	tok, err := s.cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, s.hc))
	if err != nil {
		return nil, err
	}
	s.tok = tok
	return tok, nil
}

// token returns the bearer token for one call, or nil when the client is
// unauthenticated.
func (c *Client) token(ctx context.Context) (*oauth2.Token, error) {
	switch {
	case c.credentials != nil:
		return c.credentials.Token(ctx)
	case c.TokenSource != nil:
		return c.TokenSource.Token()
	}
	return nil, nil
}
